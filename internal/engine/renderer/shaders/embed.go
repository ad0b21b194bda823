// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms lit or unlit mesh triangles.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader shades the hull with the scene lights and environment.
//
//go:embed mesh.frag
var MeshFragmentShader string

// LineVertexShader is shared by wireframe, edge and grid lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader outputs the interpolated line color.
//
//go:embed line.frag
var LineFragmentShader string

// PointVertexShader sizes particles with distance attenuation.
//
//go:embed point.vert
var PointVertexShader string

// PointFragmentShader outputs translucent particle color.
//
//go:embed point.frag
var PointFragmentShader string

// OverlayVertexShader emits a fullscreen quad without vertex buffers.
//
//go:embed overlay.vert
var OverlayVertexShader string

// OverlayFragmentShader samples the premultiplied HUD texture.
//
//go:embed overlay.frag
var OverlayFragmentShader string

// Package renderer draws viewer scene descriptions with OpenGL 4.1.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/hydroavia/showcase/internal/engine/camera"
	"github.com/hydroavia/showcase/internal/engine/grid"
	"github.com/hydroavia/showcase/internal/engine/hud"
	"github.com/hydroavia/showcase/internal/engine/lighting"
	"github.com/hydroavia/showcase/internal/engine/renderer/shaders"
	"github.com/hydroavia/showcase/internal/engine/shader"
	"github.com/hydroavia/showcase/internal/logger"
	"github.com/hydroavia/showcase/internal/viewer"
	"github.com/hydroavia/showcase/pkg/math"
)

// DefaultBackground is the page color behind the canvas.
var DefaultBackground = math.Hex(0x0a0a0a)

// Config holds renderer configuration.
type Config struct {
	Width      int // drawable size in pixels
	Height     int
	Background math.RGB
}

// Renderer owns all GPU state. Every method must run on the thread that
// holds the GL context.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProg    *shader.Program
	lineProg    *shader.Program
	pointProg   *shader.Program
	overlayProg *shader.Program

	models map[*viewer.Model]*gpuModel

	gridLayout   grid.Layout
	gridCells    *vertexBuffer
	gridSections *vertexBuffer

	particleField *viewer.ParticleField
	particles     *vertexBuffer

	overlayVAO uint32
	overlayTex uint32
	overlay    hud.Cache
}

// New initializes OpenGL and compiles the shader programs.
// Must be called after the GL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		models: make(map[*viewer.Model]*gpuModel),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.DepthFunc(gl.LEQUAL)

	programs := []struct {
		dst        **shader.Program
		name       string
		vert, frag string
	}{
		{&r.meshProg, "mesh", shaders.MeshVertexShader, shaders.MeshFragmentShader},
		{&r.lineProg, "line", shaders.LineVertexShader, shaders.LineFragmentShader},
		{&r.pointProg, "point", shaders.PointVertexShader, shaders.PointFragmentShader},
		{&r.overlayProg, "overlay", shaders.OverlayVertexShader, shaders.OverlayFragmentShader},
	}
	for _, p := range programs {
		prog, err := shader.New(p.name, p.vert, p.frag)
		if err != nil {
			r.Close()
			return nil, err
		}
		*p.dst = prog
	}

	gl.GenVertexArrays(1, &r.overlayVAO)
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close frees every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")

	for m, g := range r.models {
		g.delete()
		delete(r.models, m)
	}
	r.gridCells.delete()
	r.gridSections.delete()
	r.particles.delete()

	if r.overlayTex != 0 {
		gl.DeleteTextures(1, &r.overlayTex)
	}
	if r.overlayVAO != 0 {
		gl.DeleteVertexArrays(1, &r.overlayVAO)
	}
	for _, p := range []*shader.Program{r.meshProg, r.lineProg, r.pointProg, r.overlayProg} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Release frees the GPU buffers built for m. It is the viewer's release
// callback.
func (r *Renderer) Release(m *viewer.Model) {
	if g, ok := r.models[m]; ok {
		g.delete()
		delete(r.models, m)
		r.log.Debug("model buffers released", zap.String("path", m.Path))
	}
}

// Draw renders one frame.
func (r *Renderer) Draw(s viewer.Scene, cam *camera.OrbitCamera) {
	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.config.Width <= 0 || r.config.Height <= 0 {
		return
	}

	aspect := float32(r.config.Width) / float32(r.config.Height)
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect)
	eye := cam.Position()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	if s.Mesh != nil {
		r.drawMesh(s.Mesh, s.Lights, s.Environment, view, proj, eye)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if s.Grid != nil {
		r.drawGrid(*s.Grid, view, proj, eye)
	}
	if s.Particles != nil {
		r.drawParticles(s.Particles, view, proj)
	}
	if s.HUD != nil {
		r.drawOverlay(s.HUD)
	}

	gl.Disable(gl.BLEND)
}

func (r *Renderer) drawMesh(n *viewer.MeshNode, rig lighting.Rig, env *lighting.Environment, view, proj math.Mat4, eye math.Vec3) {
	g, ok := r.models[n.Model]
	if !ok {
		g = uploadModel(n.Model)
		r.models[n.Model] = g
		r.log.Debug("model uploaded",
			zap.String("path", n.Model.Path),
			zap.Int("vertices", len(n.Model.Geometry.Vertices)))
	}
	model := n.Transform
	mat := n.Material

	if mat.Wireframe {
		r.useLines(model, view, proj, eye, mat.Color, 1)
		g.wireframe.draw(gl.LINES)
	} else {
		r.useMesh(mat, model, rig, env, view, proj, eye)
		g.triangles.draw(gl.TRIANGLES)
	}

	if n.EdgeColor != nil {
		r.useLines(model, view, proj, eye, *n.EdgeColor, 1)
		g.edges.draw(gl.LINES)
	}
}

func (r *Renderer) useMesh(mat viewer.Material, model math.Mat4, rig lighting.Rig, env *lighting.Environment, view, proj math.Mat4, eye math.Vec3) {
	p := r.meshProg
	p.Use()

	normal := model.Mat3x3()
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.UniformMatrix3fv(p.Uniform("uNormalMatrix"), 1, false, &normal[0])

	setBool(p.Uniform("uUnlit"), mat.Kind == viewer.MaterialBasic)
	setRGB(p.Uniform("uColor"), mat.Color)
	gl.Uniform1f(p.Uniform("uMetalness"), mat.Metalness)
	gl.Uniform1f(p.Uniform("uRoughness"), mat.Roughness)
	setRGB(p.Uniform("uEmissive"), mat.Emissive.Scale(mat.EmissiveIntensity))
	gl.Uniform3f(p.Uniform("uCameraPos"), eye.X, eye.Y, eye.Z)

	lb := rig.Flatten()
	ambient := math.RGB(lb.AmbientColor).Scale(lb.AmbientIntensity)
	setRGB(p.Uniform("uAmbient"), ambient)
	gl.Uniform3fv(p.Uniform("uPointPositions"), lighting.MaxPointLights, &lb.PointPositions[0])
	gl.Uniform3fv(p.Uniform("uPointColors"), lighting.MaxPointLights, &lb.PointColors[0])
	gl.Uniform1i(p.Uniform("uPointCount"), lb.PointCount)
	gl.Uniform3fv(p.Uniform("uSpotPositions"), lighting.MaxSpotLights, &lb.SpotPositions[0])
	gl.Uniform3fv(p.Uniform("uSpotDirections"), lighting.MaxSpotLights, &lb.SpotDirections[0])
	gl.Uniform3fv(p.Uniform("uSpotColors"), lighting.MaxSpotLights, &lb.SpotColors[0])
	gl.Uniform2fv(p.Uniform("uSpotCones"), lighting.MaxSpotLights, &lb.SpotCones[0])
	gl.Uniform1i(p.Uniform("uSpotCount"), lb.SpotCount)

	setBool(p.Uniform("uEnvEnabled"), env != nil)
	if env != nil {
		setRGB(p.Uniform("uEnvSky"), env.Sky)
		setRGB(p.Uniform("uEnvHorizon"), env.Horizon)
		setRGB(p.Uniform("uEnvGround"), env.Ground)
		gl.Uniform1f(p.Uniform("uEnvIntensity"), env.Intensity)
	}
}

// useLines binds the line program for single-color geometry.
func (r *Renderer) useLines(model, view, proj math.Mat4, eye math.Vec3, color math.RGB, opacity float32) {
	p := r.lineProg
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform3f(p.Uniform("uCameraPos"), eye.X, eye.Y, eye.Z)
	setBool(p.Uniform("uVertexColor"), false)
	setRGB(p.Uniform("uColor"), color)
	gl.Uniform1f(p.Uniform("uOpacity"), opacity)
	gl.Uniform1f(p.Uniform("uFadeDistance"), 0)
	gl.Uniform1f(p.Uniform("uFadeStrength"), 1)
}

// drawGrid draws cell and section lines. Core profile lines are one pixel
// wide, so thickness below one pixel is expressed as opacity.
func (r *Renderer) drawGrid(layout grid.Layout, view, proj math.Mat4, eye math.Vec3) {
	if r.gridCells == nil || layout != r.gridLayout {
		r.gridCells.delete()
		r.gridSections.delete()
		lines := layout.Generate(0)
		r.gridCells = newGridBuffer(lines.Cells)
		r.gridSections = newGridBuffer(lines.Sections)
		r.gridLayout = layout
	}

	gl.DepthMask(false)
	defer gl.DepthMask(true)

	p := r.lineProg
	identity := math.Identity()
	r.useLines(identity, view, proj, eye, math.RGB{}, 1)
	setBool(p.Uniform("uVertexColor"), true)
	gl.Uniform1f(p.Uniform("uFadeDistance"), layout.FadeDistance)
	gl.Uniform1f(p.Uniform("uFadeStrength"), layout.FadeStrength)

	gl.Uniform1f(p.Uniform("uOpacity"), min(layout.CellThickness, 1))
	r.gridCells.draw(gl.LINES)
	gl.Uniform1f(p.Uniform("uOpacity"), min(layout.SectionThickness, 1))
	r.gridSections.draw(gl.LINES)
}

func (r *Renderer) drawParticles(n *viewer.ParticleNode, view, proj math.Mat4) {
	f := n.Field
	if f != r.particleField {
		r.particles.delete()
		r.particles = newPositionBuffer(f.Positions())
		r.particleField = f
	}

	gl.DepthMask(false)
	defer gl.DepthMask(true)

	p := r.pointProg
	p.Use()
	model := n.Transform
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform1f(p.Uniform("uSize"), f.Size)
	gl.Uniform1f(p.Uniform("uScale"), float32(r.config.Height)/2)
	setBool(p.Uniform("uAttenuate"), f.SizeAttenuation)
	setRGB(p.Uniform("uColor"), f.Color)
	opacity := float32(1)
	if f.Transparent {
		opacity = f.Opacity
	}
	gl.Uniform1f(p.Uniform("uOpacity"), opacity)

	r.particles.draw(gl.POINTS)
}

func (r *Renderer) drawOverlay(h *viewer.HUD) {
	img, changed := r.overlay.Image(h, r.config.Width, r.config.Height)
	if r.overlayTex == 0 {
		gl.GenTextures(1, &r.overlayTex)
		changed = true
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	if changed {
		b := img.Bounds()
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	}

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)
	// The overlay image is premultiplied.
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	defer gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.overlayProg.Use()
	gl.Uniform1i(r.overlayProg.Uniform("uTexture"), 0)
	gl.BindVertexArray(r.overlayVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ReadPixels returns the current frame as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func setRGB(loc int32, c math.RGB) {
	gl.Uniform3f(loc, c[0], c[1], c[2])
}

func setBool(loc int32, v bool) {
	if v {
		gl.Uniform1i(loc, 1)
		return
	}
	gl.Uniform1i(loc, 0)
}

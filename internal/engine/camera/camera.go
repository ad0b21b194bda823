// Package camera provides the orbit camera rig used by the model viewer.
package camera

import (
	gomath "math"

	"github.com/hydroavia/showcase/pkg/math"
)

// Rig defaults for the showcase viewer.
const (
	DefaultFOV         = 75 * gomath.Pi / 180
	DefaultNear        = 0.1
	DefaultFar         = 1000
	DefaultMinDistance = 2
	DefaultMaxDistance = 8

	// zoomStep is the distance factor per wheel notch.
	zoomStep = 0.95
	// pitchLimit keeps the eye off the poles so LookAt's up vector stays valid.
	pitchLimit = gomath.Pi/2 - 0.001
)

// DefaultEye is the initial camera position; the rig looks at the origin.
var DefaultEye = math.Vec3{X: 3, Y: 2, Z: 3}

// OrbitCamera orbits around a center point. It only moves in response to
// user gestures; nothing in the render loop drives it.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	EnableZoom bool
	EnablePan  bool

	// Radians per pixel of drag; set from the viewport height by Resize.
	DragSensitivity float32

	FOV, Near, Far float32
}

// NewOrbitCamera creates a rig at eye looking at the origin, with zoom
// clamped to [2, 8] and panning disabled.
func NewOrbitCamera(eye math.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		MinDistance:     DefaultMinDistance,
		MaxDistance:     DefaultMaxDistance,
		MinPitch:        -pitchLimit,
		MaxPitch:        pitchLimit,
		EnableZoom:      true,
		EnablePan:       false,
		DragSensitivity: 2 * gomath.Pi / 720,
		FOV:             DefaultFOV,
		Near:            DefaultNear,
		Far:             DefaultFar,
	}
	c.SetEye(eye)
	return c
}

// SetEye places the camera at eye, keeping the current center. Distance is
// not clamped here: the rig starts wherever it is told to.
func (c *OrbitCamera) SetEye(eye math.Vec3) {
	off := eye.Sub(c.Center)
	c.Distance = off.Length()
	if c.Distance == 0 {
		return
	}
	c.RotationX = float32(gomath.Asin(float64(off.Y / c.Distance)))
	c.RotationY = float32(gomath.Atan2(float64(off.X), float64(off.Z)))
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.RotationX), float64(c.RotationY)
	return c.Center.Add(math.Vec3{
		X: c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw)),
		Y: c.Distance * float32(gomath.Sin(pitch)),
		Z: c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw)),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Resize scales drag sensitivity so a full-height drag turns one revolution.
func (c *OrbitCamera) Resize(viewportHeight int) {
	if viewportHeight > 0 {
		c.DragSensitivity = 2 * gomath.Pi / float32(viewportHeight)
	}
}

// HandleDrag updates rotation based on mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance by wheel notches; positive zooms in.
func (c *OrbitCamera) HandleZoom(notches float32) {
	if !c.EnableZoom || notches == 0 {
		return
	}
	c.Distance *= float32(gomath.Pow(zoomStep, float64(notches)))
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandlePan moves the center in the view plane. No-op unless EnablePan.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	if !c.EnablePan {
		return
	}
	view := c.ViewMatrix()
	right := math.Vec3{X: view[0], Y: view[4], Z: view[8]}
	up := math.Vec3{X: view[1], Y: view[5], Z: view[9]}
	speed := c.Distance * c.DragSensitivity * 0.5
	c.Center = c.Center.Add(right.Scale(-deltaX * speed)).Add(up.Scale(deltaY * speed))
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

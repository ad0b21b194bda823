package viewer

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/hydroavia/showcase/pkg/math"
)

// Animation constants.
const (
	// SpinPerTick is the mesh yaw step per rendered frame, in radians.
	SpinPerTick = 0.003
	// ReferenceRate is the refresh rate SpinPerTick was tuned at.
	ReferenceRate = 60

	BobAmplitude    = 0.1
	BobFrequency    = 0.5  // radians per second of elapsed time
	ParticleYawRate = 0.05 // radians per second
)

// SpinMode chooses how the mesh spin advances.
type SpinMode int

const (
	// SpinPerSecond advances by SpinPerTick*ReferenceRate per second, so the
	// speed is the same on every display.
	SpinPerSecond SpinMode = iota
	// SpinPerFrame advances by SpinPerTick every frame regardless of timing.
	SpinPerFrame
)

// ParseSpinMode parses "time" or "frame".
func ParseSpinMode(s string) (SpinMode, error) {
	switch s {
	case "time", "":
		return SpinPerSecond, nil
	case "frame":
		return SpinPerFrame, nil
	default:
		return 0, fmt.Errorf("unknown spin mode %q", s)
	}
}

// Pose is the animation state for one frame.
type Pose struct {
	Elapsed     float64 // seconds since the first tick
	Spin        float64 // total mesh yaw, unwrapped
	MeshYaw     float32 // Spin reduced to [0, 2*pi)
	MeshBob     float32
	ParticleYaw float32
}

// MeshTransform places the mesh: bob offset on Y, then yaw about Y.
func (p Pose) MeshTransform() math.Mat4 {
	return math.Translate(0, p.MeshBob, 0).Mul(math.RotateY(p.MeshYaw))
}

// ParticleTransform rotates the whole particle field.
func (p Pose) ParticleTransform() math.Mat4 {
	return math.RotateY(p.ParticleYaw)
}

// Animator derives per-frame poses. Bob and particle yaw are pure functions
// of elapsed time. Spin accumulates only while a mesh is on screen, so a
// freshly shown mesh starts facing forward.
type Animator struct {
	mode    SpinMode
	start   time.Time
	last    time.Time
	started bool
	spin    float64
}

// NewAnimator creates an animator with the given spin mode.
func NewAnimator(mode SpinMode) *Animator {
	return &Animator{mode: mode}
}

// Tick advances to now. meshVisible says whether a mesh is currently shown.
func (a *Animator) Tick(now time.Time, meshVisible bool) Pose {
	if !a.started {
		a.start, a.last, a.started = now, now, true
	}
	dt := now.Sub(a.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	a.last = now

	if meshVisible {
		switch a.mode {
		case SpinPerFrame:
			a.spin += SpinPerTick
		default:
			a.spin += SpinPerTick * ReferenceRate * dt
		}
	} else {
		// Rotation is monotonic only while a mesh is shown; a new mesh starts facing forward.
		a.spin = 0
	}

	return poseAt(now.Sub(a.start).Seconds(), a.spin)
}

func poseAt(elapsed, spin float64) Pose {
	return Pose{
		Elapsed:     elapsed,
		Spin:        spin,
		MeshYaw:     float32(gomath.Mod(spin, 2*gomath.Pi)),
		MeshBob:     float32(gomath.Sin(elapsed*BobFrequency) * BobAmplitude),
		ParticleYaw: float32(elapsed * ParticleYawRate),
	}
}

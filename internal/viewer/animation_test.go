package viewer

import (
	gomath "math"
	"testing"
	"time"
)

func near(a, b, eps float64) bool {
	return gomath.Abs(a-b) <= eps
}

func TestAnimator_Spin(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name   string
		mode   SpinMode
		frames int
		step   time.Duration
		want   float64
	}{
		{"per frame at 60Hz", SpinPerFrame, 60, time.Second / 60, 60 * SpinPerTick},
		{"per frame at 144Hz", SpinPerFrame, 144, time.Second / 144, 144 * SpinPerTick},
		{"per second at 60Hz", SpinPerSecond, 60, time.Second / 60, SpinPerTick * ReferenceRate},
		{"per second at 144Hz", SpinPerSecond, 144, time.Second / 144, SpinPerTick * ReferenceRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator(tt.mode)
			a.Tick(base, false)
			var p Pose
			for i := 1; i <= tt.frames; i++ {
				p = a.Tick(base.Add(time.Duration(i)*tt.step), true)
			}
			if !near(p.Spin, tt.want, 1e-6) {
				t.Errorf("spin = %v, want %v", p.Spin, tt.want)
			}
		})
	}
}

func TestAnimator_SpinResetsWithoutMesh(t *testing.T) {
	base := time.Unix(0, 0)
	a := NewAnimator(SpinPerFrame)
	for i := 0; i < 10; i++ {
		a.Tick(base.Add(time.Duration(i)*time.Millisecond), true)
	}
	p := a.Tick(base.Add(20*time.Millisecond), false)
	if p.Spin != 0 {
		t.Errorf("spin = %v without mesh, want 0", p.Spin)
	}
	p = a.Tick(base.Add(30*time.Millisecond), true)
	if !near(p.Spin, SpinPerTick, 1e-9) {
		t.Errorf("spin = %v after mesh returns, want %v", p.Spin, SpinPerTick)
	}
}

func TestAnimator_TimeDrivenMotion(t *testing.T) {
	base := time.Unix(0, 0)
	a := NewAnimator(SpinPerSecond)
	a.Tick(base, false)

	// sin(pi * 0.5) = 1 at t = pi seconds.
	at := base.Add(time.Duration(gomath.Pi * float64(time.Second)))
	p := a.Tick(at, false)
	if !near(float64(p.MeshBob), BobAmplitude, 1e-5) {
		t.Errorf("bob = %v, want %v", p.MeshBob, BobAmplitude)
	}

	p = a.Tick(base.Add(10*time.Second), false)
	if !near(float64(p.ParticleYaw), 0.5, 1e-6) {
		t.Errorf("particle yaw = %v, want 0.5", p.ParticleYaw)
	}
	if p.Elapsed != 10 {
		t.Errorf("elapsed = %v, want 10", p.Elapsed)
	}
}

func TestPose_MeshYawWraps(t *testing.T) {
	p := poseAt(0, 2*gomath.Pi+1)
	if !near(float64(p.MeshYaw), 1, 1e-5) {
		t.Errorf("yaw = %v, want 1", p.MeshYaw)
	}
}

func TestParseSpinMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SpinMode
		wantErr bool
	}{
		{"time", SpinPerSecond, false},
		{"", SpinPerSecond, false},
		{"frame", SpinPerFrame, false},
		{"vsync", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSpinMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseSpinMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}

package viewer

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/hydroavia/showcase/internal/assets"
	"github.com/hydroavia/showcase/internal/engine/camera"
	"github.com/hydroavia/showcase/internal/logger"
)

// ReleaseFunc frees whatever a consumer built from a model, such as GPU
// buffers. It runs on the thread that calls Update or Close.
type ReleaseFunc func(*Model)

// Option configures a Viewer.
type Option func(*Viewer)

// WithSpinMode selects frame-coupled or time-normalized spin.
func WithSpinMode(m SpinMode) Option {
	return func(v *Viewer) { v.anim = NewAnimator(m) }
}

// WithRand seeds the particle field, for reproducible tests.
func WithRand(r *rand.Rand) Option {
	return func(v *Viewer) { v.rng = r }
}

// WithRelease registers the callback run when a model is replaced or the
// viewer closes.
func WithRelease(f ReleaseFunc) Option {
	return func(v *Viewer) { v.release = f }
}

// WithLogger overrides the component logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *Viewer) { v.log = l }
}

// Viewer is the model viewer component. All methods except Reload must be
// called from the render thread; loads run in the background and are
// applied during Update.
type Viewer struct {
	props   Props
	loader  *Loader
	anim    *Animator
	field   *ParticleField
	camera  *camera.OrbitCamera
	model   *Model
	pose    Pose
	rng     *rand.Rand
	release ReleaseFunc
	log     *zap.Logger
	reload  chan struct{}
}

// New creates a viewer and starts loading props.AssetPath.
func New(props Props, fetcher assets.Fetcher, opts ...Option) *Viewer {
	v := &Viewer{
		props:  props,
		anim:   NewAnimator(SpinPerSecond),
		camera: camera.NewOrbitCamera(camera.DefaultEye),
		reload: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.log == nil {
		v.log = logger.Named("viewer")
	}

	v.field = NewParticleField(v.rng)
	v.loader = NewLoader(fetcher, v.log.Named("loader"))
	v.loader.Load(props.AssetPath)
	return v
}

// Props returns the current props.
func (v *Viewer) Props() Props {
	return v.props
}

// SetProps applies new props. Only an asset path change starts a load;
// mode and particle changes take effect on the next Scene.
func (v *Viewer) SetProps(p Props) {
	old := v.props
	v.props = p
	if p.AssetPath != old.AssetPath {
		v.log.Info("asset path changed", zap.String("from", old.AssetPath), zap.String("to", p.AssetPath))
		v.loader.Load(p.AssetPath)
	}
	if p.Mode != old.Mode {
		v.log.Debug("render mode changed", zap.Stringer("mode", p.Mode))
	}
}

// Reload fetches the current asset again. Safe to call from any goroutine;
// the load starts on the next Update.
func (v *Viewer) Reload() {
	select {
	case v.reload <- struct{}{}:
	default:
	}
}

// Update applies a finished load, if any, and advances the animation.
func (v *Viewer) Update(now time.Time) {
	select {
	case <-v.reload:
		v.loader.Load(v.props.AssetPath)
	default:
	}

	if res, ok := v.loader.Poll(); ok {
		v.apply(res)
	}
	v.pose = v.anim.Tick(now, v.model != nil)
}

func (v *Viewer) apply(res LoadResult) {
	if res.Err != nil {
		v.log.Warn("asset load failed",
			zap.String("path", res.Path),
			zap.Stringer("load_id", res.ID),
			zap.Error(res.Err))
		v.setModel(nil)
		return
	}

	size := res.Model.Source.Size()
	v.log.Info("asset loaded",
		zap.String("path", res.Path),
		zap.Stringer("load_id", res.ID),
		zap.Int("triangles", res.Model.Geometry.TriangleCount()),
		zap.Float32("size_x", size.X),
		zap.Float32("size_y", size.Y),
		zap.Float32("size_z", size.Z),
		zap.Duration("took", res.Took))
	v.setModel(res.Model)
}

func (v *Viewer) setModel(m *Model) {
	if v.model != nil && v.model != m && v.release != nil {
		v.release(v.model)
	}
	v.model = m
}

// Model returns the displayed model, or nil while nothing is loaded.
func (v *Viewer) Model() *Model {
	return v.model
}

// Pose returns the animation state from the last Update.
func (v *Viewer) Pose() Pose {
	return v.pose
}

// Particles returns the particle field. It is created once per viewer.
func (v *Viewer) Particles() *ParticleField {
	return v.field
}

// Camera returns the orbit rig for gesture handling.
func (v *Viewer) Camera() *camera.OrbitCamera {
	return v.camera
}

// Scene describes the current frame.
func (v *Viewer) Scene() Scene {
	return BuildScene(v.props, v.model, v.pose, v.field)
}

// WaitLoads blocks until in-flight loads finish. Results still need an
// Update to be applied.
func (v *Viewer) WaitLoads() {
	v.loader.Wait()
}

// Close discards any in-flight load and releases the displayed model.
func (v *Viewer) Close() {
	v.loader.Close()
	v.setModel(nil)
}

package viewer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hydroavia/showcase/internal/assets"
)

// LoadResult is the outcome of one load, delivered to the render thread.
type LoadResult struct {
	Generation uint64
	ID         uuid.UUID
	Path       string
	Model      *Model // nil on failure
	Err        error
	Took       time.Duration
}

// Loader runs asset loads on background goroutines. Each Load starts a new
// generation and cancels the previous one; Poll only ever hands out the
// result of the current generation, so a slow stale load can never
// overwrite a newer one.
type Loader struct {
	fetcher assets.Fetcher
	log     *zap.Logger

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	closed  bool
	pending *LoadResult // Latest finished result, overwritten by newer ones

	wg sync.WaitGroup
}

// NewLoader creates a loader that fetches through f.
func NewLoader(f assets.Fetcher, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		fetcher: f,
		log:     log,
	}
}

// Load starts loading path and returns the new generation. There is no
// timeout and no retry.
func (l *Loader) Load(path string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return l.gen
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	gen, id := l.gen, uuid.New()
	l.log.Debug("load started", zap.String("path", path), zap.Uint64("generation", gen), zap.Stringer("load_id", id))

	l.wg.Add(1)
	go l.run(ctx, gen, id, path)
	return gen
}

func (l *Loader) run(ctx context.Context, gen uint64, id uuid.UUID, path string) {
	defer l.wg.Done()
	start := time.Now()

	res := LoadResult{Generation: gen, ID: id, Path: path}
	data, err := l.fetcher.Fetch(ctx, path)
	if err == nil {
		res.Model, err = PrepareModel(path, data)
		if res.Model != nil {
			res.Model.ID = id
		}
	}
	res.Err = err
	res.Took = time.Since(start)

	if ctx.Err() != nil {
		l.log.Debug("load superseded", zap.String("path", path), zap.Uint64("generation", gen))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.gen {
		return
	}
	if l.pending != nil {
		l.log.Debug("unpolled load replaced", zap.String("path", l.pending.Path), zap.Uint64("generation", l.pending.Generation))
	}
	l.pending = &res
}

// Poll returns the finished result of the current generation, if any.
// Each result is handed out once. Never blocks.
func (l *Loader) Poll() (LoadResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := l.pending
	l.pending = nil
	if res == nil {
		return LoadResult{}, false
	}
	if res.Generation != l.gen {
		l.log.Debug("stale load discarded", zap.String("path", res.Path), zap.Uint64("generation", res.Generation))
		return LoadResult{}, false
	}
	return *res, true
}

// Generation returns the generation of the most recent Load.
func (l *Loader) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// Wait blocks until every started load has finished or been abandoned.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close cancels the in-flight load and stops accepting new ones. Results
// that arrive afterwards are dropped.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.gen++
	if l.cancel != nil {
		l.cancel()
	}
	l.pending = nil
	l.mu.Unlock()

	l.wg.Wait()
}

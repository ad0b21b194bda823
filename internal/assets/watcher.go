package assets

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/hydroavia/showcase/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors and exporters
// produce for a single save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to a single file. It watches the parent directory
// so atomic replace-by-rename saves are seen too.
type Watcher struct {
	fsw      *fsnotify.Watcher
	target   string
	onChange func()
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// WatchFile starts watching path and calls onChange, from the watcher's own
// goroutine, after each settled write or create.
func WatchFile(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		target:   abs,
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	log := logger.Named("watcher")

	for {
		select {
		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.target {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				log.Debug("asset changed", zap.String("path", e.Name), zap.String("op", e.Op.String()))
				w.schedule()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", zap.String("path", w.target), zap.Error(err))

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}

// Close stops watching. Pending debounced callbacks are cancelled.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

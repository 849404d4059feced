package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of events an editor or copy produces.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a Store when its catalog file changes on disk.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	store    *Store
	target   string
	debounce time.Duration
	pending  bool
	lastSeen time.Time
	reloads  int

	stopCh  chan struct{}
	doneCh  chan struct{}
	stopped bool
}

// Watch starts watching the store's catalog file. The directory is watched
// rather than the file so that atomic replace-by-rename is seen. The
// watcher stops when ctx is cancelled or Close is called.
func (s *Store) Watch(ctx context.Context, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	target, err := filepath.Abs(s.cfg.Path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		store:    s,
		target:   target,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	s.logger.Info("watching catalog", zap.String("path", target), zap.Duration("debounce", debounce))

	go w.run(ctx)
	return w, nil
}

// Reloads returns how many reloads the watcher has triggered.
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 4)
	defer ticker.Stop()

	logger := w.store.logger
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("catalog watcher error", zap.Error(err))

		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.target {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	w.mu.Lock()
	w.pending = true
	w.lastSeen = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	due := w.pending && time.Since(w.lastSeen) >= w.debounce
	if due {
		w.pending = false
	}
	w.mu.Unlock()
	if !due {
		return
	}

	cat, err := w.store.Reload()
	if err != nil {
		w.store.logger.Warn("catalog reload after change failed, keeping previous snapshot",
			zap.String("path", w.target), zap.Error(err))
		return
	}
	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()
	w.store.logger.Info("catalog reloaded after change", zap.Int("rows", cat.Len()))
}

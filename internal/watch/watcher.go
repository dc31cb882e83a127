package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the delay used when Config.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	// Files are the files to watch.
	Files []string

	// Debounce is the delay before reporting a change.
	Debounce time.Duration

	// Logger receives watcher errors. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Watcher reports changes to a set of files.
type Watcher struct {
	config   Config
	files    map[string]bool
	mu       sync.Mutex
	onChange func(path string)
	ready    chan struct{}
	once     sync.Once
}

// New creates a Watcher.
func New(config Config) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	files := make(map[string]bool, len(config.Files))
	for _, f := range config.Files {
		if abs, err := filepath.Abs(f); err == nil {
			files[abs] = true
		}
	}
	return &Watcher{
		config: config,
		files:  files,
		ready:  make(chan struct{}),
	}
}

// OnChange sets the callback for file changes. The callback is invoked from
// the goroutine running Run, one path at a time.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Ready is closed once the first call to Run has registered its watches.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is canceled. It may be called again after it
// returns.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return err
		}
	}
	w.once.Do(func() { close(w.ready) })

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]bool)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = true
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.config.Debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Warn("watch error", "error", err)

		case <-timerC:
			w.flush(pending)
			pending = make(map[string]bool)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) flush(pending map[string]bool) {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback == nil {
		return
	}

	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		w.config.Logger.Debug("file changed", "path", p)
		callback(p)
	}
}

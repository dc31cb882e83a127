package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	w := New(Config{Files: []string{"a.yaml"}})
	if w.config.Debounce != DefaultDebounce {
		t.Errorf("Debounce = %v, want %v", w.config.Debounce, DefaultDebounce)
	}
	if w.config.Logger == nil {
		t.Error("Logger should default to slog.Default()")
	}
	abs, _ := filepath.Abs("a.yaml")
	if !w.files[abs] {
		t.Errorf("files = %v, want absolute path of a.yaml", w.files)
	}
}

func TestWatcherReportsChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tree.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(target, []byte("selector: div\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w := New(Config{Files: []string{target}, Debounce: 20 * time.Millisecond})
	changes := make(chan string, 10)
	w.OnChange(func(path string) { changes <- path })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-errCh:
		t.Fatalf("Run() error = %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not become ready")
	}

	if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("selector: span\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changes:
		want, _ := filepath.Abs(target)
		if got, _ := filepath.Abs(path); got != want {
			t.Errorf("changed path = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != context.Canceled {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := New(Config{Files: []string{filepath.Join(t.TempDir(), "missing", "tree.yaml")}})
	if err := w.Run(context.Background()); err == nil {
		t.Error("Run() should fail when the directory does not exist")
	}
}

func TestWatcherRunTwice(t *testing.T) {
	target := filepath.Join(t.TempDir(), "tree.yaml")
	w := New(Config{Files: []string{target}})

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := w.Run(ctx); err != context.Canceled {
			t.Fatalf("run %d: Run() error = %v, want context.Canceled", i, err)
		}
	}

	select {
	case <-w.Ready():
	default:
		t.Error("Ready() should be closed after Run")
	}
}

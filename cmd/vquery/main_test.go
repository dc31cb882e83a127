package main

import (
	"bytes"
	stderrors "errors"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vango-dev/vquery/internal/errors"
)

const todoFixture = `selector: div.app
children:
  - selector: h1
    text: Todos
  - selector: ul
    children:
      - selector: li.done
        properties:
          data-id: 1
        children:
          - Buy milk
      - selector: li
        text: Walk dog
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCommandYAML(t *testing.T) {
	path := writeFixture(t, todoFixture)

	out, err := execute(t, "query", path, "li")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	for _, want := range []string{"count: 2", "selector: li.done", "text: Buy milk", "text: Walk dog"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQueryCommandJSON(t *testing.T) {
	path := writeFixture(t, todoFixture)

	out, err := execute(t, "query", path, ".done", "--format", "json")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}

	var result QueryResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result.Count != 1 || len(result.Matches) != 1 {
		t.Fatalf("result = %+v, want one match", result)
	}
	m := result.Matches[0]
	if m.Selector != "li.done" {
		t.Errorf("Selector = %q, want li.done", m.Selector)
	}
	if m.Properties["data-id"] != float64(1) {
		t.Errorf("data-id = %v, want 1", m.Properties["data-id"])
	}
	if m.Children != 1 {
		t.Errorf("Children = %d, want 1", m.Children)
	}
}

func TestCommands(t *testing.T) {
	path := writeFixture(t, todoFixture)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"text", []string{"text", path, "li.done"}, "Buy milk\n"},
		{"text of subtree", []string{"text", path, "ul"}, "Buy milkWalk dog\n"},
		{"count", []string{"count", path, "li"}, "2\n"},
		{"count none", []string{"count", path, "li.missing"}, "0\n"},
		{"count root excluded", []string{"count", path, "div"}, "0\n"},
		{"count root included", []string{"count", path, "div", "--include-root"}, "1\n"},
		{"exists", []string{"exists", path, "h1"}, "true\n"},
		{"exists false", []string{"exists", path, "h2"}, "false\n"},
		{"version short", []string{"version", "--short"}, "dev\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	path := writeFixture(t, todoFixture)
	bad := writeFixture(t, "selector: [unclosed\n")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"text not found", []string{"text", path, "h2"}, errors.CodeNoMatch},
		{"exists strict", []string{"exists", path, "h2", "--strict"}, errors.CodeNoMatch},
		{"invalid selector", []string{"query", path, ""}, errors.CodeInvalidSelector},
		{"invalid fixture", []string{"count", bad, "li"}, errors.CodeFixtureInvalid},
		{"missing fixture", []string{"count", filepath.Join(t.TempDir(), "nope.yaml"), "li"}, errors.CodeFixtureInvalid},
		{"bad format", []string{"query", path, "li", "--format", "xml"}, errors.CodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestNoMatchIsCLIError(t *testing.T) {
	path := writeFixture(t, todoFixture)

	_, err := execute(t, "text", path, "h2")
	var qe *errors.Error
	if !stderrors.As(err, &qe) {
		t.Fatalf("error = %v, want *errors.Error", err)
	}
	if qe.Category != errors.CategoryCLI {
		t.Errorf("Category = %q, want %q", qe.Category, errors.CategoryCLI)
	}
	if qe.Detail != `"h2"` {
		t.Errorf("Detail = %q, want %q", qe.Detail, `"h2"`)
	}
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vquery.yaml"), []byte("format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	path := writeFixture(t, todoFixture)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if out != "dev\n" {
		t.Errorf("output = %q, want %q", out, "dev\n")
	}

	if _, err := execute(t, "count", path, "li"); !errors.HasCode(err, errors.CodeConfigInvalid) {
		t.Errorf("count error = %v, want code %s", err, errors.CodeConfigInvalid)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel…"},
		{"héllo", 2, "hé…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

// syncBuffer is a bytes.Buffer safe for the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchCommand(t *testing.T) {
	path := writeFixture(t, todoFixture)

	var out, errOut syncBuffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"watch", path, "li"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	updated := strings.Replace(todoFixture, "text: Walk dog", "text: Feed cat", 1)
	deadline := time.After(10 * time.Second)
	for !strings.Contains(out.String(), "Feed cat") {
		select {
		case err := <-done:
			t.Fatalf("watch exited early: %v", err)
		case <-deadline:
			t.Fatalf("no reload seen; stdout:\n%s\nstderr:\n%s", out.String(), errOut.String())
		case <-time.After(200 * time.Millisecond):
			if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	if !strings.Contains(out.String(), "Walk dog") {
		t.Errorf("initial result missing from output:\n%s", out.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

package logsink

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestOpenTruncatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("stale contents\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sink, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sink.Log("master", "hello")
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(b)
	if strings.Contains(content, "stale contents") {
		t.Fatal("expected Open to truncate the previous file contents")
	}
	if !strings.Contains(content, "master hello") {
		t.Fatalf("expected line to contain agent id and message, got %q", content)
	}
}

func TestLogToleratesConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	sink, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sink.Log("worker_1", "line")
		}(i)
	}
	wg.Wait()
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 intact lines, got %d: %q", len(lines), b)
	}
	for _, l := range lines {
		if !strings.Contains(l, "worker_1 line") {
			t.Errorf("corrupted line: %q", l)
		}
	}
}

func TestNoopSinkDiscards(t *testing.T) {
	sink := Noop()
	sink.Log("master", "this goes nowhere")
	if err := sink.Close(); err != nil {
		t.Fatalf("Close on noop sink: %v", err)
	}
}

// Package harness shards a directory of files across a worker pool,
// trains a vocabulary dictionary per chunk, and merges the per-chunk
// dictionaries into one.
package harness

import (
	"runtime"

	"github.com/seiflotfy/bpevocab"
)

const defaultFileChunkSize int64 = 8 * 1024 * 1024 // 8 MiB

// DirOption describes the directory to scan and how to chunk it.
type DirOption struct {
	Path          string
	Ext           string
	FileChunkSize int64
	FileSeparator *byte
}

// Config holds the tunables for a directory-wide training run.
type Config struct {
	Training            bpevocab.Config
	Dir                 DirOption
	ParallelWorkerCount *int
	WriteLogAt          string
	DumpResultAt        string
}

// Option configures a Config in place.
type Option func(*Config)

// NewConfig builds a Config with the documented defaults, then applies
// opts left to right.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Training: bpevocab.NewConfig(),
		Dir:      DirOption{FileChunkSize: defaultFileChunkSize},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTraining sets the single-buffer training configuration applied to
// every chunk.
func WithTraining(t bpevocab.Config) Option {
	return func(c *Config) { c.Training = t }
}

// WithDir sets the directory to scan (non-recursively) and the required
// file extension.
func WithDir(path, ext string) Option {
	return func(c *Config) {
		c.Dir.Path = path
		c.Dir.Ext = ext
	}
}

// WithFileChunkSize sets the target number of bytes per chunk.
func WithFileChunkSize(size int64) Option {
	return func(c *Config) { c.Dir.FileChunkSize = size }
}

// WithFileSeparator sets the byte inserted between concatenated files
// within a chunk.
func WithFileSeparator(sep byte) Option {
	return func(c *Config) { c.Dir.FileSeparator = &sep }
}

// WithParallelWorkerCount sets an explicit worker count. Unset means host
// parallelism (minimum 1).
func WithParallelWorkerCount(n int) Option {
	return func(c *Config) { c.ParallelWorkerCount = &n }
}

// WithWriteLogAt sets the path the shared log sink truncates and appends
// to. Unset disables logging.
func WithWriteLogAt(path string) Option {
	return func(c *Config) { c.WriteLogAt = path }
}

// WithDumpResultAt sets the path the coordinator periodically dumps the
// in-progress global dictionary to. Unset disables dumping.
func WithDumpResultAt(path string) Option {
	return func(c *Config) { c.DumpResultAt = path }
}

// resolveWorkerCount applies the "unset means host parallelism, min 1"
// rule.
func resolveWorkerCount(n *int) int {
	if n != nil {
		if *n < 1 {
			return 1
		}
		return *n
	}
	if p := runtime.GOMAXPROCS(0); p > 0 {
		return p
	}
	return 1
}

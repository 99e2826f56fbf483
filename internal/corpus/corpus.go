// Package corpus implements the filesystem collaborators the training
// harness depends on: non-recursive directory listing, extension
// filtering, whole-file reads, and separator-joined concatenation of
// several files into one buffer.
package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// FileInfo is a file discovered by ReadDir, together with its size.
type FileInfo struct {
	Path string
	Size int64
}

// SizeCache memoizes FileSize lookups behind a bounded LRU so a repeated
// query against the same path returns the cached size without re-statting
// the filesystem.
type SizeCache struct {
	cache *lru.Cache[string, int64]
}

// NewSizeCache returns a SizeCache holding at most capacity entries.
func NewSizeCache(capacity int) *SizeCache {
	cache, _ := lru.New[string, int64](capacity)
	return &SizeCache{cache: cache}
}

// FileSize returns the size in bytes of the file at path, consulting and
// populating the cache.
func (c *SizeCache) FileSize(path string) (int64, error) {
	if size, ok := c.cache.Get(path); ok {
		return size, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", path)
	}
	c.cache.Add(path, info.Size())
	return info.Size(), nil
}

// Extension returns path's extension without the leading dot. A path with
// no extension returns an empty string.
func Extension(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimPrefix(ext, ".")
}

// ReadDir lists the non-directory entries directly inside dir (no
// recursion into subdirectories).
func ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read dir %s", dir)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// ReadBytes reads a whole file into memory.
func ReadBytes(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read file %s", path)
	}
	return b, nil
}

// MergeFiles concatenates the contents of paths in order, inserting
// separator between adjacent files when it is set.
func MergeFiles(paths []string, separator *byte) ([]byte, error) {
	var out []byte
	for i, p := range paths {
		if i > 0 && separator != nil {
			out = append(out, *separator)
		}
		b, err := ReadBytes(p)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// PrettySize renders a byte count in human-readable form, e.g. "8.0 MiB".
func PrettySize(bytes uint64) string {
	return humanize.IBytes(bytes)
}

package harness

import (
	"sort"

	"github.com/seiflotfy/bpevocab/internal/corpus"
)

// Chunk is one unit of work handed to a single worker: the set of files it
// should merge and train on together.
type Chunk struct {
	Files []corpus.FileInfo
}

// discoverFiles lists dir non-recursively, keeps only files with the
// configured extension, and resolves each one's size through sizer.
func discoverFiles(dir DirOption, sizer *corpus.SizeCache) ([]corpus.FileInfo, error) {
	paths, err := corpus.ReadDir(dir.Path)
	if err != nil {
		return nil, err
	}

	files := make([]corpus.FileInfo, 0, len(paths))
	for _, p := range paths {
		if dir.Ext != "" && corpus.Extension(p) != dir.Ext {
			continue
		}
		size, err := sizer.FileSize(p)
		if err != nil {
			return nil, err
		}
		files = append(files, corpus.FileInfo{Path: p, Size: size})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Size != files[j].Size {
			return files[i].Size < files[j].Size
		}
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// PlanChunks walks files (assumed size-sorted) and greedily accumulates
// each chunk until its running total reaches or exceeds chunkSize; the
// file that crosses the limit is included in the chunk it closes. Every
// chunk holds at least one file, so an oversized single file still gets
// its own chunk rather than stalling the planner.
func PlanChunks(files []corpus.FileInfo, chunkSize int64) []Chunk {
	var chunks []Chunk
	i := 0
	for i < len(files) {
		var chunk Chunk
		var size int64
		for {
			chunk.Files = append(chunk.Files, files[i])
			size += files[i].Size
			i++
			if i >= len(files) || size >= chunkSize {
				break
			}
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}

package harness

import (
	"fmt"
	"time"

	"github.com/seiflotfy/bpevocab"
	"github.com/seiflotfy/bpevocab/internal/corpus"
	"github.com/seiflotfy/bpevocab/internal/logsink"
)

const coordinatorPollInterval = 2 * time.Second

// TrainDir scans cfg.Dir, plans chunks, and trains a dictionary over all
// of them. With more than one chunk and a worker count above one it fans
// the chunks out across a pool of workers and merges their results;
// otherwise it falls back to TrainDirSequential.
func TrainDir(cfg Config) (bpevocab.Dictionary, error) {
	sizer := corpus.NewSizeCache(4096)
	files, err := discoverFiles(cfg.Dir, sizer)
	if err != nil {
		return bpevocab.Dictionary{}, err
	}
	chunks := PlanChunks(files, cfg.Dir.FileChunkSize)

	sink, closeSink, err := openSink(cfg)
	if err != nil {
		return bpevocab.Dictionary{}, err
	}
	defer closeSink()

	workerCount := resolveWorkerCount(cfg.ParallelWorkerCount)
	if workerCount <= 1 || len(chunks) <= 1 {
		return trainChunksSequentially(chunks, cfg, sink)
	}
	return trainChunksInParallel(chunks, cfg, sink, workerCount)
}

// TrainDirSequential scans cfg.Dir and trains a dictionary over its
// chunks on the calling goroutine, without spawning any workers. It
// supplements TrainDir as the single-threaded fallback for small corpora
// or a ParallelWorkerCount of 1.
func TrainDirSequential(cfg Config) (bpevocab.Dictionary, error) {
	sizer := corpus.NewSizeCache(4096)
	files, err := discoverFiles(cfg.Dir, sizer)
	if err != nil {
		return bpevocab.Dictionary{}, err
	}
	chunks := PlanChunks(files, cfg.Dir.FileChunkSize)

	sink, closeSink, err := openSink(cfg)
	if err != nil {
		return bpevocab.Dictionary{}, err
	}
	defer closeSink()

	return trainChunksSequentially(chunks, cfg, sink)
}

func openSink(cfg Config) (*logsink.Sink, func(), error) {
	if cfg.WriteLogAt == "" {
		return logsink.Noop(), func() {}, nil
	}
	sink, err := logsink.Open(cfg.WriteLogAt)
	if err != nil {
		return nil, nil, err
	}
	return sink, func() { _ = sink.Close() }, nil
}

func trainChunksSequentially(chunks []Chunk, cfg Config, sink *logsink.Sink) (bpevocab.Dictionary, error) {
	global := bpevocab.NewDictionary()
	for _, chunk := range chunks {
		paths := make([]string, len(chunk.Files))
		for i, f := range chunk.Files {
			paths[i] = f.Path
		}
		data, err := corpus.MergeFiles(paths, cfg.Dir.FileSeparator)
		if err != nil {
			return bpevocab.Dictionary{}, err
		}
		sink.Log("master", fmt.Sprintf("registered %d files (%s)", len(chunk.Files), corpus.PrettySize(uint64(len(data)))))
		global.Merge(bpevocab.Train(data, cfg.Training))
	}
	if cfg.DumpResultAt != "" {
		if err := dumpDictionary(cfg.DumpResultAt, global); err != nil {
			return bpevocab.Dictionary{}, err
		}
	}
	return global, nil
}

// worker is the coordinator's view of one running worker: its channels
// and whether its done reply has arrived.
type worker struct {
	req   chan []corpus.FileInfo
	reply chan workerReply
	done  bool
}

func trainChunksInParallel(chunks []Chunk, cfg Config, sink *logsink.Sink, workerCount int) (bpevocab.Dictionary, error) {
	workers := make([]worker, workerCount)
	for i := range workers {
		workers[i] = worker{
			req:   make(chan []corpus.FileInfo, len(chunks)),
			reply: make(chan workerReply, len(chunks)+1),
		}
		spawnWorker(workerID(i), workers[i].req, workers[i].reply, cfg, sink)
	}

	for i, chunk := range chunks {
		w := &workers[i%workerCount]
		w.req <- chunk.Files
	}
	sink.Log("master", fmt.Sprintf("dispatched %d chunks across %d workers", len(chunks), workerCount))

	global := bpevocab.NewDictionary()
	remaining := workerCount
	for remaining > 0 {
		dirty := false
		for i := range workers {
			w := &workers[i]
			if w.done {
				continue
			}
		drain:
			for {
				select {
				case r := <-w.reply:
					if r.done {
						w.done = true
						remaining--
						break drain
					}
					global.Merge(r.dict)
					dirty = true
				default:
					break drain
				}
			}
		}

		if dirty && cfg.DumpResultAt != "" {
			if err := dumpDictionary(cfg.DumpResultAt, global); err != nil {
				sink.Log("master", fmt.Sprintf("periodic dump failed: %v", err))
			}
		}

		if remaining > 0 {
			time.Sleep(coordinatorPollInterval)
		}
	}

	if cfg.DumpResultAt != "" {
		if err := dumpDictionary(cfg.DumpResultAt, global); err != nil {
			return bpevocab.Dictionary{}, err
		}
	}
	return global, nil
}

// spawnWorker launches runWorker in its own goroutine, guarding against a
// panic ever stalling the coordinator: a recovered panic is logged and
// still produces the done reply the coordinator is waiting for.
func spawnWorker(id string, req chan []corpus.FileInfo, reply chan workerReply, cfg Config, sink *logsink.Sink) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				sink.Log(id, fmt.Sprintf("recovered from panic: %v", r))
				reply <- workerReply{done: true}
			}
		}()
		runWorker(id, req, reply, cfg, sink)
	}()
}

package harness

import (
	"fmt"
	"time"

	"github.com/seiflotfy/bpevocab"
	"github.com/seiflotfy/bpevocab/internal/corpus"
	"github.com/seiflotfy/bpevocab/internal/logsink"
)

const (
	workerPollInterval   = time.Second
	idleRoundsBeforeExit = 5
)

// workerReply is what a worker sends back to the coordinator: either a
// chunk's trained dictionary, or (once, as the last message) a done
// signal.
type workerReply struct {
	dict bpevocab.Dictionary
	done bool
}

func workerID(i int) string {
	return fmt.Sprintf("worker_%d", i+1)
}

// runWorker pulls chunks off req, trains a dictionary per chunk, and
// replies on reply. It self-terminates once more than idleRoundsBeforeExit
// consecutive one-second rounds pass without any work arriving or being
// processed, sending a final done reply before returning.
func runWorker(id string, req <-chan []corpus.FileInfo, reply chan<- workerReply, cfg Config, sink *logsink.Sink) {
	sink.Log(id, "Hello from worker!")

	var queue [][]corpus.FileInfo
	idle := 0
	for {
		idle++

	drain:
		for {
			select {
			case files := <-req:
				queue = append(queue, files)
				idle = 0
			default:
				break drain
			}
		}

		for len(queue) > 0 {
			files := queue[len(queue)-1]
			queue = queue[:len(queue)-1]

			paths := make([]string, len(files))
			for i, f := range files {
				paths[i] = f.Path
			}
			data, err := corpus.MergeFiles(paths, cfg.Dir.FileSeparator)
			if err != nil {
				sink.Log(id, fmt.Sprintf("failed to merge %d files: %v", len(files), err))
				idle = 0
				continue
			}
			sink.Log(id, fmt.Sprintf("registered %d files (%s)", len(files), corpus.PrettySize(uint64(len(data)))))

			dict := bpevocab.Train(data, cfg.Training)
			sink.Log(id, fmt.Sprintf("trained dictionary with %d words", dict.Len()))

			reply <- workerReply{dict: dict}
			idle = 0
		}

		time.Sleep(workerPollInterval)

		if idle > idleRoundsBeforeExit {
			reply <- workerReply{done: true}
			sink.Log(id, "Goodbye from worker!")
			return
		}
	}
}

// Command bpevocab trains a byte-pair-encoding vocabulary dictionary
// from a directory of files.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/seiflotfy/bpevocab"
	"github.com/seiflotfy/bpevocab/internal/harness"
)

type flags struct {
	ext                    string
	dictionarySize         int
	keepSingleByteTokens   bool
	minimumAppearance      int
	unsetMinimumAppearance bool
	fileChunkSize          int64
	fileSeparator          string
	parallelWorkerCount    int
	writeLogAt             string
	dumpResultAt           string
	sequential             bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := flags{
		ext:            "txt",
		dictionarySize: bpevocab.DefaultDictionarySize,
		fileChunkSize:  8 * 1024 * 1024,
	}
	var haveMinimumAppearance bool

	cmd := &cobra.Command{
		Use:   "bpevocab <dir>",
		Short: "Train a byte-pair-encoding vocabulary dictionary from a directory of files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], f, haveMinimumAppearance)
		},
	}

	flagSet := cmd.Flags()
	flagSet.StringVar(&f.ext, "ext", f.ext, "file extension to include (without the leading dot)")
	flagSet.IntVar(&f.dictionarySize, "dictionary-size", f.dictionarySize, "maximum number of distinct symbols retained after pruning")
	flagSet.BoolVar(&f.keepSingleByteTokens, "keep-single-byte-tokens", true, "keep every single-byte symbol in the final dictionary, even at count 0")
	flagSet.IntVar(&f.minimumAppearance, "minimum-appearance", 0, "minimum pair frequency required to merge (default 3, or 2 with --unset-minimum-appearance)")
	flagSet.BoolVar(&f.unsetMinimumAppearance, "unset-minimum-appearance", false, "use the fallback minimum-appearance threshold instead of the default")
	flagSet.Int64Var(&f.fileChunkSize, "file-chunk-size", f.fileChunkSize, "target number of bytes per worker chunk")
	flagSet.StringVar(&f.fileSeparator, "file-separator", "", "single byte, as a one-character string, inserted between concatenated files")
	flagSet.IntVar(&f.parallelWorkerCount, "parallel-worker-count", 0, "number of parallel workers (default: host parallelism)")
	flagSet.StringVar(&f.writeLogAt, "write-log-at", "", "path to write the shared worker/coordinator log to")
	flagSet.StringVar(&f.dumpResultAt, "dump-result-at", "", "path to periodically dump the in-progress dictionary to")
	flagSet.BoolVar(&f.sequential, "sequential", false, "train on a single goroutine instead of a worker pool")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		haveMinimumAppearance = cmd.Flags().Changed("minimum-appearance")
		return nil
	}

	return cmd
}

func run(dir string, f flags, haveMinimumAppearance bool) error {
	trainingOpts := []bpevocab.Option{
		bpevocab.WithDictionarySize(f.dictionarySize),
		bpevocab.WithKeepSingleByteTokens(f.keepSingleByteTokens),
	}
	switch {
	case f.unsetMinimumAppearance:
		trainingOpts = append(trainingOpts, bpevocab.WithUnsetMinimumAppearance())
	case haveMinimumAppearance:
		trainingOpts = append(trainingOpts, bpevocab.WithMinimumAppearance(f.minimumAppearance))
	}

	harnessOpts := []harness.Option{
		harness.WithDir(dir, f.ext),
		harness.WithTraining(bpevocab.NewConfig(trainingOpts...)),
		harness.WithFileChunkSize(f.fileChunkSize),
	}
	if f.fileSeparator != "" {
		harnessOpts = append(harnessOpts, harness.WithFileSeparator(f.fileSeparator[0]))
	}
	if f.parallelWorkerCount > 0 {
		harnessOpts = append(harnessOpts, harness.WithParallelWorkerCount(f.parallelWorkerCount))
	}
	if f.writeLogAt != "" {
		harnessOpts = append(harnessOpts, harness.WithWriteLogAt(f.writeLogAt))
	}
	if f.dumpResultAt != "" {
		harnessOpts = append(harnessOpts, harness.WithDumpResultAt(f.dumpResultAt))
	}

	cfg := harness.NewConfig(harnessOpts...)

	train := harness.TrainDir
	if f.sequential {
		train = harness.TrainDirSequential
	}

	dict, err := train(cfg)
	if err != nil {
		return errors.Wrap(err, "train vocabulary")
	}

	fmt.Printf("trained %s distinct words from %s\n", humanize.Comma(int64(dict.Len())), dir)
	return nil
}

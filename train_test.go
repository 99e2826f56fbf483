package bpevocab

import (
	"math/rand"
	"testing"
)

func dictionaryTotalBytes(d Dictionary) int {
	total := 0
	d.Iter(func(word []byte, count int) bool {
		total += len(word) * count
		return true
	})
	return total
}

func TestTrainConservation(t *testing.T) {
	inputs := [][]byte{
		[]byte("the quick brown fox jumps over the lazy dog"),
		[]byte(""),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		randomBytes(4096, 1),
	}

	for _, in := range inputs {
		dict := Train(in, NewConfig(WithDictionarySize(256)))
		if got := dictionaryTotalBytes(dict); got != len(in) {
			t.Errorf("conservation violated for input of length %d: got %d", len(in), got)
		}
	}
}

func TestTrainSizeBound(t *testing.T) {
	data := randomBytes(1<<16, 2)
	dict := Train(data, NewConfig(WithDictionarySize(1024)))
	if dict.Len() > 1024 {
		t.Fatalf("dictionary has %d words, exceeds bound of 1024", dict.Len())
	}
}

func TestTrainShortBufferScenarioS6(t *testing.T) {
	in := []byte("short")
	dict := Train(in, NewConfig())
	if got := dictionaryTotalBytes(dict); got != len(in) {
		t.Fatalf("conservation violated: got %d want %d", got, len(in))
	}
}

func TestTrainSeparatorPurity(t *testing.T) {
	sep := byte(' ')
	data := []byte("the cat sat on the mat the cat sat on the mat")
	dict := Train(data, NewConfig(WithUltimateSeparator(sep), WithDictionarySize(64)))

	dict.Iter(func(word []byte, count int) bool {
		for _, b := range word {
			if b == sep && len(word) > 1 {
				t.Errorf("compound word %q contains separator byte", word)
			}
		}
		return true
	})
}

func TestMergeInvariance(t *testing.T) {
	data := randomBytes(8192, 3)
	mid := len(data) / 2
	cfg := NewConfig(WithDictionarySize(512))

	whole := Train(data, cfg)
	chunkA := Train(data[:mid], cfg)
	chunkB := Train(data[mid:], cfg)
	chunkA.Merge(chunkB)

	if got, want := dictionaryTotalBytes(whole), len(data); got != want {
		t.Fatalf("whole-buffer conservation: got %d want %d", got, want)
	}
	if got, want := dictionaryTotalBytes(chunkA), len(data); got != want {
		t.Fatalf("merged-chunk conservation: got %d want %d", got, want)
	}
}

func TestMergeIdempotentOnEmpty(t *testing.T) {
	dict := Train([]byte("hello hello hello"), NewConfig())
	empty := NewDictionary()

	merged := dict
	merged.Merge(empty)
	if merged.Len() != dict.Len() {
		t.Error("merging empty dictionary changed word count")
	}

	mergedEmpty := NewDictionary()
	mergedEmpty.Merge(dict)
	if mergedEmpty.Len() != dict.Len() {
		t.Error("empty.Merge(d) did not reproduce d's word count")
	}
}

func randomBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

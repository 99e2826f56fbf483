package bpevocab

import "testing"

func TestCountPairsOverlapping(t *testing.T) {
	seq := BytesToSymbols([]byte("aaaa"))
	counts := CountPairs(seq)
	pair := Pack('a', 'a')
	if counts[pair] != 3 {
		t.Fatalf("expected 3 overlapping (a,a) pairs, got %d", counts[pair])
	}
}

func TestCountPairsDistinct(t *testing.T) {
	seq := BytesToSymbols([]byte("abab"))
	counts := CountPairs(seq)
	if counts[Pack('a', 'b')] != 2 {
		t.Errorf("expected 2 (a,b) pairs, got %d", counts[Pack('a', 'b')])
	}
	if counts[Pack('b', 'a')] != 1 {
		t.Errorf("expected 1 (b,a) pair, got %d", counts[Pack('b', 'a')])
	}
}

func TestCountPairsEmptyAndSingleton(t *testing.T) {
	if len(CountPairs(nil)) != 0 {
		t.Error("expected no pairs for empty sequence")
	}
	if len(CountPairs([]Symbol{1})) != 0 {
		t.Error("expected no pairs for a single-symbol sequence")
	}
}

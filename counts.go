package bpevocab

// CountPairs enumerates every overlapping adjacent window of length 2 in
// seq and returns how many times each Pair occurs. Overlapping counts are
// intentional: a run like "aaaa" counts (a,a) three times, matching the
// behavior the downstream rewriter relies on.
func CountPairs(seq []Symbol) map[Pair]int {
	counts := make(map[Pair]int, 1024)
	for i := 0; i+1 < len(seq); i++ {
		counts[Pack(seq[i], seq[i+1])]++
	}
	return counts
}

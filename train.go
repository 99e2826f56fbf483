package bpevocab

// Train runs the greedy single-buffer BPE loop over data and returns the
// resulting Dictionary. It is pure and infallible: given well-formed
// input it always terminates, since the sequence shrinks (or the loop
// stops) on every iteration.
func Train(data []byte, cfg Config) Dictionary {
	table := NewDefaultSymbolTable()
	seq := BytesToSymbols(data)
	minAppearance := cfg.resolvedMinimumAppearance()

	for {
		pair, count, found := selectBestPair(seq, cfg.UltimateSeparator)
		if !found || count < minAppearance {
			table.Prune(seq, cfg.KeepSingleByteTokens)
			break
		}

		newID := table.Assign(pair, nil)
		seq = Rewrite(seq, pair, newID)

		if len(seq) <= minimumSequenceLength {
			table.Prune(seq, cfg.KeepSingleByteTokens)
			break
		}

		if table.Len() >= cfg.DictionarySize {
			table.Prune(seq, cfg.KeepSingleByteTokens)
			if table.Len() >= cfg.DictionarySize {
				break
			}
		}
	}

	return DictionaryFrom(seq, table, cfg.KeepSingleByteTokens)
}

// selectBestPair picks the highest-count pair in seq, skipping any pair
// whose left or right symbol equals sep (when sep is set). Ties are
// broken by numerically smallest packed Pair value, which keeps selection
// deterministic regardless of map iteration order.
func selectBestPair(seq []Symbol, sep *byte) (best Pair, bestCount int, found bool) {
	counts := CountPairs(seq)

	var sepSymbol Symbol
	hasSep := sep != nil
	if hasSep {
		sepSymbol = Symbol(*sep)
	}

	for pair, count := range counts {
		if hasSep {
			l, r := Unpack(pair)
			if l == sepSymbol || r == sepSymbol {
				continue
			}
		}
		if !found || count > bestCount || (count == bestCount && pair < best) {
			best = pair
			bestCount = count
			found = true
		}
	}
	return best, bestCount, found
}

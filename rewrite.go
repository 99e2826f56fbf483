package bpevocab

// Rewrite replaces every non-overlapping left-to-right occurrence of pair
// in seq with newID. It scans left to right holding a pending left symbol:
// once the next symbol completes the pair, it emits newID; a run of lefts
// keeps the flag set on the newest left; anything else flushes the pending
// left verbatim. A trailing pending left is emitted at the end of input.
func Rewrite(seq []Symbol, pair Pair, newID Symbol) []Symbol {
	left, right := Unpack(pair)
	out := make([]Symbol, 0, len(seq))
	pendingLeft := false

	for _, c := range seq {
		if !pendingLeft {
			if c == left {
				pendingLeft = true
				continue
			}
			out = append(out, c)
			continue
		}

		switch {
		case c == right:
			out = append(out, newID)
			pendingLeft = false
		case c == left:
			out = append(out, left)
			// pendingLeft stays set: the new left is now the pending one.
		default:
			out = append(out, left, c)
			pendingLeft = false
		}
	}

	if pendingLeft {
		out = append(out, left)
	}
	return out
}

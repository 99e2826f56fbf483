package bpevocab

import (
	"fmt"
	"sort"
	"strings"
)

// Dictionary is a multiset of byte-string words with their occurrence
// counts, produced by flattening a trained symbol sequence.
type Dictionary struct {
	counts map[string]int
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() Dictionary {
	return Dictionary{counts: make(map[string]int)}
}

// DictionaryFrom flattens a terminal symbol sequence through table into a
// Dictionary: every symbol's expansion has its count incremented once per
// occurrence in seq. When keepSingletons is set, every single-byte id
// still present in table but absent from seq is inserted at count 0.
func DictionaryFrom(seq []Symbol, table *SymbolTable, keepSingletons bool) Dictionary {
	d := Dictionary{counts: make(map[string]int, len(seq))}

	for _, s := range seq {
		b, ok := table.Expand(s)
		if !ok {
			continue
		}
		d.counts[string(b)]++
	}

	if keepSingletons {
		for b := 0; b < 256; b++ {
			exp, ok := table.Expand(Symbol(b))
			if !ok {
				continue
			}
			key := string(exp)
			if _, present := d.counts[key]; !present {
				d.counts[key] = 0
			}
		}
	}

	return d
}

// Merge folds other's counts into d, adding counts for shared words and
// creating new entries for words d doesn't yet have. Merge is associative
// and commutative.
func (d *Dictionary) Merge(other Dictionary) {
	if d.counts == nil {
		d.counts = make(map[string]int, len(other.counts))
	}
	for word, count := range other.counts {
		d.counts[word] += count
	}
}

// Iter calls yield for every (word, count) pair, stopping early if yield
// returns false.
func (d Dictionary) Iter(yield func(word []byte, count int) bool) {
	for word, count := range d.counts {
		if !yield([]byte(word), count) {
			return
		}
	}
}

// Get looks up the occurrence count for word.
func (d Dictionary) Get(word []byte) (int, bool) {
	count, ok := d.counts[string(word)]
	return count, ok
}

// Len returns the number of distinct words in the dictionary.
func (d Dictionary) Len() int {
	return len(d.counts)
}

// String renders the dictionary for debugging: words sorted by descending
// count, zero-count entries dropped, each word shown as a lossy UTF-8
// string paired with its count.
func (d Dictionary) String() string {
	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(d.counts))
	for word, count := range d.counts {
		if count == 0 {
			continue
		}
		entries = append(entries, entry{word: word, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	var b strings.Builder
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%q, %d)", strings.ToValidUTF8(e.word, "�"), e.count)
	}
	b.WriteByte(']')
	return b.String()
}

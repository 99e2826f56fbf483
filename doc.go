// Package bpevocab trains a byte-pair-encoding vocabulary from raw bytes.
//
// # Overview
//
// Given a byte buffer, [Train] repeatedly finds the most frequent adjacent
// pair of symbols, assigns it a fresh compound symbol id, and rewrites the
// buffer with every non-overlapping occurrence of that pair replaced. The
// process stops once a vocabulary-size ceiling or a minimum-pair-frequency
// floor is reached, and the final symbol sequence is flattened into a
// [Dictionary]: a multiset of byte-string words with their occurrence
// counts.
//
// # When to Use
//
// This package is the single-buffer training core. For a directory of
// files trained in parallel across a worker pool, see the sibling
// internal/harness package (exposed through cmd/bpevocab).
//
// # Basic Usage
//
//	cfg := bpevocab.NewConfig(bpevocab.WithDictionarySize(4096))
//	dict := bpevocab.Train(data, cfg)
//	fmt.Println(dict.Len(), "words")
//
// # Non-goals
//
// Tokenizing arbitrary input against a trained [Dictionary] is left
// unimplemented, as in the source this package was distilled from.
package bpevocab

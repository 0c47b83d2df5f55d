// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package suffixarray builds a suffix array over a text using the
// Manber-Myers doubling construction and answers substring queries
// against it.
package suffixarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Symbol is the alphabet a text is drawn from: any type with a natural
// ordinal order. Ordering is codepoint-ordinal over the chosen symbol
// type — implementations operating on raw bytes should instantiate with
// byte (unsigned) rather than int8, so ordering matches the specification.
type Symbol interface {
	constraints.Ordered
}

// Config controls the optional, non-construction behavior of the query
// surfaces. The zero value gives a context width of 0; DefaultConfig
// returns the default settings.
type Config struct {
	// ContextWidth is the number of symbols of context the
	// keyword-in-context scanner includes on either side of a match.
	ContextWidth int
}

// DefaultConfig returns the configuration original_source's
// KeywordInContext.java uses (a context width of 15).
func DefaultConfig() Config {
	return Config{ContextWidth: 15}
}

// SuffixArray holds a text and the suffix array, its inverse permutation,
// built for it by the Manber-Myers doubling construction.
type SuffixArray[S Symbol] struct {
	text []S
	sa   []int32 // SA: suffix-at-rank, the public result
	rank []int32 // RANK: rank-of-suffix, valid as the inverse only post-construction
	bh   *bitmap // BH: final bucket-start bitmap, all true once construction completes
	cfg  Config
}

// Build constructs the suffix array for text using the Manber-Myers
// doubling algorithm. Construction is deterministic and infallible: there
// are no error conditions on this path (spec.md §7).
func Build[S Symbol](text []S, cfg Config) *SuffixArray[S] {
	n := int32(len(text))
	if n == 0 {
		return &SuffixArray[S]{text: text, sa: []int32{}, rank: []int32{}, bh: newBitmap(0), cfg: cfg}
	}

	b := newBuilder(text)
	b.firstStage()
	b.refine()

	return &SuffixArray[S]{text: text, sa: b.sa, rank: b.rank, bh: b.bh, cfg: cfg}
}

// New constructs a suffix array with the default configuration.
func New[S Symbol](text []S) *SuffixArray[S] {
	return Build(text, DefaultConfig())
}

// NewFromString constructs a suffix array over the runes of s.
func NewFromString(s string) *SuffixArray[rune] {
	return New([]rune(s))
}

// NewFromBytes constructs a suffix array over the bytes of text, treated
// as unsigned per spec.md §9's design note on byte sequences.
func NewFromBytes(text []byte) *SuffixArray[byte] {
	return New(text)
}

// Len returns N, the length of the indexed text.
func (a *SuffixArray[S]) Len() int {
	return len(a.sa)
}

// Config returns the configuration this suffix array was built with.
func (a *SuffixArray[S]) Config() Config {
	return a.cfg
}

// SuffixAtRank returns SA[r], the starting position in the text of the
// suffix currently holding rank r.
func (a *SuffixArray[S]) SuffixAtRank(r int) (int, error) {
	if r < 0 || r >= len(a.sa) {
		return 0, fmt.Errorf("suffix at rank %d: %w", r, ErrOutOfRange)
	}
	return int(a.sa[r]), nil
}

// RankOfSuffix returns RANK[i], the final rank of the suffix starting at
// position i.
func (a *SuffixArray[S]) RankOfSuffix(i int) (int, error) {
	if i < 0 || i >= len(a.rank) {
		return 0, fmt.Errorf("rank of suffix %d: %w", i, ErrOutOfRange)
	}
	return int(a.rank[i]), nil
}

// BoundaryComplete reports whether BH is all-true, i.e. every bucket is a
// singleton and SA is total. Always true after Build returns; exposed for
// property tests (spec.md §8 property 4).
func (a *SuffixArray[S]) BoundaryComplete() bool {
	return a.bh.AllSet()
}

// comparePrefix compares a suffix against a pattern lexicographically,
// treating the pattern as a fixed-length prefix to match against.
func comparePrefix[S Symbol](suf, pattern []S) int {
	minLen := len(suf)
	if minLen > len(pattern) {
		minLen = len(pattern)
	}
	for i := 0; i < minLen; i++ {
		if suf[i] < pattern[i] {
			return -1
		}
		if suf[i] > pattern[i] {
			return 1
		}
	}
	switch {
	case len(suf) < len(pattern):
		return -1
	case len(suf) > len(pattern):
		return 1
	default:
		return 0
	}
}

// LowerBound returns the smallest rank r such that the suffix at SA[r] is
// lexicographically >= pattern when compared over pattern's length. If no
// such rank exists it returns N.
func (a *SuffixArray[S]) LowerBound(pattern []S) int {
	n := len(a.sa)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		suf := a.suffixSlice(int(a.sa[mid]), len(pattern))
		if comparePrefix(suf, pattern) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// suffixSlice returns up to maxLen symbols of the suffix starting at pos.
func (a *SuffixArray[S]) suffixSlice(pos, maxLen int) []S {
	end := pos + maxLen
	if end > len(a.text) {
		end = len(a.text)
	}
	return a.text[pos:end]
}

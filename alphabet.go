// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import "golang.org/x/exp/slices"

// symbolCount pairs a distinct symbol with its number of occurrences.
type symbolCount[S Symbol] struct {
	value S
	count int32
}

// alphabet is the ascending-order frequency profile of a text, as required
// by the first-stage bucket sorter: bucket base offsets depend on a fixed
// ascending traversal of the distinct symbols.
type alphabet[S Symbol] struct {
	symbols []symbolCount[S]
}

// profile performs a single pass over text, producing the set of distinct
// symbols with their occurrence counts, ordered ascending by symbol value.
func profile[S Symbol](text []S) *alphabet[S] {
	counts := make(map[S]int32, len(text))
	for _, c := range text {
		counts[c]++
	}

	symbols := make([]symbolCount[S], 0, len(counts))
	for v, n := range counts {
		symbols = append(symbols, symbolCount[S]{value: v, count: n})
	}
	slices.SortFunc(symbols, func(a, b symbolCount[S]) int {
		switch {
		case a.value < b.value:
			return -1
		case a.value > b.value:
			return 1
		default:
			return 0
		}
	})

	return &alphabet[S]{symbols: symbols}
}

// baseOffsets assigns each symbol a base offset equal to the cumulative
// count of strictly smaller symbols. The bucket for symbol c spans
// [base(c), base(c)+freq(c)).
func (a *alphabet[S]) baseOffsets() map[S]int32 {
	base := make(map[S]int32, len(a.symbols))
	var offset int32
	for _, sc := range a.symbols {
		base[sc.value] = offset
		offset += sc.count
	}
	return base
}

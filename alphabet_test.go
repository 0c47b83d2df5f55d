// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileAscendingOrder(t *testing.T) {
	tests := map[string]struct {
		text []byte
		want []symbolCount[byte]
	}{
		"banana": {
			text: []byte("banana"),
			want: []symbolCount[byte]{
				{value: 'a', count: 3},
				{value: 'b', count: 1},
				{value: 'n', count: 2},
			},
		},
		"single symbol": {
			text: []byte("aaaa"),
			want: []symbolCount[byte]{{value: 'a', count: 4}},
		},
		"all distinct": {
			text: []byte{3, 1, 2},
			want: []symbolCount[byte]{{value: 1, count: 1}, {value: 2, count: 1}, {value: 3, count: 1}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := profile(tc.text)
			assert.Equal(t, tc.want, got.symbols)
		})
	}
}

func TestBaseOffsets(t *testing.T) {
	a := profile([]byte("banana"))
	base := a.baseOffsets()
	assert.Equal(t, int32(0), base['a']) // 3 a's start at 0
	assert.Equal(t, int32(3), base['b']) // 1 b starts at 3
	assert.Equal(t, int32(4), base['n']) // 2 n's start at 4
}

func TestProfileTotalCountEqualsN(t *testing.T) {
	text := []byte("mississippi")
	a := profile(text)
	var total int32
	for _, sc := range a.symbols {
		total += sc.count
	}
	assert.Equal(t, int32(len(text)), total)
}

// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

// builder holds the working state of one suffix-array construction: the
// four parallel arrays SA/RANK/COUNT/NEXT and the two bucket-start
// bitmaps BH/B2H described in spec.md §3. It is discarded once Build
// returns, so B2H, COUNT and NEXT — meaningful only within a single
// doubling stage — never outlive the call that produced them.
type builder[S Symbol] struct {
	text []S

	sa   []int32 // SA: suffix-at-rank
	rank []int32 // RANK: rank-of-suffix, or bucket left boundary mid-stage
	bh   *bitmap // BH: H-bucket boundaries
	b2h  *bitmap // B2H: 2H-bucket boundaries being discovered this stage

	count []int32 // COUNT: next free slot inside a bucket, indexed by left boundary
	next  []int32 // NEXT: left boundary of the next bucket, indexed by left boundary
}

func newBuilder[S Symbol](text []S) *builder[S] {
	n := int32(len(text))
	return &builder[S]{
		text:  text,
		sa:    make([]int32, n),
		rank:  make([]int32, n),
		bh:    newBitmap(n),
		b2h:   newBitmap(n),
		count: make([]int32, n),
		next:  make([]int32, n),
	}
}

// refine runs the doubling refiner: for H = 1, 2, 4, ... it turns the
// known H-order into 2H-order, until every bucket is a singleton.
func (b *builder[S]) refine() {
	n := int32(len(b.sa))

	for h := int32(1); h < n; h *= 2 {
		b.rebuildIntervals()
		b.seedBucketBoundaries()

		// The suffix with no 2H-tail sorts smallest within its H-bucket.
		b.place(n - h)

		for l := int32(0); l < n; l = b.next[l] {
			r := b.next[l]

			// Pass A: placement, in ascending 2H-tail order within the bucket.
			for k := l; k < r; k++ {
				s := b.sa[k] - h
				if s < 0 {
					continue
				}
				b.place(s)
			}

			// Pass B: prune spurious B2H boundaries, keeping only the
			// leftmost flag within each run newly marked inside one
			// pre-existing H-bucket.
			for k := l; k < r; k++ {
				s := b.sa[k] - h
				if s < 0 {
					continue
				}
				e := b.rank[s]
				if b.b2h.Test(e) {
					limit := b.rightBoundary(e + 1)
					for f := e + 1; f < limit; f++ {
						b.b2h.Clear(f)
					}
				}
			}
		}

		if b.sync() {
			break
		}
	}
}

// place performs the placement step: it advances COUNT[e] and rewrites
// RANK[s] to insert suffix s at the next free slot in its own H-bucket,
// marking that slot as a newly discovered 2H-bucket boundary.
func (b *builder[S]) place(s int32) {
	e := b.rank[s]
	b.rank[s] = e + b.count[e]
	b.count[e]++
	b.b2h.Set(b.rank[s])
}

// rightBoundary returns the smallest j >= from such that BH[j] or !B2H[j],
// or N if no such j exists. Computed once per outer iteration and reused
// across the inner clearing loop — the corrected form of the bound; the
// self-referential `f < rightBucketBoundary(f)` some drafts use is wrong.
func (b *builder[S]) rightBoundary(from int32) int32 {
	n := int32(len(b.sa))
	for j := from; j < n; j++ {
		if b.bh.Test(j) || !b.b2h.Test(j) {
			return j
		}
	}
	return n
}

// rebuildIntervals scans BH left to right, populating NEXT at each bucket
// left boundary with the start of the next bucket (or N).
func (b *builder[S]) rebuildIntervals() {
	n := int32(len(b.sa))
	for i := int32(0); i < n; {
		j := i + 1
		for j < n && !b.bh.Test(j) {
			j++
		}
		b.next[i] = j
		i = j
	}
}

// seedBucketBoundaries seeds RANK with the left boundary of each suffix's
// current H-bucket and clears COUNT for the stage about to run.
func (b *builder[S]) seedBucketBoundaries() {
	n := int32(len(b.sa))
	for l := int32(0); l < n; l = b.next[l] {
		b.count[l] = 0
		r := b.next[l]
		for k := l; k < r; k++ {
			b.rank[b.sa[k]] = l
		}
	}
}

// sync rebuilds SA from RANK and merges B2H into BH, resetting B2H to
// false. It reports whether every rank has become a bucket boundary, in
// which case the ordering is total and the caller may stop early.
func (b *builder[S]) sync() bool {
	n := int32(len(b.sa))

	for i := int32(0); i < n; i++ {
		b.sa[b.rank[i]] = i
	}

	var boundaries int32
	for r := int32(0); r < n; r++ {
		if b.b2h.Test(r) {
			b.bh.Set(r)
			b.b2h.Clear(r)
		}
		if b.bh.Test(r) {
			boundaries++
		}
	}

	return boundaries == n
}

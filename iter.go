package hibitset

import (
	"iter"
	"math/bits"
)

// BitIter produces the indices of a BitSetLike in strictly ascending
// order. It caches one word per layer and walks the hierarchy, so layer-0
// words known to be empty are never loaded: iteration cost scales with the
// nonzero words actually touched, not with the index range.
//
// The sequence is only well-defined while the source is not mutated. An
// AtomicBitSet source mutated mid-iteration is weakly consistent: the
// change may or may not be observed, but never corrupts the walk.
type BitIter struct {
	set    BitSetLike
	masks  [layers]uint64
	prefix [layers - 1]uint32
}

// Iter creates an iterator over b, seeded with its top layer word.
func Iter(b BitSetLike) *BitIter {
	it := &BitIter{set: b}
	it.masks[layers-1] = b.Layer3()
	return it
}

// Next returns the next set index. The second return is false once the
// sequence is exhausted.
func (bi *BitIter) Next() (Index, bool) {
	for {
		descended := false
		for level := 0; level < layers; level++ {
			m := bi.masks[level]
			if m == 0 {
				continue
			}

			bit := uint32(bits.TrailingZeros64(m))
			bi.masks[level] = m & (m - 1)

			var idx uint32
			if level == layers-1 {
				idx = bit
			} else {
				idx = bi.prefix[level] | bit
			}
			if level == 0 {
				return Index(idx), true
			}

			// Descend: load the real word below the discovered bit and
			// retry from layer 0. The loaded word may still be zero for
			// conservative views such as And; the next pass just climbs
			// again.
			bi.masks[level-1] = bi.load(level-1, idx)
			bi.prefix[level-1] = idx << shift1
			descended = true
			break
		}
		if !descended {
			return 0, false
		}
	}
}

func (bi *BitIter) load(level int, i uint32) uint64 {
	switch level {
	case 0:
		return bi.set.Layer0(i)
	case 1:
		return bi.set.Layer1(i)
	default:
		return bi.set.Layer2(i)
	}
}

// All returns the indices of b as a range-over-func sequence, in ascending
// order.
func All(b BitSetLike) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		it := Iter(b)
		for id, ok := it.Next(); ok; id, ok = it.Next() {
			if !yield(id) {
				return
			}
		}
	}
}

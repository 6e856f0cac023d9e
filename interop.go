package hibitset

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// The hierarchy is a hot-path structure; roaring and flat bitsets are what
// surrounding systems keep for long-lived or serialized memberships. The
// converters below bridge the two worlds.

// ToRoaring materializes the indices of b into a roaring bitmap. b must be
// a finite view: do not pass a bare Not.
func ToRoaring(b BitSetLike) *roaring.Bitmap {
	rb := roaring.New()
	it := Iter(b)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		rb.Add(uint32(id))
	}
	return rb
}

// FromRoaring builds an owned BitSet holding the values of rb. Panics if
// rb holds a value above MaxIndex.
func FromRoaring(rb *roaring.Bitmap) *BitSet {
	b := New()
	rit := rb.Iterator()
	for rit.HasNext() {
		b.Add(Index(rit.Next()))
	}
	return b
}

// ToFlat copies the indices of b into a flat bitset. b must be a finite
// view.
func ToFlat(b BitSetLike) *bitset.BitSet {
	fb := bitset.New(0)
	it := Iter(b)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		fb.Set(uint(id))
	}
	return fb
}

// FromFlat builds an owned BitSet from the set bits of fb. Panics if fb
// holds a bit above MaxIndex.
func FromFlat(fb *bitset.BitSet) *BitSet {
	b := New()
	for i, ok := fb.NextSet(0); ok; i, ok = fb.NextSet(i + 1) {
		b.Add(Index(i))
	}
	return b
}

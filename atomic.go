package hibitset

import "sync/atomic"

const (
	// atomicBlockWords is the layer-0 words per block: one block backs
	// exactly the 64 words summarized by a single layer-1 word, i.e. 4096
	// indices.
	atomicBlockWords = wordBits

	atomicBlocks  = (int(MaxIndex) + 1) >> shift2
	atomicL2Words = (int(MaxIndex) + 1) >> shift3
)

// atomicBlock is one lazily allocated span of layer-0 storage.
type atomicBlock [atomicBlockWords]atomic.Uint64

// AtomicBitSet is a fixed-capacity variant of BitSet that is safe for
// unsynchronized concurrent mutation. Capacity covers the full valid index
// range; layer-0 blocks are allocated on first write and installed with a
// compare-and-swap, so racing writers agree on a single block.
//
// Consistency across layers is weak: a reader can observe the layer-0 bit
// of an in-flight Add before its summary bits, and Remove clears layer 0
// only, leaving summary bits conservatively set rather than cascade
// racily. Iteration stays correct either way, it just discards empty
// words. Callers needing a linearizable combined view must synchronize
// externally.
type AtomicBitSet struct {
	layer3 atomic.Uint64
	layer2 [atomicL2Words]atomic.Uint64
	layer1 [atomicBlocks]atomic.Uint64
	layer0 [atomicBlocks]atomic.Pointer[atomicBlock]
}

// NewAtomic creates an empty AtomicBitSet.
func NewAtomic() *AtomicBitSet {
	return &AtomicBitSet{}
}

func (a *AtomicBitSet) block(p1 uint32) *atomicBlock {
	if blk := a.layer0[p1].Load(); blk != nil {
		return blk
	}
	blk := new(atomicBlock)
	if a.layer0[p1].CompareAndSwap(nil, blk) {
		return blk
	}
	return a.layer0[p1].Load()
}

// Add inserts id into the set. It reports whether id was already present.
// Safe to call concurrently: disjoint indices never interfere, and of two
// racing adds of the same index exactly one reports a new insert. Panics
// if id exceeds MaxIndex.
func (a *AtomicBitSet) Add(id Index) bool {
	validRange(id)
	p0, p1, p2 := offsets(id)

	old := a.block(p1)[p0&wordMask].Or(mask(id, shift0))
	if old&mask(id, shift0) != 0 {
		return true
	}

	a.layer1[p1].Or(mask(id, shift1))
	a.layer2[p2].Or(mask(id, shift2))
	a.layer3.Or(mask(id, shift3))
	return false
}

// Remove deletes id from the set. It reports whether id was present. Only
// the layer-0 bit is cleared; see the consistency note on AtomicBitSet.
func (a *AtomicBitSet) Remove(id Index) bool {
	if id > MaxIndex {
		return false
	}
	p0, p1, _ := offsets(id)

	blk := a.layer0[p1].Load()
	if blk == nil {
		return false
	}
	old := blk[p0&wordMask].And(^mask(id, shift0))
	return old&mask(id, shift0) != 0
}

// Contains reports whether id is in the set.
func (a *AtomicBitSet) Contains(id Index) bool {
	if id > MaxIndex {
		return false
	}
	p0, p1, _ := offsets(id)

	blk := a.layer0[p1].Load()
	return blk != nil && blk[p0&wordMask].Load()&mask(id, shift0) != 0
}

func (a *AtomicBitSet) Layer3() uint64 {
	return a.layer3.Load()
}

func (a *AtomicBitSet) Layer2(i uint32) uint64 {
	if int(i) >= atomicL2Words {
		return 0
	}
	return a.layer2[i].Load()
}

func (a *AtomicBitSet) Layer1(i uint32) uint64 {
	if int(i) >= atomicBlocks {
		return 0
	}
	return a.layer1[i].Load()
}

func (a *AtomicBitSet) Layer0(i uint32) uint64 {
	p1 := i >> shift1
	if int(p1) >= atomicBlocks {
		return 0
	}
	blk := a.layer0[p1].Load()
	if blk == nil {
		return 0
	}
	return blk[i&wordMask].Load()
}

package hibitset

import "fmt"

// BitSet tracks membership for dense numeric indices. Layer 0 holds one
// bit per index and is the ground truth; each bit of layers 1-3 summarizes
// one word of the layer below and is set only while that word is nonzero.
// The summary layers are what make iteration over a sparse set cheap:
// whole runs of empty words are skipped without ever loading them.
//
// A BitSet is not safe for concurrent mutation; use AtomicBitSet for
// unsynchronized writers.
type BitSet struct {
	layer3 uint64
	layer2 []uint64
	layer1 []uint64
	layer0 []uint64
}

// New creates an empty BitSet. No storage is allocated until the first
// Add.
func New() *BitSet {
	return &BitSet{}
}

// WithCapacity creates an empty BitSet pre-grown so indices up to max can
// be added without reallocation. Panics if max exceeds MaxIndex.
func WithCapacity(max Index) *BitSet {
	validRange(max)
	b := New()
	b.extend(max)
	return b
}

func validRange(id Index) {
	if id > MaxIndex {
		panic(fmt.Sprintf("hibitset: index %d out of range, max is %d", id, MaxIndex))
	}
}

func (b *BitSet) extend(id Index) {
	validRange(id)
	p0, p1, p2 := offsets(id)

	b.layer2 = fillUp(b.layer2, p2)
	b.layer1 = fillUp(b.layer1, p1)
	b.layer0 = fillUp(b.layer0, p0)
}

func fillUp(words []uint64, to uint32) []uint64 {
	if int(to) < len(words) {
		return words
	}
	return append(words, make([]uint64, int(to)+1-len(words))...)
}

// addSlow sets the summary bits in layers 1 through 3. Only needed when
// the layer-0 word transitioned from zero: the hierarchy invariant
// guarantees they are already set otherwise.
func (b *BitSet) addSlow(id Index) {
	_, p1, p2 := offsets(id)
	b.layer1[p1] |= mask(id, shift1)
	b.layer2[p2] |= mask(id, shift2)
	b.layer3 |= mask(id, shift3)
}

// Add inserts id into the set. It reports whether id was already present.
// Storage grows as needed; ids above MaxIndex panic.
func (b *BitSet) Add(id Index) bool {
	p0, m := uint32(id>>shift1), mask(id, shift0)

	if int(p0) >= len(b.layer0) {
		b.extend(id)
	}

	if b.layer0[p0]&m != 0 {
		return true
	}

	old := b.layer0[p0]
	b.layer0[p0] |= m
	if old == 0 {
		b.addSlow(id)
	}
	return false
}

// Remove deletes id from the set. It reports whether id was present; ids
// beyond the allocated range return false without allocating.
func (b *BitSet) Remove(id Index) bool {
	p0, p1, p2 := offsets(id)

	if int(p0) >= len(b.layer0) {
		return false
	}
	if b.layer0[p0]&mask(id, shift0) == 0 {
		return false
	}

	// The clear cascades upward only while the cleared word becomes zero;
	// a surviving sibling bit keeps the summary word, and everything above
	// it, set.
	b.layer0[p0] &^= mask(id, shift0)
	if b.layer0[p0] != 0 {
		return true
	}

	b.layer1[p1] &^= mask(id, shift1)
	if b.layer1[p1] != 0 {
		return true
	}

	b.layer2[p2] &^= mask(id, shift2)
	if b.layer2[p2] != 0 {
		return true
	}

	b.layer3 &^= mask(id, shift3)
	return true
}

// Contains reports whether id is in the set. Layer 0 is ground truth, so
// this is a single word probe.
func (b *BitSet) Contains(id Index) bool {
	p0 := uint32(id >> shift1)
	return int(p0) < len(b.layer0) && b.layer0[p0]&mask(id, shift0) != 0
}

// Clear resets the set to empty, releasing all layer storage.
func (b *BitSet) Clear() {
	b.layer0 = nil
	b.layer1 = nil
	b.layer2 = nil
	b.layer3 = 0
}

// IsEmpty reports whether the set holds no indices.
func (b *BitSet) IsEmpty() bool {
	return b.layer3 == 0
}

// Clone returns an independent copy of the set.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{
		layer3: b.layer3,
		layer2: append([]uint64(nil), b.layer2...),
		layer1: append([]uint64(nil), b.layer1...),
		layer0: append([]uint64(nil), b.layer0...),
	}
}

// BitSetLike is the read-only capability shared by every hierarchical bit
// structure: owned sets, atomic sets and combinator views. The iterator
// and the combinators work against this interface, so they are agnostic to
// the concrete backing.
//
// Accessors must be side-effect free and return the zero word for any
// position beyond their real extent, never fail.
type BitSetLike interface {
	// Layer3 returns the single top word; each bit summarizes one
	// layer-2 word.
	Layer3() uint64

	// Layer2 returns the layer-2 word at i; each bit summarizes one
	// layer-1 word.
	Layer2(i uint32) uint64

	// Layer1 returns the layer-1 word at i; each bit summarizes one
	// layer-0 word.
	Layer1(i uint32) uint64

	// Layer0 returns the layer-0 word at i; each bit maps 1:1 to an
	// index.
	Layer0(i uint32) uint64
}

func (b *BitSet) Layer3() uint64 { return b.layer3 }

func (b *BitSet) Layer2(i uint32) uint64 { return wordAt(b.layer2, i) }

func (b *BitSet) Layer1(i uint32) uint64 { return wordAt(b.layer1, i) }

func (b *BitSet) Layer0(i uint32) uint64 { return wordAt(b.layer0, i) }

// Contains reports whether id is set in b, for any backing.
func Contains(b BitSetLike, id Index) bool {
	return b.Layer0(uint32(id>>shift1))&mask(id, shift0) != 0
}

// IsEmpty reports whether b has no set bits. For an AtomicBitSet the
// answer is conservative: summary bits left behind by Remove can report
// non-empty for a drained set.
func IsEmpty(b BitSetLike) bool {
	return b.Layer3() == 0
}

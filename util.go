package hibitset

// Index identifies one candidate set member. It is strictly 32-bit,
// matching the dense entity identifiers used by component and graph
// storage.
type Index uint32

// MaxIndex is the largest index a set can hold. Growing storage past it is
// a programming error and panics.
const MaxIndex Index = 1<<20 - 1

// Layer geometry. Every word is 64 bits, and each word of layers 1-3
// summarizes 64 words of the layer below, so moving up one layer shifts an
// index by another 6 bits.
const (
	wordBits = 64
	wordMask = wordBits - 1

	shift0 = 0
	shift1 = 6
	shift2 = 2 * shift1
	shift3 = 3 * shift1

	layers = 4
)

// offsets returns the word positions of id within layers 0, 1 and 2.
func offsets(id Index) (p0, p1, p2 uint32) {
	return uint32(id >> shift1), uint32(id >> shift2), uint32(id >> shift3)
}

// mask returns the bit of id within its word at the layer addressed by
// shift: shift0 selects the layer-0 bit, shift1 the layer-1 bit, and so
// on.
func mask(id Index, shift uint) uint64 {
	return 1 << ((uint32(id) >> shift) & wordMask)
}

// wordAt reads words[i], treating positions beyond the slice as zero.
func wordAt(words []uint64, i uint32) uint64 {
	if int(i) >= len(words) {
		return 0
	}
	return words[i]
}

// Package hibitset provides hierarchical bit sets, which allow very fast
// iteration over sparse index spaces.
//
// Architecture:
//   - Four layers: layer 0 holds one bit per index (ground truth); each
//     bit of layers 1-3 summarizes one 64-bit word of the layer below
//   - Skip-ahead iteration: the summary layers let the iterator bypass
//     whole runs of empty words without loading them
//   - Zero-copy combinators: And, Or and Not compose BitSetLike views
//     without materializing a new bit array
//   - Lock-free variant: AtomicBitSet supports unsynchronized concurrent
//     mutation via atomic fetch-or/fetch-and at every layer
//
// A set is limited by design to indices below 1<<20. Growing storage past
// that limit panics: it signals misuse of the index space, not an expected
// runtime condition.
package hibitset

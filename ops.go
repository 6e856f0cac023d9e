package hibitset

// And returns a view whose bits are the intersection of a and b. The view
// holds no storage; every accessor combines the operands on the fly, so
// its answers track the operands' current state.
//
// The summary layers of the view are conservative: a set summary bit means
// both operands had it set, not that the intersection below is nonempty.
// Iteration tolerates this by discarding empty layer-0 words on descent,
// at the cost of wasted descents when the operands are disjoint.
func And(a, b BitSetLike) BitSetLike {
	return andSet{a, b}
}

// Or returns a view whose bits are the union of a and b. Unlike And, its
// summary layers stay exact.
func Or(a, b BitSetLike) BitSetLike {
	return orSet{a, b}
}

// Not returns a view whose layer-0 bits are the complement of a's. Its
// summary layers read as all-set, so iterating it runs over the whole
// representable range: bound it at the consumer, or And it with a finite
// set.
func Not(a BitSetLike) BitSetLike {
	return notSet{a}
}

type andSet struct{ a, b BitSetLike }

func (s andSet) Layer3() uint64 { return s.a.Layer3() & s.b.Layer3() }

func (s andSet) Layer2(i uint32) uint64 { return s.a.Layer2(i) & s.b.Layer2(i) }

func (s andSet) Layer1(i uint32) uint64 { return s.a.Layer1(i) & s.b.Layer1(i) }

func (s andSet) Layer0(i uint32) uint64 { return s.a.Layer0(i) & s.b.Layer0(i) }

type orSet struct{ a, b BitSetLike }

func (s orSet) Layer3() uint64 { return s.a.Layer3() | s.b.Layer3() }

func (s orSet) Layer2(i uint32) uint64 { return s.a.Layer2(i) | s.b.Layer2(i) }

func (s orSet) Layer1(i uint32) uint64 { return s.a.Layer1(i) | s.b.Layer1(i) }

func (s orSet) Layer0(i uint32) uint64 { return s.a.Layer0(i) | s.b.Layer0(i) }

type notSet struct{ a BitSetLike }

func (s notSet) Layer3() uint64 { return ^uint64(0) }

func (s notSet) Layer2(i uint32) uint64 { return ^uint64(0) }

func (s notSet) Layer1(i uint32) uint64 { return ^uint64(0) }

func (s notSet) Layer0(i uint32) uint64 { return ^s.a.Layer0(i) }

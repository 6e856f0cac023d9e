package hibitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnd(t *testing.T) {
	a := New()
	b := New()
	for i := Index(0); i < 10_000; i++ {
		if i%2 == 0 {
			a.Add(i)
		}
		if i%3 == 0 {
			b.Add(i)
		}
	}

	v := And(a, b)
	for i := Index(0); i < 10_000; i++ {
		assert.Equal(t, i%6 == 0, Contains(v, i), "index %d", i)
	}

	it := Iter(v)
	next := Index(0)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		require.Equal(t, next, id)
		next += 6
	}
	require.Equal(t, Index(10_002), next)
}

func TestAnd_Disjoint(t *testing.T) {
	a := New()
	b := New()
	a.Add(3)
	b.Add(900_000)

	v := And(a, b)

	// The summary layers overestimate: layer 3 can be nonzero while the
	// intersection is empty. Iteration must still produce nothing.
	assert.Equal(t, 0, count(v))
	assert.False(t, Contains(v, 3))
	assert.False(t, Contains(v, 900_000))
}

func TestAnd_TracksOperands(t *testing.T) {
	a := New()
	b := New()
	a.Add(7)
	b.Add(7)

	v := And(a, b)
	assert.True(t, Contains(v, 7))

	a.Remove(7)
	assert.False(t, Contains(v, 7))
}

func TestOr(t *testing.T) {
	a := New()
	b := New()
	for i := Index(0); i < 50_000; i++ {
		if i%2 == 0 {
			a.Add(i)
		} else {
			b.Add(i)
		}
	}

	v := Or(a, b)
	assert.Equal(t, 50_000, count(v))

	it := Iter(v)
	next := Index(0)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		require.Equal(t, next, id)
		next++
	}
	require.Equal(t, Index(50_000), next)
}

func TestNot(t *testing.T) {
	c := New()
	for i := Index(1); i < 10_000; i += 2 {
		c.Add(i)
	}

	it := Iter(Not(c))
	for want := Index(0); want < 10_000; want += 2 {
		id, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, id)
	}
}

func TestNot_BoundedByAnd(t *testing.T) {
	universe := New()
	for i := Index(0); i < 100; i++ {
		universe.Add(i)
	}

	c := New()
	c.Add(10)
	c.Add(20)

	v := And(Not(c), universe)
	assert.Equal(t, 98, count(v))
	assert.False(t, Contains(v, 10))
	assert.True(t, Contains(v, 11))
}

func TestCombinators_Nested(t *testing.T) {
	a := New()
	b := New()
	c := New()
	a.Add(1)
	a.Add(2)
	b.Add(2)
	b.Add(3)
	c.Add(2)

	// (a AND b) OR c == {2}; a AND (b OR c) == {2}.
	assert.Equal(t, 1, count(Or(And(a, b), c)))
	assert.True(t, Contains(And(a, Or(b, c)), 2))
	assert.False(t, Contains(And(a, Or(b, c)), 3))
}

package bench

import (
	"math/rand"

	"seqbench/internal/payload"
	"seqbench/internal/seq"
)

// Maker builds the container an operation chain starts from. Make runs
// outside the timed section.
type Maker[S any] interface {
	Make(size int) S
}

const shuffleSeed = 1

// Empty yields a fresh zero-length container regardless of size.
type Empty[T any, S seq.Sequence[T]] struct {
	New func() S
}

func NewEmpty[T any, S seq.Sequence[T]](newSeq func() S) Empty[T, S] {
	return Empty[T, S]{New: newSeq}
}

func (m Empty[T, S]) Make(int) S { return m.New() }

// Filled yields exactly size zero-valued elements.
type Filled[T any, S seq.Sequence[T]] struct {
	New func() S
}

func NewFilled[T any, S seq.Sequence[T]](newSeq func() S) Filled[T, S] {
	return Filled[T, S]{New: newSeq}
}

func (m Filled[T, S]) Make(size int) S {
	c := m.New()
	c.Reserve(size)
	var zero T
	for i := 0; i < size; i++ {
		c.PushBack(zero)
	}
	return c
}

// FilledRandom yields size elements whose keys are a shuffled permutation of
// [0,size). The permutation is cached until the requested size changes and
// reshuffled with a fixed seed, so repetitions of one measurement see
// identical element order. Search and mutation timings are therefore not
// re-randomized per repetition, trading sample independence for cheap setup.
type FilledRandom[T payload.Value[T], S seq.Sequence[T]] struct {
	New  func() S
	perm []uint64
}

func NewFilledRandom[T payload.Value[T], S seq.Sequence[T]](newSeq func() S) *FilledRandom[T, S] {
	return &FilledRandom[T, S]{New: newSeq}
}

func (m *FilledRandom[T, S]) Make(size int) S {
	if len(m.perm) != size {
		m.perm = make([]uint64, size)
		for i := range m.perm {
			m.perm[i] = uint64(i)
		}
		rng := rand.New(rand.NewSource(shuffleSeed))
		rng.Shuffle(size, func(i, j int) { m.perm[i], m.perm[j] = m.perm[j], m.perm[i] })
	}

	c := m.New()
	var zero T
	for _, k := range m.perm {
		c.PushBack(zero.WithID(k))
	}
	return c
}

// Owned is Filled behind a sole-ownership handle, for teardown scenarios.
type Owned[T any, S seq.Sequence[T]] struct {
	New func() S
}

func NewOwned[T any, S seq.Sequence[T]](newSeq func() S) Owned[T, S] {
	return Owned[T, S]{New: newSeq}
}

func (m Owned[T, S]) Make(size int) *seq.Handle[S] {
	c := m.New()
	c.Reserve(size)
	var zero T
	for i := 0; i < size; i++ {
		c.PushBack(zero)
	}
	return seq.NewHandle(c)
}

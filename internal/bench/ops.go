package bench

import (
	"math/rand"

	"seqbench/internal/payload"
	"seqbench/internal/seq"
)

// Op is one timed unit of work applied to the container a Maker built.
// A scenario chains several ops under a single timer.
type Op[S any] interface {
	Run(s S, size int)
}

// insertRounds bounds Insert and Remove regardless of container size.
const insertRounds = 1000

// NoOp measures creation cost alone.
type NoOp[S any] struct{}

func (NoOp[S]) Run(S, int) {}

// ReserveSize requests capacity for size elements up front.
type ReserveSize[T any, S seq.Sequence[T]] struct{}

func (ReserveSize[T, S]) Run(s S, size int) { s.Reserve(size) }

// FillBack appends size zero-valued elements.
type FillBack[T any, S seq.Sequence[T]] struct{}

func (FillBack[T, S]) Run(s S, size int) {
	var zero T
	for i := 0; i < size; i++ {
		s.PushBack(zero)
	}
}

// FillFront prepends size zero-valued elements.
type FillFront[T any, S seq.Sequence[T]] struct{}

func (FillFront[T, S]) Run(s S, size int) {
	var zero T
	for i := 0; i < size; i++ {
		s.PushFront(zero)
	}
}

// Find runs size independent linear scans, one per key in [0,size). A single
// predicate closure over a mutable target key avoids building a comparison
// value on every step.
type Find[T payload.Value[T], S seq.Sequence[T]] struct{}

func (Find[T, S]) Run(s S, size int) {
	var target uint64
	pred := func(v T) bool { return v.ID() == target }
	for i := 0; i < size; i++ {
		target = uint64(i)
		s.Find(pred)
	}
}

// Insert scans for the first element with key >= i and inserts a new element
// with key size+i before it, for i in [0,1000).
type Insert[T payload.Value[T], S seq.Sequence[T]] struct{}

func (Insert[T, S]) Run(s S, size int) {
	var zero T
	var target uint64
	pred := func(v T) bool { return v.ID() >= target }
	for i := 0; i < insertRounds; i++ {
		target = uint64(i)
		s.InsertBefore(pred, zero.WithID(uint64(size+i)))
	}
}

// Remove erases the first element with key >= i, for i in [0,1000).
type Remove[T payload.Value[T], S seq.Sequence[T]] struct{}

func (Remove[T, S]) Run(s S, size int) {
	var target uint64
	pred := func(v T) bool { return v.ID() >= target }
	for i := 0; i < insertRounds; i++ {
		target = uint64(i)
		s.RemoveFirst(pred)
	}
}

// Sort orders the container ascending by key.
type Sort[T payload.Value[T], S seq.Sequence[T]] struct{}

func (Sort[T, S]) Run(s S, _ int) {
	s.Sort(func(a, b T) bool { return a.Less(b) })
}

// Release drops the owning handle, tearing the whole container down. This is
// the one op whose container is a handle rather than a sequence.
type Release[S interface{ Clear() }] struct{}

func (Release[S]) Run(h *seq.Handle[S], _ int) { h.Release() }

// RandomSortedInsert inserts size uniformly random keys, keeping ascending
// order by scanning to the first element whose key is >= the drawn value.
type RandomSortedInsert[T payload.Value[T], S seq.Sequence[T]] struct {
	rng *rand.Rand
}

func NewRandomSortedInsert[T payload.Value[T], S seq.Sequence[T]]() *RandomSortedInsert[T, S] {
	return &RandomSortedInsert[T, S]{rng: rand.New(rand.NewSource(shuffleSeed))}
}

func (op *RandomSortedInsert[T, S]) Run(s S, size int) {
	var zero T
	var target uint64
	pred := func(v T) bool { return v.ID() >= target }
	for i := 0; i < size; i++ {
		target = op.rng.Uint64()
		s.InsertBefore(pred, zero.WithID(target))
	}
}

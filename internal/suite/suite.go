// Package suite wires the fixed benchmark matrix: every payload size class
// plus the non-trivial payload, across the vector, list and deque containers.
package suite

import (
	"time"

	"seqbench/internal/bench"
	"seqbench/internal/graphs"
	"seqbench/internal/payload"
	"seqbench/internal/seq"
)

// Config carries the input-size lists for the three scenario weights. The
// defaults are the published matrix; tests inject smaller ones.
type Config struct {
	LargeSizes  []int // fill_back, sort, destruction
	MediumSizes []int // fill_front, random insert/remove, number crunching
	SmallSizes  []int // linear_search
}

func DefaultConfig() Config {
	return Config{
		LargeSizes:  steps(100_000, 1_000_000, 100_000),
		MediumSizes: steps(10_000, 100_000, 10_000),
		SmallSizes:  steps(1_000, 10_000, 1_000),
	}
}

func steps(from, to, by int) []int {
	var out []int
	for v := from; v <= to; v += by {
		out = append(out, v)
	}
	return out
}

// Run executes the whole matrix into gc, one payload type at a time.
func Run(gc *graphs.Context, cfg Config) {
	runType[payload.Small](gc, "8", "8 byte", true, cfg)
	runType[payload.Medium](gc, "32", "32 byte", false, cfg)
	runType[payload.Large](gc, "128", "128 byte", false, cfg)
	runType[payload.Huge](gc, "1024", "1024 byte", false, cfg)
	runType[payload.Monster](gc, "4096", "4096 byte", false, cfg)
	runType[payload.NonTrivial](gc, "nontrivial", "non-trivial", false, cfg)
}

// runType runs every scenario family for one payload type. The front-fill and
// number-crunching families only make their point once, so only the smallest
// payload runs them.
func runType[T payload.Value[T]](gc *graphs.Context, label, title string, smallest bool, cfg Config) {
	gc.NewGraph("fill_back_"+label, "fill_back - "+title, "us")
	benchFillBack[T](gc, time.Microsecond, cfg.LargeSizes)

	if smallest {
		gc.NewGraph("fill_front_"+label, "fill_front - "+title, "ms")
		benchFillFront[T](gc, time.Millisecond, cfg.MediumSizes)
	}

	gc.NewGraph("linear_search_"+label, "linear_search - "+title, "us")
	benchFind[T](gc, time.Microsecond, cfg.SmallSizes)

	gc.NewGraph("random_insert_"+label, "random_insert - "+title, "ms")
	benchInsert[T](gc, time.Millisecond, cfg.MediumSizes)

	gc.NewGraph("random_remove_"+label, "random_remove - "+title, "ms")
	benchRemove[T](gc, time.Millisecond, cfg.MediumSizes)

	gc.NewGraph("sort_"+label, "sort - "+title, "ms")
	benchSort[T](gc, time.Millisecond, cfg.LargeSizes)

	gc.NewGraph("destruction_"+label, "destruction - "+title, "us")
	benchDestruction[T](gc, time.Microsecond, cfg.LargeSizes)

	if smallest {
		gc.NewGraph("number_crunching", "number_crunching", "ms")
		benchRandomSortedInsert[T](gc, time.Millisecond, cfg.MediumSizes)
	}
}

func benchFillBack[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector_pre", unit, bench.NewEmpty[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{
			bench.ReserveSize[T, *seq.Vector[T]]{},
			bench.FillBack[T, *seq.Vector[T]]{},
		}, sizes)
	bench.Run(gc, "vector", unit, bench.NewEmpty[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{bench.FillBack[T, *seq.Vector[T]]{}}, sizes)
	bench.Run(gc, "list", unit, bench.NewEmpty[T](seq.NewList[T]),
		[]bench.Op[*seq.List[T]]{bench.FillBack[T, *seq.List[T]]{}}, sizes)
	bench.Run(gc, "deque", unit, bench.NewEmpty[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Deque[T]]{bench.FillBack[T, *seq.Deque[T]]{}}, sizes)
}

func benchFillFront[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector", unit, bench.NewEmpty[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{bench.FillFront[T, *seq.Vector[T]]{}}, sizes)
	bench.Run(gc, "list", unit, bench.NewEmpty[T](seq.NewList[T]),
		[]bench.Op[*seq.List[T]]{bench.FillFront[T, *seq.List[T]]{}}, sizes)
	bench.Run(gc, "deque", unit, bench.NewEmpty[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Deque[T]]{bench.FillFront[T, *seq.Deque[T]]{}}, sizes)
}

func benchFind[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector", unit, bench.NewFilledRandom[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{bench.Find[T, *seq.Vector[T]]{}}, sizes)
	bench.Run(gc, "list", unit, bench.NewFilledRandom[T](seq.NewList[T]),
		[]bench.Op[*seq.List[T]]{bench.Find[T, *seq.List[T]]{}}, sizes)
	bench.Run(gc, "deque", unit, bench.NewFilledRandom[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Deque[T]]{bench.Find[T, *seq.Deque[T]]{}}, sizes)
}

func benchInsert[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector", unit, bench.NewFilledRandom[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{bench.Insert[T, *seq.Vector[T]]{}}, sizes)
	bench.Run(gc, "list", unit, bench.NewFilledRandom[T](seq.NewList[T]),
		[]bench.Op[*seq.List[T]]{bench.Insert[T, *seq.List[T]]{}}, sizes)
	bench.Run(gc, "deque", unit, bench.NewFilledRandom[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Deque[T]]{bench.Insert[T, *seq.Deque[T]]{}}, sizes)
}

func benchRemove[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector", unit, bench.NewFilledRandom[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{bench.Remove[T, *seq.Vector[T]]{}}, sizes)
	bench.Run(gc, "list", unit, bench.NewFilledRandom[T](seq.NewList[T]),
		[]bench.Op[*seq.List[T]]{bench.Remove[T, *seq.List[T]]{}}, sizes)
	bench.Run(gc, "deque", unit, bench.NewFilledRandom[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Deque[T]]{bench.Remove[T, *seq.Deque[T]]{}}, sizes)
}

func benchSort[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector", unit, bench.NewFilledRandom[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{bench.Sort[T, *seq.Vector[T]]{}}, sizes)
	bench.Run(gc, "list", unit, bench.NewFilledRandom[T](seq.NewList[T]),
		[]bench.Op[*seq.List[T]]{bench.Sort[T, *seq.List[T]]{}}, sizes)
	bench.Run(gc, "deque", unit, bench.NewFilledRandom[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Deque[T]]{bench.Sort[T, *seq.Deque[T]]{}}, sizes)
}

func benchDestruction[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector", unit, bench.NewOwned[T](seq.NewVector[T]),
		[]bench.Op[*seq.Handle[*seq.Vector[T]]]{bench.Release[*seq.Vector[T]]{}}, sizes)
	bench.Run(gc, "list", unit, bench.NewOwned[T](seq.NewList[T]),
		[]bench.Op[*seq.Handle[*seq.List[T]]]{bench.Release[*seq.List[T]]{}}, sizes)
	bench.Run(gc, "deque", unit, bench.NewOwned[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Handle[*seq.Deque[T]]]{bench.Release[*seq.Deque[T]]{}}, sizes)
}

func benchRandomSortedInsert[T payload.Value[T]](gc *graphs.Context, unit time.Duration, sizes []int) {
	bench.Run(gc, "vector", unit, bench.NewEmpty[T](seq.NewVector[T]),
		[]bench.Op[*seq.Vector[T]]{bench.NewRandomSortedInsert[T, *seq.Vector[T]]()}, sizes)
	bench.Run(gc, "list", unit, bench.NewEmpty[T](seq.NewList[T]),
		[]bench.Op[*seq.List[T]]{bench.NewRandomSortedInsert[T, *seq.List[T]]()}, sizes)
	bench.Run(gc, "deque", unit, bench.NewEmpty[T](seq.NewDeque[T]),
		[]bench.Op[*seq.Deque[T]]{bench.NewRandomSortedInsert[T, *seq.Deque[T]]()}, sizes)
}

// Package bench composes benchmark scenarios: a creation policy builds a
// container, an ordered chain of operation policies runs under one timer, and
// the averaged duration per input size lands in the current graph.
package bench

import (
	"strconv"
	"time"

	"seqbench/internal/graphs"
)

// Repeat is how many times each measurement runs before averaging.
const Repeat = 2

// Run executes one scenario. For every input size it builds a fresh container
// through maker (untimed), times the op chain Repeat times on a monotonic
// clock, and records total/Repeat truncated to unit resolution under series,
// with the size's decimal string as the group label.
func Run[S any](gc *graphs.Context, series string, unit time.Duration, maker Maker[S], ops []Op[S], sizes []int) {
	for _, size := range sizes {
		var total time.Duration

		for rep := 0; rep < Repeat; rep++ {
			c := maker.Make(size)

			start := time.Now()
			for _, op := range ops {
				op.Run(c, size)
			}
			total += time.Since(start)
		}

		gc.NewResult(series, strconv.Itoa(size), uint64((total/Repeat)/unit))
	}
}

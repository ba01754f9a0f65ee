package bench

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqbench/internal/graphs"
	"seqbench/internal/payload"
	"seqbench/internal/seq"
)

func TestRunEmitsOneSamplePerSize(t *testing.T) {
	gc := graphs.NewContext(nil)
	gc.NewGraph("g", "G", "ns")

	sizes := []int{10, 20, 30}
	Run(gc, "vector", time.Nanosecond,
		NewEmpty[payload.Small](seq.NewVector[payload.Small]),
		[]Op[*seq.Vector[payload.Small]]{FillBack[payload.Small, *seq.Vector[payload.Small]]{}},
		sizes)

	g := gc.Graphs()[0]
	require.Len(t, g.Samples, len(sizes))
	for i, s := range g.Samples {
		assert.Equal(t, "vector", s.Series)
		assert.Equal(t, []string{"10", "20", "30"}[i], s.Group)
	}
}

func TestRunTruncatesToUnit(t *testing.T) {
	gc := graphs.NewContext(nil)
	gc.NewGraph("g", "G", "h")

	// nothing a NoOp chain does takes an hour
	Run(gc, "vector", time.Hour,
		NewEmpty[payload.Small](seq.NewVector[payload.Small]),
		[]Op[*seq.Vector[payload.Small]]{NoOp[*seq.Vector[payload.Small]]{}},
		[]int{5})

	assert.Equal(t, uint64(0), gc.Graphs()[0].Samples[0].Value)
}

func TestRunChainsOpsInDeclaredOrder(t *testing.T) {
	gc := graphs.NewContext(nil)
	gc.NewGraph("g", "G", "ns")

	// Reserve then fill: final length proves both ran
	Run(gc, "vector_pre", time.Nanosecond,
		NewEmpty[payload.Small](seq.NewVector[payload.Small]),
		[]Op[*seq.Vector[payload.Small]]{
			ReserveSize[payload.Small, *seq.Vector[payload.Small]]{},
			FillBack[payload.Small, *seq.Vector[payload.Small]]{},
		},
		[]int{8})

	require.Len(t, gc.Graphs()[0].Samples, 1)
}

func TestRunCreationIsUntimed(t *testing.T) {
	gc := graphs.NewContext(nil)
	gc.NewGraph("g", "G", "h")

	// Building 50k elements is the expensive part here; with a NoOp chain and
	// an hour unit the recorded value must still be zero.
	Run(gc, "list", time.Hour,
		NewFilled[payload.Small](seq.NewList[payload.Small]),
		[]Op[*seq.List[payload.Small]]{NoOp[*seq.List[payload.Small]]{}},
		[]int{50000})

	assert.Equal(t, uint64(0), gc.Graphs()[0].Samples[0].Value)
}

func TestRunOwnedScenario(t *testing.T) {
	var progress bytes.Buffer
	gc := graphs.NewContext(&progress)
	gc.NewGraph("destruction", "destruction", "us")

	Run(gc, "vector", time.Microsecond,
		NewOwned[payload.Small](seq.NewVector[payload.Small]),
		[]Op[*seq.Handle[*seq.Vector[payload.Small]]]{Release[*seq.Vector[payload.Small]]{}},
		[]int{100})

	require.Len(t, gc.Graphs()[0].Samples, 1)
	assert.Contains(t, progress.String(), "vector:100:")
}

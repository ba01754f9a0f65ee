// Package graphs collects benchmark samples into named graphs for rendering.
package graphs

import (
	"fmt"
	"io"
)

// Sample is one averaged measurement: a series (container flavor), a group
// (input size as its decimal string) and the measured value.
type Sample struct {
	Series string
	Group  string
	Value  uint64
}

// Graph is the full dataset behind one rendered chart. Samples are appended
// in measurement order and never mutated afterwards.
type Graph struct {
	Name    string
	Title   string
	Unit    string
	Samples []Sample
}

// Context owns every graph produced during a run. Samples always land in the
// most recently created graph. Each graph creation and each recorded sample
// is echoed to the progress writer.
type Context struct {
	all      []*Graph
	current  *Graph
	progress io.Writer
}

func NewContext(progress io.Writer) *Context {
	if progress == nil {
		progress = io.Discard
	}
	return &Context{progress: progress}
}

// NewGraph starts a new graph and makes it the target for NewResult.
func (c *Context) NewGraph(name, title, unit string) {
	c.current = &Graph{Name: name, Title: title, Unit: unit}
	c.all = append(c.all, c.current)

	fmt.Fprintf(c.progress, "Start %s\n", name)
}

// NewResult appends a sample to the current graph.
func (c *Context) NewResult(series, group string, value uint64) {
	if c.current == nil {
		panic("graphs: NewResult called before NewGraph")
	}
	c.current.Samples = append(c.current.Samples, Sample{Series: series, Group: group, Value: value})

	fmt.Fprintf(c.progress, "%s:%s:%d\n", series, group, value)
}

// Graphs returns every graph in creation order.
func (c *Context) Graphs() []*Graph { return c.all }

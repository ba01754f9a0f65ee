package seq

// Handle owns a container on the heap so its teardown cost can be measured
// separately from scope exit.
type Handle[S interface{ Clear() }] struct {
	c    S
	held bool
}

func NewHandle[S interface{ Clear() }](c S) *Handle[S] {
	return &Handle[S]{c: c, held: true}
}

// Release tears the owned container down and drops the reference.
// Releasing twice is a no-op.
func (h *Handle[S]) Release() {
	if !h.held {
		return
	}
	h.c.Clear()
	var zero S
	h.c = zero
	h.held = false
}

// Released reports whether the handle has given up its container.
func (h *Handle[S]) Released() bool { return !h.held }

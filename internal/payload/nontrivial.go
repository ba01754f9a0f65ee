package payload

// heapFiller is long enough that no small-buffer trick can keep it inline.
const heapFiller = "some pretty long string to make sure it is not optimized away"

// NonTrivial owns a variable-length heap buffer. Duplicating it through Clone
// copies the buffer; Move transfers ownership and leaves the source empty.
type NonTrivial struct {
	id  uint64
	buf []byte
}

func (v NonTrivial) ID() uint64 { return v.id }

// WithID builds a payload carrying a freshly allocated buffer, so every
// constructed element pays one heap allocation.
func (v NonTrivial) WithID(id uint64) NonTrivial {
	return NonTrivial{id: id, buf: []byte(heapFiller)}
}

func (v NonTrivial) Less(other NonTrivial) bool { return v.id < other.id }

// Clone deep-duplicates the owned buffer.
func (v NonTrivial) Clone() NonTrivial {
	out := NonTrivial{id: v.id}
	if v.buf != nil {
		out.buf = make([]byte, len(v.buf))
		copy(out.buf, v.buf)
	}
	return out
}

// Move transfers the buffer to the returned value and empties the receiver.
func (v *NonTrivial) Move() NonTrivial {
	out := NonTrivial{id: v.id, buf: v.buf}
	v.buf = nil
	return out
}

var _ Value[NonTrivial] = NonTrivial{}

package payload

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestSizeClasses(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Small{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(Medium{}))
	assert.Equal(t, uintptr(128), unsafe.Sizeof(Large{}))
	assert.Equal(t, uintptr(1024), unsafe.Sizeof(Huge{}))
	assert.Equal(t, uintptr(4096), unsafe.Sizeof(Monster{}))
}

func TestWithIDAndOrdering(t *testing.T) {
	a := Small{}.WithID(1)
	b := Small{}.WithID(2)
	assert.Equal(t, uint64(1), a.ID())
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))

	m := Monster{}.WithID(42)
	assert.Equal(t, uint64(42), m.ID())
}

func TestNonTrivial_OwnsHeapBuffer(t *testing.T) {
	v := NonTrivial{}.WithID(7)
	assert.Equal(t, uint64(7), v.ID())
	assert.NotEmpty(t, v.buf)

	// the zero value is the default element and owns nothing
	var zero NonTrivial
	assert.Nil(t, zero.buf)
}

func TestNonTrivial_CloneDeepCopies(t *testing.T) {
	v := NonTrivial{}.WithID(1)
	c := v.Clone()

	assert.Equal(t, v.buf, c.buf)
	c.buf[0] = 'X'
	assert.NotEqual(t, v.buf[0], c.buf[0], "mutating the clone must not touch the original")
}

func TestNonTrivial_MoveTransfersOwnership(t *testing.T) {
	v := NonTrivial{}.WithID(3)
	orig := v.buf

	moved := v.Move()
	assert.Equal(t, uint64(3), moved.ID())
	// same backing storage, not a copy
	assert.Same(t, &orig[0], &moved.buf[0])
	assert.Nil(t, v.buf, "source must be left empty")
}

func TestNonTrivial_Ordering(t *testing.T) {
	a := NonTrivial{}.WithID(1)
	b := NonTrivial{}.WithID(2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

// Package payload defines the value types the container benchmarks move
// around: trivially copyable structs in fixed size classes, plus one payload
// that owns a heap buffer and is cheap to move but expensive to copy.
package payload

import "unsafe"

// Value is the contract every benchmark payload satisfies: an integer key
// used for ordering and search, and a value-returning constructor from that
// key. The zero value of a payload type is its default element.
type Value[T any] interface {
	ID() uint64
	WithID(id uint64) T
	Less(other T) bool
}

// Small is the 8-byte size class: nothing but the key.
type Small struct {
	id uint64
}

func (v Small) ID() uint64             { return v.id }
func (v Small) WithID(id uint64) Small { v.id = id; return v }
func (v Small) Less(other Small) bool  { return v.id < other.id }

// Medium is the 32-byte size class.
type Medium struct {
	id  uint64
	pad [24]byte
}

func (v Medium) ID() uint64              { return v.id }
func (v Medium) WithID(id uint64) Medium { v.id = id; return v }
func (v Medium) Less(other Medium) bool  { return v.id < other.id }

// Large is the 128-byte size class.
type Large struct {
	id  uint64
	pad [120]byte
}

func (v Large) ID() uint64             { return v.id }
func (v Large) WithID(id uint64) Large { v.id = id; return v }
func (v Large) Less(other Large) bool  { return v.id < other.id }

// Huge is the 1024-byte size class.
type Huge struct {
	id  uint64
	pad [1016]byte
}

func (v Huge) ID() uint64            { return v.id }
func (v Huge) WithID(id uint64) Huge { v.id = id; return v }
func (v Huge) Less(other Huge) bool  { return v.id < other.id }

// Monster is the 4096-byte size class.
type Monster struct {
	id  uint64
	pad [4088]byte
}

func (v Monster) ID() uint64               { return v.id }
func (v Monster) WithID(id uint64) Monster { v.id = id; return v }
func (v Monster) Less(other Monster) bool  { return v.id < other.id }

// Size classes must match their declared byte width exactly.
var (
	_ [8]byte    = [unsafe.Sizeof(Small{})]byte{}
	_ [32]byte   = [unsafe.Sizeof(Medium{})]byte{}
	_ [128]byte  = [unsafe.Sizeof(Large{})]byte{}
	_ [1024]byte = [unsafe.Sizeof(Huge{})]byte{}
	_ [4096]byte = [unsafe.Sizeof(Monster{})]byte{}
)

var (
	_ Value[Small]   = Small{}
	_ Value[Medium]  = Medium{}
	_ Value[Large]   = Large{}
	_ Value[Huge]    = Huge{}
	_ Value[Monster] = Monster{}
)

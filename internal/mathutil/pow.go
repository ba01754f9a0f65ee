package mathutil

// Numeric covers the value kinds Pow can raise.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Pow returns base raised to exp by repeated multiplication.
// An exponent of zero yields the multiplicative identity.
func Pow[T Numeric](base T, exp uint) T {
	var out T = 1
	for i := uint(0); i < exp; i++ {
		out *= base
	}
	return out
}

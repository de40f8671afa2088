package numeric

// Integer is satisfied by all integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by all floating point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is satisfied by every type supporting + and ordering.
type Number interface {
	Integer | Float
}

// Adder is implemented by types that sum without the + operator.
// Add must not modify the receiver.
type Adder[T any] interface {
	Add(T) T
}

// IsFloat reports whether T's underlying kind is a floating point type.
func IsFloat[T Number]() bool {
	// 1/2 truncates to zero for every integer kind.
	return T(1)/T(2) != 0
}

func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

package fastfloat

// Cmp compares f and o and returns -1 if f < o, 0 if f == o and +1 if f > o.
// -0 and +0 compare equal.
func (f Float[T]) Cmp(o Float[T]) int {
	return cmpNative(f.v, o.v)
}

// CmpScalar compares f with a native value, as [Float.Cmp].
func (f Float[T]) CmpScalar(x T) int {
	return cmpNative(f.v, x)
}

// Equal reports whether f == o.
func (f Float[T]) Equal(o Float[T]) bool {
	return f.v == o.v
}

// EqualScalar reports whether f == x.
func (f Float[T]) EqualScalar(x T) bool {
	return f.v == x
}

// Less reports whether f < o.
func (f Float[T]) Less(o Float[T]) bool {
	return f.v < o.v
}

// LessOrEqual reports whether f <= o.
func (f Float[T]) LessOrEqual(o Float[T]) bool {
	return f.v <= o.v
}

// Greater reports whether f > o.
func (f Float[T]) Greater(o Float[T]) bool {
	return f.v > o.v
}

// GreaterOrEqual reports whether f >= o.
func (f Float[T]) GreaterOrEqual(o Float[T]) bool {
	return f.v >= o.v
}

// Compare is [Float.Cmp] as a function, for use with slices.SortFunc and friends.
func Compare[T Native](a, b Float[T]) int {
	return cmpNative(a.v, b.v)
}

// Min returns the smaller of a and b, or a when they compare equal.
func Min[T Native](a, b Float[T]) Float[T] {
	if b.v < a.v {
		return b
	}
	return a
}

// Max returns the larger of a and b, or a when they compare equal.
func Max[T Native](a, b Float[T]) Float[T] {
	if b.v > a.v {
		return b
	}
	return a
}

func cmpNative[T Native](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

//go:build !fastfloatdebug

package fastfloat

// debugChecks reports whether the fastfloatdebug assertions are compiled in.
const debugChecks = false

func assertFinite[T Native](T) {}

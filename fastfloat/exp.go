package fastfloat

import "github.com/cwbudde/algo-fastfloat/fastexp"

var (
	_ fastexp.Exponentiable[F32] = F32{}
	_ fastexp.Exponentiable[F64] = F64{}
)

// FastExp returns an approximation of e^f with a relative error of a few
// percent. See [fastexp.Exp].
func (f Float[T]) FastExp() Float[T] {
	return wrap(fastexp.Exp(f.v))
}

// FastExp2 returns an approximation of 2^f. See [fastexp.Exp2].
func (f Float[T]) FastExp2() Float[T] {
	return wrap(fastexp.Exp2(f.v))
}

// FastExpLimit returns (1 + f/256)^256, a cheap e^f for small |f|.
// See [fastexp.ExpLimit].
func (f Float[T]) FastExpLimit() Float[T] {
	return wrap(fastexp.ExpLimit(f.v))
}

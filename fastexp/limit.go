package fastexp

// ExpLimit approximates e^x as (1 + x/256)^256 using eight squarings.
//
// The relative error grows roughly as x²/512: under 2% for |x| <= 3 and
// unusable beyond |x| of about 10. It is exact at 0.
func ExpLimit[T Float](x T) T {
	y := 1 + x*(1.0/256)
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	y *= y
	return y
}

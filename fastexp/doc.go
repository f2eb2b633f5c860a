/*
Package fastexp provides approximate exponential functions computed by writing
directly into the exponent and mantissa fields of an IEEE-754 value.

# Method

For a binary format with mantissa width M and exponent bias B, the bit
pattern of the integer

	i = trunc(x * 2^M / ln 2 + (B - σ) * 2^M)

read as a float is close to e^x: the integer part of x/ln 2 lands in the
exponent field and the fractional part fills the mantissa linearly. σ balances
the relative error of that linear mantissa across one octave. There is no
range reduction and no correction polynomial.

# Accuracy

The results are approximate. Inside the normal range of the format the maximum
relative error of [Exp] and [Exp2] is about 3.56%, so callers must tolerate a
few percent of error. These are not drop-in replacements for [math.Exp].

	float32: x in [-87.31, 88.75)
	float64: x in [-708.37, 709.81)

The float64 error is measured against math.Exp up to 709.0, where the
reference itself still returns a finite value. Below that range the result decays through the subnormals to +0; above it the
result saturates at the largest finite value. [Measure] characterizes any
approximation empirically over a chosen domain.

# Preconditions

Inputs must be finite and not NaN. A NaN input yields an unspecified value;
no input ever causes a panic.
*/
package fastexp

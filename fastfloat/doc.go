/*
Package fastfloat provides Float, a value type wrapping a float32 or float64
whose value is promised by the caller to be finite and not NaN.

# Contract

Every operand and every result must be finite and not NaN. The promise is not
checked: validating it on each operation would cost the speed the type exists
to provide. Breaking it never causes a panic or a memory fault in a normal
build; results are then simply numerically meaningless.

For finite operands every operation returns exactly what the corresponding
native operation returns, bit for bit. No operation reorders, compensates or
fuses on its own; [Float.MulAdd] is the explicit fused form.

# Usage

	x := fastfloat.NewF32(1.0)
	acc := fastfloat.Zero[float32]()
	for i := 0; i < 1000; i++ {
		acc = acc.Add(x.MulScalar(0.01).MulScalar(float32(i)))
	}
	mean := acc.DivScalar(1000.0)
	fmt.Println(mean)

Values coming from outside the program can be validated once at the boundary
with [NewChecked] and then used unchecked.

# Debug builds

Building with the fastfloatdebug tag turns the contract into assertions:
construction and every arithmetic result panic with an error wrapping
[ErrNotFinite] as soon as a NaN or infinity appears.

	go test -tags fastfloatdebug ./...

# Approximations

[Float.FastExp] and [Float.FastExp2] use the bit-level approximations of
package fastexp and carry their few-percent error.
*/
package fastfloat

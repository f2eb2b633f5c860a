package fastfloat_test

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-fastfloat/fastfloat"
)

func Example() {
	one := fastfloat.NewF32(1.0)
	acc := fastfloat.Zero[float32]()
	for i := 0; i < 1000; i++ {
		acc = acc.Add(one.MulScalar(0.01).MulScalar(float32(i)))
	}
	mean := acc.DivScalar(1000.0)

	fmt.Printf("%.2f\n", mean)

	// Output:
	// 4.99
}

func ExampleSum() {
	xs := []fastfloat.F64{
		fastfloat.NewF64(0.5),
		fastfloat.NewF64(1.25),
		fastfloat.F64From(2),
	}
	fmt.Println(fastfloat.Sum(xs))

	// Output:
	// 3.75
}

func ExampleNewChecked() {
	if _, err := fastfloat.NewChecked(float32(1) / float32(zero())); err != nil {
		fmt.Println(err)
	}

	f, _ := fastfloat.NewChecked(2.5)
	fmt.Println(f.MulScalar(2))

	// Output:
	// fastfloat: value is not finite: +Inf
	// 5
}

func ExampleCompare() {
	xs := []fastfloat.F64{fastfloat.NewF64(3), fastfloat.NewF64(-1), fastfloat.NewF64(2)}
	slices.SortFunc(xs, fastfloat.Compare[float64])
	fmt.Println(xs)

	// Output:
	// [-1 2 3]
}

func ExampleFloat_FastExp() {
	x := fastfloat.NewF64(1)
	fmt.Printf("approx %.3f exact %.3f\n", x.FastExp(), x.Exp())

	// Output:
	// approx 2.814 exact 2.718
}

func zero() int { return 0 }

package scl

import stdmath "math"

// This file lifts the standard math functions lane-wise over float vectors.
// Domain issues (sqrt of a negative, log of a non-positive, division by
// zero) propagate as IEEE-754 NaN/Inf per lane; nothing is trapped.

// Sqrt computes the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Sqrt(float64(x)))
	}
	return Vec[T]{data: result}
}

// RSqrt computes the reciprocal square root of each lane.
func RSqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(1 / stdmath.Sqrt(float64(x)))
	}
	return Vec[T]{data: result}
}

// Cbrt computes the cube root of each lane.
func Cbrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Cbrt(float64(x)))
	}
	return Vec[T]{data: result}
}

// Reciprocal computes 1/x for each lane.
func Reciprocal[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = 1 / x
	}
	return Vec[T]{data: result}
}

// Exp computes e**x for each lane.
func Exp[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Exp(float64(x)))
	}
	return Vec[T]{data: result}
}

// Log computes the natural logarithm of each lane.
func Log[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Log(float64(x)))
	}
	return Vec[T]{data: result}
}

// Log2 computes the base-2 logarithm of each lane.
func Log2[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Log2(float64(x)))
	}
	return Vec[T]{data: result}
}

// Log10 computes the base-10 logarithm of each lane.
func Log10[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Log10(float64(x)))
	}
	return Vec[T]{data: result}
}

// Sin computes the sine of each lane.
func Sin[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Sin(float64(x)))
	}
	return Vec[T]{data: result}
}

// Cos computes the cosine of each lane.
func Cos[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Cos(float64(x)))
	}
	return Vec[T]{data: result}
}

// Tan computes the tangent of each lane.
func Tan[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Tan(float64(x)))
	}
	return Vec[T]{data: result}
}

// Asin computes the arcsine of each lane.
func Asin[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Asin(float64(x)))
	}
	return Vec[T]{data: result}
}

// Acos computes the arccosine of each lane.
func Acos[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Acos(float64(x)))
	}
	return Vec[T]{data: result}
}

// Atan computes the arctangent of each lane.
func Atan[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Atan(float64(x)))
	}
	return Vec[T]{data: result}
}

// Sinh computes the hyperbolic sine of each lane.
func Sinh[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Sinh(float64(x)))
	}
	return Vec[T]{data: result}
}

// Cosh computes the hyperbolic cosine of each lane.
func Cosh[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Cosh(float64(x)))
	}
	return Vec[T]{data: result}
}

// Tanh computes the hyperbolic tangent of each lane.
func Tanh[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Tanh(float64(x)))
	}
	return Vec[T]{data: result}
}

// Asinh computes the inverse hyperbolic sine of each lane.
func Asinh[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Asinh(float64(x)))
	}
	return Vec[T]{data: result}
}

// Acosh computes the inverse hyperbolic cosine of each lane.
func Acosh[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Acosh(float64(x)))
	}
	return Vec[T]{data: result}
}

// Atanh computes the inverse hyperbolic tangent of each lane.
func Atanh[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Atanh(float64(x)))
	}
	return Vec[T]{data: result}
}

// Pow raises lane i of v to lane i of exp.
func Pow[T Floats](v, exp Vec[T]) Vec[T] {
	checkSameLanes("Pow", len(v.data), len(exp.data))
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Pow(float64(x), float64(exp.data[i])))
	}
	return Vec[T]{data: result}
}

// PowScalar raises every lane to the power s.
func PowScalar[T Floats](v Vec[T], s T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Pow(float64(x), float64(s)))
	}
	return Vec[T]{data: result}
}

// Hypot computes sqrt(a*a + b*b) per lane without undue overflow.
func Hypot[T Floats](a, b Vec[T]) Vec[T] {
	checkSameLanes("Hypot", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i, x := range a.data {
		result[i] = T(stdmath.Hypot(float64(x), float64(b.data[i])))
	}
	return Vec[T]{data: result}
}

// Remainder computes the IEEE-754 floating-point remainder per lane.
func Remainder[T Floats](a, b Vec[T]) Vec[T] {
	checkSameLanes("Remainder", len(a.data), len(b.data))
	result := make([]T, len(a.data))
	for i, x := range a.data {
		result[i] = T(stdmath.Remainder(float64(x), float64(b.data[i])))
	}
	return Vec[T]{data: result}
}

// Round rounds each lane to the nearest integer, halves away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Round(float64(x)))
	}
	return Vec[T]{data: result}
}

// NearbyInt rounds each lane to the nearest integer, halves to even.
func NearbyInt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.RoundToEven(float64(x)))
	}
	return Vec[T]{data: result}
}

// Ceil rounds each lane up toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Ceil(float64(x)))
	}
	return Vec[T]{data: result}
}

// Floor rounds each lane down toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Floor(float64(x)))
	}
	return Vec[T]{data: result}
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(stdmath.Trunc(float64(x)))
	}
	return Vec[T]{data: result}
}

// Sign returns +1, 0 or -1 per lane according to the lane's sign.
func Sign[T interface{ SignedInts | Floats }](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		switch {
		case x > 0:
			result[i] = 1
		case x < 0:
			result[i] = -1
		default:
			result[i] = 0
		}
	}
	return Vec[T]{data: result}
}

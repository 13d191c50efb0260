package scl

// Convert performs a per-lane numeric conversion from element type From to
// element type To, preserving the width. Conversions follow Go's numeric
// conversion rules: float-to-int truncates toward zero, narrowing integer
// conversions wrap.
func Convert[To Lanes, From Lanes](v Vec[From]) Vec[To] {
	result := make([]To, len(v.data))
	for i, x := range v.data {
		result[i] = To(x)
	}
	return Vec[To]{data: result}
}

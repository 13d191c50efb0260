package scl

// This file provides mask-guarded bridges between vectors and caller-owned
// buffers.

// MaskLoad loads data from src only for lanes where the mask is true.
// Inactive lanes are zero. The caller guarantees len(src) >= mask width.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	result := make([]T, len(mask.bits))
	for i := range result {
		if mask.bits[i] {
			result[i] = src[i]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}

// BlendedStore stores lanes from v to dst only where mask is true,
// explicitly preserving existing values in dst where mask is false.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	checkSameLanes("BlendedStore", len(mask.bits), len(v.data))
	for i := range v.data {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
		// else: dst[i] unchanged (the "blend" part)
	}
}

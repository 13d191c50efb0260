package scl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecString(t *testing.T) {
	assert.Equal(t, "{1, 2, 3}", Of[int32](1, 2, 3).String())
	assert.Equal(t, "{1.5, -2}", Of[float64](1.5, -2).String())
	assert.Equal(t, "{7}", Of[uint8](7).String())
}

func TestMaskString(t *testing.T) {
	m := MaskFromBits[int32](4, 0b0101)
	assert.Equal(t, "{1, 0, 1, 0}", m.String())
}

func TestVecScan(t *testing.T) {
	v := New[int32](3)
	n, err := fmt.Sscan("10 -20 30", &v)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int32{10, -20, 30}, v.Data())
}

func TestVecScanFloat(t *testing.T) {
	v := New[float64](2)
	_, err := fmt.Sscan("1.5 -0.25", &v)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -0.25}, v.Data())
}

func TestVecScanRoundTrip(t *testing.T) {
	orig := Of[int64](-4, 0, 9, 12)
	v := New[int64](orig.NumLanes())

	_, err := fmt.Sscan(fmt.Sprint(orig.Data()[0], orig.Data()[1], orig.Data()[2], orig.Data()[3]), &v)
	require.NoError(t, err)
	assert.Equal(t, orig.Data(), v.Data())
}

func TestVecScanLeavesCopiesIndependent(t *testing.T) {
	a := New[int32](2)
	b := a

	_, err := fmt.Sscan("5 6", &b)
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 6}, b.Data())
	assert.Equal(t, []int32{0, 0}, a.Data())
}

func TestVecScanShortInput(t *testing.T) {
	v := New[int32](4)
	_, err := fmt.Sscan("1 2", &v)
	assert.Error(t, err)
}

// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package spirv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfToFloat(t *testing.T) {
	tests := []struct {
		bits uint16
		want float32
	}{
		{0x0000, 0},
		{0x3C00, 1},
		{0xBC00, -1},
		{0x4000, 2},
		{0x3800, 0.5},
		{0x4248, 3.140625},
		{0x7BFF, 65504},
		{0x0400, 6.103515625e-05},  // Smallest normal
		{0x0001, 5.960464477539063e-08}, // Smallest subnormal
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, HalfToFloat(tt.bits), "bits %#04x", tt.bits)
	}
}

func TestHalfToFloatSpecials(t *testing.T) {
	require.True(t, math.IsInf(float64(HalfToFloat(0x7C00)), 1))
	require.True(t, math.IsInf(float64(HalfToFloat(0xFC00)), -1))
	require.True(t, math.IsNaN(float64(HalfToFloat(0x7E00))))
	require.True(t, math.Signbit(float64(HalfToFloat(0x8000))))
}

func TestHalfFromFloatRoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 2, 0.5, 3.140625, 65504, 6.103515625e-05}
	for _, v := range values {
		require.Equal(t, v, HalfToFloat(HalfFromFloat(v)), "value %g", v)
	}
}

func TestHalfFromFloatOverflow(t *testing.T) {
	require.Equal(t, uint16(0x7C00), HalfFromFloat(1e10))
	require.Equal(t, uint16(0xFC00), HalfFromFloat(-1e10))
	require.Equal(t, uint16(0x7E00), HalfFromFloat(float32(math.NaN())))
}

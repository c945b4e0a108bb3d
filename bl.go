// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"math"
	"math/bits"

	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

// The BL code with shift s scales values down by n = 2^s and assigns the
// resulting magnitude class M to a triangular bucket: the K-th bucket covers
// the classes K(K-1)/2+1 .. K(K+1)/2. The bucket and the position X within it
// are emitted as X-1 ones, K-X+1 zeros, and a terminating one, followed by a
// binary suffix of M+s-1 bits.

// blSplit returns the smallest K with K(K+1)/2 >= m along with the position
// X = m - K(K-1)/2, so 1 <= X <= K. Floating point is exact here since m is
// bounded by the bit width of the value.
func blSplit(m uint) (k, x uint) {
	k = uint(math.Ceil((1+math.Sqrt(float64(1+8*m)))/2)) - 1
	x = m - k*(k-1)/2
	return k, x
}

func encodeBL(buf bitbuf.Buffer, v uint64, s uint) {
	n := uint64(1) << s
	// The magnitude class M is the significant bit count of (v+n-1)>>s,
	// computed with a 65-bit intermediate since v+n-1 may not fit.
	sum, carry := bits.Add64(v, n-1, 0)
	var m uint
	if carry != 0 {
		m = uint(bits.Len64(sum>>s | 1<<(64-s)))
	} else {
		m = uint(bits.Len64(sum >> s))
	}
	k, x := blSplit(m)
	buf.AppendOnes(x - 1)
	buf.AppendZeros(k - x + 1)
	buf.AppendBits(1, 1)
	base := (uint64(1)<<(m-1) - 1) << s
	buf.AppendBits(v-base-1, m+s-1)
}

func decodeBL(src bitbuf.Source, off, width uint, s uint) (uint64, uint) {
	t := src.LeadingOnes(off)
	z := src.LeadingZeros(off + t)
	if z < 0 {
		panicf(errors.Corrupted, "bl: no terminator")
	}
	kt := t + uint(z)
	if kt >= 64 {
		panicf(errors.Corrupted, "bl: value exceeds %d-bit target", width)
	}
	m64 := uint64(kt)*uint64(kt-1)/2 + uint64(t) + 1
	if m64 > 64 {
		panicf(errors.Corrupted, "bl: value exceeds %d-bit target", width)
	}
	m := uint(m64)
	nb := m + s - 1
	if nb > width {
		panicf(errors.Corrupted, "bl: value exceeds %d-bit target", width)
	}
	suf, ok := src.ReadBits(nb, off+kt+1)
	if !ok {
		panicf(errors.Corrupted, "bl: truncated suffix")
	}
	base := (uint64(1)<<(m-1) - 1) << s
	v, c1 := bits.Add64(suf, base, 0)
	v, c2 := bits.Add64(v, 1, 0)
	if c1|c2 != 0 || v > maxOf(width) {
		panicf(errors.Corrupted, "bl: value exceeds %d-bit target", width)
	}
	return v, kt + 1 + nb
}

func lenBL(v uint64, s uint) uint {
	n := uint64(1) << s
	sum, carry := bits.Add64(v, n-1, 0)
	var m uint
	if carry != 0 {
		m = uint(bits.Len64(sum>>s | 1<<(64-s)))
	} else {
		m = uint(bits.Len64(sum >> s))
	}
	k, _ := blSplit(m)
	return k + m + s
}

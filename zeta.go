// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"math/bits"

	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

// The zeta code of order k groups values into length classes of k bits each.
// For a value with L significant bits, h = ceil(L/k) classes are announced in
// unary, followed by a minimal binary suffix of n-1 or n bits for n = h*k.
// Order 1 degenerates to the gamma code.

func encodeZeta(buf bitbuf.Buffer, v uint64, k uint) {
	l := uint(bits.Len64(v))
	h := (l + k - 1) / k
	n := h * k
	m := n - (k - 1)
	buf.AppendZeros(h - 1)
	buf.AppendBits(1, 1)
	if m >= 64 || v < 1<<m {
		buf.AppendBits(v-(1<<(m-1)), n-1)
	} else {
		buf.AppendBits(v>>1, n-1)
		buf.AppendBits(v&1, 1)
	}
}

func decodeZeta(src bitbuf.Source, off, width uint, k uint) (uint64, uint) {
	z := src.LeadingZeros(off)
	if z < 0 {
		panicf(errors.Corrupted, "zeta: no unary terminator")
	}
	h := uint(z) + 1
	if h == 1 && k == 1 {
		return 1, 1
	}
	if h-1 >= width || (h > 1 && k >= width) {
		panicf(errors.Corrupted, "zeta: value exceeds %d-bit target", width)
	}
	e := (h - 1) * k
	if e >= width {
		panicf(errors.Corrupted, "zeta: value exceeds %d-bit target", width)
	}
	n := h*k - 1
	x, ok := src.ReadBits(n, off+h)
	if !ok {
		panicf(errors.Corrupted, "zeta: truncated suffix")
	}
	y := uint64(1) << e
	if x < y {
		return x | y, h + n
	}
	if x>>(width-1) != 0 {
		panicf(errors.Corrupted, "zeta: value exceeds %d-bit target", width)
	}
	b, ok := src.ReadBits(1, off+h+n)
	if !ok {
		panicf(errors.Corrupted, "zeta: truncated suffix")
	}
	return x<<1 | b, h + n + 1
}

func lenZeta(v uint64, k uint) uint {
	l := uint(bits.Len64(v))
	h := (l + k - 1) / k
	n := h * k
	m := n - (k - 1)
	if m >= 64 || v < 1<<m {
		return h + n - 1
	}
	return h + n
}

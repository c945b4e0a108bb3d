// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"math/bits"

	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

// The gamma codeword for a value with L significant bits is the unary code
// for L (L-1 zeros and a one) followed by the low L-1 bits of the value.
// Since the leading bit of the value is always one, the unary terminator and
// the value share a single AppendBits call of L bits.

func encodeGamma(b bitbuf.Buffer, v uint64) {
	l := uint(bits.Len64(v))
	b.AppendZeros(l - 1)
	b.AppendBits(v, l)
}

func decodeGamma(src bitbuf.Source, off, width uint) (uint64, uint) {
	z := src.LeadingZeros(off)
	if z < 0 {
		panicf(errors.Corrupted, "gamma: no unary terminator")
	}
	h := uint(z) + 1
	if h == 1 {
		return 1, 1
	}
	if h > width {
		panicf(errors.Corrupted, "gamma: value exceeds %d-bit target", width)
	}
	suf, ok := src.ReadBits(h-1, off+h)
	if !ok {
		panicf(errors.Corrupted, "gamma: truncated suffix")
	}
	return suf | 1<<(h-1), 2*h - 1
}

func lenGamma(v uint64) uint {
	return 2*uint(bits.Len64(v)) - 1
}

// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"math/bits"

	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

// The delta codeword encodes the significant bit count L with gamma and then
// emits the low L-1 bits of the value.

func encodeDelta(b bitbuf.Buffer, v uint64) {
	l := uint(bits.Len64(v))
	encodeGamma(b, uint64(l))
	if l > 1 {
		b.AppendBits(v, l-1)
	}
}

func decodeDelta(src bitbuf.Source, off, width uint) (uint64, uint) {
	h64, l := decodeGamma(src, off, 64)
	if h64 == 1 {
		return 1, l
	}
	if h64 > uint64(width) {
		panicf(errors.Corrupted, "delta: value exceeds %d-bit target", width)
	}
	h := uint(h64)
	suf, ok := src.ReadBits(h-1, off+l)
	if !ok {
		panicf(errors.Corrupted, "delta: truncated suffix")
	}
	return suf | 1<<(h-1), l + h - 1
}

func lenDelta(v uint64) uint {
	l := uint(bits.Len64(v))
	return lenGamma(uint64(l)) + l - 1
}

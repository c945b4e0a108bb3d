// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"math/bits"

	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

// The omega codeword is built recursively: while the value exceeds 1, its
// binary representation (which starts with a one bit) is prepended to the
// sequence and the value is replaced by its significant bit count minus one.
// A zero bit terminates the sequence. Each group therefore announces the
// length of the next, and a 64-bit value needs at most four groups.

func encodeOmega(b bitbuf.Buffer, v uint64) {
	var grp [8]struct {
		v uint64
		n uint
	}
	cnt := 0
	for v > 1 {
		l := uint(bits.Len64(v))
		grp[cnt].v, grp[cnt].n = v, l
		cnt++
		v = uint64(l - 1)
	}
	for i := cnt - 1; i >= 0; i-- {
		b.AppendBits(grp[i].v, grp[i].n)
	}
	b.AppendZeros(1)
}

func decodeOmega(src bitbuf.Source, off, width uint) (uint64, uint) {
	x := uint64(1)
	n := uint(0)
	for {
		b, ok := src.ReadBits(1, off+n)
		if !ok {
			panicf(errors.Corrupted, "omega: truncated group")
		}
		n++
		if b == 0 {
			return x, n
		}
		if x >= uint64(width) {
			panicf(errors.Corrupted, "omega: value exceeds %d-bit target", width)
		}
		r, ok := src.ReadBits(uint(x), off+n)
		if !ok {
			panicf(errors.Corrupted, "omega: truncated group")
		}
		n += uint(x)
		x = r | 1<<x
	}
}

func lenOmega(v uint64) uint {
	n := uint(1)
	for v > 1 {
		l := uint(bits.Len64(v))
		n += l
		v = uint64(l - 1)
	}
	return n
}

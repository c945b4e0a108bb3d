// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"math/bits"

	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

// The Fibonacci codeword writes the Zeckendorf representation of the value
// over the sequence F(1)=1, F(2)=2, F(i)=F(i-1)+F(i-2), emitting the bit for
// F(1) first, and appends a final one bit. Since no Zeckendorf representation
// uses adjacent terms, the terminator forms the only pair of consecutive
// one bits.

// fibTab holds the Fibonacci numbers representable in 64 bits.
var fibTab []uint64

func init() {
	a, b := uint64(0), uint64(1)
	for {
		s, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			break
		}
		a, b = b, s
		fibTab = append(fibTab, s)
	}
}

func encodeFibonacci(b bitbuf.Buffer, v uint64) {
	k := len(fibTab) - 1
	for fibTab[k] > v {
		k--
	}
	var sel [96]bool
	rem := v
	for i := k; i >= 0 && rem > 0; i-- {
		if fibTab[i] <= rem {
			rem -= fibTab[i]
			sel[i] = true
		}
	}
	for i := 0; i <= k; i++ {
		if sel[i] {
			b.AppendOnes(1)
		} else {
			b.AppendZeros(1)
		}
	}
	b.AppendOnes(1)
}

func decodeFibonacci(src bitbuf.Source, off, width uint) (uint64, uint) {
	maxVal := maxOf(width)
	var sum uint64
	a, b := uint64(0), uint64(1)
	sat := false
	prev := false
	for n := uint(0); ; {
		bit, ok := src.ReadBits(1, off+n)
		if !ok {
			panicf(errors.Corrupted, "fibonacci: missing terminator")
		}
		n++
		s, carry := bits.Add64(a, b, 0)
		a, b = b, s
		sat = sat || carry != 0
		if bit == 0 {
			prev = false
			continue
		}
		if prev {
			return sum, n
		}
		if sat || b > maxVal || sum > maxVal-b {
			panicf(errors.Corrupted, "fibonacci: value exceeds %d-bit target", width)
		}
		sum += b
		prev = true
	}
}

func lenFibonacci(v uint64) uint {
	k := len(fibTab) - 1
	for fibTab[k] > v {
		k--
	}
	return uint(k) + 2
}

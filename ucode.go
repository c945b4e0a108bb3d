// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ucode implements universal codes for unsigned integers.
//
// A universal code is a prefix-free mapping from the positive integers to
// variable-length bit strings in which smaller integers receive shorter
// codewords. Such codes serve as self-delimiting integer encodings: multiple
// codewords may be concatenated with no separator and decoded back by
// scanning bits in order.
//
// Six codes are provided: the Elias gamma, delta, and omega codes, the
// Fibonacci code, the zeta codes of order k, and the BL codes with shift S.
// Zeta(1) produces bit-for-bit the same codewords as Gamma. Larger zeta
// orders and BL shifts favor distributions with heavier tails.
//
// Codewords are written to and read from the bit buffers of package bitbuf,
// so the caller chooses both the storage shape (a fixed-width word, an
// arbitrary-precision integer, or a growable array of words) and the bit
// packing order (MSB-first or LSB-first).
//
// References:
//	P. Elias, "Universal codeword sets and representations of the integers" (1975)
//	A. Fraenkel, S. Klein, "Robust universal complete codes for transmission and compression" (1996)
//	P. Boldi, S. Vigna, "Codes for the World Wide Web" (2005)
package ucode

import (
	"fmt"
	"math/bits"

	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

type form uint8

const (
	formGamma form = iota
	formDelta
	formOmega
	formFibonacci
	formZeta
	formBL
)

// Code identifies a universal code together with its parameters.
// The zero Code is the gamma code.
type Code struct {
	form form
	num  uint
}

// Gamma, Delta, Omega, and Fibonacci are the parameter-free codes.
var (
	Gamma     = Code{form: formGamma}
	Delta     = Code{form: formDelta}
	Omega     = Code{form: formOmega}
	Fibonacci = Code{form: formFibonacci}
)

// Zeta returns the zeta code of order k. The order must be at least 1;
// operations using a zeta code of order 0 fail.
func Zeta(k uint) Code { return Code{form: formZeta, num: k} }

// BL returns the BL code with shift s. Shifts of 64 and above cannot produce
// codewords for any 64-bit value, so operations using them fail.
func BL(s uint) Code { return Code{form: formBL, num: s} }

func (c Code) valid() bool {
	switch c.form {
	case formZeta:
		return c.num >= 1
	case formBL:
		return c.num < 64
	default:
		return c.form <= formFibonacci
	}
}

func (c Code) String() string {
	switch c.form {
	case formGamma:
		return "Gamma"
	case formDelta:
		return "Delta"
	case formOmega:
		return "Omega"
	case formFibonacci:
		return "Fibonacci"
	case formZeta:
		return fmt.Sprintf("Zeta(%d)", c.num)
	case formBL:
		return fmt.Sprintf("BL(%d)", c.num)
	default:
		return "Code(?)"
	}
}

// numBits reports the bit width of T.
func numBits[T bitbuf.Uint]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// maxOf returns the largest value representable in w bits.
func maxOf(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

func errorf(code int, f string, v ...interface{}) error {
	return errors.Error{Code: code, Pkg: "ucode", Msg: fmt.Sprintf(f, v...)}
}

func panicf(code int, f string, v ...interface{}) {
	errors.Panic(errorf(code, f, v...))
}

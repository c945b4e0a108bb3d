// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import "github.com/dsnet/ucode/bitbuf"

// EncodeInto appends the codeword for v under code c to buf.
// It reports false if v is zero, if c is invalid, or if buf overflows.
// After an overflow the contents of buf are unspecified and must not be
// decoded.
func EncodeInto(buf bitbuf.Buffer, c Code, v uint64) bool {
	if v == 0 || !c.valid() || !buf.Valid() {
		return false
	}
	switch c.form {
	case formGamma:
		encodeGamma(buf, v)
	case formDelta:
		encodeDelta(buf, v)
	case formOmega:
		encodeOmega(buf, v)
	case formFibonacci:
		encodeFibonacci(buf, v)
	case formZeta:
		encodeZeta(buf, v, c.num)
	case formBL:
		encodeBL(buf, v, c.num)
	}
	return buf.Valid()
}

// Encode encodes v under code c into a fresh array-backed buffer with
// elements of type T and reports the storage slice along with the number of
// bits used. A bit count of zero signals failure.
func Encode[T bitbuf.Uint](ord bitbuf.Order, c Code, v uint64) ([]T, uint) {
	buf := bitbuf.NewArray[T](ord)
	if !EncodeInto(buf, c, v) {
		return nil, 0
	}
	return buf.Uints(), buf.BitLen()
}

// Len reports the length in bits of the codeword for v under code c,
// without encoding. It reports 0 if v cannot be encoded.
func Len(c Code, v uint64) uint {
	if v == 0 || !c.valid() {
		return 0
	}
	switch c.form {
	case formGamma:
		return lenGamma(v)
	case formDelta:
		return lenDelta(v)
	case formOmega:
		return lenOmega(v)
	case formFibonacci:
		return lenFibonacci(v)
	case formZeta:
		return lenZeta(v, c.num)
	case formBL:
		return lenBL(v, c.num)
	}
	return 0
}

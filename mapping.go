// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"math"

	"github.com/dsnet/ucode/bitbuf"
)

// The codes operate on positive integers only. The helpers below extend them
// to the full unsigned and signed domains: unsigned values shift up by one,
// and signed values interleave as 0,-1,+1,-2,+2,... onto 1,2,3,4,5,...
// (the zigzag mapping).

// Int is the set of signed types accepted by DecodeSigned.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// EncodeUnsignedInto appends the codeword for v+1 to buf.
// It reports false for the maximum uint64, which has no mapping.
func EncodeUnsignedInto(buf bitbuf.Buffer, c Code, v uint64) bool {
	if v == math.MaxUint64 {
		return false
	}
	return EncodeInto(buf, c, v+1)
}

// DecodeUnsigned reverses EncodeUnsignedInto.
// A bit count of zero signals failure, including values that do not fit in T.
func DecodeUnsigned[T bitbuf.Uint](c Code, src bitbuf.Source, off uint) (T, uint) {
	u, n := Decode[uint64](c, src, off)
	if n == 0 {
		return 0, 0
	}
	v := u - 1
	if uint64(T(v)) != v {
		return 0, 0
	}
	return T(v), n
}

// EncodeUnsigned is the allocating form of EncodeUnsignedInto.
func EncodeUnsigned[T bitbuf.Uint](ord bitbuf.Order, c Code, v uint64) ([]T, uint) {
	buf := bitbuf.NewArray[T](ord)
	if !EncodeUnsignedInto(buf, c, v) {
		return nil, 0
	}
	return buf.Uints(), buf.BitLen()
}

// EncodeSignedInto appends the codeword for the zigzag mapping of v to buf.
// It reports false for the minimum int64, whose negation overflows.
func EncodeSignedInto(buf bitbuf.Buffer, c Code, v int64) bool {
	if v == math.MinInt64 {
		return false
	}
	var u uint64
	if v >= 0 {
		u = 2*uint64(v) + 1
	} else {
		u = 2 * uint64(-v)
	}
	return EncodeInto(buf, c, u)
}

// EncodeSigned is the allocating form of EncodeSignedInto.
func EncodeSigned[T bitbuf.Uint](ord bitbuf.Order, c Code, v int64) ([]T, uint) {
	buf := bitbuf.NewArray[T](ord)
	if !EncodeSignedInto(buf, c, v) {
		return nil, 0
	}
	return buf.Uints(), buf.BitLen()
}

// DecodeSigned reverses EncodeSignedInto.
// A bit count of zero signals failure, including values that do not fit in T.
func DecodeSigned[T Int](c Code, src bitbuf.Source, off uint) (T, uint) {
	u, n := Decode[uint64](c, src, off)
	if n == 0 {
		return 0, 0
	}
	var v int64
	if u&1 != 0 {
		v = int64((u - 1) / 2)
	} else {
		v = -int64(u / 2)
	}
	if int64(T(v)) != v {
		return 0, 0
	}
	return T(v), n
}

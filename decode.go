// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"github.com/dsnet/ucode/bitbuf"
	"github.com/dsnet/ucode/internal/errors"
)

// Decode reads one codeword under code c from src starting at bit offset off
// and returns the decoded value along with the number of bits consumed.
// A bit count of zero signals failure: there is no terminating one bit before
// the end of src, the codeword is structurally invalid, or the value does not
// fit in T.
func Decode[T bitbuf.Uint](c Code, src bitbuf.Source, off uint) (T, uint) {
	v, n, err := decode(c, src, off, numBits[T]())
	if err != nil {
		return 0, 0
	}
	return T(v), n
}

// decode dispatches on the code form. The per-code decoders panic with an
// errors.Error on any failure; Recover converts that into err here, at the
// boundary.
func decode(c Code, src bitbuf.Source, off, width uint) (v uint64, n uint, err error) {
	defer errors.Recover(&err)
	if !c.valid() {
		panicf(errors.Invalid, "invalid code descriptor: %v", c)
	}
	switch c.form {
	case formGamma:
		v, n = decodeGamma(src, off, width)
	case formDelta:
		v, n = decodeDelta(src, off, width)
	case formOmega:
		v, n = decodeOmega(src, off, width)
	case formFibonacci:
		v, n = decodeFibonacci(src, off, width)
	case formZeta:
		v, n = decodeZeta(src, off, width, c.num)
	case formBL:
		v, n = decodeBL(src, off, width, c.num)
	default:
		panicf(errors.Invalid, "unknown code form")
	}
	return v, n, nil
}

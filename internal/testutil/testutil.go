// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

// ParseBits decodes a bit string like "0000 11101" into the value formed by
// reading the bits MSB-first, along with the bit count. Spaces and
// underscores may be used to group digits. The bit count is limited to 64.
func ParseBits(s string) (v uint64, n uint, ok bool) {
	for _, c := range s {
		switch c {
		case '0', '1':
			if n == 64 {
				return 0, 0, false
			}
			v = v<<1 | uint64(c-'0')
			n++
		case ' ', '_':
		default:
			return 0, 0, false
		}
	}
	return v, n, true
}

// MustParseBits must decode a bit string or else panics.
func MustParseBits(s string) (uint64, uint) {
	v, n, ok := ParseBits(s)
	if !ok {
		panic("testutil: invalid bit string: " + s)
	}
	return v, n
}

// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from math/rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Uint64() uint64 {
	r.Encrypt(r.blk[:], r.blk[:])
	return binary.LittleEndian.Uint64(r.blk[:8])
}

func (r *Rand) Int() int {
	return int(r.Uint64() &^ (1 << 63))
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Uint64n returns a value in [1, max], biased toward short bit lengths so
// that sweeps exercise every codeword length class.
func (r *Rand) Uint64n(max uint64) uint64 {
	w := uint(r.Intn(64)) + 1
	v := r.Uint64() >> (64 - w)
	for v > max {
		v >>= 1
	}
	if v == 0 {
		v = 1
	}
	return v
}

// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitbuf

import (
	"testing"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/ucode/internal/testutil"
)

// op is a single append instruction: zeros, ones, or explicit bits.
type op struct {
	kind byte // 'z', 'o', or 'b'
	v    uint64
	n    uint
}

func z(n uint) op           { return op{kind: 'z', n: n} }
func o(n uint) op           { return op{kind: 'o', n: n} }
func b(v uint64, n uint) op { return op{kind: 'b', v: v, n: n} }

func apply(buf Buffer, ops []op) {
	for _, op := range ops {
		switch op.kind {
		case 'z':
			buf.AppendZeros(op.n)
		case 'o':
			buf.AppendOnes(op.n)
		case 'b':
			buf.AppendBits(op.v, op.n)
		}
	}
}

// each returns a fresh buffer of every storage shape.
func each(ord Order) map[string]Buffer {
	return map[string]Buffer{
		"Word[uint64]":  NewWord[uint64](ord),
		"Word[uint]":    NewWord[uint](ord),
		"Big":           NewBig(ord),
		"Array[uint8]":  NewArray[uint8](ord),
		"Array[uint16]": NewArray[uint16](ord),
		"Array[uint32]": NewArray[uint32](ord),
		"Array[uint64]": NewArray[uint64](ord),
	}
}

// TestAppend checks that every storage shape under both orders produces the
// same logical bit sequence for the same sequence of appends.
func TestAppend(t *testing.T) {
	vectors := []struct {
		desc   string
		ops    []op
		output string // Logical bit sequence in write order
	}{{
		desc:   "empty",
		ops:    nil,
		output: "",
	}, {
		desc:   "single one",
		ops:    []op{o(1)},
		output: "1",
	}, {
		desc:   "single zero",
		ops:    []op{z(1)},
		output: "0",
	}, {
		desc:   "bit runs",
		ops:    []op{o(3), z(2), o(1)},
		output: "111001",
	}, {
		desc:   "explicit bits",
		ops:    []op{b(0x5, 3), b(0x1, 2)},
		output: "10101",
	}, {
		desc:   "leading zero bits",
		ops:    []op{b(0x1, 5)},
		output: "00001",
	}, {
		desc:   "element crossing",
		ops:    []op{z(3), o(10), b(0xaf, 8)},
		output: "000111111111110101111",
	}, {
		desc:   "64-bit append",
		ops:    []op{b(0xfedcba9876543210, 64)},
		output: "1111111011011100101110101001100001110110010101000011001000010000",
	}, {
		desc:   "wide append with implied zeros",
		ops:    []op{b(0x3, 70)},
		output: "0000000000000000000000000000000000000000000000000000000000000000000011",
	}, {
		desc:   "long zero run",
		ops:    []op{z(70), o(1)},
		output: "00000000000000000000000000000000000000000000000000000000000000000000001",
	}}

	for _, v := range vectors {
		for _, ord := range []Order{MSBFirst, LSBFirst} {
			for name, buf := range each(ord) {
				if name[:4] == "Word" && len(v.output) > 64 {
					continue
				}
				apply(buf, v.ops)
				if !buf.Valid() {
					t.Errorf("%s (%v, %s): buffer unexpectedly invalid", v.desc, ord, name)
					continue
				}
				if got := buf.BitLen(); got != uint(len(v.output)) {
					t.Errorf("%s (%v, %s): BitLen() = %d, want %d", v.desc, ord, name, got, len(v.output))
				}
				if got := format(buf); got != v.output {
					t.Errorf("%s (%v, %s): output mismatch:\ngot  %s\nwant %s", v.desc, ord, name, got, v.output)
				}
			}
		}
	}
}

// TestPacking checks the storage-level bit placement rules directly.
func TestPacking(t *testing.T) {
	t.Run("WordMSB", func(t *testing.T) {
		w := NewWord[uint8](MSBFirst)
		apply(w, []op{o(1), z(1), b(0x3, 2)})
		if w.Uint() != 0xb || w.BitLen() != 4 {
			t.Errorf("Uint() = %#x (%d bits), want 0xb (4 bits)", w.Uint(), w.BitLen())
		}
	})
	t.Run("WordLSB", func(t *testing.T) {
		w := NewWord[uint8](LSBFirst)
		apply(w, []op{o(1), z(1), b(0x3, 2)})
		if w.Uint() != 0xd || w.BitLen() != 4 {
			t.Errorf("Uint() = %#x (%d bits), want 0xd (4 bits)", w.Uint(), w.BitLen())
		}
	})
	t.Run("ArrayMSB", func(t *testing.T) {
		a := NewArray[uint8](MSBFirst)
		a.AppendBits(0xaf5, 12)
		if got := a.Uints(); len(got) != 2 || got[0] != 0xaf || got[1] != 0x50 {
			t.Errorf("Uints() = %#x, want [0xaf 0x50]", got)
		}
	})
	t.Run("ArrayLSB", func(t *testing.T) {
		a := NewArray[uint8](LSBFirst)
		a.AppendBits(0xaf5, 12)
		if got := a.Uints(); len(got) != 2 || got[0] != 0xf5 || got[1] != 0x0a {
			t.Errorf("Uints() = %#x, want [0xf5 0x0a]", got)
		}
	})
	t.Run("ArrayOnesMasked", func(t *testing.T) {
		// The unused low (MSB) or high (LSB) bits of the last element must
		// remain zero after AppendOnes.
		a := NewArray[uint8](MSBFirst)
		apply(a, []op{z(3), o(10)})
		if got := a.Uints(); len(got) != 2 || got[0] != 0x1f || got[1] != 0xf8 {
			t.Errorf("MSB Uints() = %#x, want [0x1f 0xf8]", got)
		}
		a = NewArray[uint8](LSBFirst)
		apply(a, []op{z(3), o(10)})
		if got := a.Uints(); len(got) != 2 || got[0] != 0xf8 || got[1] != 0x1f {
			t.Errorf("LSB Uints() = %#x, want [0xf8 0x1f]", got)
		}
	})
	t.Run("BigMSB", func(t *testing.T) {
		bb := NewBig(MSBFirst)
		apply(bb, []op{o(1), z(1), b(0x3, 2)})
		if bb.Int().Uint64() != 0xb {
			t.Errorf("Int() = %#x, want 0xb", bb.Int().Uint64())
		}
	})
}

// TestReversal checks that an LSB-first word is the numeric bit reversal of
// the MSB-first word for the same appends.
func TestReversal(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 100; i++ {
		n := uint(rand.Intn(16)) + 1
		v := rand.Uint64() & (1<<n - 1)
		mw := NewWord[uint16](MSBFirst)
		lw := NewWord[uint16](LSBFirst)
		mw.AppendBits(v, n)
		lw.AppendBits(v, n)
		var rev uint16
		for j := uint(0); j < n; j++ {
			rev |= uint16(mw.Uint()>>j&1) << (n - 1 - j)
		}
		if lw.Uint() != rev {
			t.Errorf("AppendBits(%#x, %d): LSB word = %#x, want reversal %#x", v, n, lw.Uint(), rev)
		}
	}
}

func TestReadBits(t *testing.T) {
	vectors := []struct {
		desc string
		ops  []op
		n    uint
		off  uint
		v    uint64
		ok   bool
	}{
		{"middle slice", []op{b(0x1ed, 9)}, 5, 2, 0x1b, true},
		{"full read", []op{b(0x1ed, 9)}, 9, 0, 0x1ed, true},
		{"empty read", []op{b(0x1ed, 9)}, 0, 9, 0, true},
		{"past end", []op{b(0x1ed, 9)}, 2, 8, 0, false},
		{"offset past end", []op{b(0x1ed, 9)}, 1, 10, 0, false},
		{"wide read of zeros", []op{z(66), o(2)}, 68, 0, 0x3, true},
		{"wide read overflow", []op{o(68)}, 68, 0, 0, false},
		{"element crossing", []op{b(0xabcd, 16), b(0x1234, 16)}, 16, 8, 0xcd12, true},
	}

	for _, v := range vectors {
		for _, ord := range []Order{MSBFirst, LSBFirst} {
			for name, buf := range each(ord) {
				if name[:4] == "Word" {
					continue // Not enough width for the wide vectors
				}
				apply(buf, v.ops)
				got, ok := buf.ReadBits(v.n, v.off)
				if ok != v.ok || (ok && got != v.v) {
					t.Errorf("%s (%v, %s): ReadBits(%d, %d) = (%#x, %v), want (%#x, %v)",
						v.desc, ord, name, v.n, v.off, got, ok, v.v, v.ok)
				}
			}
		}
	}
}

func TestLeadingRuns(t *testing.T) {
	vectors := []struct {
		desc  string
		ops   []op
		off   uint
		zeros int // Expected LeadingZeros
		ones  uint
	}{
		{"empty", nil, 0, -1, 0},
		{"all zeros", []op{z(20)}, 0, -1, 0},
		{"all ones", []op{o(20)}, 0, 0, 20},
		{"zeros then one", []op{z(9), o(1)}, 0, 9, 0},
		{"offset into zeros", []op{z(9), o(1)}, 3, 6, 0},
		{"offset at one", []op{z(9), o(3)}, 9, 0, 3},
		{"ones to end", []op{z(2), o(17)}, 2, 0, 17},
		{"long zero run", []op{z(130), o(1)}, 0, 130, 0},
		{"long one run", []op{o(130)}, 1, 0, 129},
		{"run after offset", []op{b(0x5, 3), z(70), o(2)}, 3, 70, 0},
	}

	for _, v := range vectors {
		for _, ord := range []Order{MSBFirst, LSBFirst} {
			for name, buf := range each(ord) {
				if name[:4] == "Word" {
					continue
				}
				apply(buf, v.ops)
				if got := buf.LeadingZeros(v.off); got != v.zeros {
					t.Errorf("%s (%v, %s): LeadingZeros(%d) = %d, want %d", v.desc, ord, name, v.off, got, v.zeros)
				}
				if got := buf.LeadingOnes(v.off); got != v.ones {
					t.Errorf("%s (%v, %s): LeadingOnes(%d) = %d, want %d", v.desc, ord, name, v.off, got, v.ones)
				}
			}
		}
	}
}

// TestWordRuns covers the fixed-width shapes, whose run scans have dedicated
// bit-twiddling paths.
func TestWordRuns(t *testing.T) {
	for _, ord := range []Order{MSBFirst, LSBFirst} {
		w := NewWord[uint32](ord)
		apply(w, []op{z(5), o(3), z(2)})
		if got := w.LeadingZeros(0); got != 5 {
			t.Errorf("(%v): LeadingZeros(0) = %d, want 5", ord, got)
		}
		if got := w.LeadingOnes(5); got != 3 {
			t.Errorf("(%v): LeadingOnes(5) = %d, want 3", ord, got)
		}
		if got := w.LeadingZeros(8); got != -1 {
			t.Errorf("(%v): LeadingZeros(8) = %d, want -1", ord, got)
		}
		if got := w.LeadingOnes(10); got != 0 {
			t.Errorf("(%v): LeadingOnes(10) = %d, want 0", ord, got)
		}
	}
}

func TestOverflow(t *testing.T) {
	w := NewWord[uint8](MSBFirst)
	w.AppendOnes(6)
	if !w.Valid() {
		t.Fatalf("Valid() = false before overflow")
	}
	w.AppendBits(0x7, 3)
	if w.Valid() {
		t.Errorf("Valid() = true after appending 9 bits to uint8 word")
	}
	if _, ok := w.ReadBits(1, 0); ok {
		t.Errorf("ReadBits succeeded on invalid buffer")
	}
	if got := w.LeadingZeros(0); got != -1 {
		t.Errorf("LeadingZeros(0) = %d on invalid buffer, want -1", got)
	}
}

func TestWrap(t *testing.T) {
	w := WrapWord[uint8](MSBFirst, 0x1d, 8)
	if got := format(w); got != "00011101" {
		t.Errorf("WrapWord: bits = %s, want 00011101", got)
	}
	a := WrapArray[uint8](LSBFirst, []uint8{0x70, 0x01})
	if got := format(a); got != "0000111010000000" {
		t.Errorf("WrapArray: bits = %s, want 0000111010000000", got)
	}
}

// TestAgainstReference checks the LSB-first byte-array shape against an
// independent bit writer over random append sequences.
func TestAgainstReference(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 200; i++ {
		a := NewArray[uint8](LSBFirst)
		bb := bits.NewBuffer(nil)
		for j := rand.Intn(16); j >= 0; j-- {
			n := uint(rand.Intn(24)) + 1
			v := rand.Uint64() & (1<<n - 1)
			a.AppendBits(v, n)
			for k := int(n) - 1; k >= 0; k-- {
				bb.WriteBit(v&(1<<uint(k)) != 0)
			}
		}
		want := bb.Bytes()
		got := a.Uints()
		if len(got) != len(want) {
			t.Fatalf("trial %d: length mismatch: got %d bytes, want %d", i, len(got), len(want))
		}
		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("trial %d: byte %d = %#x, want %#x", i, j, got[j], want[j])
			}
		}
	}
}

// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Benchmark tool to compare universal codes against each other and against
// varint baselines on synthetic integer distributions.
//
// Example usage:
//	$ go build -o bench .
//	$ ./bench lengths -count 100000 -dists uniform16,zipf
//
//	DISTRIBUTION: uniform16
//		code           total      bits/value  vs varint
//		Gamma         353.92Ki          28.99      1.32x
//		Delta         268.45Ki          21.99      1.00x
//		...
//		varint        268.25Ki          21.97      1.00x
//		...
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dsnet/golib/strconv"
	"github.com/klauspost/compress/flate"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/ucode"
	"github.com/dsnet/ucode/internal/testutil"
)

var codes = []ucode.Code{
	ucode.Gamma, ucode.Delta, ucode.Omega, ucode.Fibonacci,
	ucode.Zeta(2), ucode.Zeta(3), ucode.Zeta(4),
	ucode.BL(0), ucode.BL(2), ucode.BL(4),
}

// A distribution generates positive integers for a code to encode.
type distribution func(r *testutil.Rand) uint64

var dists = map[string]distribution{
	// Uniform over small ranges; favors the short end of every code.
	"uniform8":  func(r *testutil.Rand) uint64 { return uint64(r.Intn(1<<8)) + 1 },
	"uniform16": func(r *testutil.Rand) uint64 { return uint64(r.Intn(1<<16)) + 1 },
	"uniform32": func(r *testutil.Rand) uint64 { return r.Uint64()%(1<<32) + 1 },

	// Uniform over bit lengths; a rough stand-in for power-law data and the
	// regime universal codes are designed for.
	"zipf": func(r *testutil.Rand) uint64 { return r.Uint64n(^uint64(0)) },
}

func main() {
	var count int
	var seed int
	var distList []string

	lengthsCmd := &cobra.Command{
		Use:   "lengths",
		Short: "Compare encoded stream sizes per code and distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range distList {
				dist, ok := dists[name]
				if !ok {
					return fmt.Errorf("unknown distribution: %s", name)
				}
				runLengths(name, dist, count, seed)
			}
			return nil
		},
	}
	lengthsCmd.Flags().IntVar(&count, "count", 1e5, "number of values per distribution")
	lengthsCmd.Flags().IntVar(&seed, "seed", 0, "seed for the value generator")
	lengthsCmd.Flags().StringSliceVar(&distList, "dists",
		[]string{"uniform8", "uniform16", "uniform32", "zipf"}, "distributions to sample")

	rootCmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare universal integer code sizes",
	}
	rootCmd.AddCommand(lengthsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLengths(name string, dist distribution, count, seed int) {
	r := testutil.NewRand(seed)
	vs := make([]uint64, count)
	for i := range vs {
		vs[i] = dist(r)
	}

	// Varint baseline: the stream every code is competing with.
	var varint bytes.Buffer
	var tmp [binary.MaxVarintLen64]byte
	for _, v := range vs {
		varint.Write(tmp[:binary.PutUvarint(tmp[:], v)])
	}
	varintBits := float64(varint.Len()) * 8

	fmt.Printf("DISTRIBUTION: %s\n", name)
	fmt.Printf("\t%-14s %10s %15s %10s\n", "code", "total", "bits/value", "vs varint")
	for _, c := range codes {
		var total uint64
		for _, v := range vs {
			total += uint64(ucode.Len(c, v))
		}
		report(c.String(), float64(total), varintBits, count)
	}
	report("varint", varintBits, varintBits, count)
	report("varint+flate", float64(flateSize(varint.Bytes()))*8, varintBits, count)
	report("varint+xz", float64(xzSize(varint.Bytes()))*8, varintBits, count)
	fmt.Println()
}

func report(name string, bits, varintBits float64, count int) {
	fmt.Printf("\t%-14s %10s %15.2f %9.2fx\n",
		name,
		strconv.FormatPrefix(bits/8, strconv.Base1024, 2),
		bits/float64(count),
		bits/varintBits)
}

func flateSize(data []byte) int {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		panic(err)
	}
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Len()
}

func xzSize(data []byte) int {
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	if err != nil {
		panic(err)
	}
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Len()
}

package main

import (
	"encoding/binary"
	"github.com/p7r0x7/foldhash"
	"math/bits"
	"math/rand"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = uint32(5e4)

type report struct {
	deterministic     bool
	collisions        int
	intBias, randBias float64
}

// meanBias returns the mean absolute deviation of each of the 64 digest bits from being set in
// exactly half of sums, as a percentage of that half. 0% is ideal; 100% means constant bits.
func meanBias(sums []uint64) float64 {
	if len(sums) == 0 {
		return 0
	}
	var tally [64]int
	for _, s := range sums {
		for s != 0 {
			i := bits.TrailingZeros64(s)
			tally[i]++
			s &= s - 1
		}
	}
	half := float64(len(sums)) / 2
	var total float64
	for _, v := range tally {
		d := float64(v) - half
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total / 64 / half * 100
}

// collisions counts digests that repeat an earlier one.
func collisions(sums []uint64) int {
	seen, count := make(map[uint64]struct{}, len(sums)), 0
	for _, s := range sums {
		if _, ok := seen[s]; ok {
			count++
			continue
		}
		seen[s] = struct{}{}
	}
	return count
}

func quality(count uint32) report {
	var r report
	msg, integers, random := make([]byte, 4), make([]uint64, 0, count), make([]uint64, 0, count)
	rBytes := make([]byte, 1024)
	rng := rand.New(rand.NewSource(1))

	r.deterministic = true
	for i := count; i > 0; i-- {
		binary.BigEndian.PutUint32(msg, i)
		a, _ := foldhash.Sum64(msg)
		b, _ := foldhash.Sum64(msg)
		r.deterministic = r.deterministic && a == b
		integers = append(integers, a)

		rng.Read(rBytes)
		rBytes[0] |= 1 /* Keeps the message non-empty as an integer too. */
		s, _ := foldhash.Sum64(rBytes)
		random = append(random, s)
	}
	r.collisions = collisions(integers)
	r.intBias, r.randBias = meanBias(integers), meanBias(random)
	return r
}

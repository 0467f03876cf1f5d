package foldhash

import (
	"encoding/binary"
	"hash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash64 interface.

// Digest buffers everything written to it; the encoding step reads the message as a single
// integer, so no block can be folded before the message is complete.
type Digest struct {
	h     *Hasher
	carry []byte
}

var _ hash.Hash64 = (*Digest)(nil)

func New(opts ...Option) *Digest {
	return &Digest{h: NewHasher(opts...)}
}

func (d *Digest) Size() int { return Size }

// BlockSize reports the byte length that renders to at most one block of decimal digits.
func (d *Digest) BlockSize() int { return 6 } /* 2^48 - 1 has 15 digits. */

func (d *Digest) Write(buf []byte) (int, error) {
	d.carry = append(d.carry, buf...)
	return len(buf), nil
}

func (d *Digest) WriteString(s string) (int, error) {
	d.carry = append(d.carry, s...)
	return len(s), nil
}

// Value returns the digest of everything written so far. Unlike Sum and Sum64 it reports an
// empty or oversized message as an error.
func (d *Digest) Value() (uint64, error) { return d.h.Sum64(d.carry) }

// Sum64 panics if the message is rejected; use Value to receive the error instead.
func (d *Digest) Sum64() uint64 {
	v, err := d.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Sum appends the big-endian digest to b. It panics under the same conditions as Sum64.
func (d *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

func (d *Digest) Reset() {
	for i := range d.carry {
		d.carry[i] = 0
	}
	d.carry = d.carry[:0]
}

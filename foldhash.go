package foldhash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// N.B.: This project is demonstrative. It is NOT a cryptographic hash.
// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The following collection of functions backend the reference Go implementation of the FoldHash
// checksum: a message is read as one large hexadecimal integer, rendered in decimal, cut into
// 16-digit blocks and XOR-folded into a single 64-bit value. It offers no collision resistance,
// no avalanche and no protection against malicious input.

const (
	// Seed is XORed with the first block only.
	Seed uint64 = 6161616161616161
	// BlockDigits is the number of decimal digits per block.
	BlockDigits = 16
	// Size is the byte length of a rendered digest.
	Size = 8
)

var (
	ErrInvalidInput = errors.New("foldhash: invalid input")
	ErrEmptyInput   = errors.New("foldhash: empty input")
	ErrTooLong      = fmt.Errorf("%w: message too long", ErrInvalidInput)
)

// Encode renders msg as lowercase hex, parses that as a base-16 integer and returns the integer
// as a base-10 numeral. An empty message has no hex digits to parse and fails with
// ErrInvalidInput.
func Encode(msg []byte) (string, error) {
	_, dec, err := encode(msg)
	return dec, err
}

// EncodeString is Encode over the UTF-8 bytes of s.
func EncodeString(s string) (string, error) { return Encode([]byte(s)) }

func encode(msg []byte) (string, string, error) {
	if len(msg) == 0 {
		return "", "", fmt.Errorf("%w: Encode: no hex digits in an empty message", ErrInvalidInput)
	}
	hx := hex.EncodeToString(msg)
	n, ok := new(big.Int).SetString(hx, 16)
	if !ok { /* Unreachable for EncodeToString output. */
		return "", "", fmt.Errorf("%w: Encode: malformed hex %q", ErrInvalidInput, hx)
	}
	return hx, n.Text(10), nil
}

// Split cuts digits into BlockDigits-wide blocks, right-padding the last partial block with '0',
// and parses each as a base-10 integer. An empty string yields no blocks.
func Split(digits string) ([]uint64, error) {
	blocks := make([]uint64, 0, (len(digits)+BlockDigits-1)/BlockDigits)
	for len(digits) > 0 {
		chunk := digits
		if len(chunk) >= BlockDigits {
			chunk, digits = digits[:BlockDigits], digits[BlockDigits:]
		} else {
			chunk, digits = chunk+strings.Repeat("0", BlockDigits-len(chunk)), ""
		}
		/* ParseUint accepts a leading '+', which is not a digit. */
		if chunk[0] < '0' || chunk[0] > '9' {
			return nil, fmt.Errorf("%w: Split: non-digit in block %q", ErrInvalidInput, chunk)
		}
		b, err := strconv.ParseUint(chunk, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: Split: block %q: %v", ErrInvalidInput, chunk, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// Fold XORs seed into the first block and every later block into the running value.
func Fold(blocks []uint64, seed uint64) (uint64, error) {
	return fold(blocks, seed, nil)
}

func fold(blocks []uint64, seed uint64, t Tracer) (uint64, error) {
	if len(blocks) == 0 {
		return 0, fmt.Errorf("%w: Fold: no blocks", ErrEmptyInput)
	}
	running := seed ^ blocks[0]
	if t != nil {
		t.Folded(0, running)
	}
	for i, b := range blocks[1:] {
		running ^= b
		if t != nil {
			t.Folded(i+1, running)
		}
	}
	return running, nil
}

// Sum64 returns the digest of msg under Seed.
func Sum64(msg []byte) (uint64, error) { return defaultHasher.Sum64(msg) }

// SumString returns the digest of the UTF-8 bytes of s under Seed.
func SumString(s string) (uint64, error) { return defaultHasher.Sum64([]byte(s)) }

package foldhash

import (
	"encoding/binary"
	"fmt"
	"github.com/aead/chacha20/chacha"
	"strconv"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Rendering of digests, including an extensible output built on ChaCha8.

// Expand stretches sum to n bytes: the keystream of ChaCha8 under key, with the big-endian digest
// as its nonce. With a zero key and n == Size the plain digest bytes are returned.
func Expand(sum uint64, key [32]byte, n int) []byte {
	if n < 0 {
		panic(fmt.Errorf("foldhash: Expand: negative length %d", n))
	}
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], sum)
	if n == Size && key == [32]byte{} {
		return nonce[:]
	}
	out := make([]byte, n)
	chacha.XORKeyStream(out, out, nonce[:], key[:], 8)
	return out
}

// Format renders sum in base 10 or 16; any other base panics. Hex output is not zero-padded.
func Format(sum uint64, base int) string {
	switch base {
	case 10, 16:
		return strconv.FormatUint(sum, base)
	default:
		panic(fmt.Errorf("foldhash: Format: unsupported base %d", base))
	}
}

// AppendBytes appends the big-endian digest to b.
func AppendBytes(b []byte, sum uint64) []byte { return binary.BigEndian.AppendUint64(b, sum) }

package foldhash

import (
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDigest_Streaming(t *testing.T) {
	d := New()
	_, _ = d.Write([]byte("hello"))
	_, _ = d.WriteString("there")

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, uint64(1788520105855670), v)
	assert.Equal(t, v, d.Sum64())

	sum := d.Sum([]byte{0xff})
	require.Len(t, sum, 1+Size)
	assert.Equal(t, byte(0xff), sum[0])
	assert.Equal(t, v, binary.BigEndian.Uint64(sum[1:]))
}

func TestDigest_Reset(t *testing.T) {
	d := New(WithSeed(0))
	_, _ = d.WriteString("hellothere")
	d.Reset()

	_, err := d.Value()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Panics(t, func() { d.Sum64() })
	assert.Panics(t, func() { d.Sum(nil) })

	_, _ = d.WriteString("a")
	assert.Equal(t, uint64(9700000000000000), d.Sum64())
}

func TestDigest_Sizes(t *testing.T) {
	d := New()
	assert.Equal(t, Size, d.Size())
	assert.Equal(t, 6, d.BlockSize())

	/* A full block of bytes must not outgrow one block of digits. */
	_, _ = d.Write([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	dec, err := Encode(d.carry)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(dec), BlockDigits)
}

func TestExpand(t *testing.T) {
	plain := Expand(1788520105855670, [32]byte{}, Size)
	assert.Equal(t, AppendBytes(nil, 1788520105855670), plain)

	long := Expand(1788520105855670, [32]byte{}, 64)
	require.Len(t, long, 64)
	assert.Equal(t, long, Expand(1788520105855670, [32]byte{}, 64))
	assert.NotEqual(t, long, Expand(1788520105855671, [32]byte{}, 64))

	var key [32]byte
	key[0] = 1
	assert.NotEqual(t, long, Expand(1788520105855670, key, 64))
	assert.Equal(t, long[:16], Expand(1788520105855670, [32]byte{}, 16))

	assert.Empty(t, Expand(1, [32]byte{}, 0))
	assert.Panics(t, func() { Expand(1, [32]byte{}, -1) })
}

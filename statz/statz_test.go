package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMeanBias(t *testing.T) {
	assert.Equal(t, 100.0, meanBias([]uint64{0, 0, 0, 0}))
	assert.Equal(t, 100.0, meanBias([]uint64{^uint64(0), ^uint64(0)}))
	assert.Equal(t, 0.0, meanBias([]uint64{0, ^uint64(0)}))
	assert.Equal(t, 0.0, meanBias(nil))
}

func TestCollisions(t *testing.T) {
	assert.Equal(t, 0, collisions([]uint64{1, 2, 3}))
	assert.Equal(t, 2, collisions([]uint64{1, 2, 1, 1}))
}

func TestQuality(t *testing.T) {
	r := quality(500)
	assert.True(t, r.deterministic)
	assert.Less(t, r.collisions, 500)
	assert.Greater(t, r.intBias, 0.0)
}

func TestFmtFloats(t *testing.T) {
	assert.Equal(t, "        12", fmtFloats(12))
	assert.Equal(t, "  1.500000", fmtFloats(1.5))
}

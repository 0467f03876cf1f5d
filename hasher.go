package foldhash

import "fmt"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the configurable pipeline and its optional tracing hook.

// Tracer observes each stage of a digest computation. Implementations must not retain the
// Hasher; they are called synchronously from the goroutine computing the digest.
type Tracer interface {
	Encoded(hex, decimal string)
	Block(i int, block uint64)
	Folded(i int, running uint64)
}

// Hasher runs Encode, Split and Fold with a fixed configuration. The zero value folds with a seed
// of 0 and no length limit; NewHasher starts from Seed. A Hasher holds no mutable state and may be
// shared.
type Hasher struct {
	seed   uint64
	tracer Tracer
	max    int
}

type Option func(*Hasher)

// WithSeed replaces Seed as the value XORed into the first block.
func WithSeed(seed uint64) Option { return func(h *Hasher) { h.seed = seed } }

// WithTracer reports every stage to t. A nil t disables tracing.
func WithTracer(t Tracer) Option { return func(h *Hasher) { h.tracer = t } }

// WithMaxLength rejects messages longer than n bytes with ErrTooLong. Zero means unlimited.
func WithMaxLength(n int) Option { return func(h *Hasher) { h.max = n } }

var defaultHasher = NewHasher()

func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{seed: Seed}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Hasher) Seed() uint64 { return h.seed }

// Sum64 returns the digest of msg.
func (h *Hasher) Sum64(msg []byte) (uint64, error) {
	if h.max > 0 && len(msg) > h.max {
		return 0, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTooLong, len(msg), h.max)
	}
	hx, dec, err := encode(msg)
	if err != nil {
		return 0, err
	}
	if h.tracer != nil {
		h.tracer.Encoded(hx, dec)
	}
	blocks, err := Split(dec)
	if err != nil {
		return 0, err
	}
	if h.tracer != nil {
		for i, b := range blocks {
			h.tracer.Block(i, b)
		}
	}
	return fold(blocks, h.seed, h.tracer)
}

// SumString is Sum64 over the UTF-8 bytes of s.
func (h *Hasher) SumString(s string) (uint64, error) { return h.Sum64([]byte(s)) }

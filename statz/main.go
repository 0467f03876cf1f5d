package main

import (
	. "fmt"
	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/foldhash"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Statz reports how little foldhash does for its inputs: quality checks first, then throughput
// beside properly-vetted hashes.

/* foldhash converts the whole message to decimal, which is quadratic; sizes stay modest. */
var sizes = [...]int{64, 4 << 10, 64 << 10}
var bytes, calltime = []byte(nil), gotsc.TSCOverhead()

func BenchmarkFoldHash(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		_, _ = foldhash.Sum64(bytes)
	}
}

func BenchmarkSHA256(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(bytes)
	}
}

func BenchmarkBlake3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(bytes)
	}
}

func BenchmarkBlake2b(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake2b.Sum256(bytes)
	}
}

func BenchmarkXXH3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash(bytes)
	}
}

func benchAlg(alg func(b *testing.B)) {
	const s = len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		bytes = make([]byte, v)
		for i2 := range bytes {
			bytes[i2] = byte(i2*131 + 1) /* Never all zero; foldhash rejects nothing here. */
		}

		totalHz, polls, mut, done := uint64(0), uint64(0), &sync.Mutex{}, make(chan struct{})
		if calltime > 0 {
			go func() {
				for {
					select {
					case <-done:
						return
					default:
					}
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(alg)
		close(done)
		mut.Lock()
		totalHz *= 1000

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		if polls > 0 {
			speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		}
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
		mut.Unlock()
	}

	Println("Speed " + fmtFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		Println("      " + fmtFloats(speeds...) + "   cpb")
	}
	Println("Usage " + fmtFloats(usages...) + "   B/op\n")
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	r := quality(ints)
	Printf("Deterministic:               %v\n", r.deterministic)
	Printf("Integer input collisions:    %d of %d\n", r.collisions, ints)
	Printf("Integer input Monobit test:  %5.3f%%\n", r.intBias)
	Printf("Random input Monobit test:   %5.3f%%\n\n", r.randBias)

	Println("               64B        4K       64K")
	Println("github.com/p7r0x7/foldhash")
	benchAlg(BenchmarkFoldHash)

	Println("github.com/minio/sha256-simd")
	benchAlg(BenchmarkSHA256)

	Println("github.com/zeebo/blake3")
	benchAlg(BenchmarkBlake3)

	Println("golang.org/x/crypto/blake2b")
	benchAlg(BenchmarkBlake2b)

	Println("github.com/zeebo/xxh3")
	benchAlg(BenchmarkXXH3)

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}

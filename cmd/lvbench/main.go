// Command lvbench compares LinkedVector against a slice, container/list,
// and a ring-buffer deque for a large struct payload and for a plain uint64.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/differental/linkedvec/bench"
)

const numsLen = 50_000 // payload is roughly 8*numsLen bytes

// payload is a deliberately bulky element type, so that per-element copy and
// memory costs dominate the timings.
type payload struct {
	item  string
	nums  [numsLen]uint64
	extra uint64
}

func newPayload(i uint64) payload {
	p := payload{
		item:  "Hello, world!",
		extra: ^uint64(0) - i,
	}
	for j := range p.nums {
		p.nums[j] = i*10 + uint64(j)
	}
	return p
}

func main() {
	var (
		nStruct    = flag.Int("structs", 20, "number of struct elements")
		nPrimitive = flag.Int("primitives", 100_000, "number of uint64 elements")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	structs := &bench.Suite[payload]{
		Label:   "struct",
		N:       *nStruct,
		Element: newPayload(42),
		Logger:  logger,
	}
	structs.Run()

	primitives := &bench.Suite[uint64]{
		Label:   "uint64",
		N:       *nPrimitive,
		Element: 0xDEADBEEFDEADBEEF,
		Logger:  logger,
	}
	primitives.Run()
}

// Package config parses and validates the simulator's command-line
// surface into a cache.HierarchyConfig plus driver options.
// Flag parsing uses the standard library flag package: a nine-flag,
// single-subcommand tool has no use for a command tree, and no directly-
// imported dependency in this codebase's corpus reaches for a third-party
// CLI framework at this scale either (see DESIGN.md).
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/iradirad2/cachesim/internal/cache"
	"github.com/iradirad2/cachesim/internal/cacheerr"
)

// Config is the fully parsed and validated command line.
type Config struct {
	TracePath string
	Hierarchy cache.HierarchyConfig
	Verbose   bool
}

const unset = -1

// Parse parses args (excluding the program name) into a Config. All nine
// simulator flags are required; missing or non-numeric values, an unknown
// flag, or a level whose size is smaller than ways*blockSize produce a
// *cacheerr.ConfigError. errOut receives flag package usage text on parse
// failure.
func Parse(args []string, errOut io.Writer) (*Config, error) {
	// The trace path is always argv[1] in the original tool's calling
	// convention (for_submission/cacheSim.cpp), ahead of the flags. The
	// standard flag package stops parsing at the first non-flag argument
	// rather than permuting like getopt_long, so the path is peeled off by
	// hand before handing the rest to the flag set.
	if len(args) < 1 {
		return nil, &cacheerr.ConfigError{Reason: "missing trace file path"}
	}
	tracePath, rest := args[0], args[1:]

	fs := flag.NewFlagSet("cachesim", flag.ContinueOnError)
	fs.SetOutput(errOut)

	memCyc := fs.Int("mem-cyc", unset, "memory access latency, in cycles")
	bsize := fs.Int("bsize", unset, "block size, log2 of bytes")
	l1Size := fs.Int("l1-size", unset, "L1 size, log2 of bytes")
	l2Size := fs.Int("l2-size", unset, "L2 size, log2 of bytes")
	l1Assoc := fs.Int("l1-assoc", unset, "L1 associativity, log2 of ways")
	l2Assoc := fs.Int("l2-assoc", unset, "L2 associativity, log2 of ways")
	l1Cyc := fs.Int("l1-cyc", unset, "L1 access latency, in cycles")
	l2Cyc := fs.Int("l2-cyc", unset, "L2 access latency, in cycles")
	wrAlloc := fs.Int("wr-alloc", unset, "write-allocate policy: 0 or 1")
	verbose := fs.Bool("verbose", false, "emit progress/heartbeat diagnostics to stderr")

	if err := fs.Parse(rest); err != nil {
		return nil, &cacheerr.ConfigError{Reason: err.Error()}
	}

	required := map[string]int{
		"mem-cyc":  *memCyc,
		"bsize":    *bsize,
		"l1-size":  *l1Size,
		"l2-size":  *l2Size,
		"l1-assoc": *l1Assoc,
		"l2-assoc": *l2Assoc,
		"l1-cyc":   *l1Cyc,
		"l2-cyc":   *l2Cyc,
		"wr-alloc": *wrAlloc,
	}
	for name, v := range required {
		if v == unset {
			return nil, &cacheerr.ConfigError{Flag: name, Reason: "required flag not provided"}
		}
	}
	if *wrAlloc != 0 && *wrAlloc != 1 {
		return nil, &cacheerr.ConfigError{Flag: "wr-alloc", Reason: "must be 0 or 1"}
	}

	l1 := cache.LevelConfig{SizeLog2: *l1Size, AssocLog2: *l1Assoc, BlockSizeLog2: *bsize, Cycles: *l1Cyc}
	l2 := cache.LevelConfig{SizeLog2: *l2Size, AssocLog2: *l2Assoc, BlockSizeLog2: *bsize, Cycles: *l2Cyc}

	if err := validateLevel("l1", l1); err != nil {
		return nil, err
	}
	if err := validateLevel("l2", l2); err != nil {
		return nil, err
	}

	return &Config{
		TracePath: tracePath,
		Hierarchy: cache.HierarchyConfig{
			L1:            l1,
			L2:            l2,
			MemCycles:     *memCyc,
			WriteAllocate: *wrAlloc == 1,
		},
		Verbose: *verbose,
	}, nil
}

// validateLevel rejects a level whose size is too small to hold even one
// way of one set: size_log2 must be >= assoc_log2 + block_size_log2.
func validateLevel(name string, cfg cache.LevelConfig) error {
	if cfg.SizeLog2 < cfg.AssocLog2+cfg.BlockSizeLog2 {
		return &cacheerr.ConfigError{
			Flag: name + "-size",
			Reason: fmt.Sprintf(
				"size (2^%d bytes) is smaller than one way of one block (2^%d bytes)",
				cfg.SizeLog2, cfg.AssocLog2+cfg.BlockSizeLog2,
			),
		}
	}
	return nil
}

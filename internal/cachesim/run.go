// Package cachesim wires config, trace, and cache together into the
// simulator's driver (component F). It writes the metrics and error
// messages to the stdout/stderr writers it is given; the only other package
// that writes to stderr is internal/applog. internal/cache never does I/O
// or logging.
package cachesim

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iradirad2/cachesim/internal/applog"
	"github.com/iradirad2/cachesim/internal/cache"
	"github.com/iradirad2/cachesim/internal/cacheerr"
	"github.com/iradirad2/cachesim/internal/config"
	"github.com/iradirad2/cachesim/internal/trace"
)

const heartbeatEvery = 100_000

// Run parses args, drives the trace through a fresh Hierarchy, and writes
// the three metrics to stdout. It returns the process exit code: 0 on
// success, 1 on any recoverable configuration or trace error. Invariant
// violations inside the cache model are not recovered here — they panic
// out of internal/cache and crash the process.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if err != nil {
		var confErr *cacheerr.ConfigError
		if errors.As(err, &confErr) {
			fmt.Fprintln(stderr, confErr.Error())
		}
		return 1
	}
	applog.SetVerbose(cfg.Verbose)

	r, err := trace.Open(cfg.TracePath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	defer r.Close()

	h := cache.NewHierarchy(cfg.Hierarchy)
	applog.Noticef("hierarchy ready: l1 sets=%d ways=%d tagbits=%d, l2 sets=%d ways=%d tagbits=%d",
		h.L1().NumSets(), h.L1().NumWays(), h.L1().TagBits(),
		h.L2().NumSets(), h.L2().NumWays(), h.L2().TagBits())

	for {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}

		op, addr, ok, err := r.Next()
		if err != nil {
			fmt.Fprintln(stdout, "Command Format error")
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		if !ok {
			break
		}

		h.Process(op, addr)

		if n := h.TotalReferences(); n%heartbeatEvery == 0 {
			applog.Debugf("processed %d references", n)
		}
	}

	fmt.Fprintf(stdout, "L1miss=%.3f L2miss=%.3f AccTimeAvg=%.3f\n",
		h.L1().MissRate(), h.L2().MissRate(), h.AverageAccessTime())
	return 0
}

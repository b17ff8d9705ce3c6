// Command cachesim replays a memory-reference trace through a two-level
// inclusive/write-back cache hierarchy and reports its miss rates and
// average access time.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iradirad2/cachesim/internal/cachesim"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	os.Exit(cachesim.Run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

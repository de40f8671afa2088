// Command seqdemo runs a fixed set of seqkit pipelines and prints their
// results.
//
//	seqdemo --config config.yml --only compensated-sum,stable-min
//
// Configuration keys can be overridden with SEQ_ prefixed environment
// variables, for example SEQ_INSPECT_ENABLED=true to dump each demo
// pipeline to the debug log.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

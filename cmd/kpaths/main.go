// Command kpaths computes K shortest loopless paths over a graph loaded from
// a file or a Neo4j database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "kpaths:", err)
		os.Exit(1)
	}
}

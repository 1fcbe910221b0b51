// Package main provides the vsproj CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/viant/vsproj/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

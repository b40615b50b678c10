// Package main is the entry point for the jsondb command line tool.
//
// jsondb manages a local store file holding a JSON array of records.
// Configuration is read from CLI flags, the environment and an optional
// .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/githubrepob/local-json-db/internal/cli"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "jsondb: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	return cli.Execute(ctx)
}

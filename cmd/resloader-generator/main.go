// Package main provides the CLI entrypoint for resloader-generator.
//
// resloader-generator reads Android string resource files and generates a
// Java class with one accessor field per string, resolved at runtime through
// Context.getString. It is meant to run on every build: the output is only
// rewritten when an input is newer than it.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"resloader-generator/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx)

	stop()
	os.Exit(code)
}

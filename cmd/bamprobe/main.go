// cmd/bamprobe/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pepkit/internal/bamapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := bamapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

// cmd/pepcheck/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pepkit/internal/checkapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := checkapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

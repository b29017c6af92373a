// Command securehash hashes text with SHA-256 and manages password
// credentials. Run "securehash --help" for usage.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hasbyte1/go-secure-hash/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.Options{})
	stop()
	os.Exit(code)
}

// Command dactl sends a single command to a DirectAdmin server and prints the
// raw response.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/peteraglen/directadmin-go-client/internal/cli"
	"github.com/peteraglen/directadmin-go-client/internal/logger"
)

var version = "dev"

func main() {
	log := logger.New(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.New(version, log).ExecuteContext(ctx); err != nil {
		log.Error("dactl failed", "error", err)
		stop()
		os.Exit(1)
	}
}

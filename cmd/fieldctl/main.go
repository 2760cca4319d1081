package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fieldservice/internal/delivery/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.Bootstrap); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled")
			stop()
			os.Exit(130)
		}

		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

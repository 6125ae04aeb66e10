package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(&app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errEvalFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

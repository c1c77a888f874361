package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/quiltlang/quilt/cli"
	"github.com/quiltlang/quilt/log"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		log.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

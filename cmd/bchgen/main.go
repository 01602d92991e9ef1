package main

import (
	"log/slog"
	"os"

	"github.com/akalin/bchgen/errorcode"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(int(errorcode.FromError(err)))
	}
}

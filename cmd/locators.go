package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Dependency int

const (
	loggerKey Dependency = iota
)

func RegisterLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func GetLogger(cmd *cobra.Command) *zap.Logger {
	logger, ok := cmd.Context().Value(loggerKey).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return logger
}

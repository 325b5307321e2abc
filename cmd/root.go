package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hourglass-cli/hourglass/internal"
)

var title1 = "█░█ █▀█ █░█ █▀█ █▀▀ █░░ ▄▀█ █▀ █▀"
var title2 = "█▀█ █▄█ █▄█ █▀▄ █▄█ █▄▄ █▀█ ▄█ ▄█"

var title = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("4")).
	PaddingLeft(1).
	PaddingRight(1).
	Render(title1 + "\n" + title2)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:  "hourglass",
	Long: title,

	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Println(err)
		}
	},
}

func register(lifecycle fx.Lifecycle, logger *zap.Logger) {
	lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				cobra.CheckErr(rootCmd.ExecuteContext(RegisterLogger(ctx, logger)))
				return nil
			},
			OnStop: func(context.Context) error {
				return nil
			},
		},
	)
}

func NewLogger() *zap.Logger {
	dir, err := os.Executable()
	if err != nil {
		panic(err)
	}
	fullpath := filepath.Join(filepath.Dir(dir), "hourglass.log")
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{
		fullpath,
	}
	logger, _ := cfg.Build()
	return logger
}

func Execute() {
	app := fx.New(
		fx.Invoke(register),
		fx.Provide(NewLogger),
		fx.NopLogger,
	)

	app.Start(context.Background())
}

func init() {
	usageFunc := rootCmd.UsageFunc()
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		internal.FormatUsage(c, usageFunc, "")
		return nil
	})

	rootCmd.SetHelpFunc(func(c *cobra.Command, a []string) {
		internal.FormatHelp(c)
	})
}

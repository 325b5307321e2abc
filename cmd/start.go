package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hourglass-cli/hourglass/internal"
	"github.com/hourglass-cli/hourglass/internal/countdown"
	"github.com/hourglass-cli/hourglass/internal/schedule"
	"github.com/hourglass-cli/hourglass/internal/timespan"
	"github.com/hourglass-cli/hourglass/internal/ui"
)

const startExampleText = "[hh:][mm:]ss"
const startDescription = "Starts a countdown. Input should be formatted like " + startExampleText
const startCmdText = "start"

var (
	intervalFlag  time.Duration
	loopFlag      bool
	frameSyncFlag bool
	plainFlag     bool
	pausedFlag    bool
	formatFlag    = formatValue(timespan.MinSec)
)

var startCmd = &cobra.Command{
	Use:   startCmdText + " " + startExampleText,
	Short: startDescription,
	Long:  startDescription,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := internal.ParseClock(args[0])
		if err != nil {
			return err
		}

		cfg := countdown.Config{
			Interval:  intervalFlag,
			FrameSync: frameSyncFlag,
			Format:    timespan.Format(formatFlag),
			Loop:      loopFlag,
			Logger:    GetLogger(cmd),
		}
		if plainFlag {
			return runPlain(total, cfg)
		}
		return runInteractive(total, cfg)
	},
}

func runInteractive(total time.Duration, cfg countdown.Config) error {
	cfg.AutoStart = !pausedFlag
	engine, err := countdown.New(total, cfg)
	if err != nil {
		return err
	}
	return ui.Run(engine, ui.DefaultRefresh)
}

func runPlain(total time.Duration, cfg countdown.Config) error {
	tickCh := make(chan int64, 1)
	doneCh := make(chan struct{})
	cfg.OnTick = func(remainingMs int64) {
		select {
		case tickCh <- remainingMs:
		default:
		}
	}
	cfg.OnComplete = func() { close(doneCh) }
	cfg.AutoStart = true

	engine, err := countdown.New(total, cfg)
	if err != nil {
		return err
	}
	ui.RunPlain(engine, tickCh, doneCh)
	return nil
}

func init() {
	usageFunc := startCmd.UsageFunc()
	startCmd.SetUsageFunc(func(c *cobra.Command) error {
		internal.FormatUsage(c, usageFunc, startExampleText)
		return nil
	})
	startCmd.SetHelpFunc(func(c *cobra.Command, a []string) {
		internal.FormatHelp(c)
	})

	startCmd.Flags().DurationVar(&intervalFlag, "interval", schedule.DefaultInterval,
		"Tick period for the fixed-interval scheduler")
	startCmd.Flags().BoolVar(&loopFlag, "loop", false,
		"Restart automatically each time the countdown reaches zero")
	startCmd.Flags().BoolVar(&frameSyncFlag, "frame-sync", false,
		"Tick at the display refresh cadence instead of a fixed interval")
	startCmd.Flags().BoolVar(&plainFlag, "plain", false,
		"Render a non-interactive progress bar")
	startCmd.Flags().BoolVar(&pausedFlag, "paused", false,
		"Construct the countdown without starting it")
	startCmd.Flags().Var(&formatFlag, "format",
		"Display layout: mm:ss, mm:ss.SSS, hh:mm:ss, hh:mm:ss.SSS, ss or ss.SSS")

	rootCmd.AddCommand(startCmd)
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathan-fiscaletti/consolesize-go"
	"github.com/superhawk610/bar"

	"github.com/hourglass-cli/hourglass/internal/countdown"
)

// RunPlain drives a non-interactive progress bar off engine ticks until the
// countdown finishes. Loop-mode countdowns never finish, so callers interrupt
// those instead.
func RunPlain(engine *countdown.Engine, ticks <-chan int64, done <-chan struct{}) {
	cols, _ := consolesize.GetConsoleSize()
	width := cols - 50
	if width < 10 {
		width = 30
	}

	b := bar.NewWithOpts(
		bar.WithDimensions(1000, width),
		bar.WithFormat(
			fmt.Sprintf("Counting down... %s %s | %s",
				lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(":bar"),
				lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(":percent"),
				lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Render(":time"))))

	for {
		select {
		case <-done:
			snap := engine.Snapshot()
			b.Update(1000, bar.Context{bar.Ctx("time", snap.Time)})
			fmt.Println()
			return
		case <-ticks:
			snap := engine.Snapshot()
			b.Update(int(snap.Progress*10), bar.Context{bar.Ctx("time", snap.Time)})
		}
	}
}

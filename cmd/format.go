package cmd

import "github.com/hourglass-cli/hourglass/internal/timespan"

// formatValue adapts a timespan.Format preset to the pflag.Value interface.
type formatValue timespan.Format

func (f *formatValue) String() string {
	return timespan.Format(*f).String()
}

func (f *formatValue) Set(value string) error {
	parsed, err := timespan.ParseFormat(value)
	if err != nil {
		return err
	}
	*f = formatValue(parsed)
	return nil
}

func (f *formatValue) Type() string {
	return "format"
}

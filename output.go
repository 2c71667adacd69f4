package main

import (
	"io"

	"github.com/cli/go-gh/pkg/term"
	"github.com/pkg/errors"
)

const defaultTerminalWidth = 80

// FormatResult determines the appropriate formatter based on the result type and config.
func FormatResult(w io.Writer, result Result, config *Config) error {
	switch r := result.(type) {
	case ServeResult:
		return nil
	case ListResult:
		var formatter Formatter
		switch config.Output {
		case OutputJSON:
			formatter = &JSONFormatter{}
		case OutputYAML:
			formatter = &YAMLFormatter{}
		case OutputQuiet:
			formatter = &QuietFormatter{}
		default:
			formatter = newTabularFormatter()
		}
		return formatter.Format(w, r)
	default:
		return errors.Errorf("unknown result type: %T", r)
	}
}

func newTabularFormatter() *TabularFormatter {
	t := term.FromEnv()

	width, _, err := t.Size()
	if err != nil || width <= 0 {
		width = defaultTerminalWidth
	}

	return &TabularFormatter{
		IsTTY: t.IsTerminalOutput(),
		Width: width,
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// Parse parses command-line arguments and returns a populated Config.
// It exits after printing help, version information or a usage error.
func Parse(env Environment) *Config {
	categories := DefineAllFlags(env)
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)

	config, showVersion, err := parseArgs(fs, categories, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		PrintHelpFromFlags(programName, categories)
		os.Exit(0)
	}
	if showVersion {
		fmt.Print(Get())
		os.Exit(0)
	}
	if err != nil {
		PrintHelpFromFlags(programName, categories)
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	return config
}

// parseArgs parses args with fs. pflag's own error and usage printing
// is silenced; callers decide what to print. showVersion short-circuits
// validation.
func parseArgs(fs *pflag.FlagSet, categories []FlagCategory, args []string) (*Config, bool, error) {
	flagRefs := registerFlags(fs, categories)

	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	if *flagRefs["version"].(*bool) {
		return nil, true, nil
	}

	config, err := parseAndValidateArgs(flagRefs, fs.Args())
	return config, false, err
}

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/frobware/repofinder/github"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputQuiet = "quiet"
)

var outputFormats = []string{OutputTable, OutputJSON, OutputYAML, OutputQuiet}

// FlagInfo contains information about a command-line flag.
type FlagInfo struct {
	Name        string
	ShortName   string
	Type        string // "bool" or "string"
	Description string
	Default     interface{}
}

// Display formats the flag for display in help text.
func (flag FlagInfo) Display() string {
	display := "--" + flag.Name

	if flag.ShortName != "" {
		display = fmt.Sprintf("-%s, --%s", flag.ShortName, flag.Name)
	}

	if flag.Type == "string" {
		display += " string"
	}

	return display
}

// FlagCategory represents a group of related flags.
type FlagCategory struct {
	Name  string
	Flags []FlagInfo
}

// DefineAllFlags returns the categorised flags, with defaults taken
// from env.
func DefineAllFlags(env Environment) []FlagCategory {
	return []FlagCategory{
		{
			Name: "Source:",
			Flags: []FlagInfo{
				{Name: "api-url", Type: "string", Description: "GitHub REST API root", Default: env.APIURL},
				{Name: "ordered", Type: "bool", Description: "Discard responses that arrive after a newer search", Default: env.Ordered},
			},
		},
		{
			Name: "Server:",
			Flags: []FlagInfo{
				{Name: "serve", ShortName: "s", Type: "bool", Description: "Serve the search page instead of searching once", Default: false},
				{Name: "addr", Type: "string", Description: "Address to serve on", Default: env.Addr},
				{Name: "open", Type: "bool", Description: "Open the search page in a browser", Default: false},
			},
		},
		{
			Name: "Output:",
			Flags: []FlagInfo{
				{Name: "output", ShortName: "o", Type: "string", Description: "Output format: " + strings.Join(outputFormats, ", "), Default: OutputTable},
			},
		},
		{
			Name: "Utility:",
			Flags: []FlagInfo{
				{Name: "debug", Type: "bool", Description: "Enable debug logging", Default: env.Debug},
				{Name: "version", ShortName: "v", Type: "bool", Description: "Show version information", Default: false},
			},
		},
	}
}

// registerFlags registers all flags with fs and returns references to them.
func registerFlags(fs *pflag.FlagSet, categories []FlagCategory) map[string]interface{} {
	flagRefs := make(map[string]interface{})

	for _, category := range categories {
		for _, flag := range category.Flags {
			switch flag.Type {
			case "bool":
				flagRefs[flag.Name] = fs.BoolP(flag.Name, flag.ShortName, flag.Default.(bool), flag.Description)
			case "string":
				flagRefs[flag.Name] = fs.StringP(flag.Name, flag.ShortName, flag.Default.(string), flag.Description)
			}
		}
	}

	return flagRefs
}

// parseAndValidateArgs builds a Config from parsed flags and the
// positional arguments.
func parseAndValidateArgs(flagRefs map[string]interface{}, args []string) (*Config, error) {
	config := &Config{
		APIURL:    *flagRefs["api-url"].(*string),
		Ordered:   *flagRefs["ordered"].(*bool),
		Output:    *flagRefs["output"].(*string),
		Serve:     *flagRefs["serve"].(*bool),
		Addr:      *flagRefs["addr"].(*string),
		Open:      *flagRefs["open"].(*bool),
		DebugMode: *flagRefs["debug"].(*bool),
	}

	switch {
	case config.Serve && len(args) > 0:
		return nil, errors.New("USERNAME cannot be combined with --serve")
	case !config.Serve && len(args) == 0:
		return nil, errors.New("a USERNAME argument or --serve is required")
	case len(args) > 1:
		return nil, errors.Errorf("expected one USERNAME, got %d", len(args))
	}

	if len(args) == 1 {
		username, err := ParseUsernameArgument(args[0])
		if err != nil {
			return nil, err
		}
		config.Username = username
	}

	if config.Open && !config.Serve {
		return nil, errors.New("--open requires --serve")
	}

	if !slices.Contains(outputFormats, config.Output) {
		return nil, errors.Errorf("unknown output format %q", config.Output)
	}

	if _, err := github.ParseAPIURL(config.APIURL); err != nil {
		return nil, err
	}

	return config, nil
}

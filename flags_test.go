package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testEnvironment() Environment {
	return Environment{
		APIURL: "https://api.github.com/",
		Addr:   "127.0.0.1:8080",
	}
}

func TestFlagInfoDisplay(t *testing.T) {
	tests := []struct {
		name     string
		flag     FlagInfo
		expected string
	}{
		{
			name:     "bool flag",
			flag:     FlagInfo{Name: "ordered", Type: "bool"},
			expected: "--ordered",
		},
		{
			name:     "bool flag with short name",
			flag:     FlagInfo{Name: "serve", ShortName: "s", Type: "bool"},
			expected: "-s, --serve",
		},
		{
			name:     "string flag",
			flag:     FlagInfo{Name: "addr", Type: "string"},
			expected: "--addr string",
		},
		{
			name:     "string flag with short name",
			flag:     FlagInfo{Name: "output", ShortName: "o", Type: "string"},
			expected: "-o, --output string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flag.Display(); got != tt.expected {
				t.Errorf("Display() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDefineAllFlagsUsesEnvironmentDefaults(t *testing.T) {
	env := Environment{
		APIURL:  "http://127.0.0.1:9999/",
		Addr:    ":9000",
		Debug:   true,
		Ordered: true,
	}

	defaults := make(map[string]interface{})
	for _, category := range DefineAllFlags(env) {
		for _, flag := range category.Flags {
			defaults[flag.Name] = flag.Default
		}
	}

	expected := map[string]interface{}{
		"api-url": "http://127.0.0.1:9999/",
		"addr":    ":9000",
		"debug":   true,
		"ordered": true,
		"serve":   false,
		"open":    false,
		"output":  OutputTable,
		"version": false,
	}

	for name, want := range expected {
		got, exists := defaults[name]
		if !exists {
			t.Errorf("flag %q not defined", name)
			continue
		}
		if got != want {
			t.Errorf("flag %q default = %v, want %v", name, got, want)
		}
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, config *Config)
		wantErr string
	}{
		{
			name: "username only",
			args: []string{"octocat"},
			check: func(t *testing.T, config *Config) {
				if config.Username != "octocat" {
					t.Errorf("Username = %q, want octocat", config.Username)
				}
				if config.Output != OutputTable {
					t.Errorf("Output = %q, want %q", config.Output, OutputTable)
				}
				if config.APIURL != "https://api.github.com/" {
					t.Errorf("APIURL = %q, want the environment default", config.APIURL)
				}
				if config.Serve {
					t.Error("Serve should be false")
				}
			},
		},
		{
			name: "profile URL argument",
			args: []string{"https://github.com/octocat"},
			check: func(t *testing.T, config *Config) {
				if config.Username != "octocat" {
					t.Errorf("Username = %q, want octocat", config.Username)
				}
			},
		},
		{
			name: "flags override environment defaults",
			args: []string{"--api-url", "http://127.0.0.1:9/", "--ordered", "-o", "json", "--debug", "octocat"},
			check: func(t *testing.T, config *Config) {
				if config.APIURL != "http://127.0.0.1:9/" {
					t.Errorf("APIURL = %q, want http://127.0.0.1:9/", config.APIURL)
				}
				if !config.Ordered {
					t.Error("Ordered should be true")
				}
				if config.Output != OutputJSON {
					t.Errorf("Output = %q, want %q", config.Output, OutputJSON)
				}
				if !config.DebugMode {
					t.Error("DebugMode should be true")
				}
			},
		},
		{
			name: "serve mode",
			args: []string{"-s", "--addr", ":0", "--open"},
			check: func(t *testing.T, config *Config) {
				if !config.Serve || !config.Open {
					t.Errorf("Serve = %v, Open = %v, want both true", config.Serve, config.Open)
				}
				if config.Addr != ":0" {
					t.Errorf("Addr = %q, want :0", config.Addr)
				}
				if config.Username != "" {
					t.Errorf("Username = %q, want empty", config.Username)
				}
			},
		},
		{
			name:    "no username and no serve",
			args:    []string{},
			wantErr: "a USERNAME argument or --serve is required",
		},
		{
			name:    "username with serve",
			args:    []string{"--serve", "octocat"},
			wantErr: "cannot be combined with --serve",
		},
		{
			name:    "two usernames",
			args:    []string{"octocat", "torvalds"},
			wantErr: "expected one USERNAME, got 2",
		},
		{
			name:    "open without serve",
			args:    []string{"--open", "octocat"},
			wantErr: "--open requires --serve",
		},
		{
			name:    "unknown output format",
			args:    []string{"-o", "xml", "octocat"},
			wantErr: `unknown output format "xml"`,
		},
		{
			name:    "relative api url",
			args:    []string{"--api-url", "api.github.com", "octocat"},
			wantErr: "api",
		},
		{
			name:    "bad profile URL",
			args:    []string{"https://github.com/octocat/Hello-World"},
			wantErr: "invalid GitHub profile URL",
		},
		{
			name:    "unknown flag",
			args:    []string{"--nope", "octocat"},
			wantErr: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			config, showVersion, err := parseArgs(fs, DefineAllFlags(testEnvironment()), tt.args)

			if showVersion {
				t.Fatal("showVersion should be false")
			}

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, config)
		})
	}
}

func TestParseArgsVersionSkipsValidation(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// No USERNAME and no --serve would otherwise fail validation.
	config, showVersion, err := parseArgs(fs, DefineAllFlags(testEnvironment()), []string{"-v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !showVersion {
		t.Error("showVersion should be true")
	}
	if config != nil {
		t.Errorf("config should be nil, got %+v", config)
	}
}

func TestParseArgsHelp(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

	_, _, err := parseArgs(fs, DefineAllFlags(testEnvironment()), []string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("expected pflag.ErrHelp, got %v", err)
	}
}

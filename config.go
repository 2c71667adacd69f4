package main

import (
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/frobware/repofinder/github"
)

// envPrefix namespaces environment variables, e.g. REPOFINDER_API_URL.
const envPrefix = "repofinder"

// Environment holds settings read from the process environment. They
// become the defaults of the matching command-line flags.
type Environment struct {
	APIURL  string `envconfig:"API_URL"`
	Addr    string `envconfig:"ADDR" default:"127.0.0.1:8080"`
	Debug   bool   `envconfig:"DEBUG"`
	Ordered bool   `envconfig:"ORDERED"`
}

// LoadEnvironment loads dotenvPath, if it exists, without overriding
// variables already set, then reads REPOFINDER_* variables.
func LoadEnvironment(dotenvPath string) (Environment, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Environment{}, errors.Wrapf(err, "failed to load %s", dotenvPath)
		}
	}

	var env Environment
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Environment{}, errors.Wrap(err, "failed to read environment")
	}

	if env.APIURL == "" {
		env.APIURL = github.DefaultAPIURL
	}

	return env, nil
}

// Config holds all configuration and arguments for the application.
type Config struct {
	Username string
	APIURL   string
	Ordered  bool
	Output   string
	// Server mode
	Serve bool
	Addr  string
	Open  bool
	// Runtime flags
	DebugMode bool
}

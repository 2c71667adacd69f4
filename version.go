package main

import (
	"runtime"
	"runtime/debug"
)

const programName = "repofinder"

// Info contains version and build information.
type Info struct {
	Version   string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	info := Info{
		Version:   "unknown",
		BuildTime: "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "(devel)" && bi.Main.Version != "" {
			info.Version = bi.Main.Version
		}
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.time" {
				info.BuildTime = setting.Value
			}
		}
	}

	return info
}

// UserAgent identifies this build to the GitHub API.
func (i Info) UserAgent() string {
	return programName + "/" + i.Version
}

// String is the --version output.
func (i Info) String() string {
	return programName + " version " + i.Version + "\n" +
		"Built: " + i.BuildTime + "\n" +
		"Go version: " + i.GoVersion + "\n" +
		"Platform: " + i.Platform + "\n"
}

// Package misc keeps build identity helpers used by logging and reporting.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "prosong"

// set at build time via -ldflags when releasing, otherwise derived from
// embedded build information
var (
	version string
	gitHash string
)

var readBuildInfo = sync.OnceFunc(func() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "" {
		version = bi.Main.Version
	}
	if gitHash == "" {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				gitHash = s.Value
				break
			}
		}
	}
})

// GetAppName returns program name used for logs, reports and temp files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	readBuildInfo()
	if version == "" {
		return "(devel)"
	}
	return version
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	readBuildInfo()
	if gitHash == "" {
		return "unknown"
	}
	return gitHash
}

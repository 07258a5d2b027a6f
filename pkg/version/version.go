// Package version reports build information for clipdir.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time, for example:
//
//	go build -ldflags "-X 'clipdir/pkg/version.Version=0.3.0' -X 'clipdir/pkg/version.Commit=abc1234'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current build information. When no commit was injected,
// the VCS revision recorded by the Go toolchain is used if present.
func Get() Info {
	commit := Commit
	if commit == "none" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					commit = s.Value
					if len(commit) > 7 {
						commit = commit[:7]
					}
				}
			}
		}
	}
	return Info{
		Version:   Version,
		GitCommit: commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders a single line, e.g.
// "clipdir 0.3.0 (commit abc1234, built 2024-04-27T15:04:05Z, go1.23.1 linux/amd64)".
func (i Info) String() string {
	return fmt.Sprintf("clipdir %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}

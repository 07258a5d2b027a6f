package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2024-04-27T15:04:05Z",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}
	assert.Equal(t, "clipdir 1.2.3 (commit abcdefg, built 2024-04-27T15:04:05Z, go1.23.1 linux/amd64)", info.String())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.True(t, strings.Contains(info.Platform, "/"))
	assert.NotEmpty(t, info.GitCommit)
}

package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	paths := []string{
		"README.md",
		"cmd/root.go",
		"pkg/combine/tree.go",
		"pkg/combine/collect.go",
		"pkg/ignore/matcher.go",
		"go.mod",
		"Makefile",
	}

	want := "" +
		"├── cmd/\n" +
		"│   └── root.go\n" +
		"├── pkg/\n" +
		"│   ├── combine/\n" +
		"│   │   ├── collect.go\n" +
		"│   │   └── tree.go\n" +
		"│   └── ignore/\n" +
		"│       └── matcher.go\n" +
		"├── go.mod\n" +
		"├── Makefile\n" +
		"└── README.md\n"

	assert.Equal(t, want, RenderTree(paths))
}

func TestRenderTreeEmpty(t *testing.T) {
	assert.Equal(t, "", RenderTree(nil))
}

package ignore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsGlob(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"node_modules", false},
		{".env.local", false},
		{"docs/internal", false},
		{"*.log", true},
		{"file?.txt", true},
		{"[abc].go", true},
		{"src/**", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGlob(tt.pattern))
		})
	}
}

func TestDefaultsReturnsCopy(t *testing.T) {
	d := Defaults()
	require.NotEmpty(t, d)
	d[0] = "mutated"
	assert.Equal(t, "yarn.lock", Defaults()[0])
}

func TestShouldIgnore(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	m := New(nil, "*.log", "docs/internal", "src/gen*", "*.min.*")

	tests := []struct {
		name string
		rel  string
		want bool
	}{
		{"plain file kept", "README.md", false},
		{"nested file kept", "src/main.go", false},
		{"exact leaf name", ".env", true},
		{"exact leaf name nested", "config/.env.production", true},
		{"lock file", "Cargo.lock", true},
		{"ancestor directory", "node_modules/pkg.js", true},
		{"deep ancestor directory", "web/node_modules/lib/index.js", true},
		{"ancestor target", "crates/core/target/debug/out.txt", true},
		{"glob on leaf", "app.log", true},
		{"glob on nested leaf", "logs/2024/app.log", true},
		{"glob miss", "app.txt", false},
		{"exact nested path", "docs/internal/design.md", true},
		{"exact nested path elsewhere", "other/docs/internal/design.md", false},
		{"glob on relative prefix", "src/generated/api.go", true},
		{"glob with two wildcards", "static/app.min.js", true},
		{"case sensitive", "license", false},
		{"license exact", "LICENSE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := filepath.Join(root, filepath.FromSlash(tt.rel))
			assert.Equal(t, tt.want, m.ShouldIgnore(candidate, root))
		})
	}
}

func TestShouldIgnoreStopsAtScanRoot(t *testing.T) {
	// The scan root itself lives under a directory named like a default rule.
	root := filepath.Join(t.TempDir(), "build", "project")
	m := New(nil)

	assert.False(t, m.ShouldIgnore(filepath.Join(root, "main.go"), root))
	assert.True(t, m.ShouldIgnore(filepath.Join(root, "build", "main.go"), root))
}

func TestShouldIgnoreOutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "a")
	m := NewBuilder(nil).Add("b/c.txt").Build()

	// Relative-path checks only apply to paths under the root.
	assert.False(t, m.ShouldIgnore(filepath.Join(base, "b", "c.txt"), root))
}

func TestInvalidGlobIsDropped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	m := NewBuilder(logger).Add("[abc", "*.tmp").Build()

	assert.Equal(t, 1, m.Len())
	require.Equal(t, 1, logs.FilterMessage("Invalid glob pattern").Len())
	entry := logs.All()[0]
	assert.Equal(t, "[abc", entry.ContextMap()["pattern"])

	root := t.TempDir()
	assert.False(t, m.ShouldIgnore(filepath.Join(root, "[abc"), root))
	assert.False(t, m.ShouldIgnore(filepath.Join(root, "a.txt"), root))
	assert.True(t, m.ShouldIgnore(filepath.Join(root, "a.tmp"), root))
}

func TestBuilderClassifiesAndSkipsEmpty(t *testing.T) {
	b := NewBuilder(nil).Add("", "exact", "*.glob")
	m := b.Build()
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Matches("exact"))
	assert.True(t, m.Matches("x.glob"))
	assert.False(t, m.Matches(""))
}

func TestBuiltMatcherIsImmutable(t *testing.T) {
	b := NewBuilder(nil).Add("one")
	m := b.Build()
	b.Add("two", "*.three")

	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Matches("two"))
	assert.False(t, m.Matches("x.three"))
}

func TestNewIncludesDefaults(t *testing.T) {
	m := New(nil)
	assert.Equal(t, len(Defaults()), m.Len())
	for _, d := range Defaults() {
		assert.True(t, m.Matches(d), d)
	}
}

func TestGlobBracesAndBackslashAreLiteral(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	m := NewBuilder(zap.New(core)).Add("*.{log,tmp}", "*.{bak", `dir\*`).Build()

	assert.Equal(t, 0, logs.Len())
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Matches("a.{log,tmp}"))
	assert.False(t, m.Matches("a.log"))
	assert.False(t, m.Matches("a.tmp"))
	assert.True(t, m.Matches("a.{bak"))
	assert.True(t, m.Matches(`dir\name`))
	assert.False(t, m.Matches("dir*"))
}

// Package ignore decides which paths are left out of the combined output.
//
// A Matcher holds two kinds of rules: exact names and glob patterns. A rule
// is a glob when it contains one of '*', '?' or '['; anything else is
// compared literally. Both kinds are checked against the leaf name, every
// ancestor directory name below the scan root, the full relative path and
// each prefix of the relative path, so a single list can say "this file
// anywhere", "this directory anywhere" and "this exact nested path".
package ignore

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// globChars are the metacharacters that turn a rule into a glob pattern.
const globChars = "*?["

// literal escapes the characters gobwas/glob would otherwise read as brace
// alternation or escapes, so `{`, `}` and `\` match themselves.
var literal = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)

// GlobPattern is a compiled glob rule together with its source text.
type GlobPattern struct {
	Glob glob.Glob // Compiled pattern.
	Line string    // Original pattern text.
}

// Matcher is an immutable set of ignore rules.
type Matcher struct {
	exact map[string]struct{}
	globs []GlobPattern
}

// Builder accumulates rules and produces a Matcher.
type Builder struct {
	exact  map[string]struct{}
	globs  []GlobPattern
	logger *zap.Logger
}

// NewBuilder returns an empty Builder. A nil logger discards warnings.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		exact:  make(map[string]struct{}),
		logger: logger,
	}
}

// Add classifies and stores each pattern in the order given.
// Patterns that fail to compile are logged and dropped.
func (b *Builder) Add(patterns ...string) *Builder {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if !IsGlob(p) {
			b.exact[p] = struct{}{}
			continue
		}
		g, err := glob.Compile(literal.Replace(p))
		if err != nil {
			b.logger.Warn("Invalid glob pattern", zap.String("pattern", p), zap.Error(err))
			continue
		}
		b.globs = append(b.globs, GlobPattern{Glob: g, Line: p})
		b.logger.Debug("Compiled glob pattern", zap.String("pattern", p))
	}
	return b
}

// Build freezes the accumulated rules. The Builder may keep being used;
// later additions do not affect Matchers already built.
func (b *Builder) Build() *Matcher {
	m := &Matcher{
		exact: make(map[string]struct{}, len(b.exact)),
		globs: make([]GlobPattern, len(b.globs)),
	}
	for k := range b.exact {
		m.exact[k] = struct{}{}
	}
	copy(m.globs, b.globs)
	return m
}

// New builds a Matcher from the built-in defaults followed by extra.
func New(logger *zap.Logger, extra ...string) *Matcher {
	return NewBuilder(logger).Add(defaultPatterns...).Add(extra...).Build()
}

// IsGlob reports whether pattern contains glob metacharacters.
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, globChars)
}

// Len returns the number of rules held by the matcher.
func (m *Matcher) Len() int {
	return len(m.exact) + len(m.globs)
}

// Matches reports whether s equals an exact rule or matches a glob rule.
func (m *Matcher) Matches(s string) bool {
	if _, ok := m.exact[s]; ok {
		return true
	}
	for _, g := range m.globs {
		if g.Glob.Match(s) {
			return true
		}
	}
	return false
}

// ShouldIgnore reports whether candidate, a path under scanRoot, must be
// skipped. Relative paths are compared in forward-slash form.
func (m *Matcher) ShouldIgnore(candidate, scanRoot string) bool {
	candidate = filepath.Clean(candidate)
	scanRoot = filepath.Clean(scanRoot)

	if m.Matches(filepath.Base(candidate)) {
		return true
	}

	for dir := candidate; dir != scanRoot; {
		if m.Matches(filepath.Base(dir)) {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	rel, err := filepath.Rel(scanRoot, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)
	if m.Matches(rel) {
		return true
	}

	var prefix string
	for _, part := range strings.Split(rel, "/") {
		if prefix == "" {
			prefix = part
		} else {
			prefix += "/" + part
		}
		if m.Matches(prefix) {
			return true
		}
	}
	return false
}

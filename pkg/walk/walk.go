// Package walk enumerates the files of a directory tree while honouring
// version-control ignore files.
//
// GitWalker finds the repository enclosing the walk root and reads
// .gitignore and .ignore in every directory from the repository root down,
// the repository's .git/info/exclude and the user's global excludes file.
// Rules are scoped to the directory that declared them, as git does. The .git
// directory is never entered, dot-files are skipped unless Options.Hidden
// is set, and ignored directories are pruned rather than descended.
package walk

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

const (
	gitDir          = ".git"
	gitignoreFile   = ".gitignore"
	ignoreFile      = ".ignore"
	infoExcludeFile = ".git/info/exclude"
)

// Entry is a single item produced by a Walker.
type Entry struct {
	Path  string // Path joined onto the walk root.
	IsDir bool
	Err   error // Non-nil when the entry could not be read.
}

// Walker yields the entries below root in a stable order.
type Walker interface {
	Walk(root string, fn func(Entry)) error
}

// PathMatcher reports whether a slash-separated path relative to the walk
// root is excluded. *ignore.FileRules satisfies it.
type PathMatcher interface {
	MatchesPath(rel string) bool
}

// Options configures a GitWalker.
type Options struct {
	Hidden    bool        // Include entries whose name starts with a dot.
	VCSIgnore bool        // Honour .gitignore, .ignore and git excludes.
	Rules     PathMatcher // Extra exclusion rules; may be nil.
}

// DefaultOptions matches a typical git-aware walk.
func DefaultOptions() Options {
	return Options{VCSIgnore: true}
}

// GitWalker is a Walker backed by filepath.WalkDir and go-git's gitignore matcher.
type GitWalker struct {
	opts   Options
	logger *zap.Logger
}

// NewGitWalker returns a GitWalker. A nil logger discards debug output.
func NewGitWalker(opts Options, logger *zap.Logger) *GitWalker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitWalker{opts: opts, logger: logger}
}

// Walk calls fn for every regular file under root, and for every
// entry that could not be read. Only a root that cannot be accessed is
// returned as an error. Entry paths are joined onto root as given, even
// when root is a symbolic link.
func (w *GitWalker) Walk(root string, fn func(Entry)) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access root %s: %w", root, err)
	}
	if !info.IsDir() {
		fn(Entry{Path: root})
		return nil
	}

	// WalkDir does not descend into a symlinked root.
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	base := realRoot
	var prefix []string
	var patterns []gitignore.Pattern
	if w.opts.VCSIgnore {
		base, prefix = findRepository(realRoot)
	}
	baseFS := osfs.New(base)
	if w.opts.VCSIgnore {
		patterns = append(patterns, w.globalPatterns()...)
		patterns = append(patterns, w.readPatterns(baseFS, infoExcludeFile, nil)...)
		for i := range prefix {
			patterns = append(patterns, w.dirPatterns(baseFS, prefix[:i])...)
		}
	}

	err = filepath.WalkDir(realRoot, func(path string, d fs.DirEntry, err error) error {
		rel, relErr := filepath.Rel(realRoot, path)
		if relErr != nil {
			fn(Entry{Path: path, Err: relErr})
			return nil
		}
		out := filepath.Join(root, rel)
		if err != nil {
			if path == realRoot {
				return err
			}
			fn(Entry{Path: out, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if rel == "." {
			if w.opts.VCSIgnore {
				patterns = append(patterns, w.dirPatterns(baseFS, prefix)...)
			}
			return nil
		}

		components := strings.Split(filepath.ToSlash(rel), "/")
		repoPath := append(append(make([]string, 0, len(prefix)+len(components)), prefix...), components...)
		name := d.Name()
		isDir := d.IsDir()

		if isDir && name == gitDir {
			return filepath.SkipDir
		}
		if w.skip(name, components, repoPath, isDir, patterns) {
			w.logger.Debug("Skipping ignored entry", zap.String("path", out))
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			if w.opts.VCSIgnore {
				patterns = append(patterns, w.dirPatterns(baseFS, repoPath)...)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			w.logger.Debug("Skipping non-regular file", zap.String("path", out))
			return nil
		}
		fn(Entry{Path: out})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return nil
}

// findRepository returns the nearest directory at or above dir that holds a
// .git entry, with dir's path components relative to it. Outside a
// repository it returns dir itself.
func findRepository(dir string) (string, []string) {
	for cur := dir; ; {
		if _, err := os.Lstat(filepath.Join(cur, gitDir)); err == nil {
			rel, err := filepath.Rel(cur, dir)
			if err != nil || rel == "." {
				return cur, nil
			}
			return cur, strings.Split(filepath.ToSlash(rel), "/")
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir, nil
		}
		cur = parent
	}
}

// skip applies hidden-file, VCS and extra rules to one entry. VCS rules see
// the path relative to the repository, extra rules the path relative to the
// walk root.
func (w *GitWalker) skip(name string, components, repoPath []string, isDir bool, patterns []gitignore.Pattern) bool {
	if !w.opts.Hidden && strings.HasPrefix(name, ".") {
		return true
	}
	if len(patterns) > 0 && gitignore.NewMatcher(patterns).Match(repoPath, isDir) {
		return true
	}
	if w.opts.Rules != nil {
		rel := strings.Join(components, "/")
		if isDir {
			rel += "/"
		}
		if w.opts.Rules.MatchesPath(rel) {
			return true
		}
	}
	return false
}

// dirPatterns reads the ignore files declared in the directory at domain.
func (w *GitWalker) dirPatterns(rootFS billy.Filesystem, domain []string) []gitignore.Pattern {
	var ps []gitignore.Pattern
	for _, name := range []string{gitignoreFile, ignoreFile} {
		rel := rootFS.Join(append(append([]string{}, domain...), name)...)
		ps = append(ps, w.readPatterns(rootFS, rel, domain)...)
	}
	return ps
}

// readPatterns parses an ignore file; a missing file yields no patterns.
func (w *GitWalker) readPatterns(rootFS billy.Filesystem, rel string, domain []string) []gitignore.Pattern {
	f, err := rootFS.Open(rel)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.logger.Debug("Failed to open ignore file", zap.String("file", rel), zap.Error(err))
		}
		return nil
	}
	defer f.Close()

	var ps []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, domain))
	}
	if err := scanner.Err(); err != nil {
		w.logger.Warn("Failed to read ignore file", zap.String("file", rel), zap.Error(err))
	}
	w.logger.Debug("Loaded ignore file", zap.String("file", rel), zap.Int("patterns", len(ps)))
	return ps
}

// globalPatterns loads core.excludesfile from the user's git configuration,
// falling back to git's default excludes file when none is configured.
func (w *GitWalker) globalPatterns() []gitignore.Pattern {
	ps, err := gitignore.LoadGlobalPatterns(osfs.New("/"))
	if err != nil {
		w.logger.Debug("No global git excludes loaded", zap.Error(err))
	}
	if len(ps) > 0 {
		return ps
	}
	path := defaultExcludesFile()
	if path == "" {
		return nil
	}
	return w.readPatterns(osfs.New(filepath.Dir(path)), filepath.Base(path), nil)
}

// defaultExcludesFile is $XDG_CONFIG_HOME/git/ignore, or
// ~/.config/git/ignore when XDG_CONFIG_HOME is unset.
func defaultExcludesFile() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

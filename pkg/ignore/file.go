package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// LocalFileName is the per-project ignore file looked up in the scan root.
const LocalFileName = ".clipdirignore"

// GlobalFileEnv names the environment variable holding a global ignore file path.
const GlobalFileEnv = "CLIPDIR_IGNORE_GLOBAL"

// FileRules holds gitignore-syntax rules loaded from ignore files.
// A nil *FileRules matches nothing.
type FileRules struct {
	gi      *gitignore.GitIgnore
	Sources []string // Files the rules were read from, global first.
	Lines   int      // Number of lines compiled.
}

// LoadIgnoreFiles compiles the global file followed by the local one.
// Files that do not exist are skipped; other read failures are returned.
// It returns nil when neither file contributed any lines.
func LoadIgnoreFiles(localPath, globalPath string, logger *zap.Logger) (*FileRules, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		lines   []string
		sources []string
	)
	for _, path := range []string{globalPath, localPath} {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ignore file %s: %w", path, err)
		}
		content, err := os.ReadFile(abs)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("Ignore file does not exist and will be skipped", zap.String("file", abs))
				continue
			}
			return nil, fmt.Errorf("failed to read ignore file %s: %w", abs, err)
		}
		fileLines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
		lines = append(lines, fileLines...)
		sources = append(sources, abs)
		logger.Debug("Loaded ignore file", zap.String("file", abs), zap.Int("lineCount", len(fileLines)))
	}

	if len(sources) == 0 {
		return nil, nil
	}
	return &FileRules{
		gi:      gitignore.CompileIgnoreLines(lines...),
		Sources: sources,
		Lines:   len(lines),
	}, nil
}

// MatchesPath reports whether rel, a slash-separated path relative to the
// scan root, is ignored by the loaded rules.
func (r *FileRules) MatchesPath(rel string) bool {
	if r == nil || r.gi == nil {
		return false
	}
	return r.gi.MatchesPath(filepath.ToSlash(rel))
}

package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"clipdir/pkg/content"
	"clipdir/pkg/ignore"
	"clipdir/pkg/walk"

	"go.uber.org/zap"
)

// Collector turns walker entries into accepted files. Every failure below
// the walk root is logged and contained to the entry that caused it.
type Collector struct {
	Walker     walk.Walker
	Classifier content.Classifier
	Matcher    *ignore.Matcher
	ReadFile   func(path string) ([]byte, error)
	Logger     *zap.Logger
}

// NewCollector wires a Collector with the default classifier and os.ReadFile.
func NewCollector(w walk.Walker, m *ignore.Matcher, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		Walker:     w,
		Classifier: content.Sniffer{},
		Matcher:    m,
		ReadFile:   os.ReadFile,
		Logger:     logger,
	}
}

// Collect walks root and appends every accepted file to doc in walk order.
// Only a walk that cannot start is returned as an error.
func (c *Collector) Collect(root string, doc *Document) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	c.Logger.Debug("Starting file collection", zap.String("root", absRoot))

	err = c.Walker.Walk(absRoot, func(e walk.Entry) {
		f, ok := c.process(e, absRoot)
		if !ok {
			return
		}
		if !doc.Append(f) {
			c.Logger.Debug("Skipping duplicate entry", zap.String("path", f.Path))
			return
		}
		c.Logger.Debug("Added file", zap.String("path", f.Path), zap.Int("bytes", len(f.Content)))
	})
	if err != nil {
		return err
	}

	c.Logger.Debug("Completed file collection", zap.Int("files", doc.Len()))
	return nil
}

// process applies the filtering pipeline to a single entry.
func (c *Collector) process(e walk.Entry, root string) (AcceptedFile, bool) {
	if e.Err != nil {
		c.Logger.Warn("Error accessing entry", zap.String("path", e.Path), zap.Error(e.Err))
		return AcceptedFile{}, false
	}
	if e.IsDir {
		return AcceptedFile{}, false
	}

	path := e.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	if c.Matcher != nil && c.Matcher.ShouldIgnore(path, root) {
		c.Logger.Debug("File matches ignore pattern", zap.String("path", path))
		return AcceptedFile{}, false
	}

	data, err := c.ReadFile(path)
	if err != nil {
		c.Logger.Warn("Error reading file", zap.String("path", path), zap.Error(err))
		return AcceptedFile{}, false
	}

	if typ := c.Classifier.Classify(data); !typ.IsText() {
		c.Logger.Debug("Skipping non-text file", zap.String("path", path), zap.Stringer("type", typ))
		return AcceptedFile{}, false
	}
	text := content.DecodeLossy(data)

	rel, err := filepath.Rel(root, path)
	if err != nil {
		c.Logger.Warn("Error getting relative path", zap.String("path", path), zap.Error(err))
		return AcceptedFile{}, false
	}
	if rel == "." {
		// The walk root is itself a file.
		rel = filepath.Base(path)
	}

	return AcceptedFile{Path: filepath.ToSlash(rel), Content: text}, true
}

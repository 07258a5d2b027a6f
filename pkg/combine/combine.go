// Package combine collects the text files of a directory tree into a single
// document with a header before each file.
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clipdir/pkg/ignore"
	"clipdir/pkg/walk"

	"go.uber.org/zap"
)

// RunCombine builds the ignore rules and walker described by args, collects
// the tree and returns the assembled document.
func RunCombine(args *Arguments, logger *zap.Logger) (*Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Debug("Starting combination process", zap.String("directory", args.Directory))

	parentDir, err := filepath.Abs(args.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	matcher := ignore.New(logger, args.IgnorePatterns...)
	logger.Debug("Loaded ignore patterns", zap.Int("totalPatterns", matcher.Len()))

	globalIgnorePath := args.GlobalIgnoreFile
	if globalIgnorePath == "" {
		globalIgnorePath = os.Getenv(ignore.GlobalFileEnv)
	}
	rules, err := ignore.LoadIgnoreFiles(filepath.Join(parentDir, ignore.LocalFileName), globalIgnorePath, logger)
	if err != nil {
		logger.Warn("Failed to load ignore files", zap.Error(err))
		rules = nil
	}

	opts := walk.Options{Hidden: args.Hidden, VCSIgnore: args.VCSIgnore}
	if rules != nil {
		opts.Rules = rules
		logger.Debug("Applying ignore files", zap.Strings("files", rules.Sources))
	}

	doc := NewDocument()
	collector := NewCollector(walk.NewGitWalker(opts, logger), matcher, logger)
	if err := collector.Collect(parentDir, doc); err != nil {
		logger.Warn("Error accessing entry", zap.String("path", parentDir), zap.Error(err))
	}

	logger.Debug("Combination process completed",
		zap.Int("totalFiles", doc.Len()),
		zap.Duration("elapsed", time.Since(startTime)))
	return doc, nil
}

package cmd

import (
	"fmt"
	"os"

	"clipdir/pkg/clipboard"
	"clipdir/pkg/combine"
	"clipdir/pkg/config"
	"clipdir/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCopy resolves the configuration, collects the directory and hands the
// document to the clipboard before printing the report.
func runCopy(cmd *cobra.Command, dir string, logger *zap.Logger, opts Options) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	logging.SetVerbose(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	patterns, _ := flags.GetStringSlice("ignore")
	var hidden, vcsIgnore *bool
	var ignoreFile, report *string
	if flags.Changed("hidden") {
		v, _ := flags.GetBool("hidden")
		hidden = &v
	}
	if flags.Changed("no-vcs") {
		v, _ := flags.GetBool("no-vcs")
		v = !v
		vcsIgnore = &v
	}
	if flags.Changed("ignore-file") {
		v, _ := flags.GetString("ignore-file")
		ignoreFile = &v
	}
	if p, _ := flags.GetBool("print"); p {
		v := combine.ReportDocument.String()
		report = &v
	}
	if tr, _ := flags.GetBool("tree"); tr {
		v := combine.ReportTree.String()
		report = &v
	}
	cfg.MergeWithFlags(patterns, hidden, vcsIgnore, ignoreFile, report)

	mode, ok := combine.ParseReportMode(cfg.Report)
	if !ok {
		return fmt.Errorf("invalid report mode %q: want list, document or tree", cfg.Report)
	}

	sink, err := opts.NewSink()
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	doc, err := combine.RunCombine(&combine.Arguments{
		Directory:        dir,
		IgnorePatterns:   cfg.Ignore,
		Hidden:           cfg.Hidden,
		VCSIgnore:        cfg.VCSIgnore,
		GlobalIgnoreFile: cfg.IgnoreFile,
	}, logger)
	if err != nil {
		return fmt.Errorf("combine failed: %w", err)
	}

	if err := clipboard.Copy(sink, doc.String()); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logger.Debug("Copied document to clipboard",
		zap.Int("files", doc.Len()),
		zap.Int("bytes", len(doc.String())))

	return combine.WriteReport(opts.Out, doc, mode)
}

// loadConfig reads --config, or the default config path when the flag is
// absent. An explicitly named file must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := config.DefaultPath()
	if cmd.Flags().Changed("config") {
		path, _ = cmd.Flags().GetString("config")
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}
	}
	return config.LoadConfig(path)
}

package cmd

import (
	"io"
	"os"

	"clipdir/pkg/clipboard"
	"clipdir/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Options carries the collaborators the commands write to.
type Options struct {
	Out     io.Writer                      // Console report destination.
	NewSink func() (clipboard.Sink, error) // Clipboard constructor.
}

// DefaultOptions writes reports to stdout and copies to the system clipboard.
func DefaultOptions() Options {
	return Options{
		Out: os.Stdout,
		NewSink: func() (clipboard.Sink, error) {
			return clipboard.NewSystem()
		},
	}
}

// NewRootCommand creates the clipdir command tree.
func NewRootCommand(logger *zap.Logger, opts Options) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	root := &cobra.Command{
		Use:   "clipdir <path>",
		Short: "Copy the text files of a directory to the clipboard",
		Long: `clipdir walks a directory, skips version-control ignored paths, lock files,
build output and binary files, and copies the remaining text files to the
clipboard as one document with a header before each file.

To copy a directory named "version", pass it as ./version.`,
		Args:          cobra.ExactArgs(1),
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], logger, opts)
		},
	}
	root.SetOut(opts.Out)

	flags := root.Flags()
	flags.StringSliceP("ignore", "i", nil, "Additional files or directories to ignore (supports glob patterns)")
	flags.Bool("hidden", false, "Include hidden files and directories")
	flags.Bool("no-vcs", false, "Do not honour .gitignore, .ignore and git exclude files")
	flags.String("ignore-file", "", "Global gitignore-syntax file (default $CLIPDIR_IGNORE_GLOBAL)")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/clipdir/config.yaml)")
	flags.Bool("print", false, "Print the copied document instead of the file list")
	flags.Bool("tree", false, "Print the copied files as a tree")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	root.MarkFlagsMutuallyExclusive("print", "tree")

	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command against os.Args.
func Execute(logger *zap.Logger) error {
	return NewRootCommand(logger, DefaultOptions()).Execute()
}

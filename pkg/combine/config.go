package combine

// Arguments holds the options for one combine run.
type Arguments struct {
	Directory        string   // Root directory to scan.
	IgnorePatterns   []string // Extra exact or glob patterns, applied after the defaults.
	Hidden           bool     // Include dot-files and dot-directories.
	VCSIgnore        bool     // Honour .gitignore, .ignore and git excludes.
	GlobalIgnoreFile string   // Optional gitignore-syntax file applied to every run.
}

package ignore

// defaultPatterns are skipped in every run: lock files, OS metadata,
// environment files, build output and license files.
var defaultPatterns = []string{
	"yarn.lock",
	"Cargo.lock",
	"pnpm-lock.yaml",
	"package-lock.json",
	".DS_Store",
	"thumbs.db",
	".env",
	".env.local",
	".env.development",
	".env.production",
	"node_modules",
	"target",
	"dist",
	"build",
	"LICENSE.md",
	"LICENSE",
}

// Defaults returns a copy of the built-in ignore list.
func Defaults() []string {
	out := make([]string, len(defaultPatterns))
	copy(out, defaultPatterns)
	return out
}

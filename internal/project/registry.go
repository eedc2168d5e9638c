package project

import (
	"os"
	"path/filepath"
)

// homeFallback stands in when HOME is unset. The resulting path is
// informational for rust-analyzer and never dereferenced by this tool.
const homeFallback = "~/"

// TokioRootModule builds the conventional cargo registry path to the
// pinned tokio crate's entry file. Pure string construction: no discovery
// of installed versions, no existence check.
func TokioRootModule(opts Options) string {
	home := os.Getenv("HOME")
	if home == "" {
		home = homeFallback
	}
	return filepath.Join(home,
		".cargo", "registry", "src",
		opts.RegistryIndex,
		"tokio-"+opts.TokioVersion,
		"src", "lib.rs")
}

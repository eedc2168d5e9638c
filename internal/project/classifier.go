package project

import (
	"path"
	"strings"
)

// sourceExt is the only extension recognized as a compilation unit.
const sourceExt = ".rs"

// AsyncPredicate reports whether a discovered unit needs the injected
// async-runtime dependency. Predicates see the root-relative slash path.
type AsyncPredicate func(path string) bool

// PrefixAsyncPredicate tags every file under the given subtree prefix,
// regardless of what the file actually contains.
func PrefixAsyncPredicate(prefix string) AsyncPredicate {
	return func(p string) bool {
		return strings.HasPrefix(p, prefix)
	}
}

// ClassifyPath turns one scanned path into a crate descriptor, or nil for
// paths that are not Rust sources.
func ClassifyPath(p, edition string, isAsync AsyncPredicate) *Crate {
	if path.Ext(p) != sourceExt {
		return nil
	}

	c := &Crate{
		RootModule: p,
		Edition:    edition,
		Deps:       []Dep{},
		// Keeps rust-analyzer working inside #[test] blocks.
		Cfg: []string{"test"},
	}
	if isAsync(p) {
		c.Deps = []Dep{{Crate: tokioCrateIndex, Name: tokioCrateName}}
	}
	return c
}

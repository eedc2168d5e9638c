package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanExercises walks the exercises glob under root and returns every
// matching file as a root-relative slash path, sorted so repeated runs
// over an unchanged tree emit identical documents. A malformed pattern or
// any I/O error during iteration aborts the scan; a missing exercises
// directory is simply an empty result.
func ScanExercises(root, pattern string) ([]string, error) {
	fsys := os.DirFS(root)

	base, _ := doublestar.SplitPattern(pattern)
	if _, err := fs.Stat(fsys, base); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var paths []string
	err := doublestar.GlobWalk(fsys, pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	}, doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", pattern, err)
	}

	sort.Strings(paths)
	return paths, nil
}

package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteProject serializes the document and fully overwrites the output
// file under the project root, returning the path it wrote.
func WriteProject(doc *Project, opts Options) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		// The pipeline only ever puts strings and ints in the document,
		// so this indicates a bug, not a user problem.
		return "", fmt.Errorf("marshal project document: %w", err)
	}

	outPath := filepath.Join(opts.ProjectRoot, opts.OutputPath)
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", opts.OutputPath, err)
	}
	return outPath, nil
}

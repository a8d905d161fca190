package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteReport writes the run outcome as indented JSON to path, creating the
// parent directory if needed.
func WriteReport(path string, report any) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	werr := encoder.Encode(report)

	if cerr := f.Close(); cerr != nil && werr == nil {
		werr = cerr
	}
	return werr
}

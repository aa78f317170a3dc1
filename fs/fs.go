// Package fs provides JSON file I/O for search result batches.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/serpclean"
)

// ReadResultSet loads a raw search result batch from a JSON file.
func ReadResultSet(path string) (*serpclean.ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serpclean.Errorf(serpclean.ENOTFOUND, "file not found: %s", path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var set serpclean.ResultSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, serpclean.Errorf(serpclean.EINVALID, "invalid JSON in %s: %v", path, err)
	}
	return &set, nil
}

// WriteResultSet saves a cleaned result set to a JSON file. The parent
// directory is created if needed, and the write is atomic: content
// goes to a temporary file that is renamed into place.
func WriteResultSet(path string, set *serpclean.CleanedResultSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result set: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}

// DefaultOutputPath derives an output path from the input path.
// Example: results.json → results_cleaned.json
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + "_cleaned" + ext
}

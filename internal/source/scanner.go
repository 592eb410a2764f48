package source

import (
	"os"
	"path/filepath"
	"sort"
)

// ScanDir lists the profile files directly inside dir, sorted by name.
// A missing directory yields no files and no error.
func ScanDir(dir string) ([]DiscoveredFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []DiscoveredFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		format := FormatOf(e.Name())
		if format == "" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		files = append(files, DiscoveredFile{
			Path:   path,
			Name:   stem(path),
			Format: format,
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// CountFormats returns how many discovered files use each format.
func CountFormats(files []DiscoveredFile) map[string]int {
	counts := make(map[string]int)
	for _, f := range files {
		counts[f.Format]++
	}
	return counts
}

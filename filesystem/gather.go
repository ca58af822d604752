package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func hasExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, e := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(e)) {
			return true
		}
	}
	return false
}

// ListFiles returns the regular files of directory whose names end with one
// of the extensions, compared case-insensitively. The result is ordered by
// file name.
func ListFiles(directory string, extensions ...string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !hasExtension(entry.Name(), extensions) {
			continue
		}
		paths = append(paths, filepath.Join(directory, entry.Name()))
	}

	return paths, nil
}

// GatherFiles expands roots, each a file or a directory, into the list of
// matching files.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			if !hasExtension(fi.Name(), extensions) {
				continue
			}
			paths = append(paths, root)
		} else if fi.Mode().IsDir() {
			files, err := ListFiles(root, extensions...)
			if err != nil {
				return nil, err
			}
			paths = append(paths, files...)
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}

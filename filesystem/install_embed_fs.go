package filesystem

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// InstallFS copies the whole tree of fsys below root into targetDirectory.
func InstallFS(fsys fs.FS, root string, targetDirectory string) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(targetDirectory, rel)

		if d.IsDir() {
			if err := CreateDirectoryIfNotExists(target); err != nil {
				return fmt.Errorf("creating directory '%s' failed: %w", target, err)
			}
			return nil
		}

		log.Printf("installing '%s'", path)

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("could not read embedded file '%s': %w", path, err)
		}

		if err := os.WriteFile(target, content, 0666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", target, err)
		}

		return nil
	})
}

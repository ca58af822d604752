package filesystem

import (
	"fmt"
	"io"
	"os"
)

// Copy copies src to dst and carries over the modification time.
func Copy(src, dst string) (err error) {
	sourceFileStat, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !sourceFileStat.Mode().IsRegular() {
		return fmt.Errorf("path '%s' does not denote a file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy '%s': %w", src, err)
	}

	mod := sourceFileStat.ModTime()
	return os.Chtimes(dst, mod, mod)
}

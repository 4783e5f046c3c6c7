package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic creates path through a temporary file in the same directory,
// renamed into place only after fn succeeds.  On failure nothing is left
// behind and any existing file at path is untouched.
func writeAtomic(path string, fn func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = fn(f); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

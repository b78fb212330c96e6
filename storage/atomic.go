package storage

import (
	"fmt"
	"os"
)

// WriteFileAtomic writes data to a temporary file, fsyncs it, renames it over
// filename and fsyncs dir.
func WriteFileAtomic(dir, filename string, data []byte, label string) error {
	tmp := filename + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open tmp %s: %w", label, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write tmp %s: %w", label, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("fsync tmp %s: %w", label, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close tmp %s: %w", label, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("rename tmp %s: %w", label, err)
	}
	if dirF, err := os.Open(dir); err == nil {
		_ = dirF.Sync()
		_ = dirF.Close()
	}
	return nil
}

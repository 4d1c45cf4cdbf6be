package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// backupSuffix is appended to the original path when backups are enabled.
const backupSuffix = ".orig"

// defaultFileMode is used when the original file's mode cannot be read.
const defaultFileMode = os.FileMode(0o644)

// writeFileAtomic replaces the file at path with content. The new
// content is written to a temporary file in the same directory and
// renamed into place, so a crash mid-write never leaves a half-written
// file. When backup is true the original content is first copied to
// path + ".orig".
func writeFileAtomic(path string, original, content []byte, backup bool) (err error) {
	mode := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if backup {
		backupErr := os.WriteFile(path+backupSuffix, original, mode)
		if backupErr != nil {
			return fmt.Errorf("write backup: %w", backupErr)
		}
	}

	dir, base := filepath.Split(path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	_, err = tmp.Write(content)
	if err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	err = tmp.Chmod(mode)
	if err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

// Package pipeline walks source trees, feeds each file through a rewrite
// engine, and commits changed files back to disk atomically. Files are
// processed strictly one at a time; the only state shared across files is
// the read-only engine configuration.
package pipeline

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// Walk visits every regular file under root whose name ends in one of
// the configured extensions, in lexical order. Directories whose name is
// in ignoreDirs are pruned and never descended into. Errors returned by
// visit abort the walk.
func Walk(root string, ignoreDirs, extensions []string, visit func(path string) error) error {
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && slices.Contains(ignoreDirs, d.Name()) {
				return fs.SkipDir
			}

			return nil
		}

		if !matchesExtension(d.Name(), extensions) {
			return nil
		}

		return visit(path)
	})
	if walkErr != nil {
		return fmt.Errorf("walk %s: %w", root, walkErr)
	}

	return nil
}

// matchesExtension reports whether the filename ends in any configured
// suffix. Suffix match, not filepath.Ext: configured values like
// ".java" and "pom.xml" both work.
func matchesExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// Package committer writes a rendered file set to disk. It is the only
// pipeline stage with side effects, which keeps the resolution and rendering
// stages unit-testable without a filesystem.
package committer

import (
	"os"
	"path/filepath"

	"github.com/picoforge/picoforge/internal/errors"
	"github.com/picoforge/picoforge/internal/renderer"
)

// Commit writes every file in the set beneath outputDir, creating parent
// directories as needed, and returns the absolute paths written in sorted
// order.
//
// If outputDir already contains a generated project (detected by the
// presence of CMakeLists.txt) and overwrite is false, Commit fails with an
// existing-project error before touching anything, so the prior contents are
// left unchanged.
func Commit(files renderer.FileSet, outputDir string, overwrite bool) ([]string, error) {
	if !overwrite && projectExists(outputDir) {
		return nil, errors.NewExistingProject(outputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.NewCommitError(outputDir, err)
	}

	written := make([]string, 0, len(files))
	for _, rel := range files.Paths() {
		dst := filepath.Join(outputDir, rel)
		if dir := filepath.Dir(dst); dir != outputDir {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.NewCommitError(dir, err)
			}
		}
		if err := os.WriteFile(dst, []byte(files[rel]), 0o644); err != nil {
			return nil, errors.NewCommitError(dst, err)
		}
		written = append(written, dst)
	}

	return written, nil
}

// projectExists reports whether outputDir already holds a generated project.
func projectExists(outputDir string) bool {
	_, err := os.Stat(filepath.Join(outputDir, renderer.CMakeListsName))
	return err == nil
}

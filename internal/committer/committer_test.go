package committer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picoforge/picoforge/internal/errors"
	"github.com/picoforge/picoforge/internal/renderer"
)

func testFiles() renderer.FileSet {
	return renderer.FileSet{
		renderer.CMakeListsName: "cmake_minimum_required(VERSION 3.13)\n",
		"testproj.c":            "int main() { return 0; }\n",
		".vscode/launch.json":   "{}\n",
	}
}

func TestCommit_WritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testproj")

	written, err := Commit(testFiles(), dir, false)
	require.NoError(t, err)
	require.Len(t, written, 3)

	// Returned paths are sorted.
	assert.Equal(t, filepath.Join(dir, ".vscode/launch.json"), written[0])
	assert.Equal(t, filepath.Join(dir, renderer.CMakeListsName), written[1])
	assert.Equal(t, filepath.Join(dir, "testproj.c"), written[2])

	data, err := os.ReadFile(filepath.Join(dir, "testproj.c"))
	require.NoError(t, err)
	assert.Equal(t, "int main() { return 0; }\n", string(data))

	// Parent directory for the IDE files was created.
	info, err := os.Stat(filepath.Join(dir, ".vscode"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCommit_ExistingProjectRefusedWithoutOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testproj")

	_, err := Commit(testFiles(), dir, false)
	require.NoError(t, err)

	// Make the existing content distinguishable.
	marker := filepath.Join(dir, "testproj.c")
	require.NoError(t, os.WriteFile(marker, []byte("original\n"), 0o644))

	_, err = Commit(testFiles(), dir, false)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeExists))
	assert.Contains(t, err.Error(), dir)

	// Prior contents are unchanged: nothing was written.
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(data))
}

func TestCommit_OverwriteReplacesProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testproj")

	_, err := Commit(testFiles(), dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testproj.c"), []byte("stale\n"), 0o644))

	_, err = Commit(testFiles(), dir, true)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "testproj.c"))
	require.NoError(t, err)
	assert.Equal(t, "int main() { return 0; }\n", string(data))
}

func TestCommit_RegenerationIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testproj")
	files := testFiles()

	_, err := Commit(files, dir, false)
	require.NoError(t, err)

	first := readAll(t, dir, files)

	_, err = Commit(files, dir, true)
	require.NoError(t, err)

	assert.Equal(t, first, readAll(t, dir, files))
}

func TestCommit_EmptyDirIsNotAProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testproj")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	// A directory without CMakeLists.txt does not trigger the existing
	// project check.
	_, err := Commit(testFiles(), dir, false)
	assert.NoError(t, err)
}

func readAll(t *testing.T, dir string, files renderer.FileSet) map[string]string {
	t.Helper()
	out := make(map[string]string, len(files))
	for _, rel := range files.Paths() {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		require.NoError(t, err)
		out[rel] = string(data)
	}
	return out
}

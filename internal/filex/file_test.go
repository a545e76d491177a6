package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestEnsureSubDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	got, err := EnsureSubDir("charts")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "charts"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureSubDir_ExistingDirIsFine(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	first, err := EnsureSubDir("charts")
	require.NoError(t, err)
	second, err := EnsureSubDir("charts")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, "radar.svg", []byte("<svg/>"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "radar.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<svg/>", string(data))
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteFile(dir, "out.svg", []byte("old"))
	require.NoError(t, err)
	path, err := WriteFile(dir, "out.svg", []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

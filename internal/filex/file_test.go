package filex

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("downloads")
	require.NoError(t, err)

	want := filepath.Join(tmp, "downloads")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureDir_AbsolutePathKept(t *testing.T) {
	want := filepath.Join(t.TempDir(), "a", "b")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	first, err := EnsureDir("downloads")
	require.NoError(t, err)

	second, err := EnsureDir("downloads")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("downloads", []byte("x"), 0o660))

	_, err := EnsureDir("downloads")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestSaveFile_WritesAndDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()

	p1, err := SaveFile(dir, "tai_san.xlsx", []byte("one"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "tai_san.xlsx"), p1)

	p2, err := SaveFile(dir, "tai_san.xlsx", []byte("two"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "tai_san(1).xlsx"), p2)

	b, err := os.ReadFile(p1)
	require.NoError(t, err)
	require.Equal(t, "one", string(b))
}

func TestSaveFile_StripsDirectories(t *testing.T) {
	dir := t.TempDir()

	p, err := SaveFile(dir, "../../etc/report.xlsx", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "report.xlsx"), p)
}

func TestSaveFile_EmptyName(t *testing.T) {
	_, err := SaveFile(t.TempDir(), "  ", []byte("x"))
	require.Error(t, err)
}

func TestSaveFile_FailedWriteLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	orig := writeFile
	writeFile = func(f *os.File, b []byte) (int, error) {
		n, _ := f.Write(b[:len(b)/2])
		return n, errors.New("disk full")
	}
	t.Cleanup(func() { writeFile = orig })

	_, err := SaveFile(dir, "tai_san.xlsx", []byte("half written"))
	require.ErrorContains(t, err, "disk full")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)

	writeFile = orig
	p, err := SaveFile(dir, "tai_san.xlsx", []byte("ok"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "tai_san.xlsx"), p)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "vitrine 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func() bool { return false }

	_, err := execute(t)
	require.ErrorIs(t, err, errNotTerminal)
}

func TestLogsCommandPrintsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitrine.log")
	content := `{"level":"info","time":"2026-10-14T10:00:00Z","message":"first"}
{"level":"warn","time":"2026-10-14T10:00:01Z","message":"second"}
{"level":"error","time":"2026-10-14T10:00:02Z","message":"third"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	output, err := execute(t, "logs", "--log-file", path, "-n", "2")
	require.NoError(t, err)
	require.NotContains(t, output, "first")
	require.Contains(t, output, "second")
	require.Contains(t, output, "third")
}

func TestLogsCommandMissingFile(t *testing.T) {
	output, err := execute(t, "logs", "--log-file", filepath.Join(t.TempDir(), "none.log"))
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("title: Demo\ncarousel:\n  slides:\n    - image: a.png\n"), 0o644))

	output, err := execute(t, "validate", "--config", good)
	require.NoError(t, err)
	require.Contains(t, output, "ok (0 sections, 1 slides)")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("tagline = \"no title\"\n"), 0o644))
	_, err = execute(t, "validate", "--config", bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "title")
}

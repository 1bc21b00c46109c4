package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/wiki/internal/profile"
)

// runCLI executes the command line in an isolated directory so no user
// config or state leaks in.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Setenv("WIKI_DEBUG", "")
	t.Setenv("WIKI_STATE_FILE", "")

	var out bytes.Buffer
	a := newApp(&out)
	a.root.SetArgs(args)
	a.root.SetErr(&out)
	err := a.Execute()
	return out.String(), err
}

func TestThemeDefaultsToLight(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.yaml")

	out, err := runCLI(t, "theme", "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, statErr := os.Stat(state)
	assert.True(t, os.IsNotExist(statErr), "reading must not create the state file")
}

func TestThemeSetPersists(t *testing.T) {
	state := filepath.Join(t.TempDir(), "nested", "state.yaml")

	out, err := runCLI(t, "theme", "dark", "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	data, err := os.ReadFile(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: dark")

	out, err = runCLI(t, "theme", "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeToggle(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.yaml")

	out, err := runCLI(t, "theme", "toggle", "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = runCLI(t, "theme", "toggle", "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeGarbageStoredValueReadsAsLight(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(state, []byte("theme: purple\n"), 0o600))

	out, err := runCLI(t, "theme", "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeNoPersistLeavesStateUntouched(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.yaml")

	out, err := runCLI(t, "theme", "dark", "--no-persist", "--state", state)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, statErr := os.Stat(state)
	assert.True(t, os.IsNotExist(statErr))
}

func TestThemeRejectsUnknownName(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.yaml")

	_, err := runCLI(t, "theme", "blue", "--state", state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "blue"`)
}

func TestThemeWriteFailureIsReported(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := runCLI(t, "theme", "dark", "--state", filepath.Join(blocker, "state.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving theme")
}

func TestTOCListsSectionsInOrder(t *testing.T) {
	out, err := runCLI(t, "toc")
	require.NoError(t, err)

	assert.Contains(t, out, "Personal Wiki - Abhaya Bikram Shahi")
	assert.Contains(t, out, "URL: https://wiki.abhayabikramshahi.xyz/")
	assert.Contains(t, out, "1. Introduction (#introduction)")
	assert.Contains(t, out, "8. References (#references)")
	assert.Less(t, strings.Index(out, "Biography"), strings.Index(out, "Education"))
}

func TestTOCUsesContentFile(t *testing.T) {
	content := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(content, []byte("site:\n  name: Notebook\n"), 0o600))

	out, err := runCLI(t, "toc", "--content", content)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Notebook\n"), out)
	assert.NotContains(t, out, "URL:")
}

func TestTOCRejectsUnknownSectionKey(t *testing.T) {
	content := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(content, []byte("sections:\n  hobbies: hi\n"), 0o600))

	_, err := runCLI(t, "toc", "--content", content)
	require.ErrorIs(t, err, profile.ErrUnknownSection)
}

func TestInvalidConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("layout:\n  sidebar_width: 2\n"), 0o600))

	_, err := runCLI(t, "toc", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sidebar_width")
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, err := runCLI(t, "toc", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestFormatTOCWithKeywords(t *testing.T) {
	p, err := profile.Parse([]byte("site:\n  name: N\n  author: A\n  keywords: [go, tui]\n"))
	require.NoError(t, err)

	got := formatTOC(p)
	assert.Contains(t, got, "Author: A\n")
	assert.Contains(t, got, "Keywords: go, tui\n")
}

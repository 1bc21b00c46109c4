package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFormatsFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Warn(CatPrefs, "write failed", "key", "theme", "orphan")

	line := buf.String()
	assert.Contains(t, line, "[WARN] [prefs] write failed key=theme orphan=<missing>")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestMinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })
	SetMinLevel(LevelWarn)

	Debug(CatUI, "hidden")
	Info(CatUI, "hidden")
	ErrorErr(CatUI, "shown", errors.New("boom"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[ERROR] [ui] shown error=boom")
}

func TestDisabledLoggerIsSilent(t *testing.T) {
	SetOutput(nil)
	assert.NotPanics(t, func() { Info(CatConfig, "nothing listens") })
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatProfile, "loaded", "sections", 8)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] [profile] loaded sections=8")
}

func TestEnabled(t *testing.T) {
	t.Setenv(EnvDebug, "")
	assert.False(t, Enabled(false))
	assert.True(t, Enabled(true))

	t.Setenv(EnvDebug, "1")
	assert.True(t, Enabled(false))
}

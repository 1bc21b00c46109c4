package tuitest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst  \r\n\x1b[1mbold\x1b[0m\x1b[2J\x1b[Hsecond\r\n\r\n")
	frames := parseFrames(raw)

	require.Len(t, frames, 2)
	assert.Equal(t, "first\nbold", frames[0].Plain)
	assert.Equal(t, "second", frames[1].Plain)
	assert.Equal(t, 1, frames[1].Index)
}

func TestParseFramesWithoutClear(t *testing.T) {
	frames := parseFrames([]byte("\x1b]11;?\x07hello"))
	require.Len(t, frames, 1)
	assert.Equal(t, "hello", frames[0].Plain)
}

func TestLastFrameContaining(t *testing.T) {
	rec := &Recording{Frames: []Frame{
		{Index: 0, Plain: "Contents\nIntroduction"},
		{Index: 1, Plain: "Contents\nSkills"},
		{Index: 2, Plain: "bye"},
	}}

	frame, ok := rec.LastFrameContaining("Contents")
	require.True(t, ok)
	assert.Equal(t, 1, frame.Index)

	frame, ok = rec.LastFrameContaining("Contents", "Introduction")
	require.True(t, ok)
	assert.Equal(t, 0, frame.Index)

	_, ok = rec.LastFrameContaining("absent")
	assert.False(t, ok)

	last, ok := rec.FinalFrame()
	require.True(t, ok)
	assert.Equal(t, "bye", last.Plain)

	var empty *Recording
	_, ok = empty.FinalFrame()
	assert.False(t, ok)
}

func TestPlainOutput(t *testing.T) {
	rec := &Recording{Raw: []byte("\x1b[38;5;12mWiki\x1b[0m\r\n")}
	assert.Equal(t, "Wiki\n", rec.PlainOutput())
}

func TestResponderAnswersQueriesInOrder(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)

	tr.Process([]byte("noise\x1b]11;?\x07more\x1b["))
	tr.Process([]byte("6n"))

	assert.Equal(t, "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R", out.String())
}

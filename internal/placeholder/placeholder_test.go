package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/csheth/wiki/internal/sections"
)

func widths(blocks []Block) []int {
	var out []int
	for _, block := range blocks {
		for _, line := range block.Lines {
			out = append(out, line.Width)
		}
	}
	return out
}

func TestRenderParagraphShape(t *testing.T) {
	blocks := Render("paragraph", 2)

	require.Len(t, blocks, 2)
	for _, block := range blocks {
		assert.Len(t, block.Lines, 3)
	}
	assert.Equal(t, []int{100, 100, 80, 100, 100, 80}, widths(blocks))
}

func TestRenderListShape(t *testing.T) {
	blocks := Render(KindList, 1)

	require.Len(t, blocks, 1)
	assert.Equal(t, []int{90, 85, 95}, widths(blocks))
}

func TestRenderSingleLineKinds(t *testing.T) {
	text := Render(KindText, 3)
	require.Len(t, text, 3)
	assert.Equal(t, []int{100, 100, 100}, widths(text))

	heading := Render(KindHeading, 1)
	require.Len(t, heading, 1)
	assert.Equal(t, 60, heading[0].Lines[0].Width)
	assert.Greater(t, heading[0].Lines[0].Height, text[0].Lines[0].Height)
}

func TestRenderUnknownKindIsEmpty(t *testing.T) {
	assert.Empty(t, Render("bogus", 5))
}

func TestRenderNonPositiveCountIsEmpty(t *testing.T) {
	assert.Empty(t, Render(KindText, 0))
	assert.Empty(t, Render(KindText, -2))
}

func TestRenderReturnsIndependentBlocks(t *testing.T) {
	blocks := Render(KindParagraph, 2)
	blocks[0].Lines[0].Width = 1

	assert.Equal(t, 100, blocks[1].Lines[0].Width)
	assert.Equal(t, 100, Render(KindParagraph, 1)[0].Lines[0].Width)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("list")
	require.NoError(t, err)
	assert.Equal(t, KindList, kind)

	_, err = ParseKind("bogus")
	assert.ErrorContains(t, err, "bogus")
}

func TestRenderIsDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom([]Kind{KindText, KindHeading, KindParagraph, KindList}).Draw(rt, "kind")
		count := rapid.IntRange(0, 20).Draw(rt, "count")

		first := Render(kind, count)
		second := Render(kind, count)
		if len(first) != count {
			rt.Fatalf("got %d blocks, want %d", len(first), count)
		}
		if !assert.ObjectsAreEqual(first, second) {
			rt.Fatalf("render is not deterministic for %s x%d", kind, count)
		}
	})
}

func TestEverySectionHasALayout(t *testing.T) {
	for _, id := range sections.All() {
		layout := SectionLayout(id)
		require.NotEmpty(t, layout, id)
		assert.Equal(t, KindHeading, layout[0].Kind, "section %s should open with a heading", id)
		assert.Positive(t, Rows(RenderSection(id)))
	}
}

func TestRows(t *testing.T) {
	// heading (2 rows + 1 gap) + paragraph x2 (3 rows + 1 gap each)
	assert.Equal(t, 11, Rows(RenderSection(sections.Introduction)))
}

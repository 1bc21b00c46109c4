package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/patrickmn/go-cache"

	"github.com/csheth/wiki/internal/log"
	"github.com/csheth/wiki/internal/placeholder"
	"github.com/csheth/wiki/internal/sections"
)

// markdownRenderer turns section bodies into styled terminal text. Output
// is cached per theme, width and section; Flush drops it when the content
// changes.
type markdownRenderer struct {
	cache     *cache.Cache
	renderers map[string]*glamour.TermRenderer
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{
		cache:     cache.New(cache.NoExpiration, 0),
		renderers: map[string]*glamour.TermRenderer{},
	}
}

func (r *markdownRenderer) Render(style string, width int, id sections.ID, body string) string {
	cacheKey := fmt.Sprintf("%s:%d:%s", style, width, id)
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.(string)
	}

	out, err := r.render(style, width, body)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown render failed", err, "section", id)
		out = wordwrap.String(body, width)
	}
	out = strings.Trim(out, "\n")
	r.cache.Set(cacheKey, out, cache.NoExpiration)
	return out
}

func (r *markdownRenderer) render(style string, width int, body string) (string, error) {
	rendererKey := fmt.Sprintf("%s:%d", style, width)
	tr, ok := r.renderers[rendererKey]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
			glamour.WithColorProfile(lipgloss.ColorProfile()),
		)
		if err != nil {
			return "", err
		}
		r.renderers[rendererKey] = tr
	}
	return tr.Render(body)
}

// Flush forgets rendered output.
func (r *markdownRenderer) Flush() {
	r.cache.Flush()
}

// drawSkeleton lays out placeholder blocks as rows of shaded bars.
func drawSkeleton(blocks []placeholder.Block, width int, style lipgloss.Style) string {
	var b strings.Builder
	for _, block := range blocks {
		for _, line := range block.Lines {
			bar := style.Render(strings.Repeat(skeletonRune, barWidth(line.Width, width)))
			for row := 0; row < line.Height; row++ {
				b.WriteString(bar)
				b.WriteRune('\n')
			}
			for gap := 0; gap < line.Gap; gap++ {
				b.WriteRune('\n')
			}
		}
	}
	return b.String()
}

func barWidth(percent, width int) int {
	w := width * percent / 100
	if w < 1 {
		w = 1
	}
	return w
}

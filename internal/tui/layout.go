package tui

import (
	"strings"

	"github.com/csheth/wiki/internal/sections"
)

type pageLayout struct {
	windowWidth   int
	windowHeight  int
	wide          bool
	sidebarWidth  int
	contentWidth  int
	contentHeight int
	helpHeight    int
}

func newPageLayout(sidebarWidth int) pageLayout {
	l := pageLayout{sidebarWidth: sidebarWidth}
	l.Update(80, 24, 100, 0)
	return l
}

// Update recomputes pane sizes. Terminals wider than narrowWidth show the
// sidebar beside the content; narrower ones give the content the full width
// and show the sidebar as a drawer.
func (l *pageLayout) Update(width, height, narrowWidth, helpHeight int) {
	l.windowWidth = width
	l.windowHeight = height
	l.helpHeight = helpHeight
	l.wide = width > narrowWidth

	inner := width - contentHorizontalPad
	if l.wide {
		inner -= l.sidebarWidth + sidebarSeparatorWidth
	}
	if inner < minContentWidth {
		inner = minContentWidth
	}
	l.contentWidth = inner

	usable := height - headerHeight - statusHeight - helpHeight
	if usable < minContentHeight {
		usable = minContentHeight
	}
	l.contentHeight = usable
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

// document is the scrollable page plus where each section landed in it.
type document struct {
	content string
	anchors sections.GeometryMap
}

// buildDocument writes every section in order. Each section's extent runs
// from its first line to the line before the next section starts, so the
// extents tile the page without gaps.
func buildDocument(render func(id sections.ID) string) document {
	cb := &contentBuilder{}
	ids := sections.All()
	tops := make([]int, len(ids))
	for i, id := range ids {
		if cb.Line() > 0 {
			cb.WriteRune('\n')
		}
		tops[i] = cb.Line()
		body := strings.Trim(render(id), "\n")
		cb.WriteString(body)
		cb.WriteRune('\n')
	}

	anchors := make(sections.GeometryMap, len(ids))
	for i, id := range ids {
		end := cb.Line()
		if i+1 < len(ids) {
			end = tops[i+1]
		}
		anchors[id] = sections.Geometry{Top: tops[i], Height: end - tops[i]}
	}
	return document{content: strings.TrimSuffix(cb.String(), "\n"), anchors: anchors}
}

package tui

import (
	"strings"
	"testing"

	"github.com/csheth/wiki/internal/sections"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name          string
		width         int
		height        int
		helpHeight    int
		wide          bool
		contentWidth  int
		contentHeight int
	}{
		{name: "wide", width: 120, height: 40, wide: true, contentWidth: 93, contentHeight: 37},
		{name: "at breakpoint", width: 100, height: 30, wide: false, contentWidth: 98, contentHeight: 27},
		{name: "narrow", width: 80, height: 24, wide: false, contentWidth: 78, contentHeight: 21},
		{name: "with help", width: 120, height: 40, helpHeight: 5, wide: true, contentWidth: 93, contentHeight: 32},
		{name: "tiny", width: 10, height: 2, wide: false, contentWidth: minContentWidth, contentHeight: minContentHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout(24)
			layout.Update(tc.width, tc.height, 100, tc.helpHeight)
			if layout.wide != tc.wide {
				t.Fatalf("wide mismatch: got %v want %v", layout.wide, tc.wide)
			}
			if layout.contentWidth != tc.contentWidth {
				t.Fatalf("content width mismatch: got %d want %d", layout.contentWidth, tc.contentWidth)
			}
			if layout.contentHeight != tc.contentHeight {
				t.Fatalf("content height mismatch: got %d want %d", layout.contentHeight, tc.contentHeight)
			}
		})
	}
}

func TestBuildDocumentTilesSections(t *testing.T) {
	doc := buildDocument(func(id sections.ID) string {
		return strings.Repeat(id.Title()+"\n", id.Index()+1)
	})

	total := strings.Count(doc.content, "\n") + 1
	next := 0
	for _, id := range sections.All() {
		g, ok := doc.anchors.Geometry(id)
		if !ok {
			t.Fatalf("missing geometry for %s", id)
		}
		if g.Top != next {
			t.Fatalf("%s starts at %d, want %d", id, g.Top, next)
		}
		lines := strings.Split(doc.content, "\n")
		if lines[g.Top] != id.Title() {
			t.Fatalf("line %d = %q, want %q", g.Top, lines[g.Top], id.Title())
		}
		next = g.Top + g.Height
	}
	if next != total {
		t.Fatalf("sections cover %d lines, document has %d", next, total)
	}
}

func TestBuildDocumentSeparatesSections(t *testing.T) {
	doc := buildDocument(func(id sections.ID) string { return "\n" + id.Title() + "\n\n" })

	intro, _ := doc.anchors.Geometry(sections.Introduction)
	bio, _ := doc.anchors.Geometry(sections.Biography)
	if intro.Height != 2 {
		t.Fatalf("introduction height %d, want 2 (body plus separator)", intro.Height)
	}
	if bio.Top != 2 {
		t.Fatalf("biography top %d, want 2", bio.Top)
	}
}

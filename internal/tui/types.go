package tui

import (
	"github.com/csheth/wiki/internal/profile"
)

const (
	minContentWidth       = 20
	minContentHeight      = 3
	contentHorizontalPad  = 2
	headerHeight          = 2
	statusHeight          = 1
	wheelStep             = 3
	searchBoxWidth        = 30
	defaultSearchHint     = "Search personal information..."
	loadingLabel          = "Loading…"
	reloadingLabel        = "Reloading profile…"
	skeletonRune          = "░"
	menuGlyphClosed       = "☰"
	menuGlyphOpen         = "✕"
	sidebarHeading        = "Contents"
	sidebarSeparatorWidth = 1
)

// Zone ids for clickable regions.
const (
	zoneMenu      = "wiki-menu"
	zoneTheme     = "wiki-theme"
	zoneTOCPrefix = "wiki-toc-"
)

// timerFiredMsg delivers a scheduler callback back onto the update loop.
type timerFiredMsg struct {
	id int
}

// profileChangedMsg is sent when the watched profile file settles after a
// change.
type profileChangedMsg struct{}

type profileLoadedMsg struct {
	profile *profile.Profile
	err     error
}

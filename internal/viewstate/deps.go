package viewstate

import (
	"time"

	"github.com/csheth/wiki/internal/prefs"
	"github.com/csheth/wiki/internal/sections"
)

// Cancel releases a subscription or pending timer. Calling it more than
// once is harmless.
type Cancel func()

// Viewport is the scrolling surface the page is rendered into.
type Viewport interface {
	// ScrollOffset is the current vertical scroll position.
	ScrollOffset() int
	// Width is the current viewport width.
	Width() int
	// SmoothScrollTo requests an animated scroll ending at top.
	SmoothScrollTo(top int)
}

// ScrollEvents delivers a callback for every scroll position change.
type ScrollEvents interface {
	Subscribe(fn func()) Cancel
}

// Scheduler arms one-shot timers on the host's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Cancel
}

// ThemeMarker is the rendering hook that selects a palette.
type ThemeMarker interface {
	ApplyTheme(theme Theme)
}

// Deps are the environment capabilities a Controller drives.
type Deps struct {
	Geometry sections.GeometryProvider
	Viewport Viewport
	Scroll   ScrollEvents
	Timers   Scheduler
	Marker   ThemeMarker
	Prefs    prefs.Store
}

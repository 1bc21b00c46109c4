// Package viewstate owns the page's UI state: which section is in view,
// whether the sidebar is open, whether content is still loading, and the
// colour theme. All methods must be called from the host's single event
// goroutine.
package viewstate

import (
	"time"

	"github.com/csheth/wiki/internal/prefs"
	"github.com/csheth/wiki/internal/sections"
)

// State is a snapshot of the view.
type State struct {
	ActiveSection sections.ID
	SidebarOpen   bool
	Loading       bool
	Theme         Theme
}

// Options are the geometry and timing constants. Units are whatever the
// host measures scroll offsets and widths in.
type Options struct {
	// LoadingDelay is how long placeholders show before content.
	LoadingDelay time.Duration
	// Lookahead is added to the scroll offset before locating a section.
	Lookahead int
	// HeaderOffset is subtracted from a section's top when navigating.
	HeaderOffset int
	// NarrowWidth is the widest viewport that still auto-closes the sidebar.
	NarrowWidth int
}

// DefaultOptions returns the constants in CSS pixels and milliseconds.
func DefaultOptions() Options {
	return Options{
		LoadingDelay: 1500 * time.Millisecond,
		Lookahead:    100,
		HeaderOffset: 80,
		NarrowWidth:  768,
	}
}

type phase int

const (
	phaseIdle phase = iota
	phaseRunning
	phaseStopped
)

// Controller derives and mutates State from environment events.
type Controller struct {
	deps  Deps
	opts  Options
	state State
	phase phase

	cancelTimer  Cancel
	cancelScroll Cancel
}

// New returns a controller holding the default state. Nothing is read or
// subscribed until Initialize.
func New(deps Deps, opts Options) *Controller {
	return &Controller{
		deps: deps,
		opts: opts,
		state: State{
			Loading: true,
			Theme:   DefaultTheme,
		},
	}
}

// State returns the current view state.
func (c *Controller) State() State {
	return c.state
}

// Options returns the constants the controller was built with.
func (c *Controller) Options() Options {
	return c.opts
}

// Initialize loads the persisted theme, arms the loading timer, subscribes
// to scroll events and computes the active section once. Only the first
// call on a fresh controller has any effect.
func (c *Controller) Initialize() {
	if c.phase != phaseIdle {
		return
	}
	c.phase = phaseRunning

	c.state.Theme = c.loadTheme()
	c.applyTheme()

	if c.deps.Timers != nil {
		c.cancelTimer = c.deps.Timers.AfterFunc(c.opts.LoadingDelay, c.finishLoading)
	}
	if c.deps.Scroll != nil {
		c.cancelScroll = c.deps.Scroll.Subscribe(c.onScroll)
	}
	c.RecomputeActiveSection()
}

// RecomputeActiveSection marks the first section containing the scroll
// offset plus lookahead as active. When nothing contains it the previous
// section stays active.
func (c *Controller) RecomputeActiveSection() {
	if c.deps.Viewport == nil {
		return
	}
	pos := c.deps.Viewport.ScrollOffset() + c.opts.Lookahead
	if id, ok := sections.Locate(c.deps.Geometry, pos); ok {
		c.state.ActiveSection = id
	}
}

// NavigateTo scrolls so the section's top sits just below the header and
// closes the sidebar on narrow viewports. Unknown or unrendered sections
// are ignored.
func (c *Controller) NavigateTo(id sections.ID) {
	if !id.Valid() || c.deps.Geometry == nil || c.deps.Viewport == nil {
		return
	}
	g, ok := c.deps.Geometry.Geometry(id)
	if !ok {
		return
	}
	c.deps.Viewport.SmoothScrollTo(g.Top - c.opts.HeaderOffset)
	if c.deps.Viewport.Width() <= c.opts.NarrowWidth {
		c.state.SidebarOpen = false
	}
}

// ToggleSidebar flips the sidebar open state.
func (c *Controller) ToggleSidebar() {
	c.state.SidebarOpen = !c.state.SidebarOpen
}

// ToggleTheme switches theme, applies it and persists it. A failed write
// leaves the in-memory theme switched.
func (c *Controller) ToggleTheme() {
	c.state.Theme = c.state.Theme.Toggle()
	c.applyTheme()
	if c.deps.Prefs != nil {
		_ = c.deps.Prefs.Set(prefs.KeyTheme, string(c.state.Theme))
	}
}

// Teardown cancels the loading timer and the scroll subscription. It acts
// once; later calls do nothing.
func (c *Controller) Teardown() {
	if c.phase == phaseStopped {
		return
	}
	c.phase = phaseStopped
	if c.cancelTimer != nil {
		c.cancelTimer()
		c.cancelTimer = nil
	}
	if c.cancelScroll != nil {
		c.cancelScroll()
		c.cancelScroll = nil
	}
}

func (c *Controller) finishLoading() {
	if c.phase != phaseRunning {
		return
	}
	c.cancelTimer = nil
	c.state.Loading = false
}

func (c *Controller) onScroll() {
	if c.phase != phaseRunning {
		return
	}
	c.RecomputeActiveSection()
}

func (c *Controller) loadTheme() Theme {
	if c.deps.Prefs == nil {
		return DefaultTheme
	}
	raw, ok, err := c.deps.Prefs.Get(prefs.KeyTheme)
	if err != nil || !ok {
		return DefaultTheme
	}
	theme, ok := ParseTheme(raw)
	if !ok {
		return DefaultTheme
	}
	return theme
}

func (c *Controller) applyTheme() {
	if c.deps.Marker != nil {
		c.deps.Marker.ApplyTheme(c.state.Theme)
	}
}

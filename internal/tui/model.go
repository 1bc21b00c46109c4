package tui

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/csheth/wiki/internal/log"
	"github.com/csheth/wiki/internal/placeholder"
	"github.com/csheth/wiki/internal/prefs"
	"github.com/csheth/wiki/internal/profile"
	"github.com/csheth/wiki/internal/sections"
	"github.com/csheth/wiki/internal/viewstate"
)

// Config wires runtime options into the TUI program.
type Config struct {
	// Profile is the page content. Nil uses the built-in profile.
	Profile *profile.Profile
	// ProfilePath is re-read when Changes fires.
	ProfilePath string
	Prefs       prefs.Store
	// Options are in terminal units: rows for offsets, columns for widths.
	Options      viewstate.Options
	SidebarWidth int
	ScrollStep   time.Duration
	Changes      <-chan struct{}
}

var zoneOnce sync.Once

// Model hosts the view-state controller inside a Bubble Tea program.
type Model struct {
	config Config
	ctrl   *viewstate.Controller
	timers *teaScheduler
	scroll *scrollBus
	jobs   *jobBus
	layout pageLayout
	keys   keyMap

	viewport viewport.Model
	spinner  spinner.Model
	search   textinput.Model
	help     help.Model

	profile  *profile.Profile
	renderer *markdownRenderer
	styles   styleSet

	doc          document
	built        bool
	builtLoading bool
	contentDirty bool

	scrollTarget int
	cancelAnim   viewstate.Cancel
	spinning     bool

	helpVisible  bool
	infoMessage  string
	errorMessage string
	closed       bool
}

// New returns a model ready to be mounted into a Program.
func New(config Config) *Model {
	zoneOnce.Do(zone.NewGlobal)

	if config.SidebarWidth <= 0 {
		config.SidebarWidth = 24
	}
	if config.ScrollStep <= 0 {
		config.ScrollStep = 16 * time.Millisecond
	}

	m := &Model{
		config:       config,
		timers:       newTeaScheduler(),
		scroll:       &scrollBus{},
		jobs:         newJobBus(),
		keys:         newKeyMap(),
		profile:      config.Profile,
		renderer:     newMarkdownRenderer(),
		styles:       newStyleSet(viewstate.DefaultTheme),
		contentDirty: true,
	}
	if m.profile == nil {
		p, err := profile.Default()
		if err != nil {
			m.errorMessage = err.Error()
			p = &profile.Profile{Site: profile.Site{Name: "Personal Wiki"}}
		}
		m.profile = p
	}

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.search = textinput.New()
	m.search.Prompt = "⌕ "
	m.search.Width = searchBoxWidth
	m.search.Placeholder = m.searchPlaceholder()
	m.help = help.New()

	m.layout = newPageLayout(config.SidebarWidth)
	m.layout.Update(80, 24, config.Options.NarrowWidth, 0)
	m.viewport = viewport.New(m.layout.contentWidth, m.layout.contentHeight)
	m.viewport.MouseWheelEnabled = false

	h := host{m: m}
	m.ctrl = viewstate.New(viewstate.Deps{
		Geometry: h,
		Viewport: h,
		Scroll:   m.scroll,
		Timers:   m.timers,
		Marker:   h,
		Prefs:    config.Prefs,
	}, config.Options)
	return m
}

func (m *Model) Init() tea.Cmd {
	m.ctrl.Initialize()
	m.syncContent()
	m.spinning = true
	return tea.Batch(
		m.timers.Drain(),
		m.spinner.Tick,
		waitForChange(m.config.Changes),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case timerFiredMsg:
		m.timers.Fire(msg.id)
	case spinner.TickMsg:
		if m.ctrl.State().Loading || m.jobs.Busy(jobKindReload) {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			m.spinning = false
		}
	case profileChangedMsg:
		cmds = append(cmds,
			m.jobs.Start(jobKindReload, loadProfileJob(m.config.ProfilePath)),
			waitForChange(m.config.Changes),
		)
	case jobSignalMsg:
		m.jobs.Track(msg.Snapshot)
		if !m.spinning {
			m.spinning = true
			cmds = append(cmds, m.spinner.Tick)
		}
	case jobResultEnvelope:
		m.jobs.Track(msg.Snapshot)
		if loaded, ok := msg.Payload.(profileLoadedMsg); ok {
			m.applyProfile(loaded)
		}
	}

	m.syncContent()
	cmds = append(cmds, m.timers.Drain())
	return m, tea.Batch(cmds...)
}

// Close tears the controller down. Call it once after the program exits.
func (m *Model) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.stopAnimation()
	m.ctrl.Teardown()
	return nil
}

// State exposes the controller snapshot.
func (m *Model) State() viewstate.State {
	return m.ctrl.State()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	state := m.ctrl.State()
	switch {
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.resize(m.layout.windowWidth, m.layout.windowHeight)
	case key.Matches(msg, m.keys.Theme):
		m.ctrl.ToggleTheme()
	case key.Matches(msg, m.keys.Sidebar):
		m.ctrl.ToggleSidebar()
	case key.Matches(msg, m.keys.Close):
		if state.SidebarOpen {
			m.ctrl.ToggleSidebar()
		}
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.NavigateTo(state.ActiveSection.Relative(-1))
	case key.Matches(msg, m.keys.Next):
		m.ctrl.NavigateTo(state.ActiveSection.Relative(1))
	case key.Matches(msg, m.keys.Jump):
		if id, ok := jumpTarget(msg.String()); ok {
			m.ctrl.NavigateTo(id)
		}
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.stopAnimation()
		m.setOffset(0)
	case key.Matches(msg, m.keys.Bottom):
		m.stopAnimation()
		m.setOffset(m.maxOffset())
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-wheelStep)
			return
		case tea.MouseButtonWheelDown:
			m.scrollBy(wheelStep)
			return
		}
	}
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		m.handleClick(clickTarget(msg))
	}
}

func clickTarget(msg tea.MouseMsg) string {
	if zone.Get(zoneMenu).InBounds(msg) {
		return zoneMenu
	}
	if zone.Get(zoneTheme).InBounds(msg) {
		return zoneTheme
	}
	for _, id := range sections.All() {
		if zone.Get(zoneTOCPrefix + string(id)).InBounds(msg) {
			return zoneTOCPrefix + string(id)
		}
	}
	return ""
}

func (m *Model) handleClick(target string) {
	switch {
	case target == "":
		return
	case target == zoneMenu:
		m.ctrl.ToggleSidebar()
	case target == zoneTheme:
		m.ctrl.ToggleTheme()
	case strings.HasPrefix(target, zoneTOCPrefix):
		m.ctrl.NavigateTo(sections.ID(strings.TrimPrefix(target, zoneTOCPrefix)))
	}
	log.Debug(log.CatUI, "click", "target", target)
}

func (m *Model) resize(width, height int) {
	helpHeight := 0
	if m.helpVisible {
		m.help.Width = width
		helpHeight = strings.Count(m.help.FullHelpView(m.keys.FullHelp()), "\n") + 1
	}
	m.layout.Update(width, height, m.config.Options.NarrowWidth, helpHeight)
	m.help.Width = width
	m.viewport.Width = m.layout.contentWidth
	m.viewport.Height = m.layout.contentHeight
	m.contentDirty = true
}

// setOffset moves the viewport and notifies scroll subscribers when the
// offset actually changed.
func (m *Model) setOffset(y int) bool {
	before := m.viewport.YOffset
	m.viewport.SetYOffset(y)
	if m.viewport.YOffset == before {
		return false
	}
	m.scroll.Emit()
	return true
}

func (m *Model) scrollBy(delta int) {
	m.stopAnimation()
	m.setOffset(m.viewport.YOffset + delta)
}

func (m *Model) maxOffset() int {
	limit := m.viewport.TotalLineCount() - m.viewport.Height
	if limit < 0 {
		return 0
	}
	return limit
}

func (m *Model) smoothScrollTo(top int) {
	m.stopAnimation()
	m.ensureContent(false)
	if top < 0 {
		top = 0
	}
	if limit := m.maxOffset(); top > limit {
		top = limit
	}
	m.scrollTarget = top
	if top == m.viewport.YOffset {
		return
	}
	m.cancelAnim = m.timers.AfterFunc(m.config.ScrollStep, m.scrollStep)
}

// scrollStep eases toward the target, covering a third of the remaining
// distance per frame.
func (m *Model) scrollStep() {
	m.cancelAnim = nil
	diff := m.scrollTarget - m.viewport.YOffset
	if diff == 0 {
		return
	}
	step := diff / 3
	if step == 0 {
		step = 1
		if diff < 0 {
			step = -1
		}
	}
	if !m.setOffset(m.viewport.YOffset + step) {
		return
	}
	if m.viewport.YOffset != m.scrollTarget {
		m.cancelAnim = m.timers.AfterFunc(m.config.ScrollStep, m.scrollStep)
	}
}

func (m *Model) stopAnimation() {
	if m.cancelAnim != nil {
		m.cancelAnim()
		m.cancelAnim = nil
	}
}

// syncContent rebuilds the page when anything it depends on changed and
// re-evaluates the active section against the new geometry.
func (m *Model) syncContent() {
	if m.built && m.ctrl.State().Loading != m.builtLoading {
		m.contentDirty = true
	}
	if m.built && !m.contentDirty {
		return
	}
	m.rebuildContent(true)
	m.ctrl.RecomputeActiveSection()
}

func (m *Model) ensureContent(emit bool) {
	if m.built && !m.contentDirty {
		return
	}
	m.rebuildContent(emit)
}

func (m *Model) rebuildContent(emit bool) {
	loading := m.ctrl.State().Loading
	width := m.layout.contentWidth
	m.doc = buildDocument(func(id sections.ID) string {
		if loading {
			return drawSkeleton(placeholder.RenderSection(id), width, m.styles.skeleton)
		}
		return m.renderer.Render(m.styles.glamour, width, id, m.profile.Body(id))
	})

	before := m.viewport.YOffset
	m.viewport.SetContent(m.doc.content)
	m.built = true
	m.builtLoading = loading
	m.contentDirty = false
	if emit && m.viewport.YOffset != before {
		m.scroll.Emit()
	}
}

func (m *Model) applyTheme(theme viewstate.Theme) {
	m.styles = newStyleSet(theme)
	m.spinner.Style = m.styles.glyph
	m.search.PlaceholderStyle = m.styles.search
	m.contentDirty = true
	log.Debug(log.CatUI, "theme applied", "theme", theme)
}

func (m *Model) applyProfile(msg profileLoadedMsg) {
	if msg.err != nil {
		m.infoMessage = ""
		m.errorMessage = "profile reload failed: " + msg.err.Error()
		return
	}
	m.profile = msg.profile
	m.renderer.Flush()
	m.search.Placeholder = m.searchPlaceholder()
	m.errorMessage = ""
	m.infoMessage = "Profile reloaded"
	m.contentDirty = true
}

func (m *Model) searchPlaceholder() string {
	if m.profile != nil && m.profile.Site.SearchPlaceholder != "" {
		return m.profile.Site.SearchPlaceholder
	}
	return defaultSearchHint
}

// host adapts the model to the controller's environment capabilities.
type host struct {
	m *Model
}

func (h host) ScrollOffset() int { return h.m.viewport.YOffset }

func (h host) Width() int { return h.m.layout.windowWidth }

func (h host) SmoothScrollTo(top int) { h.m.smoothScrollTo(top) }

func (h host) Geometry(id sections.ID) (sections.Geometry, bool) {
	h.m.ensureContent(false)
	return h.m.doc.anchors.Geometry(id)
}

func (h host) ApplyTheme(theme viewstate.Theme) { h.m.applyTheme(theme) }

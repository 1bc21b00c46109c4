package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/wiki/internal/viewstate"
)

type palette struct {
	text     lipgloss.Color
	muted    lipgloss.Color
	accent   lipgloss.Color
	onAccent lipgloss.Color
	surface  lipgloss.Color
	border   lipgloss.Color
	skeleton lipgloss.Color
	danger   lipgloss.Color
}

var palettes = map[viewstate.Theme]palette{
	viewstate.ThemeLight: {
		text:     lipgloss.Color("#202122"),
		muted:    lipgloss.Color("#54595d"),
		accent:   lipgloss.Color("#3366cc"),
		onAccent: lipgloss.Color("#ffffff"),
		surface:  lipgloss.Color("#f8f9fa"),
		border:   lipgloss.Color("#a2a9b1"),
		skeleton: lipgloss.Color("#c8ccd1"),
		danger:   lipgloss.Color("#d33"),
	},
	viewstate.ThemeDark: {
		text:     lipgloss.Color("#eaecf0"),
		muted:    lipgloss.Color("#a2a9b1"),
		accent:   lipgloss.Color("#6b9eff"),
		onAccent: lipgloss.Color("#101418"),
		surface:  lipgloss.Color("#1b1e23"),
		border:   lipgloss.Color("#54595d"),
		skeleton: lipgloss.Color("#3a3f45"),
		danger:   lipgloss.Color("#ff6b6b"),
	},
}

// styleSet is rebuilt whenever the theme changes.
type styleSet struct {
	glamour string

	title     lipgloss.Style
	glyph     lipgloss.Style
	rule      lipgloss.Style
	sidebar   lipgloss.Style
	tocTitle  lipgloss.Style
	tocItem   lipgloss.Style
	tocActive lipgloss.Style
	tocNumber lipgloss.Style
	content   lipgloss.Style
	skeleton  lipgloss.Style
	status    lipgloss.Style
	statusKey lipgloss.Style
	muted     lipgloss.Style
	errorText lipgloss.Style
	search    lipgloss.Style
}

func newStyleSet(theme viewstate.Theme) styleSet {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[viewstate.DefaultTheme]
		theme = viewstate.DefaultTheme
	}
	return styleSet{
		glamour:   string(theme),
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.text),
		glyph:     lipgloss.NewStyle().Foreground(p.accent),
		rule:      lipgloss.NewStyle().Foreground(p.border),
		sidebar:   lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(p.border),
		tocTitle:  lipgloss.NewStyle().Bold(true).Foreground(p.text).MarginBottom(1),
		tocItem:   lipgloss.NewStyle().Foreground(p.accent),
		tocActive: lipgloss.NewStyle().Bold(true).Foreground(p.onAccent).Background(p.accent),
		tocNumber: lipgloss.NewStyle().Foreground(p.muted),
		content:   lipgloss.NewStyle().PaddingLeft(contentHorizontalPad / 2).PaddingRight(contentHorizontalPad / 2),
		skeleton:  lipgloss.NewStyle().Foreground(p.skeleton),
		status:    lipgloss.NewStyle().Foreground(p.text).Background(p.surface),
		statusKey: lipgloss.NewStyle().Bold(true).Foreground(p.onAccent).Background(p.accent).Padding(0, 1),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		errorText: lipgloss.NewStyle().Foreground(p.danger),
		search:    lipgloss.NewStyle().Foreground(p.muted),
	}
}

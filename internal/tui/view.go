package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/wiki/internal/sections"
	"github.com/csheth/wiki/internal/viewstate"
)

func (m *Model) View() string {
	m.ensureContent(false)
	state := m.ctrl.State()

	parts := []string{
		m.headerView(state),
		m.styles.rule.Render(strings.Repeat("─", m.layout.windowWidth)),
		m.bodyView(state),
	}
	if m.helpVisible {
		parts = append(parts, m.help.FullHelpView(m.keys.FullHelp()))
	}
	parts = append(parts, m.statusView(state))
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) headerView(state viewstate.State) string {
	width := m.layout.windowWidth
	menu := menuGlyphClosed
	if state.SidebarOpen {
		menu = menuGlyphOpen
	}
	left := zone.Mark(zoneMenu, m.styles.glyph.Render(menu)) + " " + m.styles.title.Render(m.profile.Site.Name)
	toggle := zone.Mark(zoneTheme, m.styles.glyph.Render(state.Theme.Glyph()))

	right := m.search.View() + "  " + toggle
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = toggle
		gap = width - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if gap < 1 {
		gap = 1
	}
	return ansi.Truncate(left+strings.Repeat(" ", gap)+right, width, "…")
}

func (m *Model) bodyView(state viewstate.State) string {
	content := m.styles.content.Render(m.viewport.View())
	switch {
	case m.layout.wide:
		sidebar := m.styles.sidebar.Render(m.tocView(state, m.layout.sidebarWidth, m.layout.contentHeight, false))
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	case state.SidebarOpen:
		inner := m.layout.windowWidth - contentHorizontalPad
		if inner < minContentWidth {
			inner = minContentWidth
		}
		return m.styles.content.Render(m.tocView(state, inner, m.layout.contentHeight, true))
	default:
		return content
	}
}

// tocView lists the sections. The drawer variant used on narrow terminals
// also carries the site metadata, which has no room beside the content.
func (m *Model) tocView(state viewstate.State, width, height int, drawer bool) string {
	lines := []string{m.styles.tocTitle.Render(sidebarHeading)}
	for i, id := range sections.All() {
		lines = append(lines, m.tocEntry(i, id, id == state.ActiveSection, width))
	}
	if drawer {
		site := m.profile.Site
		lines = append(lines, "")
		if site.Description != "" {
			lines = append(lines, m.styles.muted.Render(wordwrap.String(site.Description, width)))
		}
		if site.Canonical != "" {
			lines = append(lines, m.styles.muted.Render(ansi.Truncate(site.Canonical, width, "…")))
		}
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) tocEntry(index int, id sections.ID, active bool, width int) string {
	number := fmt.Sprintf("%d ", index+1)
	labelWidth := width - runewidth.StringWidth(number)
	if labelWidth < 1 {
		labelWidth = 1
	}
	label := runewidth.FillRight(runewidth.Truncate(id.Title(), labelWidth, "…"), labelWidth)

	style := m.styles.tocItem
	if active {
		style = m.styles.tocActive
	}
	return zone.Mark(zoneTOCPrefix+string(id), m.styles.tocNumber.Render(number)+style.Render(label))
}

func (m *Model) statusView(state viewstate.State) string {
	width := m.layout.windowWidth

	var left string
	switch {
	case state.Loading:
		left = m.spinner.View() + " " + loadingLabel
	case m.jobs.Busy(jobKindReload):
		left = m.spinner.View() + " " + reloadingLabel
	case state.ActiveSection != "":
		left = "§ " + state.ActiveSection.Title()
	default:
		left = m.profile.Site.Name
	}
	switch {
	case m.errorMessage != "":
		left += "  " + m.styles.errorText.Render(m.errorMessage)
	case m.infoMessage != "":
		left += "  " + m.styles.muted.Render(m.infoMessage)
	}

	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 2 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return m.styles.status.Width(width).MaxWidth(width).Render(ansi.Truncate(line, width, "…"))
}

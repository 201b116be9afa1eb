package tui

import (
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.viewWidth()
	logo := m.theme.Base.Render(m.theme.Logo.Render(config.LogoGlyph))
	body := m.renderBody(width)
	footer := m.renderFooter(width)

	free := m.height - lipgloss.Height(logo) - lipgloss.Height(footer)
	if free > lipgloss.Height(body) {
		body = lipgloss.Place(width, free, lipgloss.Center, lipgloss.Center, body)
	} else {
		body = lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, logo, body, footer)
}

func (m Model) viewWidth() int {
	if m.width <= 0 {
		return config.DefaultWidth
	}
	return m.width
}

func (m Model) progressWidth() int {
	return util.Clamp(m.viewWidth()-8, 10, config.ProgressWidth)
}

func (m Model) renderBody(width int) string {
	state := m.timer.Snapshot()

	inputStyle := m.theme.Input
	if m.focus == focusInput {
		inputStyle = m.theme.InputFocused
	}

	parts := []string{
		m.theme.Title.Render(strings.ToUpper(config.Title)),
		"",
		inputStyle.Render(m.input.View()),
		"",
		m.theme.Remaining.Render(state.Label()),
		m.progress.ViewAs(state.Progress()),
		"",
		m.renderButtons(width),
	}
	if m.showHelp {
		parts = append(parts, "", m.help.ShortHelpView(m.keys.BindingsFor(m.focus)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// renderButtons lays the controls out in a row, or stacked when the row does
// not fit.
func (m Model) renderButtons(width int) string {
	buttons := []string{
		m.renderButton(config.StartLabel, focusStart, m.timer.CanStart(), false),
		m.renderButton(config.PauseLabel, focusPause, m.timer.CanPause(), false),
		m.renderButton(config.ResetLabel, focusReset, m.timer.CanReset(), true),
	}
	gap := strings.Repeat(" ", config.ButtonGap)
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], gap, buttons[1], gap, buttons[2])
	if width < config.CompactModeThreshold || ansi.StringWidth(row) > width {
		return lipgloss.JoinVertical(lipgloss.Center, buttons...)
	}
	return row
}

func (m Model) renderButton(label string, target focusTarget, enabled, danger bool) string {
	focused := m.focus == target
	style := m.theme.Button
	switch {
	case !enabled:
		style = m.theme.ButtonDisabled
	case danger && focused:
		style = m.theme.DangerFocused
	case danger:
		style = m.theme.Danger
	case focused:
		style = m.theme.ButtonFocused
	}
	text := " " + label + " "
	if focused {
		text = "[" + label + "]"
	}
	return style.Render(text)
}

func (m Model) renderFooter(width int) string {
	text := ansi.Truncate(config.FooterText+"  v"+VersionLabel(), width, config.TruncationSuffix)
	return m.theme.Footer.Width(width).Align(lipgloss.Center).Render(text)
}

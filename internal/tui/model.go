// Package tui renders the countdown timer as a Bubble Tea program.
package tui

import (
	"errors"
	"log"
	"strings"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusTarget is a control that can hold keyboard focus.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusStart
	focusPause
	focusReset
	focusCount
)

// Model is the countdown timer screen: the seconds input, the remaining-time
// display and the Start, Pause and Reset controls.
type Model struct {
	timer     *countdown.Timer
	sched     *teaScheduler
	input     textinput.Model
	progress  progress.Model
	help      help.Model
	keys      *HandlerRegistry
	theme     Theme
	themeName string
	focus     focusTarget
	showHelp  bool
	quitting  bool
	width     int
	height    int
}

func NewModel(themeName string) Model {
	sched := &teaScheduler{}

	ti := textinput.New()
	ti.Placeholder = config.InputPlaceholder
	ti.Prompt = ""
	ti.CharLimit = config.MaxInputChars
	ti.Width = config.InputWidth
	ti.Validate = validateNumeric
	ti.Focus()

	m := Model{
		timer:    countdown.New(countdown.WithScheduler(sched)),
		sched:    sched,
		input:    ti,
		help:     help.New(),
		keys:     newKeyRegistry(),
		focus:    focusInput,
		showHelp: true,
	}
	return m.applyTheme(themeName)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the current timer state.
func (m Model) State() countdown.State {
	return m.timer.Snapshot()
}

// ThemeName returns the key of the active theme.
func (m Model) ThemeName() string {
	return m.themeName
}

// Close cancels any pending tick. It is safe to call more than once.
func (m Model) Close() {
	m.timer.Close()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if next, cmd, handled := m.keys.Handle(m, msg); handled {
			return next, cmd
		}
		if m.focus != focusInput || !numericRunes(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.timer.SetDuration(m.input.Value())
		// The field only ever shows a positive duration.
		if m.timer.Snapshot().Configured <= 0 {
			m.input.SetValue("")
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// numericRunes reports whether typed text could be part of a number.
func numericRunes(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune(numericChars, r) {
			return false
		}
	}
	return true
}

const numericChars = "0123456789+-.eE"

func validateNumeric(s string) error {
	if !numericRunes([]rune(s)) {
		return errNotNumeric
	}
	return nil
}

var errNotNumeric = errors.New("not a number")

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.progress.Width = m.progressWidth()
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if m.timer.Tick(msg.ID) && !m.timer.Snapshot().Running {
		log.Printf("countdown: finished")
	}
	return m, m.sched.take()
}

func (m Model) applyTheme(name string) Model {
	name = strings.ToLower(strings.TrimSpace(name))
	m.theme = ResolveTheme(name)
	m.themeName = name
	if _, ok := Themes[name]; !ok {
		m.themeName = "default"
	}
	m.progress = progress.New(
		progress.WithGradient(m.theme.ProgressStart, m.theme.ProgressEnd),
		progress.WithoutPercentage(),
		progress.WithWidth(m.progressWidth()),
	)
	m.input.PlaceholderStyle = m.theme.Dim
	return m
}

func (m Model) setFocus(target focusTarget) (Model, tea.Cmd) {
	m.focus = target
	if target == focusInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

// --- Key handlers ---

func (m Model) quit() (Model, tea.Cmd, bool) {
	m.timer.Close()
	m.quitting = true
	return m, tea.Quit, true
}

func (m Model) focusNext() (Model, tea.Cmd, bool) {
	next, cmd := m.setFocus((m.focus + 1) % focusCount)
	return next, cmd, true
}

func (m Model) focusPrev() (Model, tea.Cmd, bool) {
	next, cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
	return next, cmd, true
}

func (m Model) pressFocused() (Model, tea.Cmd, bool) {
	switch m.focus {
	case focusPause:
		return m.pauseAction()
	case focusReset:
		return m.resetAction()
	default:
		return m.startAction()
	}
}

func (m Model) startAction() (Model, tea.Cmd, bool) {
	if !m.timer.Start() {
		return m, nil, true
	}
	log.Printf("countdown: start %ds", m.timer.Snapshot().Remaining)
	return m, m.sched.take(), true
}

func (m Model) pauseAction() (Model, tea.Cmd, bool) {
	if m.timer.Pause() {
		log.Printf("countdown: pause at %ds", m.timer.Snapshot().Remaining)
	}
	return m, m.sched.take(), true
}

func (m Model) resetAction() (Model, tea.Cmd, bool) {
	m.timer.Reset()
	m.input.Reset()
	log.Printf("countdown: reset")
	return m, m.sched.take(), true
}

func (m Model) cycleTheme() (Model, tea.Cmd, bool) {
	return m.applyTheme(nextTheme(m.themeName)), nil, true
}

func (m Model) toggleHelp() (Model, tea.Cmd, bool) {
	m.showHelp = !m.showHelp
	return m, nil, true
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

var buttonFocus = []focusTarget{focusStart, focusPause, focusReset}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Handler:  Model.quit,
		Priority: 100,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Handler:  Model.focusNext,
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("shift+tab")),
		Handler:  Model.focusPrev,
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Handler:  Model.pressFocused,
		Priority: 40,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys(" ")),
		Handler: Model.pressFocused,
		Focus:   buttonFocus,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "start")),
		Handler:  Model.startAction,
		Priority: 30,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pause")),
		Handler:  Model.pauseAction,
		Priority: 30,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Handler:  Model.resetAction,
		Priority: 30,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("s")),
		Handler: Model.startAction,
		Focus:   buttonFocus,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("p")),
		Handler: Model.pauseAction,
		Focus:   buttonFocus,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("r")),
		Handler: Model.resetAction,
		Focus:   buttonFocus,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler: Model.cycleTheme,
		Focus:   buttonFocus,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Handler: Model.toggleHelp,
		Focus:   buttonFocus,
	})
	return r
}

package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Focus    []focusTarget
	Priority int
}

// AppliesTo reports whether the binding is active while target has focus. A
// binding without focus targets is always active.
func (b KeyBinding) AppliesTo(target focusTarget) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, f := range b.Focus {
		if f == target {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.AppliesTo(m.focus) && key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// BindingsFor lists the bindings with help text active for target, once per
// help key.
func (r *HandlerRegistry) BindingsFor(target focusTarget) []key.Binding {
	seen := make(map[string]bool)
	var out []key.Binding
	for _, b := range r.bindings {
		if !b.AppliesTo(target) {
			continue
		}
		h := b.Binding.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, b.Binding)
	}
	return out
}

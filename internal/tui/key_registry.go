package tui

import (
	"slices"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key. handled=false lets lower priority bindings try.
type KeyHandler func(m DashboardModel, key string) (next DashboardModel, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Views       []View
	Priority    int
}

func (b KeyBinding) AppliesToView(v View) bool {
	return len(b.Views) == 0 || slices.Contains(b.Views, v)
}

func (b KeyBinding) matches(key string) bool {
	return slices.Contains(b.Keys, key)
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

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToView(m.view) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(v View) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(v) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForView(v View) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.GetBindingsForView(v) {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		key := b.Keys[0]
		if seen[key] {
			continue
		}
		seen[key] = true
		parts = append(parts, "["+displayKey(key)+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

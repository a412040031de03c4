package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityAndFallthrough(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	r.Register(KeyBinding{Keys: []string{"x"}, Priority: 1, Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
		calls = append(calls, "low")
		return m, nil, true
	}})
	r.Register(KeyBinding{Keys: []string{"x"}, Priority: 5, Handler: func(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
		calls = append(calls, "high")
		return m, nil, false
	}})
	if _, _, handled := r.Handle(DashboardModel{}, "x"); !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if _, _, handled := r.Handle(DashboardModel{}, "z"); handled {
		t.Fatalf("unregistered key should not be handled")
	}
}

func TestRegistryViewScoping(t *testing.T) {
	r := defaultKeyRegistry()
	help := r.HelpForView(ViewTasks)
	if !strings.Contains(help, "[space]toggle") {
		t.Fatalf("expected toggle help in tasks view, got %q", help)
	}
	if strings.Contains(help, "archive") {
		t.Fatalf("objective bindings leaked into tasks view: %q", help)
	}
	if !strings.Contains(r.HelpForView(ViewObjectives), "[q]quit") {
		t.Fatalf("expected global bindings in every view")
	}
}

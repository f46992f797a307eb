package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwlog "github.com/msto63/expar/foundation/core/log"
	"github.com/msto63/expar/foundation/expar"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	engine, err := expar.New(expar.Options{Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatalf("expar.New() error = %v", err)
	}
	m := NewModel(engine, expar.FormatSymbolic)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

// submit types input and presses enter, running the returned command
// through Update the way the bubbletea runtime would
func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.textarea.SetValue(input)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("enter on %q returned no command", input)
	}
	msg := cmd()
	result, ok := msg.(parseResultMsg)
	if !ok {
		t.Fatalf("command returned %T, want parseResultMsg", msg)
	}
	updated, _ = m.Update(result)
	return updated.(Model)
}

func TestModel_EvaluatesInput(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "(1+2)*x")

	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Err != nil {
		t.Fatalf("unexpected error: %v", entries[0].Err)
	}
	if got := entries[0].Render(m.Format()); got != "(1+2)*x" {
		t.Errorf("output = %q", got)
	}
	if m.textarea.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.textarea.Value())
	}
	if !strings.Contains(m.View(), "(1+2)*x") {
		t.Error("view should show the rendered result")
	}
}

func TestModel_ReportsErrors(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "1+")

	entries := m.Entries()
	if len(entries) != 1 || entries[0].Err == nil {
		t.Fatalf("expected one failed entry, got %+v", entries)
	}
	if !mdwerror.HasCode(entries[0].Err, mdwerror.CodeExparSyntax) {
		t.Errorf("code = %s", mdwerror.GetCode(entries[0].Err))
	}
	if !strings.Contains(m.content, string(mdwerror.CodeExparSyntax)) {
		t.Errorf("content should name the error code: %q", m.content)
	}
}

func TestModel_EmptyInputIgnored(t *testing.T) {
	m := newTestModel(t)
	m.textarea.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank input should not be evaluated")
	}
}

func TestModel_TabCyclesFormat(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.Format() != expar.FormatDebug {
		t.Errorf("format = %s, want debug", m.Format())
	}

	m = submit(t, m, "a+b")
	if got := m.Entries()[0].Render(m.Format()); got == "a+b" {
		t.Errorf("debug output expected, got %q", got)
	}
}

func TestModel_TabRerendersHistory(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "a+b")

	symbolic := m.content
	if !strings.Contains(symbolic, "a+b") {
		t.Fatalf("content should show the symbolic rendering: %q", symbolic)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	debug := expar.Render(m.Entries()[0].Root, expar.FormatDebug)
	if !strings.Contains(m.content, debug) {
		t.Errorf("history should switch to the debug rendering %q, got %q", debug, m.content)
	}
	if m.content == symbolic {
		t.Error("content did not change after switching format")
	}
}

func TestModel_ClearAndRecall(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "1")
	m = submit(t, m, "2")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.textarea.Value() != "2" {
		t.Errorf("up recalls %q, want 2", m.textarea.Value())
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.textarea.Value() != "1" {
		t.Errorf("second up recalls %q, want 1", m.textarea.Value())
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.textarea.Value() != "" {
		t.Errorf("down past the end should clear, got %q", m.textarea.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)
	if len(m.Entries()) != 0 {
		t.Errorf("ctrl+l should clear entries, got %d", len(m.Entries()))
	}
}

func TestModel_OperatorsView(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = updated.(Model)

	if m.view != ViewOperators {
		t.Fatalf("view = %d, want operators", m.view)
	}
	for _, want := range []string{"op_plus", "Scopes"} {
		if !strings.Contains(m.content, want) {
			t.Errorf("operators view missing %q", want)
		}
	}
}

func TestDescribeError(t *testing.T) {
	if got := describeError(errors.New("boom")); got != "boom" {
		t.Errorf("describeError = %q", got)
	}
	wrapped := mdwerror.New("bad").WithCode(mdwerror.CodeExparLiteral)
	if got := describeError(wrapped); !strings.HasPrefix(got, "[EXPAR_LITERAL]") {
		t.Errorf("describeError = %q", got)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}

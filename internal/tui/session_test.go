package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/quillshell/quill/internal/complete"
	"github.com/quillshell/quill/internal/config"
	"github.com/quillshell/quill/internal/editor"
)

func newTestSession(words []string) *Session {
	var provider editor.Provider
	if words != nil {
		provider = complete.NewStatic(words)
	}
	engine := editor.NewEngine(editor.NewHistory(), provider)
	return NewSession(engine, editor.DefaultKeymap(), config.DefaultConfig())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(s *Session, text string) {
	for _, r := range text {
		s.Update(keyRunes(string(r)))
	}
}

func TestSessionTypedRunesReachTheView(t *testing.T) {
	s := newTestSession(nil)
	typeInto(s, "echo hi")

	if view := s.View(); !strings.Contains(view, "echo hi") {
		t.Errorf("view does not show typed text:\n%s", view)
	}
}

func TestSessionInterruptQuits(t *testing.T) {
	s := newTestSession(nil)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("interrupt returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("interrupt command produced %T, want tea.QuitMsg", cmd())
	}
	if !s.Outcome().Interrupted {
		t.Errorf("outcome = %+v, want interrupted", s.Outcome())
	}
}

func TestSessionAcceptCarriesText(t *testing.T) {
	s := newTestSession(nil)
	typeInto(s, "ls")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("accept returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("accept command produced %T, want tea.QuitMsg", cmd())
	}
	out := s.Outcome()
	if out.Interrupted || out.Text != "ls" {
		t.Errorf("outcome = %+v, want accepted %q", out, "ls")
	}
}

func TestSessionCompletionRoundTrip(t *testing.T) {
	s := newTestSession([]string{"echo1", "echo2"})
	typeInto(s, "ec")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatal("tab returned no command")
	}
	msg := cmd()
	if _, ok := msg.(completionMsg); !ok {
		t.Fatalf("tab command produced %T, want completionMsg", msg)
	}
	s.Update(msg)

	if !strings.Contains(s.View(), "echo1") {
		t.Errorf("completion bar missing from view:\n%s", s.View())
	}
	if s.snap.Mode != editor.ModeCompleting {
		t.Errorf("mode = %v, want completing", s.snap.Mode)
	}
}

func TestSessionSearchIndicator(t *testing.T) {
	hist := editor.NewHistory()
	hist.Add("git status")
	engine := editor.NewEngine(hist, nil)
	s := NewSession(engine, editor.DefaultKeymap(), config.DefaultConfig())

	s.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	if view := s.View(); !strings.Contains(view, "reverse-i-search") {
		t.Errorf("search indicator missing:\n%s", view)
	}
}

func TestSessionClockFeedsPrompt(t *testing.T) {
	s := newTestSession(nil)

	when := time.Date(2024, 3, 1, 9, 30, 45, 0, time.Local)
	_, cmd := s.Update(clockTickMsg(when))
	if cmd == nil {
		t.Error("clock tick should reschedule itself")
	}
	if !strings.Contains(s.View(), "09:30:45") {
		t.Errorf("prompt does not show the clock:\n%s", s.View())
	}
}

func TestSessionHideSuppressesRendering(t *testing.T) {
	s := newTestSession(nil)
	typeInto(s, "secret")

	s.Hide()
	if s.View() != "" {
		t.Error("hidden session still renders")
	}
	s.Show()
	if !strings.Contains(s.View(), "secret") {
		t.Error("engine state lost across hide/show")
	}
}

func TestSessionPasswordEcho(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Echo = "password"
	engine := editor.NewEngine(editor.NewHistory(), nil)
	s := NewSession(engine, editor.DefaultKeymap(), cfg)

	typeInto(s, "hunter2")

	view := s.View()
	if strings.Contains(view, "hunter2") {
		t.Errorf("password text visible:\n%s", view)
	}
	if !strings.Contains(view, "*******") {
		t.Errorf("mask characters missing:\n%s", view)
	}
}

func TestSessionWindowSizeTruncatesBar(t *testing.T) {
	s := newTestSession([]string{"longword-one", "longword-two", "longword-three"})
	typeInto(s, "long")

	s.Update(tea.WindowSizeMsg{Width: 20, Height: 24})

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s.Update(cmd())

	bar := s.renderBar()
	if len([]rune(bar)) > 20+1 {
		t.Errorf("bar wider than the terminal: %q", bar)
	}
}

func TestTruncateStepsOverEscapeSequences(t *testing.T) {
	styled := "\x1b[31m" + strings.Repeat("a", 30) + "\x1b[0m"

	got := truncate(styled, 10)
	if w := ansi.StringWidth(got); w > 10 {
		t.Errorf("truncated width = %d, want <= 10", w)
	}
	if !strings.Contains(got, "\x1b[31m") {
		t.Errorf("color sequence lost: %q", got)
	}

	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(%q, 10) = %q, want unchanged", "short", got)
	}
	if got := truncate(styled, 0); got != styled {
		t.Errorf("zero width must not truncate, got %q", got)
	}
}

func TestParseEchoMode(t *testing.T) {
	tests := []struct {
		in   string
		want EchoMode
	}{
		{"normal", EchoNormal},
		{"password", EchoPassword},
		{"none", EchoNone},
		{"bogus", EchoNormal},
		{"", EchoNormal},
	}
	for _, tt := range tests {
		if got := ParseEchoMode(tt.in); got != tt.want {
			t.Errorf("ParseEchoMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

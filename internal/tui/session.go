package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/gen2brain/beeep"
	"github.com/mattn/go-runewidth"

	"github.com/quillshell/quill/internal/config"
	"github.com/quillshell/quill/internal/editor"
)

// EchoMode is the pluggable styling policy for the rendered line.
type EchoMode int

const (
	// EchoNormal displays text as typed.
	EchoNormal EchoMode = iota
	// EchoPassword masks every rune.
	EchoPassword
	// EchoNone renders nothing for the typed text.
	EchoNone
)

// ParseEchoMode maps a configuration string to an echo mode. Unknown
// values fall back to normal echo.
func ParseEchoMode(s string) EchoMode {
	switch s {
	case "password":
		return EchoPassword
	case "none":
		return EchoNone
	default:
		return EchoNormal
	}
}

// Message types
type clockTickMsg time.Time
type pasteMsg string
type pasteErrMsg struct{ err error }
type completionMsg struct {
	req   *editor.CompletionRequest
	words []string
	err   error
}

// Session adapts one Engine to the terminal. It is a tea.Model: key
// events flow in through Update, the engine's observable snapshots
// flow out through View. One Session serves one read-line run.
type Session struct {
	engine *editor.Engine
	keymap editor.Keymap

	prompt string
	echo   EchoMode
	bell   bool

	// Live-updating inputs to the prompt, merged into rendering only.
	clock *editor.Cell[time.Time]
	width *editor.Cell[int]

	snap       editor.Snapshot
	promptText string
	cursor     cursor.Model
	visible    bool
	outcome    editor.Outcome
}

// NewSession creates a session for engine using the given keymap and
// UI configuration.
func NewSession(engine *editor.Engine, keymap editor.Keymap, cfg *config.Config) *Session {
	s := &Session{
		engine:  engine,
		keymap:  keymap,
		prompt:  cfg.UI.Prompt,
		echo:    ParseEchoMode(cfg.UI.Echo),
		bell:    cfg.UI.Bell,
		clock:   editor.NewCell(time.Now()),
		width:   editor.NewCell(0),
		cursor:  cursor.New(),
		visible: true,
	}

	// The engine pushes one snapshot per input event; the session
	// re-renders from the latest one.
	s.snap = engine.Snapshot()
	engine.Subscribe(func(snap editor.Snapshot) { s.snap = snap })

	// Prompt text is a pure function of the clock cell.
	s.clock.Subscribe(func(t time.Time) {
		s.promptText = promptStyle.Render(s.prompt) + clockStyle.Render(t.Format("15:04:05")) + " "
	})

	return s
}

// Hide suspends visible rendering without destroying engine state.
func (s *Session) Hide() { s.visible = false }

// Show resumes visible rendering.
func (s *Session) Show() { s.visible = true }

// Outcome returns the terminal outcome once the run has ended.
func (s *Session) Outcome() editor.Outcome { return s.outcome }

// Init implements tea.Model.
func (s *Session) Init() tea.Cmd {
	return tea.Batch(s.cursor.Focus(), s.tickClock())
}

// tickClock schedules the next once-per-second clock update. It feeds
// rendering only and never touches the action dispatch path.
func (s *Session) tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Update implements tea.Model.
func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s, s.handleKey(msg)

	case tea.WindowSizeMsg:
		s.width.Set(msg.Width)
		return s, nil

	case clockTickMsg:
		s.clock.Set(time.Time(msg))
		return s, s.tickClock()

	case completionMsg:
		s.engine.ApplyCompletionResult(msg.req, msg.words, msg.err)
		return s, s.maybeBell()

	case pasteMsg:
		s.engine.InsertText(string(msg))
		return s, nil

	case pasteErrMsg:
		return s, nil

	default:
		var cmd tea.Cmd
		s.cursor, cmd = s.cursor.Update(msg)
		return s, cmd
	}
}

func (s *Session) handleKey(msg tea.KeyMsg) tea.Cmd {
	if action, ok := s.keymap.Lookup(msg.String()); ok {
		return s.runEffect(s.engine.Apply(action))
	}
	if msg.Alt || len(msg.Runes) == 0 {
		// Unbound chord: silent no-op.
		return nil
	}
	var cmds []tea.Cmd
	for _, r := range msg.Runes {
		if cmd := s.runEffect(s.engine.InsertRune(r)); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (s *Session) runEffect(eff editor.Effect) tea.Cmd {
	switch eff.Kind {
	case editor.EffectRequestCompletion:
		req := eff.Completion
		return func() tea.Msg {
			words, err := s.engine.RunRequest(req)
			return completionMsg{req: req, words: words, err: err}
		}
	case editor.EffectPaste:
		return readClipboard
	case editor.EffectClearScreen:
		return tea.ClearScreen
	case editor.EffectAccept, editor.EffectInterrupt:
		s.outcome = s.engine.Outcome()
		return tea.Quit
	default:
		return s.maybeBell()
	}
}

// readClipboard is a command pasting the system clipboard into the
// engine.
func readClipboard() tea.Msg {
	str, err := clipboard.ReadAll()
	if err != nil {
		return pasteErrMsg{err: err}
	}
	return pasteMsg(str)
}

// maybeBell rings the terminal bell when the engine reported an
// informational failure (no matches) and the bell is enabled.
func (s *Session) maybeBell() tea.Cmd {
	if !s.bell || s.snap.Info == "" {
		return nil
	}
	return func() tea.Msg {
		_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		return nil
	}
}

// View implements tea.Model.
func (s *Session) View() string {
	if !s.visible {
		return ""
	}

	var b strings.Builder

	if s.snap.Searching {
		b.WriteString(searchStyle.Render(fmt.Sprintf("(reverse-i-search)`%s': ", s.snap.Pattern)))
	} else {
		b.WriteString(s.promptText)
	}
	b.WriteString(s.renderLine())

	if s.snap.Mode == editor.ModeCompleting && len(s.snap.Candidates) > 0 {
		b.WriteByte('\n')
		b.WriteString(s.renderBar())
	}
	if s.snap.Info != "" {
		b.WriteByte('\n')
		b.WriteString(infoStyle.Render(s.snap.Info))
	}
	return b.String()
}

// renderLine applies the echo policy and splices the cursor cell into
// the text at the cursor offset.
func (s *Session) renderLine() string {
	runes := []rune(s.snap.Text)
	switch s.echo {
	case EchoPassword:
		for i := range runes {
			runes[i] = '*'
		}
	case EchoNone:
		runes = nil
	}

	cur := s.snap.Cursor
	if s.echo == EchoNone || cur > len(runes) {
		cur = len(runes)
	}

	c := s.cursor
	if cur < len(runes) {
		c.SetChar(string(runes[cur]))
		return string(runes[:cur]) + c.View() + string(runes[cur+1:])
	}
	c.SetChar(" ")
	return string(runes) + c.View()
}

// renderBar renders the completion candidates, highlighting the
// selected one, truncated to the terminal width.
func (s *Session) renderBar() string {
	width := s.width.Get()
	var b strings.Builder
	for i, cand := range s.snap.Candidates {
		word := cand.Word
		// Cap a single oversized word before styling wraps it in
		// escape sequences.
		if width > 0 && runewidth.StringWidth(word) > width {
			word = runewidth.Truncate(word, width-1, "…")
		}
		style := candidateStyle
		if i == s.snap.Selected {
			style = candidateSelectedStyle
		}
		b.WriteString(style.Render(word))
	}
	return truncate(b.String(), width)
}

// truncate cuts s to width terminal cells, stepping over escape
// sequences so styled text is never cut mid-sequence.
func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width-1, "…")
}

// Run drives the session to completion and returns the engine outcome.
func (s *Session) Run() (editor.Outcome, error) {
	p := tea.NewProgram(s)
	m, err := p.Run()
	if err != nil {
		return editor.Outcome{}, fmt.Errorf("failed to run session: %w", err)
	}
	return m.(*Session).outcome, nil
}

package editor

import "context"

// Mode is the engine's top-level state.
type Mode int

const (
	// ModeEditing is the default line-editing state.
	ModeEditing Mode = iota
	// ModeCompleting means the completion bar is visible and navigable.
	ModeCompleting
	// ModeSearching means incremental backward search is active.
	ModeSearching
)

// Outcome is the terminal result of one engine run: either an accepted
// line or a user interrupt. No other outcomes exist.
type Outcome struct {
	Interrupted bool
	Text        string
}

// EffectKind tells the session adapter what follow-up work, if any, an
// applied action requires.
type EffectKind int

const (
	// EffectNone needs no follow-up beyond re-rendering.
	EffectNone EffectKind = iota
	// EffectRequestCompletion carries a provider request to run
	// asynchronously.
	EffectRequestCompletion
	// EffectPaste asks the adapter for the clipboard contents.
	EffectPaste
	// EffectClearScreen asks the renderer to clear; engine state is
	// unchanged.
	EffectClearScreen
	// EffectAccept and EffectInterrupt end the run.
	EffectAccept
	EffectInterrupt
)

// Effect is the adapter-visible side effect of one dispatched action.
type Effect struct {
	Kind       EffectKind
	Completion *CompletionRequest
}

var noEffect = Effect{Kind: EffectNone}

// Snapshot is the engine's observable state, pushed to subscribers
// once per input event.
type Snapshot struct {
	Text       string
	Cursor     int
	Mode       Mode
	Candidates []Candidate
	Selected   int
	HistoryPos int
	Info       string
	Searching  bool
	Pattern    string
}

const (
	msgNoMatches     = "no matches"
	msgNoMoreMatches = "no more matches"
	msgNoCompletion  = "completion unavailable"
)

// Engine is the action-dispatch state machine. It owns the text
// buffer, consults the history store and completion provider, and
// emits an updated Snapshot after every applied event. One Engine
// serves one read-line run; instances are independent, so nested
// prompts can each own their own engine.
type Engine struct {
	buf      *Buffer
	hist     *History
	provider Provider

	mode   Mode
	comp   completionState
	search searchState
	info   string

	compGen    uint64
	compCancel context.CancelFunc

	// Live edit line stashed while navigating history.
	liveText   string
	liveSaved  bool
	liveCursor int

	subs    []func(Snapshot)
	done    bool
	outcome Outcome
}

// NewEngine creates an engine over hist using provider for
// completions. Either may be nil: a nil provider makes completion
// report "completion unavailable", a nil history is treated as empty.
func NewEngine(hist *History, provider Provider) *Engine {
	if hist == nil {
		hist = NewHistory()
	}
	e := &Engine{
		buf:      NewBuffer(),
		hist:     hist,
		provider: provider,
	}
	e.comp.reset()
	return e
}

// Buffer exposes the text buffer for rendering. Mutate it only through
// engine dispatch.
func (e *Engine) Buffer() *Buffer { return e.buf }

// History returns the engine's history store.
func (e *Engine) History() *History { return e.hist }

// Mode returns the current state.
func (e *Engine) Mode() Mode { return e.mode }

// Done reports whether an Accept or Interrupt ended the run.
func (e *Engine) Done() bool { return e.done }

// Outcome returns the terminal outcome; valid once Done is true.
func (e *Engine) Outcome() Outcome { return e.outcome }

// Info returns the current informational message, if any.
func (e *Engine) Info() string { return e.info }

// Subscribe registers fn to receive a Snapshot after every applied
// input event. Emissions are coalesced: one per event, never per
// sub-step.
func (e *Engine) Subscribe(fn func(Snapshot)) {
	e.subs = append(e.subs, fn)
}

// Snapshot returns the current observable state.
func (e *Engine) Snapshot() Snapshot {
	cands := make([]Candidate, len(e.comp.candidates))
	copy(cands, e.comp.candidates)
	return Snapshot{
		Text:       e.buf.String(),
		Cursor:     e.buf.Cursor(),
		Mode:       e.mode,
		Candidates: cands,
		Selected:   e.comp.selected,
		HistoryPos: e.hist.Position(),
		Info:       e.info,
		Searching:  e.search.active,
		Pattern:    string(e.search.pattern),
	}
}

func (e *Engine) emit() {
	if len(e.subs) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, fn := range e.subs {
		fn(snap)
	}
}

// InsertRune dispatches one typed character. In Editing it edits the
// buffer; while the completion bar is open it edits the buffer and
// re-requests completion; while searching it extends the pattern.
func (e *Engine) InsertRune(r rune) Effect {
	if e.done {
		return noEffect
	}
	defer e.emit()
	e.info = ""

	switch e.mode {
	case ModeSearching:
		e.search.extend(r)
		e.rescanSearch(0)
		return noEffect
	case ModeCompleting:
		e.invalidateCompletion()
		e.mode = ModeEditing
		e.buf.InsertRune(r)
		return e.beginCompletion()
	default:
		e.invalidateCompletion()
		e.buf.InsertRune(r)
		return noEffect
	}
}

// InsertText inserts a whole string (e.g. a clipboard paste) as a
// single event.
func (e *Engine) InsertText(s string) {
	if e.done || s == "" {
		return
	}
	defer e.emit()
	e.info = ""
	if e.mode == ModeSearching {
		for _, r := range s {
			e.search.extend(r)
		}
		e.rescanSearch(0)
		return
	}
	e.invalidateCompletion()
	e.leaveCompletionBar()
	e.buf.InsertString(s)
}

// Apply dispatches one action. Actions that are invalid in the current
// state are silent no-ops.
func (e *Engine) Apply(a Action) Effect {
	if e.done {
		return noEffect
	}
	defer e.emit()
	e.info = ""

	// Accept and interrupt-on-empty terminate from any state.
	switch a {
	case ActionAccept:
		return e.accept()
	case ActionInterruptOrDeleteNextChar:
		return e.interruptOrDelete()
	case ActionClearScreen:
		return Effect{Kind: EffectClearScreen}
	}

	switch e.mode {
	case ModeSearching:
		return e.applySearching(a)
	case ModeCompleting:
		return e.applyCompleting(a)
	default:
		return e.applyEditing(a)
	}
}

func (e *Engine) applyEditing(a Action) Effect {
	switch a {
	case ActionMoveLeft:
		e.move(func() { e.buf.CursorLeft() })
	case ActionMoveRight:
		e.move(func() { e.buf.CursorRight() })
	case ActionMoveHome:
		e.move(func() { e.buf.CursorHome() })
	case ActionMoveEnd:
		e.move(func() { e.buf.CursorEnd() })
	case ActionWordLeft:
		e.move(func() { e.buf.WordLeft() })
	case ActionWordRight:
		e.move(func() { e.buf.WordRight() })
	case ActionDeleteBackwardChar:
		e.edit(func() { e.buf.DeleteBackward() })
	case ActionDeleteForwardChar:
		e.edit(func() { e.buf.DeleteForward() })
	case ActionDeleteWordBackward:
		e.edit(func() { e.buf.DeleteWordBackward() })
	case ActionKillToEnd:
		e.edit(func() { e.buf.KillToEnd() })
	case ActionKillToStart:
		e.edit(func() { e.buf.KillToStart() })
	case ActionSetMark:
		e.buf.SetMark()
	case ActionClearMark:
		e.buf.ClearMark()
	case ActionPaste:
		return Effect{Kind: EffectPaste}
	case ActionComplete:
		return e.beginCompletion()
	case ActionHistoryPrev:
		e.historyPrev()
	case ActionHistoryNext:
		e.historyNext()
	case ActionPrevSearch:
		e.enterSearch()
	}
	return noEffect
}

func (e *Engine) applyCompleting(a Action) Effect {
	n := len(e.comp.candidates)
	switch a {
	case ActionCompleteBarNext:
		if e.comp.selected < n-1 {
			e.comp.selected++
		}
	case ActionCompleteBarPrev:
		if e.comp.selected > 0 {
			e.comp.selected--
		} else {
			e.comp.selected = 0
		}
	case ActionCompleteBarFirst:
		e.comp.selected = 0
	case ActionCompleteBarLast:
		e.comp.selected = n - 1
	case ActionCompleteBar:
		e.commitCandidate()
	case ActionMoveLeft, ActionMoveRight, ActionMoveHome, ActionMoveEnd,
		ActionWordLeft, ActionWordRight, ActionDeleteBackwardChar,
		ActionDeleteForwardChar, ActionDeleteWordBackward,
		ActionKillToEnd, ActionKillToStart:
		// Any ordinary edit or motion dismisses the bar and is applied
		// as if in Editing.
		e.leaveCompletionBar()
		return e.applyEditing(a)
	}
	return noEffect
}

func (e *Engine) applySearching(a Action) Effect {
	switch a {
	case ActionPrevSearch:
		e.advanceSearch()
	case ActionCancelSearch:
		e.cancelSearch()
	case ActionDeleteBackwardChar:
		if e.search.shorten() {
			e.rescanSearch(0)
		}
	}
	return noEffect
}

func (e *Engine) accept() Effect {
	e.invalidateCompletion()
	e.done = true
	e.outcome = Outcome{Text: e.buf.String()}
	return Effect{Kind: EffectAccept}
}

func (e *Engine) interruptOrDelete() Effect {
	if e.buf.Len() == 0 {
		e.invalidateCompletion()
		e.done = true
		e.outcome = Outcome{Interrupted: true}
		return Effect{Kind: EffectInterrupt}
	}
	if e.mode == ModeSearching {
		return noEffect
	}
	e.leaveCompletionBar()
	e.edit(func() { e.buf.DeleteForward() })
	return noEffect
}

// edit runs a buffer mutation, invalidating any pending completion
// tied to the previous contents.
func (e *Engine) edit(fn func()) {
	e.invalidateCompletion()
	fn()
}

// move runs a cursor motion. A pending completion request is anchored
// to the cursor it was issued at, so motion invalidates it too.
func (e *Engine) move(fn func()) {
	e.invalidateCompletion()
	fn()
}

// beginCompletion determines the word under completion and hands the
// adapter a cancellable provider request.
func (e *Engine) beginCompletion() Effect {
	e.invalidateCompletion()
	if e.provider == nil {
		e.info = msgNoCompletion
		return noEffect
	}
	runes := e.buf.Runes()
	cursor := e.buf.Cursor()
	index := WordStart(runes, cursor)

	e.compGen++
	ctx, cancel := context.WithCancel(context.Background())
	e.compCancel = cancel
	e.comp.index = index
	return Effect{
		Kind: EffectRequestCompletion,
		Completion: &CompletionRequest{
			Gen:    e.compGen,
			Index:  index,
			Prefix: string(runes[index:cursor]),
			Ctx:    ctx,
		},
	}
}

// RunRequest executes the provider call for req. It is safe to call
// from another goroutine: it touches only the request and the
// immutable provider.
func (e *Engine) RunRequest(req *CompletionRequest) ([]string, error) {
	return e.provider.Complete(req.Ctx, req.Prefix)
}

// ApplyCompletionResult feeds a provider response back into the
// engine. Results whose generation has been superseded are discarded
// without any observable change.
func (e *Engine) ApplyCompletionResult(req *CompletionRequest, words []string, err error) {
	if e.done || req.Gen != e.compGen || e.compCancel == nil {
		return
	}
	defer e.emit()
	e.compCancel = nil

	if err != nil {
		// Best-effort: provider trouble reads as zero candidates.
		e.info = msgNoMatches
		return
	}

	prefix, matches := Lookup(req.Prefix, words)
	switch len(matches) {
	case 0:
		e.info = msgNoMatches
	case 1:
		// Unambiguous: apply without showing the bar.
		e.buf.InsertString(matches[0][len(req.Prefix):])
	default:
		e.buf.InsertString(prefix[len(req.Prefix):])
		cands := make([]Candidate, len(matches))
		for i, m := range matches {
			cands[i] = Candidate{Word: m, Suffix: m[len(prefix):]}
		}
		e.comp.index = req.Index
		e.comp.candidates = cands
		e.comp.selected = -1
		e.mode = ModeCompleting
	}
}

// commitCandidate writes the selected candidate into the buffer,
// replacing the word under completion.
func (e *Engine) commitCandidate() {
	if e.comp.selected >= 0 && e.comp.selected < len(e.comp.candidates) {
		cand := e.comp.candidates[e.comp.selected]
		e.buf.DeleteRange(e.comp.index, e.buf.Cursor())
		e.buf.InsertString(cand.Word)
	}
	e.leaveCompletionBar()
}

func (e *Engine) leaveCompletionBar() {
	if e.mode == ModeCompleting {
		e.mode = ModeEditing
	}
	e.comp.reset()
}

// invalidateCompletion cancels the in-flight request, if any, and
// bumps the generation so its result can never be applied.
func (e *Engine) invalidateCompletion() {
	if e.compCancel != nil {
		e.compCancel()
		e.compCancel = nil
	}
	e.compGen++
}

func (e *Engine) historyPrev() {
	if e.hist.AtLive() {
		e.liveText = e.buf.String()
		e.liveCursor = e.buf.Cursor()
		e.liveSaved = true
	}
	if entry, ok := e.hist.Prev(); ok {
		e.edit(func() { e.buf.SetString(entry) })
	}
}

func (e *Engine) historyNext() {
	entry, ok := e.hist.Next()
	if !ok {
		return
	}
	if e.hist.AtLive() {
		text, cursor := "", 0
		if e.liveSaved {
			text, cursor = e.liveText, e.liveCursor
			e.liveSaved = false
		}
		e.edit(func() {
			e.buf.SetString(text)
			e.buf.MoveCursor(cursor)
		})
		return
	}
	e.edit(func() { e.buf.SetString(entry) })
}

// enterSearch snapshots the buffer as the pattern seed and looks for
// the most recent match at or below the current zipper position.
func (e *Engine) enterSearch() {
	e.invalidateCompletion()
	e.search.start(e.buf.String(), e.buf.Cursor(), e.hist.Position())
	e.mode = ModeSearching
	e.rescanSearch(e.hist.Position())
}

// advanceSearch continues scanning for the next older match of the
// current pattern.
func (e *Engine) advanceSearch() {
	if idx, ok := e.hist.FindBackward(string(e.search.pattern), e.hist.Position()); ok {
		e.hist.SetPosition(idx + 1)
		e.buf.SetString(e.hist.Entry(idx))
	} else {
		e.info = msgNoMoreMatches
	}
}

// rescanSearch re-runs the scan from index `from` after the pattern
// changed.
func (e *Engine) rescanSearch(from int) {
	if idx, ok := e.hist.FindBackward(string(e.search.pattern), from); ok {
		e.hist.SetPosition(idx + 1)
		e.buf.SetString(e.hist.Entry(idx))
	} else {
		e.info = msgNoMatches
	}
}

// cancelSearch restores the exact pre-search buffer, cursor, and
// zipper position.
func (e *Engine) cancelSearch() {
	text, cursor, pos := e.search.cancel()
	e.buf.SetString(text)
	e.buf.MoveCursor(cursor)
	e.hist.SetPosition(pos)
	e.mode = ModeEditing
}

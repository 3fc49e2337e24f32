package editor

// Binding pairs one key-chord (in the decoded terminal representation,
// e.g. "ctrl+r", "tab", "up") with the action it triggers.
type Binding struct {
	Key    string
	Action Action
}

// Keymap is an immutable chord-to-action table. Build it once from an
// ordered binding list; later entries for the same chord override
// earlier ones.
type Keymap struct {
	bindings map[string]Action
}

// NewKeymap builds a keymap from bindings, applied in order.
func NewKeymap(bindings []Binding) Keymap {
	m := make(map[string]Action, len(bindings))
	for _, b := range bindings {
		m[b.Key] = b.Action
	}
	return Keymap{bindings: m}
}

// Lookup returns the action bound to chord, if any.
func (k Keymap) Lookup(chord string) (Action, bool) {
	a, ok := k.bindings[chord]
	return a, ok
}

// DefaultBindings returns the readline-style default bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "left", Action: ActionMoveLeft},
		{Key: "ctrl+b", Action: ActionMoveLeft},
		{Key: "right", Action: ActionMoveRight},
		{Key: "ctrl+f", Action: ActionMoveRight},
		{Key: "home", Action: ActionMoveHome},
		{Key: "ctrl+a", Action: ActionMoveHome},
		{Key: "end", Action: ActionMoveEnd},
		{Key: "ctrl+e", Action: ActionMoveEnd},
		{Key: "alt+b", Action: ActionWordLeft},
		{Key: "alt+f", Action: ActionWordRight},
		{Key: "backspace", Action: ActionDeleteBackwardChar},
		{Key: "ctrl+h", Action: ActionDeleteBackwardChar},
		{Key: "ctrl+w", Action: ActionDeleteWordBackward},
		{Key: "ctrl+k", Action: ActionKillToEnd},
		{Key: "ctrl+u", Action: ActionKillToStart},
		{Key: "ctrl+@", Action: ActionSetMark},
		{Key: "ctrl+v", Action: ActionPaste},

		{Key: "tab", Action: ActionComplete},
		{Key: "ctrl+n", Action: ActionCompleteBarNext},
		{Key: "ctrl+p", Action: ActionCompleteBarPrev},
		{Key: "shift+tab", Action: ActionCompleteBarPrev},
		{Key: "alt+p", Action: ActionCompleteBarFirst},
		{Key: "alt+n", Action: ActionCompleteBarLast},
		{Key: "ctrl+o", Action: ActionCompleteBar},

		{Key: "up", Action: ActionHistoryPrev},
		{Key: "down", Action: ActionHistoryNext},

		{Key: "ctrl+r", Action: ActionPrevSearch},
		{Key: "esc", Action: ActionCancelSearch},

		{Key: "enter", Action: ActionAccept},
		{Key: "ctrl+c", Action: ActionInterruptOrDeleteNextChar},
		{Key: "ctrl+d", Action: ActionInterruptOrDeleteNextChar},
		{Key: "delete", Action: ActionDeleteForwardChar},
		{Key: "ctrl+l", Action: ActionClearScreen},
	}
}

// DefaultKeymap returns the keymap built from DefaultBindings.
func DefaultKeymap() Keymap {
	return NewKeymap(DefaultBindings())
}

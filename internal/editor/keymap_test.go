package editor

import "testing"

func TestKeymapLaterBindingWins(t *testing.T) {
	km := NewKeymap([]Binding{
		{Key: "ctrl+x", Action: ActionClearScreen},
		{Key: "ctrl+x", Action: ActionAccept},
	})

	action, ok := km.Lookup("ctrl+x")
	if !ok {
		t.Fatal("ctrl+x not bound")
	}
	if action != ActionAccept {
		t.Errorf("Lookup(ctrl+x) = %v, want later binding %v", action, ActionAccept)
	}
}

func TestKeymapUnboundChord(t *testing.T) {
	km := DefaultKeymap()
	if _, ok := km.Lookup("ctrl+alt+pgdown"); ok {
		t.Error("unexpected binding for ctrl+alt+pgdown")
	}
}

func TestDefaultKeymapCoversControlActions(t *testing.T) {
	km := DefaultKeymap()
	wants := map[string]Action{
		"enter":  ActionAccept,
		"ctrl+c": ActionInterruptOrDeleteNextChar,
		"tab":    ActionComplete,
		"ctrl+r": ActionPrevSearch,
		"esc":    ActionCancelSearch,
		"up":     ActionHistoryPrev,
		"down":   ActionHistoryNext,
		"ctrl+l": ActionClearScreen,
	}
	for chord, want := range wants {
		got, ok := km.Lookup(chord)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %v, %v; want %v", chord, got, ok, want)
		}
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	for _, a := range []Action{
		ActionMoveLeft, ActionComplete, ActionCompleteBar,
		ActionHistoryPrev, ActionPrevSearch, ActionAccept,
		ActionInterruptOrDeleteNextChar,
	} {
		parsed, err := ParseAction(a.String())
		if err != nil {
			t.Errorf("ParseAction(%q): %v", a.String(), err)
			continue
		}
		if parsed != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a.String(), parsed, a)
		}
	}

	if _, err := ParseAction("launch-missiles"); err == nil {
		t.Error("ParseAction accepted an unknown name")
	}
}

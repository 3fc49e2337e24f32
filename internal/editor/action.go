package editor

import "fmt"

// Action is one abstract editing or control operation. The set is
// closed: a key binding configuration maps key-chords onto these and
// nothing else.
type Action int

const (
	ActionNone Action = iota

	// Buffer edits and motion, delegated directly to the text buffer.
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionWordLeft
	ActionWordRight
	ActionDeleteBackwardChar
	ActionDeleteForwardChar
	ActionDeleteWordBackward
	ActionKillToEnd
	ActionKillToStart
	ActionSetMark
	ActionClearMark
	ActionPaste

	// Completion.
	ActionComplete
	ActionCompleteBarNext
	ActionCompleteBarPrev
	ActionCompleteBarFirst
	ActionCompleteBarLast
	ActionCompleteBar

	// History.
	ActionHistoryPrev
	ActionHistoryNext

	// Search.
	ActionPrevSearch
	ActionCancelSearch

	// Control.
	ActionAccept
	ActionInterruptOrDeleteNextChar
	ActionClearScreen
)

var actionNames = map[Action]string{
	ActionMoveLeft:                  "move-left",
	ActionMoveRight:                 "move-right",
	ActionMoveHome:                  "move-home",
	ActionMoveEnd:                   "move-end",
	ActionWordLeft:                  "word-left",
	ActionWordRight:                 "word-right",
	ActionDeleteBackwardChar:        "delete-backward-char",
	ActionDeleteForwardChar:         "delete-forward-char",
	ActionDeleteWordBackward:        "delete-word-backward",
	ActionKillToEnd:                 "kill-to-end",
	ActionKillToStart:               "kill-to-start",
	ActionSetMark:                   "set-mark",
	ActionClearMark:                 "clear-mark",
	ActionPaste:                     "paste",
	ActionComplete:                  "complete",
	ActionCompleteBarNext:           "complete-bar-next",
	ActionCompleteBarPrev:           "complete-bar-prev",
	ActionCompleteBarFirst:          "complete-bar-first",
	ActionCompleteBarLast:           "complete-bar-last",
	ActionCompleteBar:               "complete-bar",
	ActionHistoryPrev:               "history-prev",
	ActionHistoryNext:               "history-next",
	ActionPrevSearch:                "prev-search",
	ActionCancelSearch:              "cancel-search",
	ActionAccept:                    "accept",
	ActionInterruptOrDeleteNextChar: "interrupt-or-delete-next-char",
	ActionClearScreen:               "clear-screen",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, n := range actionNames {
		m[n] = a
	}
	return m
}()

// String returns the stable configuration name of the action.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// ParseAction resolves a configuration name to an action.
func ParseAction(name string) (Action, error) {
	if a, ok := actionsByName[name]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

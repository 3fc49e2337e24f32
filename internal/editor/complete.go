package editor

import (
	"context"
	"strings"
	"unicode"
)

// Provider enumerates candidate words for a prefix. Implementations
// only enumerate; all filtering, ranking, and common-prefix work is
// done by the engine. The call may block (e.g. filesystem listing) and
// must honor ctx cancellation.
type Provider interface {
	Complete(ctx context.Context, prefix string) ([]string, error)
}

// Candidate is one completion choice: the full word plus the suffix
// still missing from the buffer after the common prefix was inserted.
type Candidate struct {
	Word   string
	Suffix string
}

// CompletionRequest is one in-flight provider call. The generation ties
// the eventual result back to the issuing state; stale generations are
// discarded. The context is cancelled when the request is superseded.
type CompletionRequest struct {
	Gen    uint64
	Index  int
	Prefix string
	Ctx    context.Context
}

// completionState is the visible completion-bar state.
type completionState struct {
	index      int
	candidates []Candidate
	selected   int // -1 = none
}

func (c *completionState) reset() {
	c.index = 0
	c.candidates = nil
	c.selected = -1
}

// Lookup returns the candidates that have word as a literal prefix,
// and the longest common prefix of those matches. For word == "" every
// candidate matches.
func Lookup(word string, candidates []string) (string, []string) {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			matches = append(matches, c)
		}
	}
	return commonPrefix(matches), matches
}

func commonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := []rune(words[0])
	for _, w := range words[1:] {
		rs := []rune(w)
		if len(rs) < len(prefix) {
			prefix = prefix[:len(rs)]
		}
		for i := range prefix {
			if rs[i] != prefix[i] {
				prefix = prefix[:i]
				break
			}
		}
	}
	return string(prefix)
}

// WordStart returns the index where the word ending at cursor begins:
// the start of the contiguous run of non-space runes immediately
// before the cursor.
func WordStart(runes []rune, cursor int) int {
	i := clamp(cursor, 0, len(runes))
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

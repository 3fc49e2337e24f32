package complete

import (
	"context"

	"github.com/quillshell/quill/internal/editor"
)

// Static serves a fixed word list, e.g. built-in command names. The
// list is returned as-is on every call; filtering belongs to the
// engine.
type Static struct {
	words []string
}

// NewStatic returns a provider over words.
func NewStatic(words []string) *Static {
	copied := make([]string, len(words))
	copy(copied, words)
	return &Static{words: copied}
}

// Complete implements editor.Provider.
func (s *Static) Complete(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out, nil
}

var _ editor.Provider = (*Static)(nil)

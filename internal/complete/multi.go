package complete

import (
	"context"

	"github.com/quillshell/quill/internal/editor"
)

// Multi fans a request out to several providers and concatenates their
// words in provider order. Individual provider failures are skipped;
// an error is returned only when every provider failed or the context
// was cancelled.
type Multi struct {
	providers []editor.Provider
}

// NewMulti combines providers into one.
func NewMulti(providers ...editor.Provider) *Multi {
	return &Multi{providers: providers}
}

// Complete implements editor.Provider.
func (m *Multi) Complete(ctx context.Context, prefix string) ([]string, error) {
	var (
		words   []string
		lastErr error
		failed  int
	)
	for _, p := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ws, err := p.Complete(ctx, prefix)
		if err != nil {
			failed++
			lastErr = err
			continue
		}
		words = append(words, ws...)
	}
	if failed == len(m.providers) && lastErr != nil {
		return nil, lastErr
	}
	return words, nil
}

var _ editor.Provider = (*Multi)(nil)

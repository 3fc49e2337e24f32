// Package complete provides completion provider collaborators for the
// editor engine. Providers only enumerate candidate words; the engine
// does all prefix filtering and common-prefix computation.
package complete

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/quillshell/quill/internal/editor"
)

const maxEntries = 500

// Filesystem enumerates directory entries for path-shaped prefixes.
// Relative prefixes are resolved against the configured root. Entries
// are returned joined with the prefix's directory part, directories
// with a trailing separator, so candidates are in the same shape as
// the typed word.
type Filesystem struct {
	root string
}

// NewFilesystem returns a filesystem provider rooted at root.
func NewFilesystem(root string) *Filesystem {
	return &Filesystem{root: root}
}

// Complete implements editor.Provider.
func (f *Filesystem) Complete(ctx context.Context, prefix string) ([]string, error) {
	dir, base := filepath.Split(prefix)

	scanDir := dir
	if !filepath.IsAbs(scanDir) {
		scanDir = filepath.Join(f.root, scanDir)
	}
	if scanDir == "" {
		scanDir = f.root
	}

	entries, err := os.ReadDir(scanDir)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		// Hidden entries only when explicitly asked for.
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		word := dir + name
		if entry.IsDir() {
			word += string(filepath.Separator)
		}
		words = append(words, word)
		if len(words) >= maxEntries {
			break
		}
	}
	return words, nil
}

var _ editor.Provider = (*Filesystem)(nil)

package complete

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"docs", "src"} {
		if err := os.Mkdir(filepath.Join(root, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"readme.md", "main.go", ".hidden"} {
		if err := os.WriteFile(filepath.Join(root, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestFilesystemEnumeratesRoot(t *testing.T) {
	root := setupTree(t)
	p := NewFilesystem(root)

	words, err := p.Complete(context.Background(), "rea")
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool, len(words))
	for _, w := range words {
		got[w] = true
	}
	// The provider enumerates; it does not filter by prefix.
	for _, want := range []string{"readme.md", "main.go", "docs/", "src/"} {
		if !got[want] {
			t.Errorf("missing %q in %v", want, words)
		}
	}
	if got[".hidden"] {
		t.Error("hidden entry listed without a dotted prefix")
	}
}

func TestFilesystemShowsHiddenForDottedPrefix(t *testing.T) {
	root := setupTree(t)
	p := NewFilesystem(root)

	words, err := p.Complete(context.Background(), ".h")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range words {
		if w == ".hidden" {
			found = true
		}
	}
	if !found {
		t.Errorf(".hidden missing from %v", words)
	}
}

func TestFilesystemJoinsDirectoryPart(t *testing.T) {
	root := setupTree(t)
	if err := os.WriteFile(filepath.Join(root, "docs", "guide.md"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	p := NewFilesystem(root)

	words, err := p.Complete(context.Background(), "docs/gu")
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 || words[0] != "docs/guide.md" {
		t.Errorf("words = %v, want [docs/guide.md]", words)
	}
}

func TestFilesystemHonorsCancellation(t *testing.T) {
	root := setupTree(t)
	p := NewFilesystem(root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Complete(ctx, ""); err == nil {
		t.Error("cancelled context should fail the enumeration")
	}
}

func TestStaticReturnsAllWords(t *testing.T) {
	p := NewStatic([]string{"help", "exit"})
	words, err := p.Complete(context.Background(), "anything")
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 {
		t.Errorf("words = %v, want both entries regardless of prefix", words)
	}
}

func TestMultiConcatenatesAndSkipsFailures(t *testing.T) {
	root := setupTree(t)
	p := NewMulti(
		NewStatic([]string{"builtin"}),
		NewFilesystem(filepath.Join(root, "does-not-exist")),
	)

	words, err := p.Complete(context.Background(), "b")
	if err != nil {
		t.Fatalf("one healthy provider should be enough: %v", err)
	}
	if len(words) != 1 || words[0] != "builtin" {
		t.Errorf("words = %v, want [builtin]", words)
	}
}

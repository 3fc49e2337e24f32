package editor

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// EncodingError reports malformed text encountered while loading a
// history file. It is fatal to that load call, never silently dropped.
type EncodingError struct {
	Path string
	Line int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("history %s: line %d is not valid UTF-8", e.Path, e.Line)
}

// History is a zipper over previously accepted lines, newest first.
// The position counts how many entries have been stepped back into:
// position 0 is the live-edit boundary (no historical entry selected),
// position n views the n-th most recent entry. Navigation saturates at
// both ends.
type History struct {
	entries []string
	pos     int
}

// NewHistory returns a history pre-populated with entries, newest
// first, positioned at the live-edit boundary.
func NewHistory(entries ...string) *History {
	h := &History{entries: make([]string, len(entries))}
	copy(h.entries, entries)
	return h
}

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// Position returns the zipper position (0 = live edit line).
func (h *History) Position() int { return h.pos }

// AtLive reports whether the zipper is at the live-edit boundary.
func (h *History) AtLive() bool { return h.pos == 0 }

// Entries returns a copy of all entries, newest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Entry returns the entry at index (0 = newest).
func (h *History) Entry(i int) string { return h.entries[i] }

// Current returns the entry at the zipper position, or false at the
// live-edit boundary.
func (h *History) Current() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	return h.entries[h.pos-1], true
}

// Add prepends line as the most recent entry. Blank lines and exact
// repeats of the current most-recent entry are dropped, so the call is
// idempotent for adjacent duplicates. The zipper is reset to the
// live-edit boundary.
func (h *History) Add(line string) {
	h.pos = 0
	if strings.TrimSpace(line) == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[0] == line {
		return
	}
	h.entries = append([]string{line}, h.entries...)
}

// Prev steps one entry older and returns it. At the oldest entry it
// stays put and returns false.
func (h *History) Prev() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	return h.entries[h.pos-1], true
}

// Next steps one entry newer. At the live-edit boundary it returns
// ("", false); stepping onto it from the newest entry returns
// ("", true) with no entry selected.
func (h *History) Next() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	if h.pos == 0 {
		return "", true
	}
	return h.entries[h.pos-1], true
}

// SetPosition moves the zipper, clamped to [0, Len()].
func (h *History) SetPosition(pos int) {
	h.pos = clamp(pos, 0, len(h.entries))
}

// FindBackward scans from index `from` toward older entries for the
// first entry containing pattern as a substring. Returns its index.
func (h *History) FindBackward(pattern string, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(h.entries); i++ {
		if strings.Contains(h.entries[i], pattern) {
			return i, true
		}
	}
	return 0, false
}

// LoadHistory reads a history file, one entry per line, newest first.
// A missing file yields an empty history. Any line that is not valid
// UTF-8 fails the whole load with an *EncodingError.
func LoadHistory(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewHistory(), nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	entries, err := parseHistory(path, data)
	if err != nil {
		return nil, err
	}
	return &History{entries: entries}, nil
}

func parseHistory(path string, data []byte) ([]string, error) {
	var entries []string
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, &EncodingError{Path: path, Line: i + 1}
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// Save merges the in-memory entries with the file's current contents
// and writes the result. In-memory entries come first (their recency
// order wins); entries written by another session since this one
// loaded are kept after them, in their on-disk order. Nothing is
// duplicated and nothing is lost.
func (h *History) Save(path string) error {
	onDisk, err := readExisting(path)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(h.entries))
	merged := make([]string, 0, len(h.entries)+len(onDisk))
	for _, e := range h.entries {
		if !seen[e] {
			seen[e] = true
			merged = append(merged, e)
		}
	}
	for _, e := range onDisk {
		if !seen[e] {
			seen[e] = true
			merged = append(merged, e)
		}
	}

	var sb strings.Builder
	for _, e := range merged {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

func readExisting(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to re-read history file: %w", err)
	}
	return parseHistory(path, data)
}

// Package editor implements the line-editing engine: the text buffer,
// key binding table, history store, completion pipeline, incremental
// search, and the state machine that ties them together.
package editor

import "unicode"

// Buffer owns the line content, the cursor, and an optional mark. All
// indices are rune offsets, so edits stay well-formed regardless of how
// many bytes a character occupies. The cursor is always within
// [0, Len()].
type Buffer struct {
	runes   []rune
	cursor  int
	mark    int
	hasMark bool
	gen     uint64
}

// NewBuffer returns an empty buffer with the cursor at position 0.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.runes) }

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() int { return b.cursor }

// Mark returns the mark position and whether a mark is set.
func (b *Buffer) Mark() (int, bool) { return b.mark, b.hasMark }

// Generation is incremented on every successful mutation. The engine
// uses it to invalidate completion state tied to older content.
func (b *Buffer) Generation() uint64 { return b.gen }

// String returns the buffer contents.
func (b *Buffer) String() string { return string(b.runes) }

// Runes returns a copy of the buffer contents as runes.
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.runes))
	copy(out, b.runes)
	return out
}

// Slice returns the text in [start, end). Out-of-range indices are
// clamped.
func (b *Buffer) Slice(start, end int) string {
	start = clamp(start, 0, len(b.runes))
	end = clamp(end, 0, len(b.runes))
	if start >= end {
		return ""
	}
	return string(b.runes[start:end])
}

// InsertRune inserts r at the cursor and advances the cursor past it.
func (b *Buffer) InsertRune(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
	b.dirty()
}

// InsertString inserts s at the cursor and advances the cursor past it.
func (b *Buffer) InsertString(s string) {
	if s == "" {
		return
	}
	rs := []rune(s)
	b.runes = append(b.runes[:b.cursor], append(rs, b.runes[b.cursor:]...)...)
	b.cursor += len(rs)
	b.dirty()
}

// DeleteRange removes the runes in [start, end) and returns the removed
// text. The cursor is pulled inside the remaining content if needed.
func (b *Buffer) DeleteRange(start, end int) string {
	start = clamp(start, 0, len(b.runes))
	end = clamp(end, 0, len(b.runes))
	if start >= end {
		return ""
	}
	removed := string(b.runes[start:end])
	b.runes = append(b.runes[:start], b.runes[end:]...)
	switch {
	case b.cursor >= end:
		b.cursor -= end - start
	case b.cursor > start:
		b.cursor = start
	}
	if b.hasMark {
		b.mark = clamp(b.mark, 0, len(b.runes))
	}
	b.dirty()
	return removed
}

// MoveCursor moves the cursor to pos, clamped to the valid range.
func (b *Buffer) MoveCursor(pos int) {
	b.cursor = clamp(pos, 0, len(b.runes))
}

// CursorLeft moves the cursor one rune left.
func (b *Buffer) CursorLeft() { b.MoveCursor(b.cursor - 1) }

// CursorRight moves the cursor one rune right.
func (b *Buffer) CursorRight() { b.MoveCursor(b.cursor + 1) }

// CursorHome moves the cursor to the start of the line.
func (b *Buffer) CursorHome() { b.cursor = 0 }

// CursorEnd moves the cursor past the last rune.
func (b *Buffer) CursorEnd() { b.cursor = len(b.runes) }

// WordLeft moves the cursor to the start of the previous word.
func (b *Buffer) WordLeft() {
	i := b.cursor
	for i > 0 && unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	b.cursor = i
}

// WordRight moves the cursor past the end of the next word.
func (b *Buffer) WordRight() {
	i := b.cursor
	for i < len(b.runes) && unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	b.cursor = i
}

// DeleteBackward removes the rune before the cursor, if any.
func (b *Buffer) DeleteBackward() {
	if b.cursor > 0 {
		b.DeleteRange(b.cursor-1, b.cursor)
	}
}

// DeleteForward removes the rune under the cursor, if any.
func (b *Buffer) DeleteForward() {
	if b.cursor < len(b.runes) {
		b.DeleteRange(b.cursor, b.cursor+1)
	}
}

// DeleteWordBackward removes from the start of the previous word to the
// cursor and returns the removed text.
func (b *Buffer) DeleteWordBackward() string {
	end := b.cursor
	b.WordLeft()
	start := b.cursor
	return b.DeleteRange(start, end)
}

// KillToEnd removes from the cursor to the end of the line.
func (b *Buffer) KillToEnd() string {
	return b.DeleteRange(b.cursor, len(b.runes))
}

// KillToStart removes from the start of the line to the cursor.
func (b *Buffer) KillToStart() string {
	return b.DeleteRange(0, b.cursor)
}

// SetString replaces the entire contents and places the cursor at the
// end. Used by history navigation and search.
func (b *Buffer) SetString(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
	b.hasMark = false
	b.dirty()
}

// SetMark records the current cursor position as the mark.
func (b *Buffer) SetMark() {
	b.mark = b.cursor
	b.hasMark = true
}

// ClearMark removes the mark.
func (b *Buffer) ClearMark() {
	b.mark = 0
	b.hasMark = false
}

func (b *Buffer) dirty() { b.gen++ }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package editor

// searchState is the incremental backward-search sub-mode. Entering
// search snapshots the buffer (it seeds the pattern) and the zipper
// position so CancelSearch can restore both exactly.
type searchState struct {
	active      bool
	pattern     []rune
	savedText   string
	savedCursor int
	savedPos    int
}

func (s *searchState) start(text string, cursor, pos int) {
	s.active = true
	s.pattern = []rune(text)
	s.savedText = text
	s.savedCursor = cursor
	s.savedPos = pos
}

func (s *searchState) extend(r rune) {
	s.pattern = append(s.pattern, r)
}

// shorten removes the last pattern rune. Returns false if the pattern
// was already empty.
func (s *searchState) shorten() bool {
	if len(s.pattern) == 0 {
		return false
	}
	s.pattern = s.pattern[:len(s.pattern)-1]
	return true
}

func (s *searchState) cancel() (text string, cursor, pos int) {
	text, cursor, pos = s.savedText, s.savedCursor, s.savedPos
	s.reset()
	return
}

func (s *searchState) reset() {
	*s = searchState{}
}

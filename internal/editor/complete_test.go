package editor

import (
	"reflect"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		candidates  []string
		wantPrefix  string
		wantMatches []string
	}{
		{
			name:        "filters by literal prefix",
			word:        "git s",
			candidates:  []string{"git status", "git stash", "git push", "ls"},
			wantPrefix:  "git sta",
			wantMatches: []string{"git status", "git stash"},
		},
		{
			name:        "empty word matches everything",
			word:        "",
			candidates:  []string{"alpha", "always", "beta"},
			wantPrefix:  "",
			wantMatches: []string{"alpha", "always", "beta"},
		},
		{
			name:        "no matches gives empty prefix",
			word:        "zzz",
			candidates:  []string{"alpha", "beta"},
			wantPrefix:  "",
			wantMatches: nil,
		},
		{
			name:        "single match returns itself as prefix",
			word:        "al",
			candidates:  []string{"alpha", "beta"},
			wantPrefix:  "alpha",
			wantMatches: []string{"alpha"},
		},
		{
			name:        "not fuzzy",
			word:        "gs",
			candidates:  []string{"git status"},
			wantPrefix:  "",
			wantMatches: nil,
		},
		{
			name:        "multibyte candidates",
			word:        "日",
			candidates:  []string{"日本", "日本語", "中国"},
			wantPrefix:  "日本",
			wantMatches: []string{"日本", "日本語"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, matches := Lookup(tt.word, tt.candidates)
			if prefix != tt.wantPrefix {
				t.Errorf("prefix = %q, want %q", prefix, tt.wantPrefix)
			}
			if !reflect.DeepEqual(matches, tt.wantMatches) {
				t.Errorf("matches = %v, want %v", matches, tt.wantMatches)
			}
		})
	}
}

func TestLookupPrefixIsLongestCommon(t *testing.T) {
	candidates := []string{"usr/bin", "usr/local", "usr/lib", "var/log"}
	prefix, matches := Lookup("us", candidates)

	for _, m := range matches {
		if !strings.HasPrefix(m, prefix) {
			t.Errorf("%q does not start with returned prefix %q", m, prefix)
		}
	}
	// One rune longer no longer prefixes every match.
	longer := prefix + "x"
	all := true
	for _, m := range matches {
		if !strings.HasPrefix(m, longer) {
			all = false
		}
	}
	if all && len(matches) > 0 {
		t.Errorf("prefix %q is not the longest common prefix", prefix)
	}
	if prefix != "usr/" {
		t.Errorf("prefix = %q, want %q", prefix, "usr/")
	}
}

func TestWordStart(t *testing.T) {
	tests := []struct {
		text   string
		cursor int
		want   int
	}{
		{"ls /us", 6, 3},
		{"ls /us", 2, 0},
		{"", 0, 0},
		{"word", 4, 0},
		{"two words", 9, 4},
		{"trailing ", 9, 9},
		{"日本 語", 3, 3},
	}

	for _, tt := range tests {
		got := WordStart([]rune(tt.text), tt.cursor)
		if got != tt.want {
			t.Errorf("WordStart(%q, %d) = %d, want %d", tt.text, tt.cursor, got, tt.want)
		}
	}
}

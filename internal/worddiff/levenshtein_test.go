package worddiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"color", "colour", 1},
		{"cat", "dog", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"Case", "case", 1}, // case-sensitive
		{"日本", "日本語", 1},   // rune-based, not byte-based
		{"café", "cafe", 1},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, levenshtein(tc.a, tc.b), "levenshtein(%q, %q)", tc.a, tc.b)
		require.Equal(t, tc.want, levenshtein(tc.b, tc.a), "levenshtein(%q, %q)", tc.b, tc.a)
	}
}

func TestSpellDistanceLimit(t *testing.T) {
	tests := []struct {
		maxLen int
		want   int
	}{
		{0, 2},
		{1, 2},
		{3, 2},  // ceil(0.9) = 1, floor of 2 applies
		{6, 2},  // ceil(1.8) = 2
		{7, 3},  // ceil(2.1) = 3
		{10, 3}, // ceil(3.0) = 3
		{11, 4}, // ceil(3.3) = 4
		{20, 6},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, spellDistanceLimit(tc.maxLen), "maxLen=%d", tc.maxLen)
	}
}

func TestClassify(t *testing.T) {
	word := func(v string) Token { return Token{Kind: TokenWord, Value: v} }
	sep := func(v string) Token { return Token{Kind: TokenSeparator, Value: v} }

	tests := []struct {
		name    string
		oldSpan []Token
		newSpan []Token
		oldText string
		newText string
		want    ChangeType
	}{
		{
			name:    "insert",
			newSpan: []Token{word("new")},
			newText: "new",
			want:    Insert,
		},
		{
			name:    "delete",
			oldSpan: []Token{word("old")},
			oldText: "old",
			want:    Delete,
		},
		{
			name:    "spell correction within threshold",
			oldSpan: []Token{word("color")},
			newSpan: []Token{word("colour")},
			oldText: "color",
			newText: "colour",
			want:    SpellCorrection,
		},
		{
			name:    "replace when distance above threshold",
			oldSpan: []Token{word("cat")},
			newSpan: []Token{word("dog")},
			oldText: "cat",
			newText: "dog",
			want:    Replace,
		},
		{
			name:    "replace when multiple words",
			oldSpan: []Token{word("quick"), sep(" "), word("brown")},
			newSpan: []Token{word("fast"), sep(" "), word("dark")},
			oldText: "quick brown",
			newText: "fast dark",
			want:    Replace,
		},
		{
			name:    "distance runs over word values, not surrounding separators",
			oldSpan: []Token{sep("("), word("color"), sep(")")},
			newSpan: []Token{sep("["), word("colour"), sep("]")},
			oldText: "(color)",
			newText: "[colour]",
			want:    SpellCorrection,
		},
		{
			name:    "separator-only change is replace",
			oldSpan: []Token{sep(",")},
			newSpan: []Token{sep(";")},
			oldText: ",",
			newText: ";",
			want:    Replace,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.oldSpan, tc.newSpan, tc.oldText, tc.newText)
			require.Equal(t, tc.want, got)
		})
	}
}

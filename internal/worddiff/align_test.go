package worddiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// wordTokens builds tokens with only the fields alignTokens compares.
func wordTokens(values ...string) []Token {
	tokens := make([]Token, len(values))
	for i, v := range values {
		tokens[i] = Token{Kind: TokenWord, Value: v}
	}
	return tokens
}

func TestAlignTokens(t *testing.T) {
	tests := []struct {
		name string
		old  []string
		new  []string
		want []alignmentPair
	}{
		{
			name: "identical",
			old:  []string{"a", "b", "c"},
			new:  []string{"a", "b", "c"},
			want: []alignmentPair{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "disjoint",
			old:  []string{"a", "b"},
			new:  []string{"x", "y"},
			want: nil,
		},
		{
			name: "insertion in middle",
			old:  []string{"a", "c"},
			new:  []string{"a", "b", "c"},
			want: []alignmentPair{{0, 0}, {1, 2}},
		},
		{
			name: "deletion in middle",
			old:  []string{"a", "b", "c"},
			new:  []string{"a", "c"},
			want: []alignmentPair{{0, 0}, {2, 1}},
		},
		{
			name: "empty old",
			old:  nil,
			new:  []string{"a"},
			want: nil,
		},
		{
			name: "empty new",
			old:  []string{"a"},
			new:  nil,
			want: nil,
		},
		{
			name: "repeated values stay ordered",
			old:  []string{"a", "a", "b"},
			new:  []string{"a", "b", "a"},
			want: []alignmentPair{{0, 0}, {2, 1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := alignTokens(wordTokens(tc.old...), wordTokens(tc.new...))
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(alignmentPair{})); diff != "" {
				t.Errorf("alignTokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlignTokens_TieBreakPrefersOldAdvance(t *testing.T) {
	// Both {"a"} and {"b"} are valid length-1 LCSs. The fixed policy advances the old pointer on
	// ties, so "a" is treated as deleted and "b" matches.
	got := alignTokens(wordTokens("a", "b"), wordTokens("b", "a"))

	want := []alignmentPair{{oldIndex: 1, newIndex: 0}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(alignmentPair{})); diff != "" {
		t.Errorf("alignTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestAlignTokens_ValueOnlyComparison(t *testing.T) {
	// Kind is not compared: a separator and a word with the same text match.
	oldTokens := []Token{{Kind: TokenSeparator, Value: "a"}}
	newTokens := []Token{{Kind: TokenWord, Value: "a"}}

	got := alignTokens(oldTokens, newTokens)

	want := []alignmentPair{{oldIndex: 0, newIndex: 0}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(alignmentPair{})); diff != "" {
		t.Errorf("alignTokens mismatch (-want +got):\n%s", diff)
	}
}

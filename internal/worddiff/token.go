package worddiff

// TokenKind tags a Token as a word or a separator run.
type TokenKind int

const (
	TokenWord      TokenKind = iota // contains at least one letter, number, or mark
	TokenSeparator                  // whitespace, punctuation, symbols
)

// Token is one segment of a normalized input string.
//
// Invariants, for the sequence produced by tokenize:
//   - Value == s[Start:End], with End exclusive
//   - tokens are ordered and contiguous: tokens[i].End == tokens[i+1].Start
//   - the first token starts at 0 and the last ends at len(s), so the sequence tiles the whole string
type Token struct {
	Kind  TokenKind
	Value string
	Start int // byte offset of the token in the normalized string
	End   int // byte offset just past the token
}

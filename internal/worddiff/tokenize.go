package worddiff

import (
	"github.com/codalotl/worddiff/internal/q/uni"
	"github.com/codalotl/worddiff/internal/simplelogger"
)

// segmenter partitions a normalized string into tokens satisfying the Token tiling invariants.
type segmenter interface {
	segment(s string) []Token
}

// tokenize produces the token sequence for s. It prefers UAX #29 word segmentation and recovers
// to the character-class scan if segmentation panics; the recovery is silent apart from debug
// logging, per the package contract that well-formed string input cannot fail.
func tokenize(s string) []Token {
	return tokenizeWith(localeSegmenter{}, s)
}

func tokenizeWith(seg segmenter, s string) (tokens []Token) {
	defer func() {
		if r := recover(); r != nil {
			simplelogger.Log("worddiff: segmenter failed (%v); using scan fallback", r)
			tokens = scanSegmenter{}.segment(s)
		}
	}()
	return seg.segment(s)
}

// wordIter is the subset of uni.Iterator the locale segmenter needs. Iterators carry scan
// position, so one is constructed fresh per segment call and never shared.
type wordIter interface {
	Next() bool
	Value() string
	Start() int
	End() int
	IsWordLike() bool
}

// localeSegmenter tokenizes via UAX #29 word boundaries.
type localeSegmenter struct{}

func (localeSegmenter) segment(s string) []Token {
	return segmentFromIter(uni.NewWordIterator(s), s)
}

// segmentFromIter turns boundary segments into tokens. Each segment becomes one token, word vs.
// separator by whether it contains a letter, number, or mark. Any byte range the iterator does not
// cover (before the first segment, between segments, after the last) is synthesized as a separator
// token, so the tiling invariant holds even if the iterator is not exhaustive.
func segmentFromIter(iter wordIter, s string) []Token {
	var tokens []Token
	pos := 0
	for iter.Next() {
		if start := iter.Start(); start > pos {
			tokens = append(tokens, Token{Kind: TokenSeparator, Value: s[pos:start], Start: pos, End: start})
		}
		kind := TokenSeparator
		if iter.IsWordLike() {
			kind = TokenWord
		}
		tokens = append(tokens, Token{Kind: kind, Value: iter.Value(), Start: iter.Start(), End: iter.End()})
		pos = iter.End()
	}
	if pos < len(s) {
		tokens = append(tokens, Token{Kind: TokenSeparator, Value: s[pos:], Start: pos, End: len(s)})
	}
	return tokens
}

// scanSegmenter is the deterministic fallback: maximal runs of letter/number/mark runes become
// word tokens, maximal runs of everything else separator tokens.
type scanSegmenter struct{}

func (scanSegmenter) segment(s string) []Token {
	var tokens []Token
	start := 0
	kind := TokenSeparator
	for i, r := range s {
		k := TokenSeparator
		if uni.IsWordRune(r) {
			k = TokenWord
		}
		if i == 0 {
			kind = k
			continue
		}
		if k != kind {
			tokens = append(tokens, Token{Kind: kind, Value: s[start:i], Start: start, End: i})
			start, kind = i, k
		}
	}
	if len(s) > 0 {
		tokens = append(tokens, Token{Kind: kind, Value: s[start:], Start: start, End: len(s)})
	}
	return tokens
}

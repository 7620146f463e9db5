package uni

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation in TextWidth and related helpers.
//
// Currently only relevant for East Asian code points and their locale.
type Options struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// TextWidth returns the text width of str for monospace fonts in terminals. If opts is nil, locale is assumed to be non-East Asian.
func TextWidth[T string | []byte](str T, opts *Options) int {
	cond := conditionFromOptions(opts)
	return textWidth(str, cond)
}

// Iterator iterates over UAX #29 word-boundary segments.
//
// Segments tile the input: every byte belongs to exactly one segment, in order. Use IsWordLike to
// distinguish word segments (containing at least one letter, number, or mark) from whitespace,
// punctuation, and symbol segments.
type Iterator[T string | []byte] struct {
	iter *words.Iterator[T]
}

// NewWordIterator returns a new word-segment iterator for str (string or []byte).
//
// Iterators carry scan position and must not be shared or reused across concurrent callers;
// construct a fresh one per segmentation.
func NewWordIterator[T string | []byte](str T) *Iterator[T] {
	return &Iterator[T]{iter: newWordIterator(str)}
}

func (iter *Iterator[T]) Next() bool {
	return iter.iter.Next()
}

func (iter *Iterator[T]) Value() T {
	return iter.iter.Value()
}

// Start returns the byte position of the current segment in the original data.
func (iter *Iterator[T]) Start() int {
	return iter.iter.Start()
}

// End returns the byte position after the current segment in the original data. Allows looping over bytes [Start(), End()).
func (iter *Iterator[T]) End() int {
	return iter.iter.End()
}

// IsWordLike reports whether the current segment contains at least one letter, number, or mark rune.
func (iter *Iterator[T]) IsWordLike() bool {
	return IsWordLike(iter.iter.Value())
}

// IsWordLike reports whether str contains at least one letter, number, or mark rune.
func IsWordLike[T string | []byte](str T) bool {
	switch v := any(str).(type) {
	case string:
		for _, r := range v {
			if IsWordRune(r) {
				return true
			}
		}
	case []byte:
		for i := 0; i < len(v); {
			r, size := utf8.DecodeRune(v[i:])
			if IsWordRune(r) {
				return true
			}
			i += size
		}
	default:
		panic("unsupported type")
	}
	return false
}

// IsWordRune reports whether r is a letter, number, or mark.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func conditionFromOptions(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}

func newWordIterator[T string | []byte](text T) *words.Iterator[T] {
	switch v := any(text).(type) {
	case string:
		iter := words.FromString(v)
		return any(&iter).(*words.Iterator[T])
	case []byte:
		iter := words.FromBytes(v)
		return any(&iter).(*words.Iterator[T])
	default:
		panic("unsupported type")
	}
}

func textWidth[T string | []byte](text T, cond *runewidth.Condition) int {
	switch v := any(text).(type) {
	case string:
		return cond.StringWidth(v)
	case []byte:
		return cond.StringWidth(string(v))
	default:
		panic("unsupported type")
	}
}

package worddiff

import "unicode/utf8"

// spellDistanceLimit is the inclusive edit-distance bound under which a single-word substitution
// counts as a spelling correction: max(2, ceil(0.3*maxLen)), maxLen the longer word's rune length.
// The constants are a compatibility surface; do not tune.
func spellDistanceLimit(maxLen int) int {
	limit := (3*maxLen + 9) / 10
	return max(limit, 2)
}

// classify assigns the change type for one merged range, given its token spans and the
// materialized substrings. Callers guarantee oldText != newText.
func classify(oldSpan, newSpan []Token, oldText, newText string) ChangeType {
	switch {
	case oldText == "":
		return Insert
	case newText == "":
		return Delete
	}

	// Spell corrections are gated to exactly one word token per side; the distance runs over the
	// word values, not the whole substrings, so surrounding separators don't dilute it.
	oldWord, oldOK := singleWord(oldSpan)
	newWord, newOK := singleWord(newSpan)
	if oldOK && newOK {
		maxLen := max(utf8.RuneCountInString(oldWord), utf8.RuneCountInString(newWord))
		if d := levenshtein(oldWord, newWord); d > 0 && d <= spellDistanceLimit(maxLen) {
			return SpellCorrection
		}
	}
	return Replace
}

// singleWord returns the value of the span's word token if the span contains exactly one.
func singleWord(span []Token) (string, bool) {
	value := ""
	count := 0
	for _, t := range span {
		if t.Kind == TokenWord {
			count++
			value = t.Value
		}
	}
	return value, count == 1
}

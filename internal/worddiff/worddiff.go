package worddiff

import "golang.org/x/text/unicode/norm"

// ChangeType classifies one TextDiff.
type ChangeType string

// Change classifications from old text to new text.
const (
	Insert          ChangeType = "insert"
	Delete          ChangeType = "delete"
	Replace         ChangeType = "replace"
	SpellCorrection ChangeType = "spell-correction"
)

// Position is a half-open byte-offset range into the NFC-normalized old string.
type Position struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

// TextDiff is one reported change.
//
// OldText and NewText are exact substrings of the respective normalized inputs; Position locates
// OldText in the normalized old string. For Insert, OldText is "" and Position is the zero-width
// point where NewText belongs; for Delete, NewText is "".
type TextDiff struct {
	OldText    string     `json:"oldText"`
	Position   Position   `json:"position"`
	NewText    string     `json:"newText"`
	ChangeType ChangeType `json:"changeType"`
}

// Diff returns the ordered word-granularity diff from oldText to newText.
//
// Both inputs are NFC-normalized first; all reported offsets and substrings refer to the
// normalized forms, which may differ byte-wise from the caller's raw input. The result is nil iff
// the normalized inputs are identical.
//
// Cost is O(n*m) in the two token counts plus O(L^2) per single-word classification; callers
// needing bounded latency must bound input size.
func Diff(oldText, newText string) []TextDiff {
	oldNorm := norm.NFC.String(oldText)
	newNorm := norm.NFC.String(newText)
	if oldNorm == newNorm {
		return nil
	}

	oldTokens := tokenize(oldNorm)
	newTokens := tokenize(newNorm)

	pairs := alignTokens(oldTokens, newTokens)
	ranges := extractRanges(pairs, len(oldTokens), len(newTokens))
	ranges = mergeRanges(ranges, oldTokens, newTokens)

	var diffs []TextDiff
	for _, r := range ranges {
		start, end := spanOffsets(oldTokens, r.oldStart, r.oldEnd)
		newStart, newEnd := spanOffsets(newTokens, r.newStart, r.newEnd)
		oldSlice := oldNorm[start:end]
		newSlice := newNorm[newStart:newEnd]
		if oldSlice == newSlice {
			// Merging can swallow identical separator runs into a range; such a range is not a
			// real change.
			continue
		}
		diffs = append(diffs, TextDiff{
			OldText:    oldSlice,
			Position:   Position{StartIndex: start, EndIndex: end},
			NewText:    newSlice,
			ChangeType: classify(oldTokens[r.oldStart:r.oldEnd], newTokens[r.newStart:r.newEnd], oldSlice, newSlice),
		})
	}
	return diffs
}

// spanOffsets maps a half-open token-index span to byte offsets. An empty span collapses to the
// end offset of the preceding token, or 0 at the origin.
func spanOffsets(tokens []Token, start, end int) (int, int) {
	if start < end {
		return tokens[start].Start, tokens[end-1].End
	}
	if start == 0 {
		return 0, 0
	}
	off := tokens[start-1].End
	return off, off
}

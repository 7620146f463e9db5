package worddiff

// changeRange is a pair of half-open token-index intervals covering one unmatched region between
// alignment anchors. Either side may be empty (start == end): an empty old side is a pure
// insertion, an empty new side a pure deletion.
type changeRange struct {
	oldStart, oldEnd int
	newStart, newEnd int
}

// extractRanges converts the matched-pair sequence into the unmatched regions between consecutive
// anchors, with (nOld, nNew) as the terminal anchor. A region is emitted only if at least one side
// is non-empty. Regions come out ordered by both old and new index.
func extractRanges(pairs []alignmentPair, nOld, nNew int) []changeRange {
	var ranges []changeRange
	prevOld, prevNew := 0, 0
	emit := func(oldEnd, newEnd int) {
		if prevOld < oldEnd || prevNew < newEnd {
			ranges = append(ranges, changeRange{prevOld, oldEnd, prevNew, newEnd})
		}
	}
	for _, p := range pairs {
		emit(p.oldIndex, p.newIndex)
		prevOld, prevNew = p.oldIndex+1, p.newIndex+1
	}
	emit(nOld, nNew)
	return ranges
}

// mergeRanges coalesces a range into its predecessor when the tokens strictly between them, on
// both the old and the new side, are all separators (an empty gap counts). Unchanged whitespace
// or punctuation between two edited words must not split one semantic edit into several entries.
//
// After merging, no two surviving ranges could still be merged.
func mergeRanges(ranges []changeRange, oldTokens, newTokens []Token) []changeRange {
	var merged []changeRange
	for _, r := range ranges {
		if len(merged) > 0 {
			prev := &merged[len(merged)-1]
			if allSeparators(oldTokens[prev.oldEnd:r.oldStart]) && allSeparators(newTokens[prev.newEnd:r.newStart]) {
				prev.oldEnd = r.oldEnd
				prev.newEnd = r.newEnd
				continue
			}
		}
		merged = append(merged, r)
	}
	return merged
}

func allSeparators(tokens []Token) bool {
	for _, t := range tokens {
		if t.Kind != TokenSeparator {
			return false
		}
	}
	return true
}

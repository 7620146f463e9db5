package worddiff

// levenshtein returns the edit distance between a and b: the minimum number of unit-cost rune
// insertions, deletions, and substitutions turning a into b. Case-sensitive.
//
// Standard rolling-row DP: O(len(a)*len(b)) time, one row of the shorter side in extra space.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(rb) < len(ra) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	// row[i] = distance(ra[:i], rb[:j]) for the j of the current outer iteration.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		prev := row[0] // distance(ra[:0], rb[:j-1])
		row[0] = j
		for i := 1; i <= len(ra); i++ {
			cur := prev // match: distance(ra[:i-1], rb[:j-1])
			if ra[i-1] != rb[j-1] {
				cur = min(prev+1, row[i]+1, row[i-1]+1)
			}
			prev = row[i]
			row[i] = cur
		}
	}
	return row[len(ra)]
}

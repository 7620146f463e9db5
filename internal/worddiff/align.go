package worddiff

// alignmentPair matches old token oldIndex with new token newIndex. In the sequence returned by
// alignTokens, both components are strictly increasing and matched token values are identical.
type alignmentPair struct {
	oldIndex int
	newIndex int
}

// alignTokens computes a longest common subsequence of a and b, comparing token values only
// (kind and offsets are ignored, so a word and a separator with the same text can match).
//
// The DP table is filled backward: dp[i][j] is the LCS length of a[i:] and b[j:]. Reconstruction
// runs forward from (0,0); when a[i] and b[j] differ and both directions preserve the LCS length,
// the old pointer advances first. The tie-break is a fixed policy, not an accident: among equally
// long common subsequences it reports old-side tokens as deleted before new-side tokens as
// inserted, and output positions depend on it.
//
// O(n*m) time and space in the token counts.
func alignTokens(a, b []Token) []alignmentPair {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i].Value == b[j].Value:
				dp[i][j] = dp[i+1][j+1] + 1
			case dp[i+1][j] >= dp[i][j+1]:
				dp[i][j] = dp[i+1][j]
			default:
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var pairs []alignmentPair
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i].Value == b[j].Value:
			pairs = append(pairs, alignmentPair{oldIndex: i, newIndex: j})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			i++
		default:
			j++
		}
	}
	return pairs
}

package worddiff

import "fmt"

// validate checks the documented TextDiff invariants against the normalized old string and
// returns an error on the first violation. Called from tests.
func validate(diffs []TextDiff, oldNorm string) error {
	prevStart := -1
	for i, d := range diffs {
		p := d.Position
		if p.StartIndex < 0 || p.EndIndex < p.StartIndex || p.EndIndex > len(oldNorm) {
			return fmt.Errorf("diff[%d]: position [%d,%d) out of range for length %d", i, p.StartIndex, p.EndIndex, len(oldNorm))
		}
		if p.StartIndex <= prevStart {
			return fmt.Errorf("diff[%d]: StartIndex %d not strictly increasing (prev %d)", i, p.StartIndex, prevStart)
		}
		prevStart = p.StartIndex

		if got := oldNorm[p.StartIndex:p.EndIndex]; d.OldText != got {
			return fmt.Errorf("diff[%d]: OldText %q != old slice %q", i, d.OldText, got)
		}
		if d.OldText == d.NewText {
			return fmt.Errorf("diff[%d]: OldText == NewText (%q)", i, d.OldText)
		}

		switch d.ChangeType {
		case Insert:
			if d.OldText != "" || d.NewText == "" {
				return fmt.Errorf("diff[%d]: insert requires OldText==\"\" and NewText!=\"\"", i)
			}
		case Delete:
			if d.OldText == "" || d.NewText != "" {
				return fmt.Errorf("diff[%d]: delete requires OldText!=\"\" and NewText==\"\"", i)
			}
		case Replace, SpellCorrection:
			if d.OldText == "" || d.NewText == "" {
				return fmt.Errorf("diff[%d]: %s requires both sides non-empty", i, d.ChangeType)
			}
		default:
			return fmt.Errorf("diff[%d]: unknown change type %q", i, d.ChangeType)
		}
	}
	return nil
}

// validateTokens checks the tokenizer tiling invariants: tokens ordered, contiguous, covering
// [0, len(s)) exactly, each value the slice at its offsets, each token a run of one class.
func validateTokens(tokens []Token, s string) error {
	pos := 0
	for i, t := range tokens {
		if t.Start != pos {
			return fmt.Errorf("token[%d]: starts at %d, want %d", i, t.Start, pos)
		}
		if t.End <= t.Start {
			return fmt.Errorf("token[%d]: empty or inverted span [%d,%d)", i, t.Start, t.End)
		}
		if t.End > len(s) {
			return fmt.Errorf("token[%d]: ends at %d past length %d", i, t.End, len(s))
		}
		if t.Value != s[t.Start:t.End] {
			return fmt.Errorf("token[%d]: value %q != slice %q", i, t.Value, s[t.Start:t.End])
		}
		pos = t.End
	}
	if pos != len(s) {
		return fmt.Errorf("tokens end at %d, want %d", pos, len(s))
	}
	return nil
}

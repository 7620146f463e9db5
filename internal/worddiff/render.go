package worddiff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/codalotl/worddiff/internal/q/uni"
)

// RenderPretty returns a human-oriented rendering of diffs applied over the normalized old text.
// Unchanged text is printed as-is; each change shows the old side followed by the new side.
//
// With color, deleted/replaced text gets a pink background and replacement text a green one; within
// replacements and spell corrections the characters that actually differ are emphasized with a
// darker shade, computed by a character-level diff. Without color, changes are marked inline as
// [-old-]{+new+}.
//
// The output contains ANSI 256-color escape sequences and is intended for terminals; it is not
// machine-readable. Consume the TextDiff values directly for that.
func RenderPretty(diffs []TextDiff, oldNorm string, color bool) string {
	// Colors (ANSI) for pretty output.
	const (
		reset   = "\x1b[0m"
		blackFG = "\x1b[30m"
		pinkBG  = "\x1b[48;5;224m" // light pink for deleted text
		pinkEm  = "\x1b[48;5;217m" // slightly darker pink for emphasized characters
		greenBG = "\x1b[48;5;194m" // light green for added text
		greenEm = "\x1b[48;5;114m" // slightly darker green for emphasized characters
	)

	var b strings.Builder
	pos := 0
	for _, d := range diffs {
		b.WriteString(oldNorm[pos:d.Position.StartIndex])
		pos = d.Position.EndIndex

		if !color {
			if d.OldText != "" {
				b.WriteString("[-")
				b.WriteString(d.OldText)
				b.WriteString("-]")
			}
			if d.NewText != "" {
				b.WriteString("{+")
				b.WriteString(d.NewText)
				b.WriteString("+}")
			}
			continue
		}

		// Character-level emphasis only makes sense when both sides exist. The matcher is
		// constructed fresh per change; diffmatchpatch carries no state across calls this way.
		var spans []diffmatchpatch.Diff
		if d.ChangeType == Replace || d.ChangeType == SpellCorrection {
			dmp := diffmatchpatch.New()
			spans = dmp.DiffCleanupMerge(dmp.DiffMain(d.OldText, d.NewText, false))
		}

		if d.OldText != "" {
			b.WriteString(blackFG)
			b.WriteString(pinkBG)
			if spans != nil {
				for _, sp := range spans {
					switch sp.Type {
					case diffmatchpatch.DiffEqual:
						b.WriteString(sp.Text)
					case diffmatchpatch.DiffDelete:
						b.WriteString(pinkEm)
						b.WriteString(sp.Text)
						b.WriteString(pinkBG)
					}
				}
			} else {
				b.WriteString(d.OldText)
			}
			b.WriteString(reset)
		}
		if d.NewText != "" {
			b.WriteString(blackFG)
			b.WriteString(greenBG)
			if spans != nil {
				for _, sp := range spans {
					switch sp.Type {
					case diffmatchpatch.DiffEqual:
						b.WriteString(sp.Text)
					case diffmatchpatch.DiffInsert:
						b.WriteString(greenEm)
						b.WriteString(sp.Text)
						b.WriteString(greenBG)
					}
				}
			} else {
				b.WriteString(d.NewText)
			}
			b.WriteString(reset)
		}
	}
	b.WriteString(oldNorm[pos:])
	return b.String()
}

// RenderSummary returns one line per change: byte range, change type, and the two sides. The
// old-side column is padded by display width rather than byte length so CJK and emoji content
// stays aligned.
func RenderSummary(diffs []TextDiff) string {
	oldWidth := 0
	cells := make([]string, len(diffs))
	for i, d := range diffs {
		cells[i] = fmt.Sprintf("%q", d.OldText)
		if w := uni.TextWidth(cells[i], nil); w > oldWidth {
			oldWidth = w
		}
	}

	var b strings.Builder
	for i, d := range diffs {
		pad := strings.Repeat(" ", oldWidth-uni.TextWidth(cells[i], nil))
		fmt.Fprintf(&b, "%4d-%-4d %-16s %s%s -> %q\n",
			d.Position.StartIndex, d.Position.EndIndex, d.ChangeType, cells[i], pad, d.NewText)
	}
	return b.String()
}

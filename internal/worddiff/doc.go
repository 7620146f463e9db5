// Package worddiff computes a structured, position-accurate diff between two Unicode strings at
// word granularity.
//
// Representation: Diff returns an ordered []TextDiff. Each entry reports the changed substring of
// the old input, its exact byte-offset range there, the replacement substring from the new input,
// and a ChangeType (Insert, Delete, Replace, or SpellCorrection). Both inputs are NFC-normalized
// before any processing; all offsets and substrings refer to the normalized forms.
//
// Invariants:
//   - diff.OldText == oldNormalized[diff.Position.StartIndex:diff.Position.EndIndex]
//   - entries are ordered by strictly increasing Position.StartIndex
//   - the result is empty iff the two normalized inputs are identical
//
// Pipeline: each input is tokenized into an exhaustive sequence of word and separator tokens
// (UAX #29 word segmentation, with a character-class scan fallback), the two token sequences are
// aligned with a longest-common-subsequence pass, the unmatched regions between matches are merged
// across unchanged separators, and each surviving region is classified and mapped back to offsets.
// Single-word substitutions whose edit distance is small relative to the word length are reported
// as SpellCorrection rather than Replace.
//
// Multilingual input is supported, including scripts without whitespace word separation; there the
// segmenter's word boundaries decide edit granularity.
//
// Getting a diff:
//
//	diffs := worddiff.Diff("quick brown fox", "fast dark wolf")
//
// Rendering: RenderPretty emits a terminal view of the old text with changes highlighted (ANSI
// colors, or [-old-]{+new+} markers without color); RenderSummary emits one aligned line per
// change.
//
// Every call allocates its own working state; Diff is safe to call from concurrent goroutines.
package worddiff

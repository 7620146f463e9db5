// Package cli is the command-line surface of worddiff.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/codalotl/worddiff/internal/simplelogger"
	"github.com/codalotl/worddiff/internal/worddiff"
)

// Version is the worddiff version. It is a var (not a const) so build tooling can override it
// (for example via `-ldflags "-X .../internal/cli.Version=1.2.3"`).
var Version = "0.1.0"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil with sound args (ex: an unreadable input file)
//   - 2 -> args parse error or misuse of flags
//
// In cases of errors, Run has already displayed an error message to opts.Err || Stderr. Callers
// may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	ran := false
	root := newRootCommand(&ran)
	root.SetArgs(argv)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errW)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(errW, "worddiff: %v\n", err)
		if !ran {
			return 2, err
		}
		return 1, err
	}
	return 0, nil
}

func newRootCommand(ran *bool) *cobra.Command {
	var (
		jsonOut   bool
		summary   bool
		fromFiles bool
		colorMode string
	)

	root := &cobra.Command{
		Use:   "worddiff [flags] OLD NEW",
		Short: "Word-granularity, position-accurate diff of two Unicode strings",
		Long: `worddiff compares two Unicode strings at word granularity and reports each change with
its exact byte-offset range in the NFC-normalized old string, the replacement text, and a
classification: insert, delete, replace, or spell-correction.

OLD and NEW are literal strings, or file paths with --files. Offsets in the output refer to the
normalized old input, which may differ byte-wise from the raw argument.`,
		Example: `  worddiff "quick brown fox" "fast dark wolf"
  worddiff --json "color" "colour"
  worddiff --files old.txt new.txt`,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := resolveColor(colorMode, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			*ran = true

			oldText, newText := args[0], args[1]
			if fromFiles {
				oldBytes, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read old file: %w", err)
				}
				newBytes, err := os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("read new file: %w", err)
				}
				oldText, newText = string(oldBytes), string(newBytes)
			}

			diffs := worddiff.Diff(oldText, newText)
			simplelogger.Log("cli: %d change(s) for %d/%d input bytes", len(diffs), len(oldText), len(newText))

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				if diffs == nil {
					diffs = []worddiff.TextDiff{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(diffs)
			case summary:
				_, err := io.WriteString(out, worddiff.RenderSummary(diffs))
				return err
			default:
				_, err := fmt.Fprintln(out, worddiff.RenderPretty(diffs, norm.NFC.String(oldText), color))
				return err
			}
		},
	}

	root.Flags().BoolVar(&jsonOut, "json", false, "emit the diff list as JSON")
	root.Flags().BoolVarP(&summary, "summary", "s", false, "emit one aligned line per change instead of highlighted text")
	root.Flags().BoolVarP(&fromFiles, "files", "f", false, "treat OLD and NEW as file paths")
	root.Flags().StringVar(&colorMode, "color", "auto", "colorize output: auto, always, or never")

	return root
}

// resolveColor maps the --color flag to a decision. "auto" enables color only when out is a
// terminal.
func resolveColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, always, or never)", mode)
	}
}

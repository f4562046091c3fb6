// Copyright 2025 go-fixvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-fixvec/vec"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lossyStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FF6B6B"))
)

var titler = cases.Title(language.English)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "vecpack",
		Short:         "Inspect scalar kinds, conversions and packed vector words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogger(verbose || DebugEnv())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = Logger().Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	root.AddCommand(
		newKindsCmd(),
		newLatticeCmd(),
		newConvertCmd(),
		newPackCmd(),
		newUnpackCmd(),
	)
	return root
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported scalar kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := lo.Map(vec.Kinds(), func(k vec.Kind, _ int) []string {
				info := k.Info()
				class := "unsigned"
				switch {
				case info.Float:
					class = "float"
				case info.Signed:
					class = "signed"
				}
				return []string{info.Name, strconv.Itoa(info.Bits), class, strconv.Itoa(info.Digits)}
			})
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Kind", "Bits", "Class", "Digits").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

// latticeSymbol is the one-cell rendering of a conversion class.
func latticeSymbol(c vec.Conversion) string {
	switch c {
	case vec.Identity:
		return "="
	case vec.ImplicitWidening:
		return "+"
	default:
		return "-"
	}
}

func newLatticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lattice",
		Short: "Show the conversion class of every (source, destination) kind pair",
		Long: `Rows are source kinds and columns are destination kinds.
"=" is identity, "+" an implicit widening and "-" an explicit lossy conversion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lat := vec.Lattice()
			kinds := vec.Kinds()
			headers := append([]string{"From \\ To"}, lo.Map(kinds, func(k vec.Kind, _ int) string {
				return titler.String(k.String())
			})...)
			rows := lo.Map(kinds, func(src vec.Kind, _ int) []string {
				row := []string{titler.String(src.String())}
				for _, dst := range kinds {
					row = append(row, latticeSymbol(lat[src][dst]))
				}
				return row
			})
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers(headers...).
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow || col == 0:
						return headerStyle
					case lat[kinds[row]][kinds[col-1]] == vec.ExplicitLossy:
						return lossyStyle
					}
					return cellStyle
				})
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert --from KIND --to KIND x y [z [w]]",
		Short: "Convert a vector between scalar kinds",
		Args:  cobra.RangeArgs(vec.MinLen, vec.MaxLen),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := vec.ParseKind(from)
			if err != nil {
				return err
			}
			dst, err := vec.ParseKind(to)
			if err != nil {
				return err
			}
			h, err := handlerFor(src)
			if err != nil {
				return err
			}
			class := vec.Classify(src, dst)
			Logger().Debug("convert",
				zap.Stringer("from", src), zap.Stringer("to", dst),
				zap.Stringer("class", class), zap.Strings("args", args))
			out, err := h.convert(dst, args)
			if err != nil {
				return fmt.Errorf("convert %s: %w", src, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %s\n%s\n", src, dst, class, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Source scalar kind (required)")
	cmd.Flags().StringVar(&to, "to", "", "Destination scalar kind (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// layoutFlags are the flags shared by pack and unpack.
type layoutFlags struct {
	kind   string
	word   int
	widths []int
	n      int
}

func (f *layoutFlags) register(cmd *cobra.Command, withN bool) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "Scalar kind of the components (required)")
	cmd.Flags().IntVarP(&f.word, "word", "w", 32, "Word width in bits: 32 or 64")
	cmd.Flags().IntSliceVar(&f.widths, "widths", nil, "Comma-separated bit width per component (default: the kind's full width)")
	if withN {
		cmd.Flags().IntVarP(&f.n, "n", "n", 0, "Number of components for a full-width layout")
		cmd.MarkFlagsMutuallyExclusive("widths", "n")
	}
	_ = cmd.MarkFlagRequired("kind")
}

// layout builds the layout described by the flags. Without --widths every
// component takes the kind's full width and n components.
func (f *layoutFlags) layout(n int) (vec.Layout, error) {
	k, err := vec.ParseKind(f.kind)
	if err != nil {
		return vec.Layout{}, err
	}
	if len(f.widths) > 0 {
		return vec.NewLayout(k, f.word, f.widths...)
	}
	return vec.FixedLayout(k, f.word, n)
}

func newPackCmd() *cobra.Command {
	var flags layoutFlags
	cmd := &cobra.Command{
		Use:   "pack --kind KIND [--word 32|64] [--widths a,b,..] x y [z [w]]",
		Short: "Pack vector components into a single word",
		Args:  cobra.RangeArgs(vec.MinLen, vec.MaxLen),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(flags.widths) > 0 && len(flags.widths) != len(args) {
				return fmt.Errorf("%w: %d widths for %d components",
					vec.ErrConfiguration, len(flags.widths), len(args))
			}
			l, err := flags.layout(len(args))
			if err != nil {
				return err
			}
			h, err := handlerFor(l.Kind())
			if err != nil {
				return err
			}
			Logger().Debug("pack", zap.Stringer("layout", l), zap.Ints("offsets", l.Offsets()))
			word, err := h.pack(l, args)
			if err != nil {
				return fmt.Errorf("pack %s: %w", l, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatWord(word, l.WordBits()))
			return nil
		},
	}
	flags.register(cmd, false)
	return cmd
}

func newUnpackCmd() *cobra.Command {
	var flags layoutFlags
	cmd := &cobra.Command{
		Use:   "unpack --kind KIND [--word 32|64] [--widths a,b,..|--n N] WORD",
		Short: "Unpack a word into vector components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := flags.n
			if n == 0 && len(flags.widths) == 0 {
				n = defaultLen(flags)
			}
			l, err := flags.layout(n)
			if err != nil {
				return err
			}
			word, err := strconv.ParseUint(args[0], 0, l.WordBits())
			if err != nil {
				return fmt.Errorf("%w: word %q: %v", vec.ErrConfiguration, args[0], err)
			}
			h, err := handlerFor(l.Kind())
			if err != nil {
				return err
			}
			Logger().Debug("unpack", zap.Stringer("layout", l), zap.Uint64("word", word))
			out, err := h.unpack(l, word)
			if err != nil {
				return fmt.Errorf("unpack %s: %w", l, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.register(cmd, true)
	return cmd
}

// defaultLen is the number of full-width components that fit the word,
// capped at the maximum arity. Kinds wider than half the word fall back to
// the minimum arity so that the layout check reports the overflow.
func defaultLen(f layoutFlags) int {
	k, err := vec.ParseKind(f.kind)
	if err != nil {
		return vec.MinLen
	}
	return max(vec.MinLen, min(vec.MaxLen, f.word/k.Bits()))
}

func formatWord(word uint64, wordBits int) string {
	return fmt.Sprintf("0x%0*X", wordBits/4, word)
}

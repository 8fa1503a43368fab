package cli

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/folderer"
	"github.com/spf13/cobra"
)

// errNoValues is returned by commands which have no result for empty input.
var errNoValues = errors.New("no values")

// errOverflow is returned if an integer result does not fit into an int64.
var errOverflow = errors.New("integer overflow")

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// --- sum -------------------------------------------------------------------

func newSumCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [numbers...]",
		Short: "add up numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := values(cmd, args)
			if err != nil {
				return err
			}
			if a.v.GetBool("int") {
				ints, err := parseAll(words, parseInt)
				if err != nil {
					return err
				}
				total, err := sumInts(ints)
				if err != nil {
					return err
				}
				return a.printer(cmd).result(strconv.FormatInt(total, 10))
			}
			floats, err := parseAll(words, parseFloat)
			if err != nil {
				return err
			}
			sum := folderer.CollectAdder(slices.Values(floats))
			return a.printer(cmd).result(strconv.FormatFloat(sum.Unwrap(), 'g', -1, 64))
		},
	}
	cmd.Flags().Bool("int", false, "add up integers instead of floating point numbers")
	return cmd
}

// sumInts adds up ints, failing instead of wrapping around on overflow.
func sumInts(ints []int64) (int64, error) {
	overflow := false
	sum := folderer.NewDynFolder(int64(0), func(acc *int64, x int64) {
		if overflow {
			return
		}
		s := *acc + x
		if (x > 0 && s < *acc) || (x < 0 && s > *acc) {
			overflow = true
			return
		}
		*acc = s
	})
	sum.Extend(slices.Values(ints))
	if overflow {
		return 0, fmt.Errorf("sum overflows int64: %w", errOverflow)
	}
	return sum.Unwrap(), nil
}

// --- max -------------------------------------------------------------------

func newMaxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "max [numbers...]",
		Short: "select the largest number (NaN if any value is NaN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := values(cmd, args)
			if err != nil {
				return err
			}
			nums, err := parseAll(words, parseFloat)
			if err != nil {
				return err
			}
			if len(nums) == 0 {
				return errNoValues
			}
			// NaN is sticky, wherever it appears in the input
			best := folderer.NewDynFolder(nums[0], func(m *float64, x float64) {
				if math.IsNaN(*m) {
					return
				}
				if math.IsNaN(x) || x > *m {
					*m = x
				}
			})
			best.Extend(slices.Values(nums[1:]))
			return a.printer(cmd).result(strconv.FormatFloat(best.Unwrap(), 'g', -1, 64))
		},
	}
}

// --- join ------------------------------------------------------------------

func newJoinCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [words...]",
		Short: "join words with a separator",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := values(cmd, args)
			if err != nil {
				return err
			}
			list := folderer.DynFolderFrom(func(inner *[]string, w string) {
				*inner = append(*inner, w)
			})
			list.Append(words...)
			return a.printer(cmd).result(strings.Join(list.Unwrap(), a.v.GetString("sep")))
		},
	}
	cmd.Flags().String("sep", " ", "separator between words")
	return cmd
}

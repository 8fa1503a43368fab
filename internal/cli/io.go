package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// values returns the command line arguments or, if there are none, the
// whitespace separated words read from the command's input.
func values(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var words []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read values: %w", err)
	}
	tracer().Debugf("read %d values from input", len(words))
	return words, nil
}

// parseAll converts every word with parse, stopping at the first error.
func parseAll[T any](words []string, parse func(string) (T, error)) ([]T, error) {
	vals := make([]T, 0, len(words))
	for _, w := range words {
		v, err := parse(w)
		if err != nil {
			return nil, fmt.Errorf("illegal value %q: %w", w, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// printer writes results, colored if the output is a terminal.
type printer struct {
	out   io.Writer
	color *color.Color
}

func (a *app) printer(cmd *cobra.Command) *printer {
	p := &printer{out: cmd.OutOrStdout()}
	if !a.v.GetBool("no-color") && isTerminal(p.out) {
		p.color = color.New(color.FgGreen, color.Bold)
		p.color.EnableColor()
	}
	return p
}

func (p *printer) result(s string) error {
	if p.color != nil {
		_, err := p.color.Fprintln(p.out, s)
		return err
	}
	_, err := fmt.Fprintln(p.out, s)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numberwall/algebra"
	"github.com/katalvlaran/numberwall/number"
	"github.com/katalvlaran/numberwall/wall"
)

var errNoConstantRow = errors.New("wall has no constant last row; give more terms")

func (c *cli) buildCmd() *cobra.Command {
	var tsv bool
	cmd := &cobra.Command{
		Use:   "build [terms...]",
		Short: "Build and print the number wall of a sequence",
		Long: `Builds the number wall of the given terms and prints it with
right-aligned columns, or as tab separated values with --tsv. Entries that
cannot be computed are left blank.

Example:
  numberwall build 1,1,2,4,7,13,24,44`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseTerms(args)
			if err != nil {
				return err
			}
			w, err := c.buildWall(values(terms))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if tsv {
				return w.Table().WriteTSV(out)
			}

			return printWall(out, w)
		},
	}
	cmd.Flags().BoolVar(&tsv, "tsv", false, "Write the wall as tab separated values")

	return cmd
}

func (c *cli) characteristicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "characteristic [terms...]",
		Short: "Find the characteristic polynomial of a linear recurrence",
		Long: `Builds the wall of a_{k+1} - a_k·x over rational functions. When the
terms satisfy a linear recurrence with constant coefficients and enough of
them are given, the wall ends in a constant row holding the characteristic
polynomial (up to sign), printed with integer coefficients.

Example:
  numberwall characteristic 1,1,2,4,7,13,24,44,81,149,274,504`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseTerms(args)
			if err != nil {
				return err
			}
			p, err := c.characteristic(terms)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)

			return err
		},
	}
}

// buildWall builds the wall of seq with the CLI's logger and row cap.
func (c *cli) buildWall(seq []number.Value) (*wall.NumberWall, error) {
	w, err := wall.New(seq, wall.WithLogger(c.logger), wall.WithMaxRows(c.maxRows))
	if err != nil {
		return nil, err
	}
	if err = w.Build(); err != nil {
		return nil, err
	}

	return w, nil
}

// characteristic returns the integer characteristic polynomial read from
// the constant last row of the rational wall of terms.
func (c *cli) characteristic(terms []number.Fraction) (algebra.Polynomial, error) {
	seq := characteristicTerms(terms)
	if seq == nil {
		return algebra.Polynomial{}, fmt.Errorf("need at least 2 terms, got %d", len(terms))
	}
	w, err := c.buildWall(seq)
	if err != nil {
		return algebra.Polynomial{}, err
	}
	v, ok := w.ConstantElement()
	if !ok {
		return algebra.Polynomial{}, errNoConstantRow
	}
	num, _ := v.(algebra.Rational).ToInteger()

	return num, nil
}

// printWall writes the table followed by a summary line.
func printWall(out io.Writer, w *wall.NumberWall) error {
	if _, err := fmt.Fprintln(out, w.Table()); err != nil {
		return err
	}
	summary := fmt.Sprintf("rows: %d windows: %d", w.Rows(), len(w.Windows()))
	if v, ok := w.ConstantElement(); ok {
		summary += fmt.Sprintf(" constant: %v", v)
	}
	_, err := fmt.Fprintln(out, summary)

	return err
}

package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numberwall/algebra"
	"github.com/katalvlaran/numberwall/number"
	"github.com/katalvlaran/numberwall/transform"
)

func (c *cli) padeCmd() *cobra.Command {
	var num, den int
	cmd := &cobra.Command{
		Use:   "pade [taylor coefficients...]",
		Short: "Padé approximant of a truncated power series",
		Long: `Computes P/Q with deg P <= --num, deg Q <= --den and Q(0) = 1 from the
leading Taylor coefficients of a series. At least num+den+1 coefficients are
required.

Example:
  numberwall pade --num 2 --den 2 1,1,1/2,1/6,1/24`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseTerms(args)
			if err != nil {
				return err
			}
			taylor := make([]*big.Rat, len(terms))
			for i, t := range terms {
				taylor[i] = t.Rat()
			}
			p, q, err := algebra.Pade(taylor, num, den)
			if err != nil {
				return err
			}
			r, err := algebra.NewRational(p, q)
			if err != nil {
				return err
			}
			ip, iq := r.ToInteger()
			c.logger.Debug("pade approximant", zap.Int("num", num), zap.Int("den", den))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "P = %s\nQ = %s\nP/Q = (%s)/(%s)\n", p, q, ip, iq)

			return err
		},
	}
	cmd.Flags().IntVar(&num, "num", 1, "Numerator degree")
	cmd.Flags().IntVar(&den, "den", 1, "Denominator degree")

	return cmd
}

func (c *cli) differenceCmd() *cobra.Command {
	var extend int
	cmd := &cobra.Command{
		Use:   "difference [terms...]",
		Short: "Finite difference table and Newton interpolation",
		Long: `Prints the forward difference table of the terms, the Newton
polynomial through them, and with --extend n the next n terms it predicts.

Example:
  numberwall difference --extend 3 1,4,9,16,25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseTerms(args)
			if err != nil {
				return err
			}
			dt, err := transform.DifferenceTable(values(terms))
			if err != nil {
				return err
			}
			p, err := transform.NewtonPolynomial(dt.Col(0), algebra.NewMemo())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(out, "%s\n\nNewton polynomial: %s\n", dt, p); err != nil {
				return err
			}
			if extend <= 0 {
				return nil
			}
			next := make([]string, extend)
			for i := range next {
				next[i] = p.Eval(big.NewRat(int64(len(terms)+i), 1)).RatString()
			}
			_, err = fmt.Fprintf(out, "Continuation: %s\n", strings.Join(next, " "))

			return err
		},
	}
	cmd.Flags().IntVar(&extend, "extend", 0, "Number of further terms to predict")

	return cmd
}

func (c *cli) akiyamaCmd() *cobra.Command {
	var inverse bool
	cmd := &cobra.Command{
		Use:   "akiyama [terms...]",
		Short: "Akiyama-Tanigawa transform",
		Long: `Applies the Akiyama-Tanigawa transform (or its inverse with --inverse).
The transform of 1, 1/2, 1/3, ... is the sequence of Bernoulli numbers.

Example:
  numberwall akiyama 1,1/2,1/3,1/4,1/5,1/6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := parseTerms(args)
			if err != nil {
				return err
			}
			res := transform.AkiyamaTanigawa(terms)
			if inverse {
				res = transform.AkiyamaTanigawaInverse(terms)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinFractions(res))

			return err
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Apply the inverse transform")

	return cmd
}

func joinFractions(fs []number.Fraction) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}

	return strings.Join(parts, " ")
}

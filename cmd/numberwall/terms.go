package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/numberwall/algebra"
	"github.com/katalvlaran/numberwall/number"
)

var errNoTerms = errors.New("no terms given")

// parseTerms reads fraction literals from args, splitting on commas.
func parseTerms(args []string) ([]number.Fraction, error) {
	var out []number.Fraction
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}
			f, err := number.ParseFraction(s)
			if err != nil {
				return nil, fmt.Errorf("term %d: %w", len(out), err)
			}
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, errNoTerms
	}

	return out, nil
}

// values widens fractions to wall values.
func values(fs []number.Fraction) []number.Value {
	out := make([]number.Value, len(fs))
	for i, f := range fs {
		out[i] = f
	}

	return out
}

// characteristicTerms maps a_0, a_1, … to the rational functions
// a_{k+1} - a_k·x whose wall ends in the characteristic polynomial of the
// recurrence satisfied by a.
func characteristicTerms(fs []number.Fraction) []number.Value {
	if len(fs) < 2 {
		return nil
	}
	out := make([]number.Value, len(fs)-1)
	for k := range out {
		neg := fs[k].Rat()
		neg.Neg(neg)
		out[k] = algebra.RationalOf(algebra.NewPolynomial(fs[k+1].Rat(), neg))
	}

	return out
}

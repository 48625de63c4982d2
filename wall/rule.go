package wall

import (
	"fmt"

	"github.com/katalvlaran/numberwall/grid"
	"github.com/katalvlaran/numberwall/number"
)

// Kind enumerates the rules a wall cell can be computed with.
type Kind int

const (
	// ZeroRule fills the interior of a zero window.
	ZeroRule Kind = iota
	// CrossRule is the default five-cell cross.
	CrossRule
	// LongCrossRule bridges an isolated zero two rows above the target.
	LongCrossRule
	// HorseshoeInnerRule fills the bottom frame of a zero window from the
	// neighbour on the propagation side.
	HorseshoeInnerRule
	// HorseshoeOuterRule fills the line just below the bottom frame.
	HorseshoeOuterRule
	// UncomputableRule marks cells that cannot be derived; they stay Absent.
	UncomputableRule
)

var kindNames = [...]string{
	ZeroRule:           "zero",
	CrossRule:          "cross",
	LongCrossRule:      "long-cross",
	HorseshoeInnerRule: "horseshoe-inner",
	HorseshoeOuterRule: "horseshoe-outer",
	UncomputableRule:   "uncomputable",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Rule computes one cell. Horseshoe rules refer to their window by index
// into the wall's window registry.
type Rule struct {
	Kind Kind
	Cell grid.Cell

	// Window is the registry index for horseshoe rules, -1 otherwise.
	Window int
	// Forward selects right-to-left propagation for HorseshoeInnerRule.
	Forward bool
	// N is the bottom outer frame index for HorseshoeOuterRule.
	N int

	zero number.Value
	deps []grid.Cell
}

func newZeroRule(c grid.Cell, zero number.Value) Rule {
	return Rule{Kind: ZeroRule, Cell: c, Window: -1, zero: zero}
}

func newUncomputableRule(c grid.Cell) Rule {
	return Rule{Kind: UncomputableRule, Cell: c, Window: -1}
}

func newCrossRule(c grid.Cell) Rule {
	center := c.Next(grid.Up)

	return Rule{
		Kind:   CrossRule,
		Cell:   c,
		Window: -1,
		deps: []grid.Cell{
			center,
			center.Next(grid.Left),
			center.Next(grid.Right),
			center.Next(grid.Up),
		},
	}
}

func newLongCrossRule(c grid.Cell) Rule {
	center := c.Step(grid.Up, 2)

	return Rule{
		Kind:   LongCrossRule,
		Cell:   c,
		Window: -1,
		deps: []grid.Cell{
			center.Step(grid.Right, 2),
			center.Next(grid.Left),
			center.Step(grid.Left, 2),
			center.Next(grid.Right),
			center.Step(grid.Up, 2),
			center.Next(grid.Down),
			center.Next(grid.Up),
		},
	}
}

func newHorseshoeInnerRule(c grid.Cell, window int, forward bool) Rule {
	dep := c.Next(grid.Left)
	if forward {
		dep = c.Next(grid.Right)
	}

	return Rule{
		Kind:    HorseshoeInnerRule,
		Cell:    c,
		Window:  window,
		Forward: forward,
		deps:    []grid.Cell{dep},
	}
}

func newHorseshoeOuterRule(c grid.Cell, window int, w *ZeroWindow) (Rule, error) {
	n, err := w.Bottom.OuterIndex(c)
	if err != nil {
		return Rule{}, err
	}

	return Rule{
		Kind:   HorseshoeOuterRule,
		Cell:   c,
		Window: window,
		N:      n,
		deps: []grid.Cell{
			w.Top.at(n, Outer),
			w.Top.at(n, Inner),
			w.Left.at(n, Outer),
			w.Left.at(n, Inner),
			w.Right.at(n, Outer),
			w.Right.at(n, Inner),
			w.Bottom.at(n, Inner),
		},
	}, nil
}

// Dependencies returns the cells that must be known before Eval.
func (r Rule) Dependencies() []grid.Cell {
	out := make([]grid.Cell, len(r.deps))
	copy(out, r.deps)

	return out
}

// Eval computes the cell from t. Missing inputs, missing frame factors and
// division by zero all evaluate to number.Absent.
func (r Rule) Eval(t *grid.Table, windows []*ZeroWindow) number.Value {
	switch r.Kind {
	case ZeroRule:
		return r.zero
	case CrossRule:
		c, l, rt, u := t.At(r.deps[0]), t.At(r.deps[1]), t.At(r.deps[2]), t.At(r.deps[3])

		return c.Pow(2).Sub(l.Mul(rt)).Quo(u)
	case LongCrossRule:
		v := make([]number.Value, len(r.deps))
		for i, d := range r.deps {
			v[i] = t.At(d)
		}
		// r2·l² + l2·r² − u2·d², over u²
		num := v[0].Mul(v[1].Pow(2)).
			Add(v[2].Mul(v[3].Pow(2))).
			Sub(v[4].Mul(v[5].Pow(2)))

		return num.Quo(v[6].Pow(2))
	case HorseshoeInnerRule:
		w, ok := window(windows, r.Window)
		if !ok {
			return number.Absent
		}
		f := factorOrAbsent(w.Bottom.Factor)
		if r.Forward {
			return t.At(r.deps[0]).Mul(f)
		}

		return t.At(r.deps[0]).Quo(f)
	case HorseshoeOuterRule:
		w, ok := window(windows, r.Window)
		if !ok {
			return number.Absent
		}

		return r.evalOuter(t, w)
	default:
		return number.Absent
	}
}

// evalOuter applies the outer horseshoe identity at frame index N:
//
//	(T·left.f + s·L·top.f − s·R·bottom.f) · B / right.f
//
// with s = (-1)^N, T, L and R the outer/inner ratios on the top, left and
// right frames and B the bottom inner value.
func (r Rule) evalOuter(t *grid.Table, w *ZeroWindow) number.Value {
	ratio := func(outer, inner grid.Cell) number.Value {
		return t.At(outer).Quo(t.At(inner))
	}
	fTop := factorOrAbsent(w.Top.Factor)
	fLeft := factorOrAbsent(w.Left.Factor)
	fRight := factorOrAbsent(w.Right.Factor)
	fBottom := factorOrAbsent(w.Bottom.Factor)

	top := ratio(r.deps[0], r.deps[1]).Mul(fLeft)
	left := ratio(r.deps[2], r.deps[3]).Mul(fTop)
	right := ratio(r.deps[4], r.deps[5]).Mul(fBottom)
	if r.N%2 == 1 {
		left, right = left.Neg(), right.Neg()
	}

	return top.Add(left).Sub(right).Mul(t.At(r.deps[6])).Quo(fRight)
}

// window looks up a registry entry.
func window(windows []*ZeroWindow, i int) (*ZeroWindow, bool) {
	if i < 0 || i >= len(windows) {
		return nil, false
	}

	return windows[i], true
}

func (r Rule) String() string {
	switch r.Kind {
	case HorseshoeInnerRule:
		dir := "backward"
		if r.Forward {
			dir = "forward"
		}

		return fmt.Sprintf("%s%v[%s]", r.Kind, r.Cell, dir)
	case HorseshoeOuterRule:
		return fmt.Sprintf("%s%v[n=%d]", r.Kind, r.Cell, r.N)
	default:
		return fmt.Sprintf("%s%v", r.Kind, r.Cell)
	}
}

// Package scan walks ID ranges and accumulates sums of matching IDs.
// This is part of the Functional Core - no I/O, only pure functions.
package scan

import (
	"context"
	"math/big"

	"github.com/example/advent/internal/core/pattern"
	"github.com/example/advent/internal/core/ranges"
)

// Predicate classifies the canonical decimal digit string of an ID.
type Predicate func(digits string) bool

// cancelStride is how many IDs are visited between context checks.
// Scans over large ranges can run for a long time; checking on a stride
// keeps cancellation responsive without a per-ID branch cost.
const cancelStride = 1 << 12

// Totals is the displayable result of one full scan: the two rule sums
// plus the number of IDs visited. The sums are independent and are
// never combined or deduplicated.
type Totals struct {
	Double   *big.Int // sum of IDs that are exactly two repetitions
	Multiple *big.Int // sum of IDs that are two or more repetitions
	Scanned  uint64   // IDs visited across all ranges
}

// Sum visits every integer of every range in list, in list order and
// ascending within each range, and returns the sum of those whose
// decimal digits satisfy pred. Returns ctx.Err() if canceled mid-scan.
func Sum(ctx context.Context, list ranges.RangeList, pred Predicate) (*big.Int, error) {
	sum := new(big.Int)
	err := walk(ctx, list, func(n *big.Int, digits string) {
		if pred(digits) {
			sum.Add(sum, n)
		}
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// Run performs one fused pass over list, evaluating both repetition
// rules per ID. Equivalent to two independent Sum calls but visits each
// ID once.
func Run(ctx context.Context, list ranges.RangeList) (Totals, error) {
	totals := Totals{
		Double:   new(big.Int),
		Multiple: new(big.Int),
	}
	err := walk(ctx, list, func(n *big.Int, digits string) {
		totals.Scanned++
		if pattern.IsDoubleRepetition(digits) {
			totals.Double.Add(totals.Double, n)
		}
		if pattern.IsMultipleRepetition(digits) {
			totals.Multiple.Add(totals.Multiple, n)
		}
	})
	if err != nil {
		return Totals{}, err
	}
	return totals, nil
}

// walk visits every ID of every range exactly once. The *big.Int passed
// to visit is reused between calls; visit must not retain it.
func walk(ctx context.Context, list ranges.RangeList, visit func(n *big.Int, digits string)) error {
	one := big.NewInt(1)
	var visited uint64
	for _, r := range list {
		cur := r.Start()
		end := r.End()
		for cur.Cmp(end) <= 0 {
			if visited%cancelStride == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			visit(cur, cur.String())
			visited++
			cur.Add(cur, one)
		}
	}
	return nil
}

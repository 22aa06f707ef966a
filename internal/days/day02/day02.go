// Package day02 solves the invalid-ID detection puzzle: sum every ID in
// the input ranges whose decimal digits are a repeated substring.
package day02

import (
	"context"
	"math/big"

	"github.com/example/advent/internal/core/pattern"
	"github.com/example/advent/internal/core/ranges"
	"github.com/example/advent/internal/core/scan"
	"github.com/example/advent/internal/solver"
)

func init() {
	solver.Register(solver.Solver{
		Day:   2,
		Title: "Invalid IDs",
		Solve: solve,
	})
}

// Part1 sums the IDs that are exactly two repetitions of a substring.
func Part1(ctx context.Context, input string) (*big.Int, error) {
	list, err := ranges.Parse(input)
	if err != nil {
		return nil, err
	}
	return scan.Sum(ctx, list, pattern.IsDoubleRepetition)
}

// Part2 sums the IDs that are two or more repetitions of a substring.
func Part2(ctx context.Context, input string) (*big.Int, error) {
	list, err := ranges.Parse(input)
	if err != nil {
		return nil, err
	}
	return scan.Sum(ctx, list, pattern.IsMultipleRepetition)
}

// solve runs one fused pass so each ID is visited once for both rules.
func solve(ctx context.Context, input string) (solver.Answers, error) {
	list, err := ranges.Parse(input)
	if err != nil {
		return solver.Answers{}, err
	}
	totals, err := scan.Run(ctx, list)
	if err != nil {
		return solver.Answers{}, err
	}
	return solver.Answers{
		Part1:   totals.Double.String(),
		Part2:   totals.Multiple.String(),
		Scanned: totals.Scanned,
	}, nil
}

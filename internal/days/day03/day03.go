// Package day03 solves the battery bank puzzle: from each line of digit
// ratings, pick digits in order to form the largest possible number.
package day03

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/example/advent/internal/solver"
)

func init() {
	solver.Register(solver.Solver{
		Day:   3,
		Title: "Battery Banks",
		Solve: solve,
	})
}

// Part1 sums, per line, the largest 2-digit number formed by picking
// two ratings in their original order.
func Part1(input string) (int, error) {
	total := 0
	for i, line := range lines(input) {
		picked, err := pickLargest(line, 2)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		n, _ := strconv.Atoi(picked)
		total += n
	}
	return total, nil
}

// Part2 sums, per line, the largest 12-digit number formed the same way.
// The per-line values are large enough that the total uses big.Int.
func Part2(input string) (*big.Int, error) {
	total := new(big.Int)
	for i, line := range lines(input) {
		picked, err := pickLargest(line, 12)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		n, _ := new(big.Int).SetString(picked, 10)
		total.Add(total, n)
	}
	return total, nil
}

// pickLargest returns the lexicographically largest subsequence of k
// digits, greedily taking the biggest digit that still leaves enough
// digits to fill the remaining positions.
func pickLargest(line string, k int) (string, error) {
	if len(line) < k {
		return "", fmt.Errorf("need at least %d ratings, got %d", k, len(line))
	}
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return "", fmt.Errorf("invalid rating %q", line[i])
		}
	}

	picked := make([]byte, 0, k)
	start := 0
	for pos := 0; pos < k; pos++ {
		// Leave room for the digits still to be picked.
		window := line[start : len(line)-(k-pos-1)]
		best := 0
		for i := 1; i < len(window); i++ {
			if window[i] > window[best] {
				best = i
			}
		}
		picked = append(picked, window[best])
		start += best + 1
	}
	return string(picked), nil
}

func lines(input string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func solve(ctx context.Context, input string) (solver.Answers, error) {
	part1, err := Part1(input)
	if err != nil {
		return solver.Answers{}, err
	}
	part2, err := Part2(input)
	if err != nil {
		return solver.Answers{}, err
	}
	return solver.Answers{
		Part1: strconv.Itoa(part1),
		Part2: part2.String(),
	}, nil
}

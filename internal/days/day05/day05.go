// Package day05 solves the fresh ingredient puzzle: the input lists
// freshness ranges, a blank line, then ingredient IDs to check.
package day05

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/example/advent/internal/core/ranges"
	"github.com/example/advent/internal/solver"
)

func init() {
	solver.Register(solver.Solver{
		Day:   5,
		Title: "Fresh Ranges",
		Solve: solve,
	})
}

// Part1 counts the IDs covered by at least one freshness range.
func Part1(input string) (int, error) {
	list, ids, err := parseInput(input)
	if err != nil {
		return 0, err
	}

	fresh := 0
	for _, id := range ids {
		for _, r := range list {
			if r.Contains(id) {
				fresh++
				break
			}
		}
	}
	return fresh, nil
}

// Part2 returns the total count of integers covered by the union of the
// freshness ranges. Ranges are swept in sorted order so overlapping
// stretches are counted once.
func Part2(input string) (*big.Int, error) {
	list, _, err := parseInput(input)
	if err != nil {
		return nil, err
	}

	sorted := make(ranges.RangeList, len(list))
	copy(sorted, list)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start().Cmp(sorted[j].Start()) < 0
	})

	total := new(big.Int)
	var highest *big.Int
	for _, r := range sorted {
		start, end := r.Start(), r.End()
		switch {
		case highest == nil || start.Cmp(highest) > 0:
			// Disjoint from everything seen so far: count the full range.
			total.Add(total, r.Count())
		case end.Cmp(highest) > 0:
			// Overlaps the covered stretch: count only the new part.
			total.Add(total, new(big.Int).Sub(end, highest))
		}
		if highest == nil || end.Cmp(highest) > 0 {
			highest = end
		}
	}
	return total, nil
}

// parseInput splits the input at the first blank line into freshness
// ranges and ingredient IDs. The ID section may be empty.
func parseInput(input string) (ranges.RangeList, []*big.Int, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")

	var rangeLines []string
	var ids []*big.Int
	inIDs := false
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			inIDs = true
			continue
		}
		if !inIDs {
			rangeLines = append(rangeLines, line)
			continue
		}
		id, ok := new(big.Int).SetString(line, 10)
		if !ok || id.Sign() < 0 {
			return nil, nil, fmt.Errorf("line %d: invalid ingredient ID %q", i+1, line)
		}
		ids = append(ids, id)
	}

	// Joining the lines with commas keeps the parse errors' 1-based
	// positions aligned with the range line numbers.
	list, err := ranges.Parse(strings.Join(rangeLines, ","))
	if err != nil {
		return nil, nil, err
	}
	return list, ids, nil
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

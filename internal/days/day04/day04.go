// Package day04 solves the paper roll puzzle: rolls sit in a grid and a
// forklift can reach any roll with fewer than 4 adjacent rolls.
package day04

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/advent/internal/solver"
)

const (
	roll  = '@'
	empty = '.'
)

// accessThreshold is the neighbor count at which a roll becomes blocked.
const accessThreshold = 4

func init() {
	solver.Register(solver.Solver{
		Day:   4,
		Title: "Paper Rolls",
		Solve: solve,
	})
}

var neighbors = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Part1 counts the rolls a forklift can access in the starting grid.
func Part1(input string) (int, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return 0, err
	}
	return len(accessible(grid)), nil
}

// Part2 repeatedly removes every accessible roll until none remain and
// returns the total number removed.
func Part2(input string) (int, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return 0, err
	}

	removed := 0
	for {
		reachable := accessible(grid)
		if len(reachable) == 0 {
			return removed, nil
		}
		for _, cell := range reachable {
			grid[cell[0]][cell[1]] = empty
		}
		removed += len(reachable)
	}
}

// accessible returns the coordinates of rolls with fewer than
// accessThreshold adjacent rolls.
func accessible(grid [][]byte) [][2]int {
	var cells [][2]int
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] != roll {
				continue
			}
			if adjacentRolls(grid, i, j) < accessThreshold {
				cells = append(cells, [2]int{i, j})
			}
		}
	}
	return cells
}

func adjacentRolls(grid [][]byte, i, j int) int {
	count := 0
	for _, d := range neighbors {
		ni, nj := i+d[0], j+d[1]
		if ni < 0 || ni >= len(grid) || nj < 0 || nj >= len(grid[ni]) {
			continue
		}
		if grid[ni][nj] == roll {
			count++
		}
	}
	return count
}

func parseGrid(input string) ([][]byte, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	grid := make([][]byte, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, " \r")
		if line == "" {
			return nil, fmt.Errorf("line %d: empty grid row", i+1)
		}
		for j := 0; j < len(line); j++ {
			if line[j] != roll && line[j] != empty {
				return nil, fmt.Errorf("line %d: unexpected cell %q at column %d", i+1, line[j], j+1)
			}
		}
		grid = append(grid, []byte(line))
	}
	return grid, nil
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
		Part2: strconv.Itoa(part2),
	}, nil
}

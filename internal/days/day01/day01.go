// Package day01 solves the circular dial puzzle: a 100-position dial
// starts at 50 and follows L/R rotation instructions.
package day01

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/advent/internal/solver"
)

const (
	totalPositions  = 100
	initialPosition = 50
)

func init() {
	solver.Register(solver.Solver{
		Day:   1,
		Title: "Circular Dial",
		Solve: solve,
	})
}

type rotation struct {
	left   bool
	clicks int
}

// Part1 counts the instructions that leave the dial exactly on 0.
func Part1(input string) (int, error) {
	rotations, err := parseRotations(input)
	if err != nil {
		return 0, err
	}

	pos := initialPosition
	landings := 0
	for _, rot := range rotations {
		pos = rot.apply(pos)
		if pos == 0 {
			landings++
		}
	}
	return landings, nil
}

// Part2 counts every click that moves the dial through position 0,
// including clicks in the middle of a rotation.
func Part2(input string) (int, error) {
	rotations, err := parseRotations(input)
	if err != nil {
		return 0, err
	}

	pos := initialPosition
	crossings := 0
	for _, rot := range rotations {
		crossings += rot.zeroCrossings(pos)
		pos = rot.apply(pos)
	}
	return crossings, nil
}

// apply returns the dial position after the full rotation.
func (r rotation) apply(pos int) int {
	if r.left {
		return ((pos-r.clicks)%totalPositions + totalPositions) % totalPositions
	}
	return (pos + r.clicks) % totalPositions
}

// zeroCrossings counts the clicks within the rotation that land on 0.
func (r rotation) zeroCrossings(pos int) int {
	count := 0
	for step := 1; step <= r.clicks; step++ {
		var at int
		if r.left {
			at = ((pos-step)%totalPositions + totalPositions) % totalPositions
		} else {
			at = (pos + step) % totalPositions
		}
		if at == 0 {
			count++
		}
	}
	return count
}

func parseRotations(input string) ([]rotation, error) {
	var rotations []rotation
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < 2 || (line[0] != 'L' && line[0] != 'R') {
			return nil, fmt.Errorf("line %d: expected L<clicks> or R<clicks>, got %q", i+1, line)
		}
		clicks, err := strconv.Atoi(line[1:])
		if err != nil || clicks < 0 {
			return nil, fmt.Errorf("line %d: invalid click count in %q", i+1, line)
		}
		rotations = append(rotations, rotation{left: line[0] == 'L', clicks: clicks})
	}
	return rotations, nil
}

func solve(ctx context.Context, input string) (solver.Answers, error) {
	landings, err := Part1(input)
	if err != nil {
		return solver.Answers{}, err
	}
	crossings, err := Part2(input)
	if err != nil {
		return solver.Answers{}, err
	}
	return solver.Answers{
		Part1: strconv.Itoa(landings),
		Part2: strconv.Itoa(crossings),
	}, nil
}

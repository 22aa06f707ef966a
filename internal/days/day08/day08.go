// Package day08 solves the junction circuit puzzle: 3D junction boxes
// are wired together closest-pair-first, forming circuits.
package day08

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/example/advent/internal/solver"
)

// defaultLimit caps how many pairs part 1 connects. The 20-position
// sample input uses a smaller cap, matching the puzzle statement.
const (
	defaultLimit    = 1000
	sampleSize      = 20
	sampleLimit     = 10
	coordsPerLine   = 3
	topCircuitCount = 3
)

func init() {
	solver.Register(solver.Solver{
		Day:   8,
		Title: "Junction Circuits",
		Solve: solve,
	})
}

type position struct {
	x, y, z int
}

type pair struct {
	a, b int // indices into the position list
	dist int // squared Euclidean distance
}

// Part1 connects the closest pairs up to the connection limit and
// returns the product of the three largest circuit sizes.
func Part1(input string) (int, error) {
	positions, err := parsePositions(input)
	if err != nil {
		return 0, err
	}

	pairs := sortedPairs(positions)
	limit := connectionLimit(len(positions))
	if limit > len(pairs) {
		limit = len(pairs)
	}

	uf := newUnionFind(len(positions))
	for _, p := range pairs[:limit] {
		uf.union(p.a, p.b)
	}

	product := 1
	for _, size := range uf.topSizes(topCircuitCount) {
		product *= size
	}
	return product, nil
}

// Part2 keeps connecting pairs in distance order until every junction
// is in one circuit, then returns the product of the x coordinates of
// the pair that completed it.
func Part2(input string) (int, error) {
	positions, err := parsePositions(input)
	if err != nil {
		return 0, err
	}
	if len(positions) < 2 {
		return 0, fmt.Errorf("need at least 2 positions, got %d", len(positions))
	}

	uf := newUnionFind(len(positions))
	for _, p := range sortedPairs(positions) {
		uf.union(p.a, p.b)
		if uf.components == 1 {
			return positions[p.a].x * positions[p.b].x, nil
		}
	}
	return 0, fmt.Errorf("ran out of pairs with %d circuits remaining", uf.components)
}

// sortedPairs generates every index pair ordered by squared distance.
// The sort is stable so equidistant pairs keep their generation order.
func sortedPairs(positions []position) []pair {
	pairs := make([]pair, 0, len(positions)*(len(positions)-1)/2)
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			pairs = append(pairs, pair{a: i, b: j, dist: distance(positions[i], positions[j])})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })
	return pairs
}

func distance(a, b position) int {
	dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z
	return dx*dx + dy*dy + dz*dz
}

func connectionLimit(n int) int {
	if n == sampleSize {
		return sampleLimit
	}
	return defaultLimit
}

func parsePositions(input string) ([]position, error) {
	var positions []position
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != coordsPerLine {
			return nil, fmt.Errorf("line %d: expected x,y,z, got %q", i+1, line)
		}
		coords := make([]int, coordsPerLine)
		for c, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q", i+1, part)
			}
			coords[c] = n
		}
		positions = append(positions, position{x: coords[0], y: coords[1], z: coords[2]})
	}
	return positions, nil
}

// unionFind tracks circuit membership with path compression and
// union by size.
type unionFind struct {
	parent     []int
	size       []int
	components int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.components--
}

// topSizes returns the sizes of the largest circuits, biggest first,
// at most n of them.
func (uf *unionFind) topSizes(n int) []int {
	var sizes []int
	for i, p := range uf.parent {
		if p == i {
			sizes = append(sizes, uf.size[i])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) > n {
		sizes = sizes[:n]
	}
	return sizes
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

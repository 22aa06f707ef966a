// Package solver is the registry of day solvers. Day packages register
// themselves in init(); the CLI looks solvers up by day number.
package solver

import (
	"context"
	"fmt"
	"sort"
)

// Answers holds the displayable results for one puzzle day. Scanned is
// optional extra diagnostics: the number of candidates a solver visited
// (zero when a solver does not track it).
type Answers struct {
	Part1   string
	Part2   string
	Scanned uint64
}

// Solver solves one puzzle day from its raw input text.
type Solver struct {
	Day   int
	Title string
	Solve func(ctx context.Context, input string) (Answers, error)
}

// Registry maps day numbers to solvers.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byDay: make(map[int]Solver)}
}

// Register adds a solver. Panics on a duplicate day: two packages
// claiming the same day is a programming error, not a runtime condition.
func (r *Registry) Register(s Solver) {
	if _, ok := r.byDay[s.Day]; ok {
		panic(fmt.Sprintf("duplicate solver registered for day %d", s.Day))
	}
	r.byDay[s.Day] = s
}

// Lookup returns the solver for a day, if registered.
func (r *Registry) Lookup(day int) (Solver, bool) {
	s, ok := r.byDay[day]
	return s, ok
}

// All returns every registered solver sorted by day number.
func (r *Registry) All() []Solver {
	solvers := make([]Solver, 0, len(r.byDay))
	for _, s := range r.byDay {
		solvers = append(solvers, s)
	}
	sort.Slice(solvers, func(i, j int) bool { return solvers[i].Day < solvers[j].Day })
	return solvers
}

// Default is the registry day packages register into.
var Default = NewRegistry()

// Register adds a solver to the default registry.
func Register(s Solver) { Default.Register(s) }

// Lookup finds a solver in the default registry.
func Lookup(day int) (Solver, bool) { return Default.Lookup(day) }

// All lists the default registry sorted by day.
func All() []Solver { return Default.All() }

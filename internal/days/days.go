// Package days pulls in every implemented puzzle day so each solver
// registers itself with the default registry.
package days

import (
	_ "github.com/example/advent/internal/days/day01"
	_ "github.com/example/advent/internal/days/day02"
	_ "github.com/example/advent/internal/days/day03"
	_ "github.com/example/advent/internal/days/day04"
	_ "github.com/example/advent/internal/days/day05"
	_ "github.com/example/advent/internal/days/day08"
)

// Package scaffold generates boilerplate for a new puzzle day.
package scaffold

import (
	"bytes"
	"fmt"
	"text/template"
)

// DaySpec describes the day package to generate.
type DaySpec struct {
	Day   int
	Title string // display title, e.g. "Fresh Ranges"
}

// GeneratedFile is one file the generator wants to create.
type GeneratedFile struct {
	Path    string
	Content string
}

// BuildDaySpec validates the inputs and builds a DaySpec.
func BuildDaySpec(day int, title string) (*DaySpec, error) {
	if day < 1 || day > 25 {
		return nil, fmt.Errorf("day must be between 1 and 25, got %d", day)
	}
	if title == "" {
		title = fmt.Sprintf("Day %d", day)
	}
	return &DaySpec{Day: day, Title: title}, nil
}

// GenerateDay renders the solver package, its test file, and an empty
// input placeholder for the given day.
func GenerateDay(spec *DaySpec, inputDir string) ([]GeneratedFile, error) {
	pkg := fmt.Sprintf("day%02d", spec.Day)

	files := []struct {
		template string
		path     string
	}{
		{dayTemplate, fmt.Sprintf("internal/days/%s/%s.go", pkg, pkg)},
		{testTemplate, fmt.Sprintf("internal/days/%s/%s_test.go", pkg, pkg)},
	}

	data := struct {
		*DaySpec
		Package string
	}{DaySpec: spec, Package: pkg}

	var out []GeneratedFile
	for _, f := range files {
		tmpl, err := template.New(f.path).Parse(f.template)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template for %s: %w", f.path, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", f.path, err)
		}
		out = append(out, GeneratedFile{Path: f.path, Content: buf.String()})
	}

	out = append(out, GeneratedFile{
		Path:    fmt.Sprintf("%s/%s.txt", inputDir, pkg),
		Content: "",
	})
	return out, nil
}

// RegistrationImport is the import line the new package needs in
// internal/days/days.go; the generator does not edit that file itself.
func RegistrationImport(spec *DaySpec) string {
	return fmt.Sprintf("_ \"github.com/example/advent/internal/days/day%02d\"", spec.Day)
}

const dayTemplate = `// Package {{.Package}} solves the {{.Title}} puzzle.
package {{.Package}}

import (
	"context"
	"errors"

	"github.com/example/advent/internal/solver"
)

func init() {
	solver.Register(solver.Solver{
		Day:   {{.Day}},
		Title: "{{.Title}}",
		Solve: solve,
	})
}

// Part1 solves the first half of the puzzle.
func Part1(input string) (int, error) {
	return 0, errors.New("not implemented")
}

// Part2 solves the second half of the puzzle.
func Part2(input string) (int, error) {
	return 0, errors.New("not implemented")
}

func solve(ctx context.Context, input string) (solver.Answers, error) {
	return solver.Answers{}, errors.New("not implemented")
}
`

const testTemplate = `package {{.Package}}

import "testing"

func TestPart1(t *testing.T) {
	t.Skip("puzzle not implemented yet")
}

func TestPart2(t *testing.T) {
	t.Skip("puzzle not implemented yet")
}
`

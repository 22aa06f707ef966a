package day02

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/example/advent/internal/core/ranges"
)

func TestPart1(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{
			name:  "worked example with no matches",
			input: "1-10,20-25",
			want:  0,
		},
		{
			name:  "all two-digit doubles",
			input: "11-99",
			want:  495,
		},
		{
			name:  "empty input",
			input: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Part1(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Part1(%q) failed: %v", tt.input, err)
			}
			if got.Cmp(big.NewInt(tt.want)) != 0 {
				t.Errorf("Part1(%q) = %s, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(context.Background(), "1-130")
	if err != nil {
		t.Fatalf("Part2 failed: %v", err)
	}
	// 11+22+...+99 plus 111.
	if got.Cmp(big.NewInt(606)) != 0 {
		t.Errorf("Part2(\"1-130\") = %s, want 606", got)
	}
}

func TestSolveFusedPass(t *testing.T) {
	answers, err := solve(context.Background(), "11-99,100-130")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if answers.Part1 != "495" {
		t.Errorf("Part1 = %s, want 495", answers.Part1)
	}
	if answers.Part2 != "606" {
		t.Errorf("Part2 = %s, want 606", answers.Part2)
	}
	if answers.Scanned != 89+31 {
		t.Errorf("Scanned = %d, want %d", answers.Scanned, 89+31)
	}
}

func TestParseErrorsSurface(t *testing.T) {
	ctx := context.Background()

	var malformed *ranges.MalformedInputError
	if _, err := Part1(ctx, "5-x"); !errors.As(err, &malformed) {
		t.Errorf("Part1(\"5-x\") error = %v, want MalformedInputError", err)
	}

	var invalid *ranges.InvalidRangeError
	if _, err := Part2(ctx, "5-3"); !errors.As(err, &invalid) {
		t.Errorf("Part2(\"5-3\") error = %v, want InvalidRangeError", err)
	}
}

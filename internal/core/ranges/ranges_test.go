package ranges

import (
	"errors"
	"math/big"
	"testing"
)

func mustRange(t *testing.T, start, end int64) Range {
	t.Helper()
	r, err := NewRange(big.NewInt(start), big.NewInt(end))
	if err != nil {
		t.Fatalf("NewRange(%d, %d) failed: %v", start, end, err)
	}
	return r
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][2]int64
	}{
		{
			name:  "single range",
			input: "1-10",
			want:  [][2]int64{{1, 10}},
		},
		{
			name:  "multiple ranges",
			input: "1-10,20-25",
			want:  [][2]int64{{1, 10}, {20, 25}},
		},
		{
			name:  "surrounding whitespace",
			input: "  1-10, 20-25 \n",
			want:  [][2]int64{{1, 10}, {20, 25}},
		},
		{
			name:  "single integer range",
			input: "55-55",
			want:  [][2]int64{{55, 55}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace-only input",
			input: "  \n\t ",
			want:  nil,
		},
		{
			name:  "overlapping ranges are kept",
			input: "1-10,5-15",
			want:  [][2]int64{{1, 10}, {5, 15}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) returned %d ranges, want %d", tt.input, len(got), len(tt.want))
			}
			for i, pair := range tt.want {
				want := mustRange(t, pair[0], pair[1])
				if !got[i].Equal(want) {
					t.Errorf("range %d = %s, want %s", i, got[i], want)
				}
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSegment string
		wantPos     int
	}{
		{
			name:        "non-numeric end",
			input:       "5-x",
			wantSegment: "5-x",
			wantPos:     1,
		},
		{
			name:        "missing separator",
			input:       "1-10,20",
			wantSegment: "20",
			wantPos:     2,
		},
		{
			name:        "extra separator",
			input:       "1-2-3",
			wantSegment: "1-2-3",
			wantPos:     1,
		},
		{
			name:        "empty segment",
			input:       "1-10,,20-25",
			wantSegment: "",
			wantPos:     2,
		},
		{
			name:        "signed integer",
			input:       "+1-10",
			wantSegment: "+1-10",
			wantPos:     1,
		},
		{
			name:        "decimal point",
			input:       "1.5-10",
			wantSegment: "1.5-10",
			wantPos:     1,
		},
		{
			name:        "inner whitespace",
			input:       "1 0-20",
			wantSegment: "1 0-20",
			wantPos:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var malformed *MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("Parse(%q) error = %v, want MalformedInputError", tt.input, err)
			}
			if malformed.Segment != tt.wantSegment {
				t.Errorf("segment = %q, want %q", malformed.Segment, tt.wantSegment)
			}
			if malformed.Position != tt.wantPos {
				t.Errorf("position = %d, want %d", malformed.Position, tt.wantPos)
			}
		})
	}
}

func TestParseInvalidRange(t *testing.T) {
	_, err := Parse("1-10,5-3")
	var invalid *InvalidRangeError
	if !errors.As(err, &invalid) {
		t.Fatalf("Parse error = %v, want InvalidRangeError", err)
	}
	if invalid.Start.Cmp(big.NewInt(5)) != 0 || invalid.End.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("bounds = %s-%s, want 5-3", invalid.Start, invalid.End)
	}
	if invalid.Position != 2 {
		t.Errorf("position = %d, want 2", invalid.Position)
	}
}

func TestParseFailFast(t *testing.T) {
	// A bad segment must invalidate the whole input, not just its tail.
	list, err := Parse("1-10,bogus,20-25")
	if err == nil {
		t.Fatal("expected error for malformed middle segment")
	}
	if list != nil {
		t.Errorf("expected no partial result, got %v", list)
	}
}

func TestParseLargeBounds(t *testing.T) {
	input := "123456789012345678901234567890-123456789012345678901234567899"
	list, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d ranges, want 1", len(list))
	}
	if got := list[0].Count(); got.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("Count() = %s, want 10", got)
	}
}

func TestParseIdempotent(t *testing.T) {
	input := "1-10,57-89,998-1030"
	first, err := Parse(input)
	if err != nil {
		t.Fatalf("first Parse failed: %v", err)
	}
	second, err := Parse(input)
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("parsing the same text twice gave unequal lists: %v vs %v", first, second)
	}
}

func TestNewRangeRejectsNegative(t *testing.T) {
	if _, err := NewRange(big.NewInt(-1), big.NewInt(5)); err == nil {
		t.Error("expected error for negative start")
	}
	if _, err := NewRange(big.NewInt(0), big.NewInt(-5)); err == nil {
		t.Error("expected error for negative end")
	}
}

func TestRangeContains(t *testing.T) {
	r := mustRange(t, 10, 20)
	tests := []struct {
		n    int64
		want bool
	}{
		{9, false},
		{10, true},
		{15, true},
		{20, true},
		{21, false},
	}
	for _, tt := range tests {
		if got := r.Contains(big.NewInt(tt.n)); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestRangeImmutable(t *testing.T) {
	start := big.NewInt(3)
	end := big.NewInt(7)
	r, err := NewRange(start, end)
	if err != nil {
		t.Fatalf("NewRange failed: %v", err)
	}

	// Mutating the inputs or the accessors must not affect the range.
	start.SetInt64(99)
	r.Start().SetInt64(42)
	if got := r.Start(); got.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Start() = %s after caller mutation, want 3", got)
	}
}

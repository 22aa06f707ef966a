// Package ranges contains the pure parsing logic for ID range input.
// This is part of the Functional Core - no I/O, only pure functions.
package ranges

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Range is an inclusive integer interval [start, end] with start <= end.
// Bounds are arbitrary-precision so inputs with very large IDs parse
// without overflow. A Range is immutable once constructed.
type Range struct {
	start *big.Int
	end   *big.Int
}

// RangeList is an ordered sequence of ranges, preserving input order.
// Overlapping ranges are kept as-is: no merging or deduplication.
type RangeList []Range

// MalformedInputError reports a segment that is not of the form
// <non-negative-integer>-<non-negative-integer>.
type MalformedInputError struct {
	Segment  string // offending segment text, as it appeared in the input
	Position int    // 1-based position of the segment in the input
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed range segment %q at position %d: expected start-end with non-negative integers", e.Segment, e.Position)
}

// InvalidRangeError reports a pair that parsed as integers but does not
// form a valid range. Start and end are never silently swapped.
type InvalidRangeError struct {
	Start    *big.Int
	End      *big.Int
	Position int // 1-based segment position, 0 when the Range was built directly
}

func (e *InvalidRangeError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("invalid range %s-%s at position %d: start is greater than end", e.Start, e.End, e.Position)
	}
	return fmt.Sprintf("invalid range %s-%s: start is greater than end", e.Start, e.End)
}

// NewRange constructs a Range, rejecting negative bounds and start > end.
// The bounds are copied; the caller keeps ownership of its big.Ints.
func NewRange(start, end *big.Int) (Range, error) {
	if start.Sign() < 0 || end.Sign() < 0 {
		return Range{}, fmt.Errorf("range bounds must be non-negative, got %s-%s", start, end)
	}
	if start.Cmp(end) > 0 {
		return Range{}, &InvalidRangeError{
			Start: new(big.Int).Set(start),
			End:   new(big.Int).Set(end),
		}
	}
	return Range{
		start: new(big.Int).Set(start),
		end:   new(big.Int).Set(end),
	}, nil
}

// Start returns a copy of the lower bound.
func (r Range) Start() *big.Int { return new(big.Int).Set(r.start) }

// End returns a copy of the upper bound.
func (r Range) End() *big.Int { return new(big.Int).Set(r.end) }

// Contains reports whether n lies within [start, end].
func (r Range) Contains(n *big.Int) bool {
	return r.start.Cmp(n) <= 0 && n.Cmp(r.end) <= 0
}

// Count returns the number of integers in the range (end - start + 1).
func (r Range) Count() *big.Int {
	n := new(big.Int).Sub(r.end, r.start)
	return n.Add(n, big.NewInt(1))
}

// Equal reports value equality of two ranges.
func (r Range) Equal(other Range) bool {
	return r.start.Cmp(other.start) == 0 && r.end.Cmp(other.end) == 0
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.start, r.end)
}

// Equal reports value equality of two range lists, element by element.
func (l RangeList) Equal(other RangeList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Parse converts raw comma-separated "start-end" text into a RangeList.
// Whitespace around the whole input and around each segment is ignored.
// Empty input yields an empty list. The first bad segment aborts the
// whole parse with a *MalformedInputError or *InvalidRangeError naming
// the segment and its 1-based position; no partial result is returned.
func Parse(text string) (RangeList, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	segments := strings.Split(trimmed, ",")
	list := make(RangeList, 0, len(segments))
	for i, segment := range segments {
		pos := i + 1
		startText, endText, ok := splitSegment(strings.TrimSpace(segment))
		if !ok {
			return nil, &MalformedInputError{Segment: segment, Position: pos}
		}

		// The digit-only grammar guarantees SetString succeeds.
		start, _ := new(big.Int).SetString(startText, 10)
		end, _ := new(big.Int).SetString(endText, 10)

		r, err := NewRange(start, end)
		if err != nil {
			var rangeErr *InvalidRangeError
			if errors.As(err, &rangeErr) {
				rangeErr.Position = pos
			}
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

// splitSegment splits "start-end" into its two halves and validates that
// both are non-empty strings of ASCII digits. No sign, no decimal point,
// no surrounding garbage.
func splitSegment(segment string) (start, end string, ok bool) {
	start, end, found := strings.Cut(segment, "-")
	if !found || !isDigits(start) || !isDigits(end) {
		return "", "", false
	}
	return start, end, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

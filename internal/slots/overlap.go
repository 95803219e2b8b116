package slots

import "fmt"

type span struct {
	start, end int
}

func parseSpan(start, end string) (span, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return span{}, err
	}

	e, err := ToMinutes(end)
	if err != nil {
		return span{}, err
	}

	if s == e {
		return span{}, fmt.Errorf("%w: %s-%s is empty", ErrInvalidRange, start, end)
	}

	return span{start: s, end: NormalizeEnd(s, e)}, nil
}

func (a span) intersects(b span) bool {
	return a.start < b.end && b.start < a.end
}

// Overlaps reports whether the half-open ranges [startA, endA) and
// [startB, endB) share an instant. Touching ranges do not overlap.
//
// A range ending before it starts wraps past midnight, and its tail also
// occupies the early hours of the same day, so B is compared one day
// earlier and later as well.
func Overlaps(startA, endA, startB, endB string) (bool, error) {
	a, err := parseSpan(startA, endA)
	if err != nil {
		return false, err
	}

	b, err := parseSpan(startB, endB)
	if err != nil {
		return false, err
	}

	for _, shift := range []int{0, MinutesPerDay, -MinutesPerDay} {
		if a.intersects(span{start: b.start + shift, end: b.end + shift}) {
			return true, nil
		}
	}

	return false, nil
}

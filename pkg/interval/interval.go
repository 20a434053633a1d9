package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned when a caller supplies a pair with
// from >= to.
var ErrInvalidRange = errors.New("invalid range: from must be < to")

// Interval is a closed range [From, To] of integers with From < To.
// Endpoints may be negative or zero.
type Interval struct {
	From int
	To   int
}

func New(from, to int) (Interval, error) {
	if from >= to {
		return Interval{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, from, to)
	}
	return Interval{From: from, To: to}, nil
}

// Make builds an interval from a pre-validated pair.
func Make(from, to int) Interval {
	return Interval{From: from, To: to}
}

func ParseInterval(s string) (Interval, error) {
	h := -1
	if len(s) > 1 {
		// a hyphen at index 0 is the sign of a negative From, not the
		// separator, so the scan starts at index 1
		h = strings.IndexByte(s[1:], '-')
	}
	if h == -1 {
		return Interval{}, fmt.Errorf("no hyphen in interval %q", s)
	}
	h++
	from, to := s[:h], s[h+1:]
	fromInt, err := strconv.Atoi(from)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid from %q in interval %q", from, s)
	}
	toInt, err := strconv.Atoi(to)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid to %q in interval %q", to, s)
	}
	return New(fromInt, toInt)
}

func (r Interval) String() string {
	return fmt.Sprintf("[%d, %d]", r.From, r.To)
}

func (r Interval) IsValid() bool {
	return r.From < r.To
}

func (r Interval) IsZero() bool {
	return r == Interval{}
}

func (r Interval) Less(other Interval) bool {
	if r.From != other.From {
		return r.From < other.From
	}
	return other.To < r.To
}

// Contains returns whether p falls inside r, endpoints included.
func (r Interval) Contains(p int) bool {
	return p >= r.From && p <= r.To
}

// Overlaps returns whether r and other share more than a single
// endpoint.
func (r Interval) Overlaps(other Interval) bool {
	return r.From < other.To && other.From < r.To
}

// Touches returns whether r and other share exactly one endpoint
// without overlapping.
func (r Interval) Touches(other Interval) bool {
	return r.To == other.From || other.To == r.From
}

// Mergeable returns whether r and other overlap or touch, i.e. whether
// their union is a single interval.
func (r Interval) Mergeable(other Interval) bool {
	return r.From <= other.To && other.From <= r.To
}

// Merge returns the single interval spanning r and other. The result
// is only meaningful when r and other are mergeable.
func (r Interval) Merge(other Interval) Interval {
	return Interval{From: min(r.From, other.From), To: max(r.To, other.To)}
}

// EntirelyBefore returns whether r lies entirely before other, not
// even touching it.
func (r Interval) EntirelyBefore(other Interval) bool {
	return r.To < other.From
}

// CoveredBy returns whether r is entirely contained within other.
func (r Interval) CoveredBy(other Interval) bool {
	return other.From <= r.From && r.To <= other.To
}

// InMiddleOf returns whether r is inside other, but not touching the
// edges of other.
func (r Interval) InMiddleOf(other Interval) bool {
	return other.From < r.From && r.To < other.To
}

// OverlapsStartOf returns whether r entirely overlaps the start of
// other, but not all of other.
func (r Interval) OverlapsStartOf(other Interval) bool {
	return r.From <= other.From && r.To < other.To
}

// OverlapsEndOf returns whether r entirely overlaps the end of
// other, but not all of other.
func (r Interval) OverlapsEndOf(other Interval) bool {
	return other.From < r.From && other.To <= r.To
}

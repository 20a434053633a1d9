// Package intervalset maintains a single minimal, sorted, disjoint set
// of closed integer intervals with incremental union and difference.
package intervalset

import (
	"errors"
	"sort"
	"strings"

	"github.com/kdious/Manage-Intervals-Challenge/pkg/interval"
)

// Set holds a sorted sequence of pairwise disjoint, non-touching
// intervals. The zero value is the empty set, ready for use. A Set is
// not safe for concurrent use.
type Set struct {
	intervals []interval.Interval
}

// New returns a set covering the union of the given intervals. Invalid
// intervals are reported through the joined error; the valid ones are
// still applied.
func New(intervals ...interval.Interval) (*Set, error) {
	s := &Set{}
	var errm error
	for _, iv := range intervals {
		if _, err := s.Add(iv.From, iv.To); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return s, errm
}

// Add inserts [from, to] into the set, merging it with every existing
// interval it overlaps or touches, and returns the new sequence. The
// set is left untouched when from >= to.
func (s *Set) Add(from, to int) ([]interval.Interval, error) {
	iv, err := interval.New(from, to)
	if err != nil {
		return nil, err
	}

	out := make([]interval.Interval, 0, len(s.intervals)+1)
	rest := 0

	// Intervals entirely before the new one, not touching it.
	for rest < len(s.intervals) && s.intervals[rest].EntirelyBefore(iv) {
		out = append(out, s.intervals[rest])
		rest++
	}

	// Absorb every interval that overlaps or touches the running
	// merge. The sequence is sorted, so the first non-mergeable
	// interval ends the run.
	for rest < len(s.intervals) && s.intervals[rest].Mergeable(iv) {
		iv = iv.Merge(s.intervals[rest])
		rest++
	}
	out = append(out, iv)

	out = append(out, s.intervals[rest:]...)
	s.intervals = out
	return s.Snapshot(), nil
}

// Remove deletes the region [from, to] from the set, truncating or
// splitting the intervals it cuts into, and returns the new sequence.
// Intervals that only touch the region at an endpoint are kept whole.
// The set is left untouched when from >= to.
func (s *Set) Remove(from, to int) ([]interval.Interval, error) {
	cut, err := interval.New(from, to)
	if err != nil {
		return nil, err
	}

	out := make([]interval.Interval, 0, len(s.intervals)+1)
	for _, e := range s.intervals {
		switch {
		case !cut.Overlaps(e):
			out = append(out, e)
		case e.CoveredBy(cut):
			// Swallowed whole, drop it.
		case cut.InMiddleOf(e):
			// Strict comparisons in the predicates guarantee both
			// pieces are non-degenerate.
			out = append(out, interval.Make(e.From, cut.From))
			out = append(out, interval.Make(cut.To, e.To))
		case cut.OverlapsStartOf(e):
			out = append(out, interval.Make(cut.To, e.To))
		default:
			// cut overlaps the end of e, keep the left piece.
			out = append(out, interval.Make(e.From, cut.From))
		}
	}
	s.intervals = out
	return s.Snapshot(), nil
}

// Clear resets the set to empty and returns the empty sequence.
func (s *Set) Clear() []interval.Interval {
	s.intervals = nil
	return s.Snapshot()
}

// Snapshot returns a copy of the current sequence, sorted ascending by
// From. Mutating the copy does not affect the set.
func (s *Set) Snapshot() []interval.Interval {
	out := make([]interval.Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Covers returns whether p falls inside one of the set's intervals.
func (s *Set) Covers(p int) bool {
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].To >= p
	})
	return i < len(s.intervals) && s.intervals[i].Contains(p)
}

func (s *Set) Count() int {
	return len(s.intervals)
}

// String renders the set in display form, e.g. "[[1, 2], [3, 5]]", or
// "[]" when empty.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, iv := range s.intervals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(iv.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (s *Set) Iterate() *Iterator {
	return &Iterator{current: -1, intervals: s.Snapshot()}
}

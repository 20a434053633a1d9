package intervalset

import "github.com/kdious/Manage-Intervals-Challenge/pkg/interval"

type Iterator struct {
	current   int
	intervals []interval.Interval
}

func (r *Iterator) Value() interval.Interval {
	return r.intervals[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.intervals)
}

package discrete

import "fmt"

// Range is a closed interval [start, end] over a discretely enumerable
// element type. Endpoint order is never validated or normalized: a
// range with start > end is a valid descending range whose traversal
// runs from start down to end.
//
// Ranges are immutable values. Every operation returns a freshly
// computed result, so a single Range can be shared freely.
type Range struct {
	start, end interface{}
	empty      bool
}

// NewRange builds the closed interval [start, end], storing the
// endpoints as given in either order.
func NewRange(start, end interface{}) Range {
	return Range{start: start, end: end}
}

var emptyRange = Range{empty: true}

// Empty returns the shared empty range. It carries no endpoints and is
// usable with any element type.
func Empty() Range {
	return emptyRange
}

// returns true only for the empty range; a single-element or
// descending range is not empty
func (r Range) IsEmpty() bool {
	return r.empty
}

func (r Range) Start() interface{} {
	return r.start
}

func (r Range) End() interface{} {
	return r.end
}

// Reverse swaps the endpoints, turning an ascending range into the
// descending range over the same elements and vice versa.
func (r Range) Reverse() Range {
	if r.empty {
		return r
	}
	return Range{start: r.end, end: r.start}
}

// Contains reports whether start <= x <= end under ord as given. For a
// descending range the stored start is greater than the stored end, so
// no x satisfies both bounds and Contains is false for every element.
func (r Range) Contains(ord Ordering, x interface{}) bool {
	if r.empty {
		return false
	}
	return Gteqv(ord, x, r.start) && Lteqv(ord, x, r.end)
}

// ContainsRange reports whether other is a subset of r, using the same
// plain-ordering bound checks as Contains. The empty range neither
// contains nor is contained.
func (r Range) ContainsRange(ord Ordering, other Range) bool {
	if r.empty || other.empty {
		return false
	}
	return Lteqv(ord, r.start, other.start) && Gteqv(ord, r.end, other.end)
}

func (r Range) String() string {
	if r.empty {
		return "[]"
	}
	return fmt.Sprintf("[%v, %v]", r.start, r.end)
}

// Diff subtracts other from r, returning the remainder strictly before
// other's start and the remainder strictly after other's end. Either
// remainder may be the empty range. The result is decided purely by
// endpoint comparisons; other is not checked for being a genuine
// sub-range first, so a remainder may be a degenerate single point.
func (r Range) Diff(ord Ordering, en Enum, other Range) (Range, Range) {
	if r.empty {
		return Empty(), Empty()
	}
	if other.empty {
		// subtracting nothing leaves everything
		return r, Empty()
	}
	if Lt(ord, r.end, other.start) {
		// other lies entirely to the right
		return r, Empty()
	}
	if ord.Compare(r.start, other.end) > 0 {
		// other lies entirely to the left
		return Empty(), r
	}

	cmpStart := ord.Compare(r.start, other.start)
	cmpEnd := ord.Compare(r.end, other.end)
	switch {
	case cmpStart == 0 && cmpEnd == 0:
		return Empty(), Empty()
	case cmpStart == 0 && cmpEnd > 0:
		return Empty(), NewRange(en.Succ(other.end), r.end)
	case cmpStart > 0 && cmpEnd > 0:
		return Empty(), NewRange(en.Succ(other.end), r.end)
	case cmpStart > 0:
		// r.start inside other, r.end at or before other's end
		return Empty(), Empty()
	case cmpEnd > 0:
		// other is a proper interior subset, both remainders survive
		return NewRange(r.start, en.Pred(other.start)), NewRange(en.Succ(other.end), r.end)
	default:
		return NewRange(r.start, en.Pred(other.start)), Empty()
	}
}

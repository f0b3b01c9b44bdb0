package discrete

// Ordering is the total order capability for an element type.
// Implementations are supplied by the embedding application per
// concrete element type, usually by type-asserting their operands.
type Ordering interface {
	// negative if a < b, zero if a == b, positive if a > b
	Compare(a, b interface{}) int
}

// returns true if a < b under ord
func Lt(ord Ordering, a, b interface{}) bool {
	return ord.Compare(a, b) < 0
}

// returns true if a <= b under ord
func Lteqv(ord Ordering, a, b interface{}) bool {
	return ord.Compare(a, b) <= 0
}

// returns true if a >= b under ord
func Gteqv(ord Ordering, a, b interface{}) bool {
	return ord.Compare(a, b) >= 0
}

// Reversed returns an Ordering that compares with its arguments
// swapped, turning ord around without touching its implementation.
func Reversed(ord Ordering) Ordering {
	return reversedOrdering{ord: ord}
}

type reversedOrdering struct {
	ord Ordering
}

func (r reversedOrdering) Compare(a, b interface{}) int {
	return r.ord.Compare(b, a)
}

package discrete

// Enum is the discrete enumeration capability for an element type.
// Like Ordering, implementations come from the embedding application.
type Enum interface {
	// returns the successor of a
	Succ(a interface{}) interface{}
	// returns the predecessor of a
	Pred(a interface{}) interface{}
	// returns true if Succ(a) == b
	Adjacent(a, b interface{}) bool
}

// flippedEnum walks an enumeration in the opposite direction: Succ and
// Pred swap roles, and Adjacent(a, b) holds when the underlying
// enumeration has b directly before a.
type flippedEnum struct {
	en Enum
}

func (f flippedEnum) Succ(a interface{}) interface{} {
	return f.en.Pred(a)
}

func (f flippedEnum) Pred(a interface{}) interface{} {
	return f.en.Succ(a)
}

func (f flippedEnum) Adjacent(a, b interface{}) bool {
	return f.en.Adjacent(b, a)
}

package discrete

// generate is the single step engine behind ToSequence, ForEach, Map
// and FoldLeft. The walk direction is resolved once per call: when
// start is not less than end under ord, the ordering and enumeration
// are substituted with direction-flipped adapters and the same loop
// runs unchanged. A single-element range emits exactly one element.
//
// The loop is iterative, so traversal takes constant stack space
// regardless of range length.
func (r Range) generate(ord Ordering, en Enum, emit func(interface{})) {
	if r.empty {
		return
	}

	activeOrd, activeEn := ord, en
	if !Lt(ord, r.start, r.end) {
		activeOrd = Reversed(ord)
		activeEn = flippedEnum{en: en}
	}

	a := r.start
	for {
		if activeOrd.Compare(a, r.end) == 0 {
			emit(a)
			return
		}
		if activeEn.Adjacent(a, r.end) {
			emit(a)
			emit(r.end)
			return
		}
		emit(a)
		a = activeEn.Succ(a)
	}
}

// ToSequence collects the elements from start to end in traversal
// order. Every call walks the range afresh; nothing is cached.
//
// Termination is a caller obligation: repeated Succ (or Pred, for a
// descending range) from start must reach end in finitely many steps.
// The walk does not detect an enumeration that never gets there.
func (r Range) ToSequence(ord Ordering, en Enum) []interface{} {
	var seq []interface{}
	r.generate(ord, en, func(a interface{}) {
		seq = append(seq, a)
	})
	return seq
}

// ForEach applies f to every element in traversal order, for side
// effects only.
func (r Range) ForEach(ord Ordering, en Enum, f func(interface{})) {
	r.generate(ord, en, f)
}

// Map applies f to every element and collects the results in
// traversal order.
func (r Range) Map(ord Ordering, en Enum, f func(interface{}) interface{}) []interface{} {
	var out []interface{}
	r.generate(ord, en, func(a interface{}) {
		out = append(out, f(a))
	})
	return out
}

// FoldLeft reduces the elements left to right starting from seed.
func (r Range) FoldLeft(ord Ordering, en Enum, seed interface{}, f func(acc, a interface{}) interface{}) interface{} {
	acc := seed
	r.generate(ord, en, func(a interface{}) {
		acc = f(acc, a)
	})
	return acc
}

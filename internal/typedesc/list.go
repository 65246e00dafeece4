package typedesc

// TypeList is an ordered list of raw types
type TypeList []*TypeDescription

// StackSize sums the stack sizes of all types
func (l TypeList) StackSize() int {
	size := 0
	for _, t := range l {
		size += t.StackSize().Size()
	}
	return size
}

// InternalNames returns the internal name of every type
func (l TypeList) InternalNames() []string {
	names := make([]string, len(l))
	for i, t := range l {
		names[i] = t.InternalName()
	}
	return names
}

// Filter returns the types matching pred, preserving order
func (l TypeList) Filter(pred func(*TypeDescription) bool) TypeList {
	var out TypeList
	for _, t := range l {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

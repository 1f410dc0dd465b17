package form

// fieldStack tracks currently open fields awaiting their matching end call.
// Strictly LIFO: BeginField pushes, EndField pops.
type fieldStack struct {
	open []FieldRenderer
}

func (s *fieldStack) push(field FieldRenderer) {
	s.open = append(s.open, field)
}

func (s *fieldStack) pop() (FieldRenderer, bool) {
	if len(s.open) == 0 {
		return nil, false
	}
	top := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	return top, true
}

func (s *fieldStack) depth() int {
	return len(s.open)
}

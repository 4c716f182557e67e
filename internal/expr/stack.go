package expr

type opStack struct {
	store []Op
}

func (s *opStack) Len() int { return len(s.store) }

func (s *opStack) Pop() Op {
	n := len(s.store) - 1
	out := s.store[n]
	s.store = s.store[:n]
	return out
}

func (s *opStack) Peek() Op { return s.store[len(s.store)-1] }

func (s *opStack) Push(v Op) { s.store = append(s.store, v) }

type valueStack struct {
	store []float64
}

func (s *valueStack) Len() int { return len(s.store) }

func (s *valueStack) Pop() (float64, bool) {
	n := len(s.store) - 1
	if n < 0 {
		return 0, false
	}
	out := s.store[n]
	s.store = s.store[:n]
	return out, true
}

func (s *valueStack) Push(v float64) { s.store = append(s.store, v) }

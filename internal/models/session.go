package models

// Session holds the pair list discovered at startup and the index of the
// pair being edited. It is only touched from the UI goroutine.
type Session struct {
	pairs []Pair
	index int
}

// NewSession creates a session positioned on the first pair. The list must
// not be empty.
func NewSession(pairs []Pair) (*Session, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	list := make([]Pair, len(pairs))
	copy(list, pairs)
	return &Session{pairs: list}, nil
}

func (s *Session) Current() Pair {
	return s.pairs[s.index]
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) Len() int {
	return len(s.pairs)
}

// Pairs returns a copy of the pair list in scan order.
func (s *Session) Pairs() []Pair {
	list := make([]Pair, len(s.pairs))
	copy(list, s.pairs)
	return list
}

// Move steps one pair in the given direction, wrapping around both ends,
// and returns the new current pair.
func (s *Session) Move(direction Direction) Pair {
	n := len(s.pairs)
	switch direction {
	case Next:
		s.index = (s.index + 1) % n
	case Previous:
		s.index = (s.index - 1 + n) % n
	}
	return s.Current()
}

package domain

// Shell tracks the single cross-panel selection: the active topic.
type Shell struct {
	ids    []string
	active string
}

// NewShell activates defaultID, falling back to the first id when defaultID
// is not declared.
func NewShell(ids []string, defaultID string) Shell {
	s := Shell{ids: append([]string(nil), ids...)}
	if s.Has(defaultID) {
		s.active = defaultID
	} else if len(s.ids) > 0 {
		s.active = s.ids[0]
	}
	return s
}

func (s Shell) Active() string { return s.active }
func (s Shell) IDs() []string  { return append([]string(nil), s.ids...) }

func (s Shell) Has(id string) bool {
	return s.Index(id) >= 0
}

func (s Shell) Index(id string) int {
	for i, x := range s.ids {
		if x == id {
			return i
		}
	}
	return -1
}

// Select activates id and reports whether it was declared. Unknown ids leave
// the shell unchanged.
func (s *Shell) Select(id string) bool {
	if !s.Has(id) {
		return false
	}
	s.active = id
	return true
}

func (s *Shell) Next() { s.step(1) }
func (s *Shell) Prev() { s.step(-1) }

func (s *Shell) step(delta int) {
	n := len(s.ids)
	if n == 0 {
		return
	}
	idx := s.Index(s.active)
	if idx < 0 {
		idx = 0
	}
	s.active = s.ids[((idx+delta)%n+n)%n]
}

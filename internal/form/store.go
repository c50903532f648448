package form

import "sync"

// Store holds the current form for front ends that serve concurrent requests.
type Store struct {
	mu   sync.Mutex
	form Form
}

// NewStore creates a store seeded with the given form.
func NewStore(initial Form) *Store {
	return &Store{form: initial}
}

// Snapshot returns the current form.
func (s *Store) Snapshot() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.clone()
}

// Apply replaces the form with the result of fn. On error the form is kept.
func (s *Store) Apply(fn func(Form) (Form, error)) (Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.form.clone())
	if err != nil {
		return s.form.clone(), err
	}
	s.form = next
	return next.clone(), nil
}

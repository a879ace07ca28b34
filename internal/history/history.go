// Package history keeps the linear undo/redo timeline of board contents.
package history

import "github.com/example/roughboard/internal/shape"

// Store holds every version of the shape collection and the index of the
// visible one. The index always addresses a stored version.
type Store struct {
	versions  []shape.Collection
	index     int
	listeners []func(shape.Collection)
}

// New creates a store whose only version is initial.
func New(initial shape.Collection) *Store {
	return &Store{versions: []shape.Collection{initial}}
}

// OnChange registers fn to be called with the visible version whenever it
// changes.
func (s *Store) OnChange(fn func(shape.Collection)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Store) changed() {
	cur := s.Current()
	for _, fn := range s.listeners {
		fn(cur)
	}
}

// Current returns the visible version. Callers must treat it as read-only.
func (s *Store) Current() shape.Collection { return s.versions[s.index] }

// Index returns the position of the visible version.
func (s *Store) Index() int { return s.index }

// Len returns the number of stored versions.
func (s *Store) Len() int { return len(s.versions) }

// CanUndo reports whether an older version exists.
func (s *Store) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether a newer version exists.
func (s *Store) CanRedo() bool { return s.index < len(s.versions)-1 }

// Append drops every version after the visible one and pushes c as the new
// visible version.
func (s *Store) Append(c shape.Collection) {
	s.versions = append(s.versions[:s.index+1:s.index+1], c)
	s.index++
	s.changed()
}

// Overwrite replaces the visible version with c.
func (s *Store) Overwrite(c shape.Collection) {
	s.versions[s.index] = c
	s.changed()
}

// Undo steps back one version. It reports false when already at the oldest.
func (s *Store) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	s.index--
	s.changed()
	return true
}

// Redo steps forward one version. It reports false when already at the newest.
func (s *Store) Redo() bool {
	if !s.CanRedo() {
		return false
	}
	s.index++
	s.changed()
	return true
}

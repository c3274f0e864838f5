package api

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateName is returned when inserting a node whose name already
// exists in a scope requiring uniqueness.
var ErrDuplicateName = errors.New("duplicate name")

// memberSet is an insertion-ordered name-keyed collection. Lookups are by
// name; iteration follows document order.
type memberSet[T Node] struct {
	order []T
	index map[string]T
}

func (s *memberSet[T]) add(v T) bool {
	name := v.NodeName()
	if s.index == nil {
		s.index = make(map[string]T)
	}
	if _, exists := s.index[name]; exists {
		return false
	}
	s.index[name] = v
	s.order = append(s.order, v)
	return true
}

func (s *memberSet[T]) get(name string) (T, bool) {
	v, ok := s.index[name]
	return v, ok
}

func (s *memberSet[T]) all() []T { return slices.Clone(s.order) }

func (s *memberSet[T]) size() int { return len(s.order) }

// Interfaces is an insertion-ordered mapping from interface name to
// Interface, covering one parsed document.
type Interfaces struct {
	set memberSet[*Interface]
}

// Add inserts an interface, rejecting duplicate names.
func (m *Interfaces) Add(iface *Interface) error {
	if !m.set.add(iface) {
		return fmt.Errorf("interface %q: %w", iface.NodeName(), ErrDuplicateName)
	}
	return nil
}

// Get looks up an interface by name.
func (m *Interfaces) Get(name string) (*Interface, bool) {
	if m == nil {
		return nil, false
	}
	return m.set.get(name)
}

// All returns the interfaces in document order.
func (m *Interfaces) All() []*Interface {
	if m == nil {
		return nil
	}
	return m.set.all()
}

// Len returns the number of interfaces.
func (m *Interfaces) Len() int {
	if m == nil {
		return 0
	}
	return m.set.size()
}

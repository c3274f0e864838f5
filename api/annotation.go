package api

import "slices"

// Well-known annotation names with compatibility semantics, from the D-Bus
// specification and the GLib/GDBus conventions.
const (
	AnnotationDeprecated         = "org.freedesktop.DBus.Deprecated"
	AnnotationCSymbol            = "org.freedesktop.DBus.GLib.CSymbol"
	AnnotationNoReply            = "org.freedesktop.DBus.Method.NoReply"
	AnnotationEmitsChangedSignal = "org.freedesktop.DBus.Property.EmitsChangedSignal"
	AnnotationDocString          = "org.gtk.GDBus.DocString"
)

// Annotation is a name/value metadata pair attached to exactly one node.
type Annotation struct {
	name        string
	value       string
	parent      Node
	annotations AnnotationSet
	comment     string
}

// NewAnnotation returns an Annotation with the given name and value.
func NewAnnotation(name, value string) *Annotation {
	return &Annotation{name: name, value: value}
}

func (a *Annotation) NodeName() string { return a.name }

// Value returns the annotation's value string.
func (a *Annotation) Value() string { return a.value }

// Parent returns the node the annotation is attached to.
func (a *Annotation) Parent() Node { return a.parent }

// FormatName qualifies the annotation name with its owning node.
func (a *Annotation) FormatName() string {
	if a.parent == nil {
		return a.name
	}
	return a.parent.FormatName() + "." + a.name
}

func (a *Annotation) Comment() string { return a.comment }

// SetComment attaches documentation text to the annotation.
func (a *Annotation) SetComment(text string) { a.comment = text }

func (a *Annotation) Annotations() *AnnotationSet { return &a.annotations }

// AnnotationSet holds the annotations attached to one node. The grammar
// permits repeated names; lookups return the last annotation with a given
// name, so later declarations override earlier ones.
type AnnotationSet struct {
	order []*Annotation
	index map[string]*Annotation
}

func (s *AnnotationSet) add(a *Annotation) {
	if s.index == nil {
		s.index = make(map[string]*Annotation)
	}
	s.index[a.name] = a
	s.order = append(s.order, a)
}

// Get looks up an annotation by name.
func (s *AnnotationSet) Get(name string) (*Annotation, bool) {
	if s == nil {
		return nil, false
	}
	a, ok := s.index[name]
	return a, ok
}

// All returns the annotations in document order, including shadowed
// duplicates.
func (s *AnnotationSet) All() []*Annotation {
	if s == nil {
		return nil
	}
	return slices.Clone(s.order)
}

// Len returns the number of attached annotations.
func (s *AnnotationSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// BoolOr reads a boolean annotation, returning def when absent. Any value
// other than "true" is false.
func (s *AnnotationSet) BoolOr(name string, def bool) bool {
	a, ok := s.Get(name)
	if !ok {
		return def
	}
	return a.value == "true"
}

// StringOr reads a string annotation, returning def when absent.
func (s *AnnotationSet) StringOr(name, def string) string {
	a, ok := s.Get(name)
	if !ok {
		return def
	}
	return a.value
}

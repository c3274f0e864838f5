package api

import "fmt"

// Interface is a named collection of methods, signals, and properties
// exposed by a service. Method and signal names are unique within their own
// kind; a method and a signal may share a name.
type Interface struct {
	name        string
	node        *ObjectNode
	methods     memberSet[*Method]
	signals     memberSet[*Signal]
	properties  memberSet[*Property]
	annotations AnnotationSet
	comment     string
}

// NewInterface returns an empty Interface with the given name.
func NewInterface(name string) *Interface {
	return &Interface{name: name}
}

func (i *Interface) NodeName() string   { return i.name }
func (i *Interface) FormatName() string { return i.name }
func (i *Interface) Comment() string    { return i.comment }

// SetComment attaches documentation text to the interface.
func (i *Interface) SetComment(text string) { i.comment = text }

func (i *Interface) Annotations() *AnnotationSet { return &i.annotations }

// AddAnnotation attaches an annotation to the interface.
func (i *Interface) AddAnnotation(a *Annotation) {
	a.parent = i
	i.annotations.add(a)
}

// Node returns the object node declaring this interface, or nil.
func (i *Interface) Node() *ObjectNode { return i.node }

// Methods returns the interface's methods in document order.
func (i *Interface) Methods() []*Method { return i.methods.all() }

// Method looks up a method by name.
func (i *Interface) Method(name string) (*Method, bool) { return i.methods.get(name) }

// AddMethod inserts a method, rejecting duplicate method names.
func (i *Interface) AddMethod(m *Method) error {
	if !i.methods.add(m) {
		return fmt.Errorf("method %q: %w", m.NodeName(), ErrDuplicateName)
	}
	m.iface = i
	return nil
}

// Signals returns the interface's signals in document order.
func (i *Interface) Signals() []*Signal { return i.signals.all() }

// Signal looks up a signal by name.
func (i *Interface) Signal(name string) (*Signal, bool) { return i.signals.get(name) }

// AddSignal inserts a signal, rejecting duplicate signal names.
func (i *Interface) AddSignal(s *Signal) error {
	if !i.signals.add(s) {
		return fmt.Errorf("signal %q: %w", s.NodeName(), ErrDuplicateName)
	}
	s.iface = i
	return nil
}

// Properties returns the interface's properties in document order.
func (i *Interface) Properties() []*Property { return i.properties.all() }

// Property looks up a property by name.
func (i *Interface) Property(name string) (*Property, bool) { return i.properties.get(name) }

// AddProperty inserts a property, rejecting duplicate property names.
func (i *Interface) AddProperty(p *Property) error {
	if !i.properties.add(p) {
		return fmt.Errorf("property %q: %w", p.NodeName(), ErrDuplicateName)
	}
	p.iface = i
	return nil
}

package api

import "slices"

// Callable is the shared shape of methods and signals: a named interface
// member with a position-significant argument list.
type Callable struct {
	name        string
	iface       *Interface
	args        []*Argument
	annotations AnnotationSet
	comment     string
}

func (c *Callable) NodeName() string { return c.name }

// FormatName qualifies the member name with its owning interface.
func (c *Callable) FormatName() string {
	if c.iface == nil {
		return c.name
	}
	return c.iface.name + "." + c.name
}

func (c *Callable) Comment() string { return c.comment }

// SetComment attaches documentation text to the member.
func (c *Callable) SetComment(text string) { c.comment = text }

func (c *Callable) Annotations() *AnnotationSet { return &c.annotations }

// AddAnnotation attaches an annotation to the member.
func (c *Callable) AddAnnotation(a *Annotation) {
	a.parent = c
	c.annotations.add(a)
}

// Interface returns the declaring interface, or nil.
func (c *Callable) Interface() *Interface { return c.iface }

// Arguments returns the argument list in declaration order.
func (c *Callable) Arguments() []*Argument { return slices.Clone(c.args) }

// AddArgument appends an argument, assigning its positional index.
func (c *Callable) AddArgument(a *Argument) {
	a.parent = c
	a.index = len(c.args)
	c.args = append(c.args, a)
}

// Method is a callable method of an interface.
type Method struct {
	Callable
}

// NewMethod returns an empty Method with the given name.
func NewMethod(name string) *Method {
	return &Method{Callable{name: name}}
}

// Signal is an emittable signal of an interface.
type Signal struct {
	Callable
}

// NewSignal returns an empty Signal with the given name.
func NewSignal(name string) *Signal {
	return &Signal{Callable{name: name}}
}

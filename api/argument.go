package api

import (
	"fmt"
	"strconv"
)

// Direction is an argument direction.
type Direction string

// Argument directions. A Direction may be empty when the document omits the
// attribute.
const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Argument is a positional argument of a method or signal. Arguments are the
// only nodes permitted to be unnamed.
type Argument struct {
	name        string
	typ         string
	direction   Direction
	index       int
	parent      Node
	annotations AnnotationSet
	comment     string
}

// NewArgument returns an Argument with the given name, type signature, and
// direction. The positional index is assigned when the argument is added to
// a callable.
func NewArgument(name, typ string, direction Direction) *Argument {
	return &Argument{name: name, typ: typ, direction: direction, index: -1}
}

func (a *Argument) NodeName() string { return a.name }

// FormatName describes the argument by position and name, depending on what
// is known: "unnamed", "'name'", "2", or "2 ('name')".
func (a *Argument) FormatName() string {
	switch {
	case a.index < 0 && a.name == "":
		return "unnamed"
	case a.index < 0:
		return "'" + a.name + "'"
	case a.name == "":
		return strconv.Itoa(a.index)
	default:
		return fmt.Sprintf("%d ('%s')", a.index, a.name)
	}
}

// Type returns the declared type-signature string.
func (a *Argument) Type() string { return a.typ }

// Direction returns the declared direction, or "" if omitted.
func (a *Argument) Direction() Direction { return a.direction }

// Index returns the 0-based position in the parent's argument list, or -1
// before insertion.
func (a *Argument) Index() int { return a.index }

// Parent returns the callable owning this argument, or nil.
func (a *Argument) Parent() Node { return a.parent }

func (a *Argument) Comment() string { return a.comment }

// SetComment attaches documentation text to the argument.
func (a *Argument) SetComment(text string) { a.comment = text }

func (a *Argument) Annotations() *AnnotationSet { return &a.annotations }

// AddAnnotation attaches an annotation to the argument.
func (a *Argument) AddAnnotation(ann *Annotation) {
	ann.parent = a
	a.annotations.add(ann)
}

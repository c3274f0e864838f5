package api

// Access is a property access mode.
type Access string

// Access modes.
const (
	AccessRead      Access = "read"
	AccessWrite     Access = "write"
	AccessReadWrite Access = "readwrite"
)

// Property is a readable or writable property of an interface. The type is
// an opaque D-Bus type-signature string and is not validated further.
type Property struct {
	name        string
	typ         string
	access      Access
	iface       *Interface
	annotations AnnotationSet
	comment     string
}

// NewProperty returns a Property with the given name, type signature, and
// access mode.
func NewProperty(name, typ string, access Access) *Property {
	return &Property{name: name, typ: typ, access: access}
}

func (p *Property) NodeName() string { return p.name }

// FormatName qualifies the property name with its owning interface.
func (p *Property) FormatName() string {
	if p.iface == nil {
		return p.name
	}
	return p.iface.name + "." + p.name
}

// Type returns the declared type-signature string.
func (p *Property) Type() string { return p.typ }

// Access returns the declared access mode.
func (p *Property) Access() Access { return p.access }

// Interface returns the declaring interface, or nil.
func (p *Property) Interface() *Interface { return p.iface }

func (p *Property) Comment() string { return p.comment }

// SetComment attaches documentation text to the property.
func (p *Property) SetComment(text string) { p.comment = text }

func (p *Property) Annotations() *AnnotationSet { return &p.annotations }

// AddAnnotation attaches an annotation to the property.
func (p *Property) AddAnnotation(a *Annotation) {
	a.parent = p
	p.annotations.add(a)
}

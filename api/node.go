// Package api defines the validated object model for D-Bus introspection
// documents: the node types produced by the parser and the diagnostics
// ledger populated while validating them.
package api

import (
	"slices"
	"strings"
)

// Node is implemented by every element of a parsed introspection document.
type Node interface {
	// NodeName returns the declared name. It is empty only for unnamed
	// arguments.
	NodeName() string

	// FormatName returns the display name used in diagnostics, qualified
	// with the owning interface where one exists.
	FormatName() string

	// Comment returns the documentation attached to the node, or "".
	Comment() string

	// Annotations returns the node's annotation set.
	Annotations() *AnnotationSet
}

// ObjectNode represents a <node> element: one object in a service's object
// tree, carrying interfaces and child nodes.
type ObjectNode struct {
	name        string
	parent      *ObjectNode
	interfaces  Interfaces
	children    []*ObjectNode
	annotations AnnotationSet
	comment     string
}

// NewObjectNode returns an ObjectNode with the given name. The root node of
// a document may be anonymous; when named, the name is an object path.
func NewObjectNode(name string) *ObjectNode {
	return &ObjectNode{name: name}
}

func (n *ObjectNode) NodeName() string   { return n.name }
func (n *ObjectNode) FormatName() string { return n.name }
func (n *ObjectNode) Comment() string    { return n.comment }

// SetComment attaches documentation text to the node.
func (n *ObjectNode) SetComment(text string) { n.comment = text }

func (n *ObjectNode) Annotations() *AnnotationSet { return &n.annotations }

// Parent returns the enclosing node, or nil for a document root.
func (n *ObjectNode) Parent() *ObjectNode { return n.parent }

// Interfaces returns the interfaces declared directly on this node.
func (n *ObjectNode) Interfaces() *Interfaces { return &n.interfaces }

// AddInterface inserts an interface, rejecting duplicate names.
func (n *ObjectNode) AddInterface(iface *Interface) error {
	if err := n.interfaces.Add(iface); err != nil {
		return err
	}
	iface.node = n
	return nil
}

// Children returns the sub-nodes in document order.
func (n *ObjectNode) Children() []*ObjectNode { return slices.Clone(n.children) }

// AddChild appends a sub-node.
func (n *ObjectNode) AddChild(child *ObjectNode) {
	child.parent = n
	n.children = append(n.children, child)
}

// IsAbsoluteObjectPath reports whether path is a valid absolute D-Bus object
// path: "/" alone, or "/"-separated non-empty elements of [A-Za-z0-9_].
func IsAbsoluteObjectPath(path string) bool {
	if path == "/" {
		return true
	}
	if path == "" || path[0] != '/' || strings.HasSuffix(path, "/") {
		return false
	}
	for _, elem := range strings.Split(path[1:], "/") {
		if elem == "" {
			return false
		}
		for _, r := range elem {
			if !isObjectPathRune(r) {
				return false
			}
		}
	}
	return true
}

func isObjectPathRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

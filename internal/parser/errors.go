package parser

import (
	"errors"
	"fmt"

	"github.com/godbusapi/deviate/api"
)

// ErrInvalid is returned by recovery-mode parses that detected any grammar
// violation. The details live in the ledger; no model is produced.
var ErrInvalid = errors.New("document failed validation")

// grammarError is one grammar violation, carrying its stable diagnostic code.
type grammarError interface {
	error
	Code() string
}

// UnknownNodeError reports an element appearing where the grammar forbids
// it. Context is empty for the document root.
type UnknownNodeError struct {
	Tag     string
	Context string
}

func (e *UnknownNodeError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("Unknown root node '%s'.", e.Tag)
	}
	return fmt.Sprintf("Unknown node '%s' in %s.", e.Tag, e.Context)
}

// Code returns the stable diagnostic code.
func (e *UnknownNodeError) Code() string { return api.CodeUnknownNode }

// MissingAttributeError reports a required attribute absent from an
// otherwise structurally valid element.
type MissingAttributeError struct {
	Attribute string
	Element   string // element tag: interface, method, signal, property, arg, annotation
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("Missing required attribute '%s' in %s.", e.Attribute, e.Element)
}

// Code returns the stable diagnostic code.
func (e *MissingAttributeError) Code() string { return api.CodeMissingAttribute }

// DuplicateNodeError reports a name colliding with an existing same-kind
// sibling in a scope requiring uniqueness.
type DuplicateNodeError struct {
	Kind string // interface, method, signal, property
	Name string // fully qualified duplicate name
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("Duplicate %s definition '%s'.", e.Kind, e.Name)
}

// Code returns the stable diagnostic code.
func (e *DuplicateNodeError) Code() string { return api.CodeDuplicateNode }

// InvalidNodeNameError reports a root node whose name is not an absolute
// object path.
type InvalidNodeNameError struct {
	Name string
}

func (e *InvalidNodeNameError) Error() string {
	return fmt.Sprintf("Root node name is not an absolute object path '%s'.", e.Name)
}

// Code returns the stable diagnostic code.
func (e *InvalidNodeNameError) Code() string { return api.CodeNodeName }

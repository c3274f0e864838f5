// Package deviate parses D-Bus introspection XML into a validated object
// model and compares two parsed API descriptions for compatibility.
package deviate

import (
	"github.com/godbusapi/deviate/api"
	"github.com/godbusapi/deviate/diff"
)

// Type aliases for the public API - model types come from the api
// subpackage, comparison types from diff.

// Node is a <node> element: one object in a service's object tree.
type Node = api.ObjectNode

// Interface is a named collection of methods, signals, and properties.
type Interface = api.Interface

// Interfaces is an ordered, name-keyed interface collection.
type Interfaces = api.Interfaces

// Method is a callable method of an interface.
type Method = api.Method

// Signal is an emittable signal of an interface.
type Signal = api.Signal

// Property is a readable or writable property of an interface.
type Property = api.Property

// Argument is a positional argument of a method or signal.
type Argument = api.Argument

// Annotation is a name/value metadata pair attached to a node.
type Annotation = api.Annotation

// Access is a property access mode.
type Access = api.Access

// Direction is an argument direction.
type Direction = api.Direction

// Access constants.
const (
	AccessRead      = api.AccessRead
	AccessWrite     = api.AccessWrite
	AccessReadWrite = api.AccessReadWrite
)

// Direction constants.
const (
	DirectionIn  = api.DirectionIn
	DirectionOut = api.DirectionOut
)

// Well-known annotation names.
const (
	AnnotationDeprecated         = api.AnnotationDeprecated
	AnnotationCSymbol            = api.AnnotationCSymbol
	AnnotationNoReply            = api.AnnotationNoReply
	AnnotationEmitsChangedSignal = api.AnnotationEmitsChangedSignal
	AnnotationDocString          = api.AnnotationDocString
)

// Diagnostic is one recorded grammar violation.
type Diagnostic = api.Diagnostic

// Ledger collects diagnostics during recovery-mode parsing.
type Ledger = api.Ledger

// CodeInfo describes one registered diagnostic code.
type CodeInfo = api.CodeInfo

// RegisteredCodes returns every diagnostic code the parser can emit.
var RegisteredCodes = api.RegisteredCodes

// IsAbsoluteObjectPath reports whether path is a valid absolute D-Bus
// object path.
var IsAbsoluteObjectPath = api.IsAbsoluteObjectPath

// Report holds the notices produced by one comparison.
type Report = diff.Report

// Notice is one categorized difference message.
type Notice = diff.Notice

// Severity classifies a difference by compatibility impact.
type Severity = diff.Severity

// Category is a warning category name used to filter report output.
type Category = diff.Category

// Severity constants, in strictly increasing order.
const (
	SeverityInfo                  = diff.SeverityInfo
	SeverityForwardsIncompatible  = diff.SeverityForwardsIncompatible
	SeverityBackwardsIncompatible = diff.SeverityBackwardsIncompatible
)

// Warning categories.
const (
	CategoryInfo      = diff.CategoryInfo
	CategoryForwards  = diff.CategoryForwards
	CategoryBackwards = diff.CategoryBackwards
)

// AllCategories returns every warning category.
var AllCategories = diff.AllCategories

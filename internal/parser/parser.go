// Package parser validates D-Bus introspection XML against the fixed
// introspection grammar and builds the api object model.
//
// Two modes are supported. Fail-fast surfaces the first violation as a typed
// error and aborts. Recovery logs every violation to a diagnostics ledger,
// skipping the smallest region needed to continue with siblings; an
// erroneous document still yields no model, recovery only affects how many
// problems are surfaced in one pass.
package parser

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/godbusapi/deviate/api"
)

// XML namespaces whose elements are documentation, not structure. They are
// recognized anywhere, never validated, and never carry comments into the
// model.
const (
	tpNamespace  = "http://telepathy.freedesktop.org/wiki/DbusSpec#extensions-v0"
	docNamespace = "http://www.freedesktop.org/dbus/1.0/doc.dtd"
)

// ErrNoNode is returned when the document contains no node element at all,
// e.g. an empty vendor wrapper.
var ErrNoNode = errors.New("document contains no node element")

// levelTrace matches deviate.LevelTrace for per-element logging.
const levelTrace = slog.Level(-8)

// element is one decoded XML element with its ordered children.
type element struct {
	name     xml.Name
	attrs    map[string]string
	children []child
}

// child is one ordered item inside an element: a nested element or a markup
// comment. Comment text is kept verbatim, delimiters stripped.
type child struct {
	elem      *element
	comment   string
	isComment bool
}

// Parser validates one document at a time.
type Parser struct {
	sourceID    string
	recoverMode bool
	ledger      *api.Ledger
	logger      *slog.Logger
	errored     bool
}

// New returns a Parser for the named source. In recovery mode violations are
// appended to ledger instead of aborting the parse. Pass nil for logger to
// disable logging.
func New(sourceID string, recoverMode bool, ledger *api.Ledger, logger *slog.Logger) *Parser {
	return &Parser{
		sourceID:    sourceID,
		recoverMode: recoverMode,
		ledger:      ledger,
		logger:      logger,
	}
}

// Parse validates doc and returns its root object node. No partial model is
// ever returned: fail-fast mode returns the first grammar violation as a
// typed error, recovery mode returns ErrInvalid once any violation was
// logged.
func (p *Parser) Parse(doc []byte) (*api.ObjectNode, error) {
	p.errored = false
	p.log(slog.LevelDebug, "parsing document",
		slog.String("source", p.sourceID),
		slog.Bool("recover", p.recoverMode))

	tree, err := decodeTree(doc)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	root := tree
	if root.name.Space == tpNamespace && root.name.Local == "spec" {
		root = firstNodeChild(root)
	}
	if root != nil && localTag(root) != "node" {
		if err := p.report(&UnknownNodeError{Tag: displayName(root.name)}); err != nil {
			return nil, err
		}
		root = firstNodeChild(root)
	}

	var node *api.ObjectNode
	if root != nil {
		node, err = p.parseNode(root, true)
		if err != nil {
			return nil, err
		}
	} else if !p.errored {
		return nil, ErrNoNode
	}

	if p.errored {
		p.log(slog.LevelDebug, "document invalid", slog.Int("problems", p.ledger.Len()))
		return nil, ErrInvalid
	}
	return node, nil
}

// report surfaces one violation: returned in fail-fast mode, appended to the
// ledger in recovery mode.
func (p *Parser) report(err grammarError) error {
	if !p.recoverMode {
		return err
	}
	p.errored = true
	if p.ledger != nil {
		p.ledger.Log(p.sourceID, api.StageParser, err.Code(), err.Error())
	}
	return nil
}

// requireAttrs reports every missing required attribute of el. A false
// result means the element must be skipped (recovery mode logged the
// problems); in fail-fast mode the first missing attribute is returned.
func (p *Parser) requireAttrs(el *element, tag string) (bool, error) {
	ok := true
	for _, attr := range grammar[tag].Required {
		if _, present := el.attrs[attr]; !present {
			ok = false
			if err := p.report(&MissingAttributeError{Attribute: attr, Element: tag}); err != nil {
				return false, err
			}
		}
	}
	return ok, nil
}

// children walks el's structural children, dispatching each permitted child
// to fn with any attached markup comment. Unknown children are reported
// against ctx; documentation elements are skipped but still terminate a
// pending comment.
func (p *Parser) children(el *element, parentTag, ctx string, fn func(ce *element, tag, comment string) error) error {
	rule := grammar[parentTag]
	var pending string
	for _, c := range el.children {
		if c.isComment {
			pending = c.comment
			continue
		}
		ce := c.elem
		comment := pending
		pending = ""
		if isDocElement(ce) {
			continue
		}
		tag := localTag(ce)
		if !rule.Children[tag] {
			if err := p.report(&UnknownNodeError{Tag: displayName(ce.name), Context: ctx}); err != nil {
				return err
			}
			continue
		}
		if err := fn(ce, tag, comment); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseNode(el *element, isRoot bool) (*api.ObjectNode, error) {
	node := api.NewObjectNode(el.attrs["name"])
	if isRoot && node.NodeName() != "" && !api.IsAbsoluteObjectPath(node.NodeName()) {
		if err := p.report(&InvalidNodeNameError{Name: node.NodeName()}); err != nil {
			return nil, err
		}
	}

	ctx := "root"
	if !isRoot {
		name := node.NodeName()
		if name == "" {
			name = "unnamed"
		}
		ctx = fmt.Sprintf("node '%s'", name)
	}

	err := p.children(el, "node", ctx, func(ce *element, tag, comment string) error {
		switch tag {
		case "interface":
			iface, err := p.parseInterface(ce)
			if err != nil || iface == nil {
				return err
			}
			attach(iface, comment)
			if node.AddInterface(iface) != nil {
				return p.report(&DuplicateNodeError{Kind: "interface", Name: iface.NodeName()})
			}
			p.log(levelTrace, "parsed interface",
				slog.String("name", iface.NodeName()),
				slog.Int("methods", len(iface.Methods())),
				slog.Int("signals", len(iface.Signals())),
				slog.Int("properties", len(iface.Properties())))
		case "node":
			sub, err := p.parseNode(ce, false)
			if err != nil || sub == nil {
				return err
			}
			attach(sub, comment)
			node.AddChild(sub)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	applyDocString(node)
	return node, nil
}

func (p *Parser) parseInterface(el *element) (*api.Interface, error) {
	ok, err := p.requireAttrs(el, "interface")
	if err != nil || !ok {
		return nil, err
	}
	iface := api.NewInterface(el.attrs["name"])
	ctx := fmt.Sprintf("interface '%s'", iface.NodeName())

	err = p.children(el, "interface", ctx, func(ce *element, tag, comment string) error {
		switch tag {
		case "method":
			m, err := p.parseMethod(ce)
			if err != nil || m == nil {
				return err
			}
			attach(m, comment)
			if iface.AddMethod(m) != nil {
				return p.report(&DuplicateNodeError{Kind: "method", Name: iface.NodeName() + "." + m.NodeName()})
			}
		case "signal":
			s, err := p.parseSignal(ce)
			if err != nil || s == nil {
				return err
			}
			attach(s, comment)
			if iface.AddSignal(s) != nil {
				return p.report(&DuplicateNodeError{Kind: "signal", Name: iface.NodeName() + "." + s.NodeName()})
			}
		case "property":
			prop, err := p.parseProperty(ce)
			if err != nil || prop == nil {
				return err
			}
			attach(prop, comment)
			if iface.AddProperty(prop) != nil {
				return p.report(&DuplicateNodeError{Kind: "property", Name: iface.NodeName() + "." + prop.NodeName()})
			}
		case "annotation":
			a, err := p.parseAnnotation(ce)
			if err != nil || a == nil {
				return err
			}
			attach(a, comment)
			iface.AddAnnotation(a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	applyDocString(iface)
	return iface, nil
}

func (p *Parser) parseMethod(el *element) (*api.Method, error) {
	ok, err := p.requireAttrs(el, "method")
	if err != nil || !ok {
		return nil, err
	}
	m := api.NewMethod(el.attrs["name"])
	if err := p.parseCallableChildren(el, &m.Callable, "method"); err != nil {
		return nil, err
	}
	applyDocString(m)
	return m, nil
}

func (p *Parser) parseSignal(el *element) (*api.Signal, error) {
	ok, err := p.requireAttrs(el, "signal")
	if err != nil || !ok {
		return nil, err
	}
	s := api.NewSignal(el.attrs["name"])
	if err := p.parseCallableChildren(el, &s.Callable, "signal"); err != nil {
		return nil, err
	}
	applyDocString(s)
	return s, nil
}

func (p *Parser) parseCallableChildren(el *element, c *api.Callable, tag string) error {
	ctx := fmt.Sprintf("%s '%s'", tag, c.NodeName())
	return p.children(el, tag, ctx, func(ce *element, childTag, comment string) error {
		switch childTag {
		case "arg":
			arg, err := p.parseArgument(ce)
			if err != nil || arg == nil {
				return err
			}
			attach(arg, comment)
			c.AddArgument(arg)
		case "annotation":
			a, err := p.parseAnnotation(ce)
			if err != nil || a == nil {
				return err
			}
			attach(a, comment)
			c.AddAnnotation(a)
		}
		return nil
	})
}

func (p *Parser) parseProperty(el *element) (*api.Property, error) {
	ok, err := p.requireAttrs(el, "property")
	if err != nil || !ok {
		return nil, err
	}
	prop := api.NewProperty(el.attrs["name"], el.attrs["type"], api.Access(el.attrs["access"]))
	ctx := fmt.Sprintf("property '%s'", prop.NodeName())

	err = p.children(el, "property", ctx, func(ce *element, tag, comment string) error {
		a, err := p.parseAnnotation(ce)
		if err != nil || a == nil {
			return err
		}
		attach(a, comment)
		prop.AddAnnotation(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	applyDocString(prop)
	return prop, nil
}

func (p *Parser) parseArgument(el *element) (*api.Argument, error) {
	ok, err := p.requireAttrs(el, "arg")
	if err != nil || !ok {
		return nil, err
	}
	arg := api.NewArgument(el.attrs["name"], el.attrs["type"], api.Direction(el.attrs["direction"]))

	name := arg.NodeName()
	if name == "" {
		name = "unnamed"
	}
	ctx := fmt.Sprintf("argument '%s'", name)

	err = p.children(el, "arg", ctx, func(ce *element, tag, comment string) error {
		a, err := p.parseAnnotation(ce)
		if err != nil || a == nil {
			return err
		}
		attach(a, comment)
		arg.AddAnnotation(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	applyDocString(arg)
	return arg, nil
}

func (p *Parser) parseAnnotation(el *element) (*api.Annotation, error) {
	ok, err := p.requireAttrs(el, "annotation")
	if err != nil || !ok {
		return nil, err
	}
	a := api.NewAnnotation(el.attrs["name"], el.attrs["value"])
	ctx := fmt.Sprintf("annotation '%s'", a.NodeName())

	// The grammar permits no structural children here; the walk exists only
	// to report unknown nodes.
	err = p.children(el, "annotation", ctx, func(*element, string, string) error { return nil })
	if err != nil {
		return nil, err
	}
	return a, nil
}

// commentable is any model node that can carry documentation.
type commentable interface {
	api.Node
	SetComment(string)
}

// attach applies a preceding markup comment unless the node already carries
// documentation: the doc-string annotation is authoritative.
func attach(n commentable, comment string) {
	if comment != "" && n.Comment() == "" {
		n.SetComment(comment)
	}
}

// applyDocString promotes the well-known doc-string annotation to the node's
// comment.
func applyDocString(n commentable) {
	if a, ok := n.Annotations().Get(api.AnnotationDocString); ok {
		n.SetComment(a.Value())
	}
}

func isDocElement(el *element) bool {
	return el.name.Space == tpNamespace || el.name.Space == docNamespace
}

// localTag returns the tag for grammar lookup. Namespaced elements never
// match the grammar vocabulary.
func localTag(el *element) string {
	if el.name.Space != "" {
		return ""
	}
	return el.name.Local
}

// displayName renders an element name for diagnostics.
func displayName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func firstNodeChild(el *element) *element {
	for _, c := range el.children {
		if c.elem != nil && localTag(c.elem) == "node" {
			return c.elem
		}
	}
	return nil
}

// decodeTree reads the document into an element tree, preserving markup
// comments in child order so they can be attached as documentation.
func decodeTree(doc []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				if a.Name.Space == "" {
					el.attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.children = append(top.children, child{elem: el})
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.Comment:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.children = append(top.children, child{comment: string(t), isComment: true})
			}
		}
	}
	if root == nil {
		return nil, errors.New("empty document")
	}
	return root, nil
}

func (p *Parser) log(level slog.Level, msg string, args ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Log(context.Background(), level, msg, args...)
}

package diff

import (
	"slices"

	"github.com/godbusapi/deviate/api"
)

// compareAnnotations diffs the well-known annotations of two same-named
// nodes. Unrecognized annotations are ignored.
func (c *comparator) compareAnnotations(old, new api.Node) {
	oldAnn, newAnn := old.Annotations(), new.Annotations()

	oldDeprecated := oldAnn.BoolOr(api.AnnotationDeprecated, false)
	newDeprecated := newAnn.BoolOr(api.AnnotationDeprecated, false)
	switch {
	case !oldDeprecated && newDeprecated:
		c.addf(SeverityInfo, "Node '%s' has been deprecated.", old.FormatName())
	case oldDeprecated && !newDeprecated:
		c.addf(SeverityInfo, "Node '%s' has been un-deprecated.", old.FormatName())
	}

	oldSymbol := oldAnn.StringOr(api.AnnotationCSymbol, "")
	newSymbol := newAnn.StringOr(api.AnnotationCSymbol, "")
	if oldSymbol != newSymbol {
		c.addf(SeverityInfo, "Node '%s' has changed its C symbol from '%s' to '%s'.",
			old.FormatName(), oldSymbol, newSymbol)
	}

	oldNoReply := oldAnn.BoolOr(api.AnnotationNoReply, false)
	newNoReply := newAnn.BoolOr(api.AnnotationNoReply, false)
	switch {
	case !oldNoReply && newNoReply:
		c.addf(SeverityBackwardsIncompatible, "Node '%s' has been marked as not returning a reply.", old.FormatName())
	case oldNoReply && !newNoReply:
		c.addf(SeverityBackwardsIncompatible, "Node '%s' has been marked as returning a reply.", old.FormatName())
	}

	c.compareEmitsChangedSignal(old, new)
}

// ecsRule describes one EmitsChangedSignal transition and its impact. The
// message is the verb phrase completing "Node '<name>' ...".
type ecsRule struct {
	from, to []string
	severity Severity
	message  string
}

// ecsRules is checked in order and the first match wins, so the emitting
// versus non-emitting class transition takes precedence over refinements
// within the emitting class. Transitions not listed, including the identity
// ones, produce no notice.
var ecsRules = []ecsRule{
	{[]string{"true", "invalidates"}, []string{"false", "const"}, SeverityForwardsIncompatible,
		"stopped emitting org.freedesktop.DBus.PropertiesChanged"},
	{[]string{"false", "const"}, []string{"true", "invalidates"}, SeverityBackwardsIncompatible,
		"started emitting org.freedesktop.DBus.PropertiesChanged"},
	{[]string{"true"}, []string{"invalidates"}, SeverityBackwardsIncompatible,
		"stopped emitting its new value in org.freedesktop.DBus.PropertiesChanged"},
	{[]string{"invalidates"}, []string{"true"}, SeverityBackwardsIncompatible,
		"started emitting its new value in org.freedesktop.DBus.PropertiesChanged"},
	{[]string{"const"}, []string{"false"}, SeverityBackwardsIncompatible,
		"stopped being a constant"},
	{[]string{"false"}, []string{"const"}, SeverityForwardsIncompatible,
		"became a constant"},
}

func (c *comparator) compareEmitsChangedSignal(old, new api.Node) {
	oldECS := emitsChangedSignal(old)
	newECS := emitsChangedSignal(new)
	for _, rule := range ecsRules {
		if slices.Contains(rule.from, oldECS) && slices.Contains(rule.to, newECS) {
			c.addf(rule.severity, "Node '%s' %s.", old.FormatName(), rule.message)
			return
		}
	}
}

// emitsChangedSignal resolves the effective EmitsChangedSignal value of a
// node. A property without its own annotation inherits the value from its
// declaring interface, and the ultimate default is "true".
func emitsChangedSignal(n api.Node) string {
	if a, ok := n.Annotations().Get(api.AnnotationEmitsChangedSignal); ok {
		return a.Value()
	}
	if p, ok := n.(*api.Property); ok {
		if iface := p.Interface(); iface != nil {
			return emitsChangedSignal(iface)
		}
	}
	return "true"
}

package diff

import (
	"fmt"

	"github.com/godbusapi/deviate/api"
)

// Compare diffs two interface mappings and returns the full report.
// Comparison never fails: empty or nil mappings are valid input, so
// comparing against an empty old mapping reports everything as added, and
// the converse as removed. Neither model is mutated.
//
// Notice ordering is deterministic: removals and modifications keyed by the
// old mapping first, in its document order, then additions in the new
// mapping's document order. Within one interface: methods, then properties,
// then signals, then the interface's own annotations.
func Compare(old, new *api.Interfaces) *Report {
	c := &comparator{report: &Report{}}

	for _, iface := range old.All() {
		if newIface, ok := new.Get(iface.NodeName()); ok {
			c.compareInterfaces(iface, newIface)
		} else {
			c.addf(SeverityBackwardsIncompatible, "Interface '%s' has been removed.", iface.NodeName())
		}
	}
	for _, iface := range new.All() {
		if _, ok := old.Get(iface.NodeName()); !ok {
			c.addf(SeverityForwardsIncompatible, "Interface '%s' has been added.", iface.NodeName())
		}
	}
	return c.report
}

type comparator struct {
	report *Report
}

func (c *comparator) addf(sev Severity, format string, args ...any) {
	c.report.add(sev, fmt.Sprintf(format, args...))
}

func (c *comparator) compareInterfaces(old, new *api.Interface) {
	for _, m := range old.Methods() {
		if newMethod, ok := new.Method(m.NodeName()); ok {
			c.compareCallables("method", &m.Callable, &newMethod.Callable)
		} else {
			c.addf(SeverityBackwardsIncompatible, "Method '%s' has been removed.", m.FormatName())
		}
	}
	for _, m := range new.Methods() {
		if _, ok := old.Method(m.NodeName()); !ok {
			c.addf(SeverityForwardsIncompatible, "Method '%s' has been added.", m.FormatName())
		}
	}

	for _, p := range old.Properties() {
		if newProp, ok := new.Property(p.NodeName()); ok {
			c.compareProperties(p, newProp)
		} else {
			c.addf(SeverityBackwardsIncompatible, "Property '%s' has been removed.", p.FormatName())
		}
	}
	for _, p := range new.Properties() {
		if _, ok := old.Property(p.NodeName()); !ok {
			c.addf(SeverityForwardsIncompatible, "Property '%s' has been added.", p.FormatName())
		}
	}

	for _, s := range old.Signals() {
		if newSignal, ok := new.Signal(s.NodeName()); ok {
			c.compareCallables("signal", &s.Callable, &newSignal.Callable)
		} else {
			c.addf(SeverityBackwardsIncompatible, "Signal '%s' has been removed.", s.FormatName())
		}
	}
	for _, s := range new.Signals() {
		if _, ok := old.Signal(s.NodeName()); !ok {
			c.addf(SeverityForwardsIncompatible, "Signal '%s' has been added.", s.FormatName())
		}
	}

	c.compareAnnotations(old, new)
}

// compareCallables diffs two same-named methods or signals positionally.
// Adding or removing an argument both break existing call sites, so both
// directions are backwards-incompatible.
func (c *comparator) compareCallables(noun string, old, new *api.Callable) {
	oldArgs, newArgs := old.Arguments(), new.Arguments()
	for i := 0; i < max(len(oldArgs), len(newArgs)); i++ {
		switch {
		case i >= len(oldArgs):
			c.addf(SeverityBackwardsIncompatible, "Argument %s of %s '%s' has been added.",
				newArgs[i].FormatName(), noun, new.FormatName())
		case i >= len(newArgs):
			c.addf(SeverityBackwardsIncompatible, "Argument %s of %s '%s' has been removed.",
				oldArgs[i].FormatName(), noun, old.FormatName())
		default:
			c.compareArguments(oldArgs[i], newArgs[i])
		}
	}
	c.compareAnnotations(old, new)
}

func (c *comparator) compareArguments(old, new *api.Argument) {
	if old.NodeName() != new.NodeName() {
		// Renaming is decorative: argument identity is positional.
		c.addf(SeverityInfo, "Argument %d of '%s' has changed name from '%s' to '%s'.",
			old.Index(), old.Parent().FormatName(), old.NodeName(), new.NodeName())
	}
	if old.Type() != new.Type() {
		c.addf(SeverityBackwardsIncompatible, "Argument %d of '%s' has changed type from '%s' to '%s'.",
			old.Index(), old.Parent().FormatName(), old.Type(), new.Type())
	}
	if old.Direction() != new.Direction() {
		c.addf(SeverityBackwardsIncompatible, "Argument %d of '%s' has changed direction from '%s' to '%s'.",
			old.Index(), old.Parent().FormatName(), old.Direction(), new.Direction())
	}
	c.compareAnnotations(old, new)
}

func (c *comparator) compareProperties(old, new *api.Property) {
	if old.Type() != new.Type() {
		c.addf(SeverityBackwardsIncompatible, "Property '%s' has changed type from '%s' to '%s'.",
			old.FormatName(), old.Type(), new.Type())
	}
	if (old.Access() == api.AccessRead || old.Access() == api.AccessWrite) &&
		new.Access() == api.AccessReadWrite {
		c.addf(SeverityForwardsIncompatible, "Property '%s' has changed access from '%s' to '%s', becoming less restrictive.",
			old.FormatName(), old.Access(), new.Access())
	} else if old.Access() != new.Access() {
		c.addf(SeverityBackwardsIncompatible, "Property '%s' has changed access from '%s' to '%s'.",
			old.FormatName(), old.Access(), new.Access())
	}
	c.compareAnnotations(old, new)
}

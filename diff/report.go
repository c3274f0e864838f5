package diff

import "slices"

// Notice is one categorized difference message.
type Notice struct {
	Severity Severity
	Message  string
}

// Report holds every notice produced by one comparison. Filtering by
// category happens at read time over the full stored result, so re-reading
// with a different filter needs no recomputation.
type Report struct {
	notices []Notice
}

func (r *Report) add(sev Severity, message string) {
	r.notices = append(r.notices, Notice{Severity: sev, Message: message})
}

// All returns every notice in emission order.
func (r *Report) All() []Notice {
	if r == nil {
		return nil
	}
	return slices.Clone(r.notices)
}

// Notices returns the notices whose category is enabled, in emission order.
func (r *Report) Notices(enabled ...Category) []Notice {
	if r == nil {
		return nil
	}
	var out []Notice
	for _, n := range r.notices {
		if slices.Contains(enabled, n.Severity.Category()) {
			out = append(out, n)
		}
	}
	return out
}

// Has reports whether any notice carries the given severity.
func (r *Report) Has(sev Severity) bool {
	if r == nil {
		return false
	}
	for _, n := range r.notices {
		if n.Severity == sev {
			return true
		}
	}
	return false
}

// HasBackwardsIncompatibilities reports whether the comparison found any
// backwards-incompatible difference. Release gates key off this.
func (r *Report) HasBackwardsIncompatibilities() bool {
	return r.Has(SeverityBackwardsIncompatible)
}

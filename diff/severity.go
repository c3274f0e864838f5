// Package diff compares two parsed D-Bus interface sets and classifies
// every observed difference by compatibility impact.
package diff

// Severity classifies one difference by compatibility impact, in strictly
// increasing order.
type Severity int

const (
	// SeverityInfo marks purely decorative differences, such as a renamed
	// method argument.
	SeverityInfo Severity = iota

	// SeverityForwardsIncompatible marks differences where code written
	// against the new interface may not work against the old one, such as a
	// newly added method.
	SeverityForwardsIncompatible

	// SeverityBackwardsIncompatible marks differences where code written
	// against the old interface may not work against the new one, such as a
	// changed property type.
	SeverityBackwardsIncompatible
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityForwardsIncompatible:
		return "forwards-incompatible"
	case SeverityBackwardsIncompatible:
		return "backwards-incompatible"
	default:
		return "unknown"
	}
}

// Label returns the fixed-width console label for the severity.
func (s Severity) Label() string {
	switch s {
	case SeverityForwardsIncompatible:
		return " WARN"
	case SeverityBackwardsIncompatible:
		return "ERROR"
	default:
		return " INFO"
	}
}

// Category is a warning category name consumers enable or disable when
// reading a report.
type Category string

// Warning categories.
const (
	CategoryInfo      Category = "info"
	CategoryForwards  Category = "forwards-compatibility"
	CategoryBackwards Category = "backwards-compatibility"
)

// AllCategories returns every warning category.
func AllCategories() []Category {
	return []Category{CategoryInfo, CategoryBackwards, CategoryForwards}
}

// Category returns the warning category controlling this severity.
func (s Severity) Category() Category {
	switch s {
	case SeverityForwardsIncompatible:
		return CategoryForwards
	case SeverityBackwardsIncompatible:
		return CategoryBackwards
	default:
		return CategoryInfo
	}
}

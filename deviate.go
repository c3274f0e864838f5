package deviate

import (
	"fmt"
	"log/slog"

	"github.com/godbusapi/deviate/api"
	"github.com/godbusapi/deviate/diff"
	"github.com/godbusapi/deviate/internal/parser"
)

// LevelTrace is a custom log level more verbose than Debug. Use for
// per-element iteration logging during parsing.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// ParseOption configures Parse and ParseDocument.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger *slog.Logger
	ledger *api.Ledger
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = logger }
}

// WithRecovery switches the parser from fail-fast to recovery mode: instead
// of stopping at the first grammar violation, every violation in the
// document is appended to the ledger in document order and parsing
// continues past the offending element. An invalid document still yields no
// model; Parse returns ErrInvalid once the ledger holds at least one entry.
func WithRecovery(ledger *api.Ledger) ParseOption {
	return func(c *parseConfig) { c.ledger = ledger }
}

// ErrInvalid is returned by recovery-mode parsing when the document
// violated the introspection grammar. The details are on the ledger passed
// to WithRecovery.
var ErrInvalid = parser.ErrInvalid

// Parse reads one introspection document from the source and validates it
// against the D-Bus introspection grammar.
//
// Example:
//
//	node, err := deviate.Parse(
//	    deviate.File("com.example.Service.xml"),
//	    deviate.WithLogger(slog.Default()),
//	)
func Parse(source Source, opts ...ParseOption) (*Node, error) {
	data, err := source.Load()
	if err != nil {
		return nil, err
	}
	return ParseDocument(data, source.ID(), opts...)
}

// ParseDocument validates an in-memory introspection document. The sourceID
// labels the document in diagnostics.
func ParseDocument(doc []byte, sourceID string, opts ...ParseOption) (*Node, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	p := parser.New(sourceID, cfg.ledger != nil, cfg.ledger, cfg.logger)
	node, err := p.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceID, err)
	}
	return node, nil
}

// Compare diffs the interfaces of two parsed documents and classifies every
// difference by compatibility impact. A nil node compares as empty. See the
// diff package for report filtering.
func Compare(old, new *Node) *Report {
	var oldIfaces, newIfaces *Interfaces
	if old != nil {
		oldIfaces = old.Interfaces()
	}
	if new != nil {
		newIfaces = new.Interfaces()
	}
	return diff.Compare(oldIfaces, newIfaces)
}

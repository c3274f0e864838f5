package api

import "slices"

// Diagnostic codes emitted while validating a document. Centralizing these
// prevents silent breakage from typos in string literals; tooling matches on
// codes rather than message prose.
const (
	CodeUnknownNode      = "unknown-node"
	CodeMissingAttribute = "missing-attribute"
	CodeDuplicateNode    = "duplicate-node"
	CodeNodeName         = "node-name"
)

// Stages that log diagnostics.
const (
	StageParser = "parser"
)

// CodeInfo describes a diagnostic code and the stage that emits it.
type CodeInfo struct {
	Code  string
	Stage string
}

// RegisteredCodes returns every diagnostic code any error condition can
// produce. Tests assert the registry is non-empty and duplicate-free.
func RegisteredCodes() []CodeInfo {
	return []CodeInfo{
		{Code: CodeUnknownNode, Stage: StageParser},
		{Code: CodeMissingAttribute, Stage: StageParser},
		{Code: CodeDuplicateNode, Stage: StageParser},
		{Code: CodeNodeName, Stage: StageParser},
	}
}

// Diagnostic is one logged validation problem.
type Diagnostic struct {
	Source  string // identifier of the document being parsed
	Stage   string // e.g. StageParser
	Code    string // stable code, e.g. CodeUnknownNode
	Message string
}

// String returns "source: code: message".
func (d Diagnostic) String() string {
	if d.Source == "" {
		return d.Code + ": " + d.Message
	}
	return d.Source + ": " + d.Code + ": " + d.Message
}

// Ledger is an append-only log of diagnostics for one or more parse runs.
// A Ledger is not safe for concurrent use; give each concurrent parse its
// own instance.
type Ledger struct {
	entries []Diagnostic
}

// Log appends one entry.
func (l *Ledger) Log(source, stage, code, message string) {
	l.entries = append(l.entries, Diagnostic{
		Source:  source,
		Stage:   stage,
		Code:    code,
		Message: message,
	})
}

// Reset clears all entries, for reuse between independent parse runs.
func (l *Ledger) Reset() { l.entries = nil }

// Entries returns the logged diagnostics in append order.
func (l *Ledger) Entries() []Diagnostic {
	if l == nil {
		return nil
	}
	return slices.Clone(l.entries)
}

// Len returns the number of logged diagnostics.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

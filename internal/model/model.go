package model

// Position is a zero-based line/column pair. Columns count bytes, not runes,
// matching the tokenizer's offsets.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range is a half-open [Start, End) span of byte offsets into the document.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether off falls inside the range.
func (r Range) Contains(off int) bool {
	return off >= r.Start && off < r.End
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return "unknown"
}

// Diagnostic is one reported problem, surfaced to the host editor.
type Diagnostic struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Range    Range    `json:"range"`
}

// SymbolKind distinguishes the declaration forms tracked by the symbol table.
type SymbolKind int

const (
	KindVariable SymbolKind = iota
	KindFunction
	KindClass
	KindParameter
	KindProperty
	KindMethod
	KindGetter
	KindSetter
	KindImport
	KindKeyword // completion-only: not a real declaration
	KindSnippet // completion-only: expands to a template
)

func (k SymbolKind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindParameter:
		return "parameter"
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	case KindGetter:
		return "getter"
	case KindSetter:
		return "setter"
	case KindImport:
		return "import"
	case KindKeyword:
		return "keyword"
	case KindSnippet:
		return "snippet"
	}
	return "unknown"
}

// DocumentSymbol is one outline entry.
type DocumentSymbol struct {
	Name   string     `json:"name"`
	Kind   SymbolKind `json:"kind"`
	Detail string     `json:"detail,omitempty"`
	Range  Range      `json:"range"`
}

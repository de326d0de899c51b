// Package language is the public entry point to the JavaScript analysis
// service: an editable document with debounced incremental analysis behind
// completion, hover, diagnostics and outline queries.
//
//	src := "const user = { name: 'Ada' }\nuser."
//	svc := language.New(src, language.WithMaxCompletions(20))
//	items := svc.Completions(len(src))
package language

import (
	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/service"
	"github.com/cmmoran/jsls/internal/symbols"
)

// Result types, re-exported so callers never import internal packages.
type (
	CompletionItem = model.CompletionItem
	HoverInfo      = model.HoverInfo
	HoverContent   = model.HoverContent
	Diagnostic     = model.Diagnostic
	DocumentSymbol = model.DocumentSymbol
	Position       = model.Position
	Range          = model.Range
	Severity       = model.Severity
	SymbolKind     = model.SymbolKind
	Symbol         = symbols.Symbol
	Analysis       = service.Analysis
	Event          = service.Event
	EventKind      = service.EventKind
)

const (
	SeverityError   = model.SeverityError
	SeverityWarning = model.SeverityWarning
	SeverityInfo    = model.SeverityInfo

	KindVariable  = model.KindVariable
	KindFunction  = model.KindFunction
	KindClass     = model.KindClass
	KindParameter = model.KindParameter
	KindProperty  = model.KindProperty
	KindMethod    = model.KindMethod
	KindGetter    = model.KindGetter
	KindSetter    = model.KindSetter
	KindImport    = model.KindImport
	KindKeyword   = model.KindKeyword
	KindSnippet   = model.KindSnippet

	EventAnalyzed      = service.EventAnalyzed
	EventAnalysisError = service.EventAnalysisError
)

// Service analyzes one JavaScript document. All methods are driven from the
// host's goroutine; the debounced pass serializes against them internally.
type Service struct {
	*service.Service
}

// New builds a service over the initial document text and analyzes it once,
// so queries answer immediately.
func New(text string, opts ...Option) *Service {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	o.Normalize()
	return &Service{service.New(text, o.service())}
}

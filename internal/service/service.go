// Package service owns the analysis lifecycle for a single document. Edits
// arm a debounce timer instead of analyzing directly, reads answer
// synchronously from the last completed pass (running one inline first when
// the document has moved on), and a failed pass is contained so the previous
// good analysis stays served.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cmmoran/jsls/internal/document"
	"github.com/cmmoran/jsls/internal/lexer"
	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/provider"
	"github.com/cmmoran/jsls/internal/symbols"
)

// EventKind labels an analysis lifecycle notification.
type EventKind int

const (
	// EventAnalyzed fires after a pass completes and its results become the
	// served analysis.
	EventAnalyzed EventKind = iota
	// EventAnalysisError fires when a pass fails. The previous analysis
	// stays served.
	EventAnalysisError
)

func (k EventKind) String() string {
	if k == EventAnalysisError {
		return "analysis-error"
	}
	return "analyzed"
}

// Event is delivered to subscribers after every analysis attempt.
type Event struct {
	Kind    EventKind
	Version int
	Err     error
}

// Service coordinates the pipeline for one document. Mutations go through
// the service so they serialize with the debounced pass; the mutex guards
// that handoff. Hosts drive the service from a single goroutine.
type Service struct {
	mu    sync.Mutex
	doc   *document.Document
	cache *lexer.LineCache
	opts  *Options
	log   *slog.Logger
	prov  *provider.Provider

	timer    *time.Timer
	analysis *Analysis
	analyzed int // document version of the last attempted pass
	subs     []func(Event)

	// prePass runs at the top of every pass, inside its recovery scope.
	// Tests install failing hooks through it.
	prePass func()
}

// New builds a service over the initial text and runs a first pass so reads
// have an analysis to answer from.
func New(text string, opts *Options) *Service {
	if opts == nil {
		opts = NewOptions()
	}
	opts.Normalize()
	s := &Service{
		doc:   document.New(text),
		cache: lexer.NewLineCache(),
		opts:  opts,
		log:   opts.Logger,
		prov:  provider.New(opts.Completion),
	}
	s.doc.OnChange(s.onChange)
	s.Analyze()
	return s
}

// SetText replaces the whole document.
func (s *Service) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.SetText(text)
}

// Replace substitutes text for the byte span [start, end).
func (s *Service) Replace(start, end int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Replace(start, end, text)
}

// Insert places text at a byte offset.
func (s *Service) Insert(off int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Insert(off, text)
}

// Delete removes the byte span [start, end).
func (s *Service) Delete(start, end int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Delete(start, end)
}

// Text returns the current document text.
func (s *Service) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Text()
}

// Version reports the current document version.
func (s *Service) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Version()
}

// AnalyzedVersion reports the document version of the last attempted pass.
func (s *Service) AnalyzedVersion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzed
}

// OffsetToPosition converts a byte offset into a line/column pair.
func (s *Service) OffsetToPosition(off int) model.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.OffsetToPosition(off)
}

// PositionToOffset converts a line/column pair into a byte offset.
func (s *Service) PositionToOffset(line, col int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.PositionToOffset(line, col)
}

// Subscribe registers a lifecycle callback. Callbacks run after the service
// lock is released, on whichever goroutine finished the pass.
func (s *Service) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// MarkUsed records an accepted completion label for recency ranking.
func (s *Service) MarkUsed(label string) { s.prov.MarkUsed(label) }

// Analyze runs a pass immediately, regardless of staleness.
func (s *Service) Analyze() {
	s.mu.Lock()
	ev := s.analyzeLocked()
	s.mu.Unlock()
	s.emit(ev)
}

// Invalidate drops the token cache and forgets the analyzed version, so the
// next pass starts cold and the next read runs one.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Invalidate()
	s.analyzed = 0
}

// Completions returns ranked completion items for the cursor offset.
func (s *Service) Completions(offset int) []model.CompletionItem {
	a := s.current()
	if a == nil {
		return nil
	}
	return s.prov.Completions(a.view(), offset)
}

// Hover returns the hover card for the offset, or nil when there is nothing
// to say.
func (s *Service) Hover(offset int) *model.HoverInfo {
	a := s.current()
	if a == nil {
		return nil
	}
	return s.prov.Hover(a.view(), offset)
}

// Diagnostics returns the parse diagnostics of the served analysis, one per
// parse error.
func (s *Service) Diagnostics() []model.Diagnostic {
	a := s.current()
	if a == nil {
		return nil
	}
	return a.Diagnostics
}

// DocumentSymbols returns the outline of the served analysis.
func (s *Service) DocumentSymbols() []model.DocumentSymbol {
	a := s.current()
	if a == nil {
		return nil
	}
	return a.Table.DocumentSymbols()
}

// SymbolAt resolves the identifier under the offset in its lexical scope.
func (s *Service) SymbolAt(offset int) *symbols.Symbol {
	a := s.current()
	if a == nil {
		return nil
	}
	word, start := identAt(a.Src, offset)
	if word == "" {
		return nil
	}
	return a.Table.ScopeAt(start).Resolve(word)
}

// Snapshot returns the served analysis. Callers treat it as read-only.
func (s *Service) Snapshot() *Analysis {
	return s.current()
}

// current freshens on staleness and returns the served analysis.
func (s *Service) current() *Analysis {
	s.mu.Lock()
	var ev Event
	ran := false
	if s.analyzed < s.doc.Version() {
		ev = s.analyzeLocked()
		ran = true
	}
	a := s.analysis
	s.mu.Unlock()
	if ran {
		s.emit(ev)
	}
	return a
}

// onChange runs inside the edit critical section via the document
// subscription: drop cached tokens from the first touched line, then arm
// the timer. A fresh edit replaces any pending timer, coalescing bursts.
func (s *Service) onChange(c document.Change) {
	s.cache.InvalidateFrom(c.StartLine)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.Debounce, s.timerFired)
}

func (s *Service) timerFired() {
	s.mu.Lock()
	s.timer = nil
	if s.analyzed >= s.doc.Version() {
		// a synchronous read already covered these edits
		s.mu.Unlock()
		return
	}
	ev := s.analyzeLocked()
	s.mu.Unlock()
	s.emit(ev)
}

// analyzeLocked runs one pass and installs the result. A failed pass still
// consumes the document version, so reads stop retrying a pipeline that
// keeps dying until the next edit. Caller holds mu.
func (s *Service) analyzeLocked() Event {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	version := s.doc.Version()
	started := time.Now()
	a, err := s.runPass(version)
	s.analyzed = version
	if err != nil {
		s.log.Error("analysis pass failed", "version", version, "err", err)
		return Event{Kind: EventAnalysisError, Version: version, Err: err}
	}
	s.analysis = a
	s.log.Debug("analysis pass completed",
		"version", version,
		"tokens", len(a.Tokens),
		"diagnostics", len(a.Diagnostics),
		"elapsed", time.Since(started),
	)
	return Event{Kind: EventAnalyzed, Version: version}
}

func (s *Service) emit(ev Event) {
	s.mu.Lock()
	subs := make([]func(Event), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

func identAt(src string, offset int) (string, int) {
	if offset < 0 || offset > len(src) {
		return "", 0
	}
	start, end := offset, offset
	for start > 0 && isIdentByte(src[start-1]) {
		start--
	}
	for end < len(src) && isIdentByte(src[end]) {
		end++
	}
	return src[start:end], start
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || b == '#' ||
		'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

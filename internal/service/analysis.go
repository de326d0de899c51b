package service

import (
	"fmt"

	"github.com/cmmoran/jsls/internal/infer"
	"github.com/cmmoran/jsls/internal/lexer"
	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/parser"
	"github.com/cmmoran/jsls/internal/provider"
	"github.com/cmmoran/jsls/internal/symbols"
)

// Analysis is one completed pipeline pass over a document snapshot. It is
// immutable once installed, so a reader holding a stale snapshot keeps a
// consistent view while a newer pass replaces it.
type Analysis struct {
	Version     int
	Src         string
	Tokens      []lexer.Token
	Program     *parser.Program
	Table       *symbols.Table
	Engine      *infer.Engine
	Diagnostics []model.Diagnostic
}

func (a *Analysis) view() provider.View {
	return provider.View{Src: a.Src, Tokens: a.Tokens, Table: a.Table, Engine: a.Engine}
}

// NodeCount reports the number of AST nodes, a coarse size signal for
// reports.
func (a *Analysis) NodeCount() int {
	n := 0
	parser.Walk(a.Program, func(parser.Node) bool {
		n++
		return true
	})
	return n
}

// runPass drives tokenize → parse → scope build → type annotation over the
// current document text. A panic anywhere in the pipeline comes back as an
// error instead of unwinding into the host. Caller holds mu.
func (s *Service) runPass(version int) (a *Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis pass: %v", r)
		}
	}()
	if s.prePass != nil {
		s.prePass()
	}
	src := s.doc.Text()
	lines := make([]string, s.doc.LineCount())
	for i := range lines {
		lines[i] = s.doc.Line(i)
	}
	toks := lexer.TokenizeDocument(lines, s.cache)
	prog, perrs := parser.Parse(src, toks)
	table := symbols.Build(prog, src)
	eng := infer.New(prog, table)
	eng.Annotate()
	diags := make([]model.Diagnostic, 0, len(perrs))
	for _, pe := range perrs {
		diags = append(diags, diagnostic(pe))
	}
	return &Analysis{
		Version:     version,
		Src:         src,
		Tokens:      toks,
		Program:     prog,
		Table:       table,
		Engine:      eng,
		Diagnostics: diags,
	}, nil
}

func diagnostic(pe *parser.ParseError) model.Diagnostic {
	msg := pe.Message
	if pe.Expected != "" {
		msg = fmt.Sprintf("%s: expected %s", msg, pe.Expected)
	}
	return model.Diagnostic{
		Message:  msg,
		Severity: model.SeverityError,
		Range:    model.Range{Start: pe.Token.Start, End: pe.Token.End},
	}
}

package parser

import (
	"fmt"
	"strings"

	"github.com/cmmoran/jsls/internal/lexer"
)

// Parser turns a token stream into an AST. It is a hand-written recursive
// descent parser tuned for editor input: it never gives up on the whole
// document. Errors inside a statement unwind to the statement boundary via
// panic, get recorded, and parsing resumes at the next plausible statement
// start. Missing closing delimiters at end of input are recorded without
// discarding what was parsed, so a half-typed function still contributes its
// body to the tree.
type Parser struct {
	src  string
	toks []lexer.Token
	pos  int
	noIn int
	errs []*ParseError
}

// Parse parses the document. The token stream should come from the lexer with
// document-absolute offsets; whitespace and comment tokens are skipped here.
// The returned Program is never nil and spans the whole source.
func Parse(src string, toks []lexer.Token) (*Program, []*ParseError) {
	p := &Parser{src: src, toks: make([]lexer.Token, 0, len(toks))}
	for _, t := range toks {
		if !t.IsTrivia() {
			p.toks = append(p.toks, t)
		}
	}
	prog := &Program{span: span{0, len(src)}}
	prog.Body = p.parseStatements(func() bool { return false })
	return prog, p.errs
}

// --- token cursor -----------------------------------------------------------

func (p *Parser) eof() bool { return p.pos >= len(p.toks) }

func (p *Parser) tok() lexer.Token {
	if p.eof() {
		return lexer.Token{Kind: lexer.KindPlain, Start: len(p.src), End: len(p.src)}
	}
	return p.toks[p.pos]
}

func (p *Parser) peek(n int) lexer.Token {
	if p.pos+n >= len(p.toks) {
		return lexer.Token{Kind: lexer.KindPlain, Start: len(p.src), End: len(p.src)}
	}
	return p.toks[p.pos+n]
}

func (p *Parser) advance() lexer.Token {
	t := p.tok()
	if !p.eof() {
		p.pos++
	}
	return t
}

func (p *Parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].End
}

func (p *Parser) sp(start int) span { return span{start, p.prevEnd()} }

// sameLine reports whether no newline separates the end of a and the start of
// b. It stands in for the restricted productions (return value, postfix ++)
// that honor line breaks.
func (p *Parser) sameLine(a, b lexer.Token) bool {
	if a.End > b.Start || b.Start > len(p.src) {
		return true
	}
	return !strings.Contains(p.src[a.End:b.Start], "\n")
}

func (p *Parser) at(k lexer.Kind, text string) bool {
	t := p.tok()
	return t.Kind == k && t.Text == text
}

func (p *Parser) atPunct(text string) bool   { return p.at(lexer.KindPunct, text) }
func (p *Parser) atOp(text string) bool      { return p.at(lexer.KindOperator, text) }
func (p *Parser) atKeyword(text string) bool { return p.at(lexer.KindKeyword, text) }

func (p *Parser) eat(k lexer.Kind, text string) bool {
	if p.at(k, text) {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) eatPunct(text string) bool   { return p.eat(lexer.KindPunct, text) }
func (p *Parser) eatOp(text string) bool      { return p.eat(lexer.KindOperator, text) }
func (p *Parser) eatKeyword(text string) bool { return p.eat(lexer.KindKeyword, text) }

// --- errors and recovery ----------------------------------------------------

// errorf records a ParseError and unwinds to the nearest recovery point.
func (p *Parser) errorf(expected, format string, args ...any) {
	p.record(expected, format, args...)
	panic(bail{})
}

// softErrorf records a ParseError without unwinding. Used where continuing is
// more useful than discarding partial results, such as a missing closer at
// end of input.
func (p *Parser) softErrorf(expected, format string, args ...any) {
	p.record(expected, format, args...)
}

func (p *Parser) record(expected, format string, args ...any) {
	p.errs = append(p.errs, &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Token:    p.tok(),
		Expected: expected,
	})
}

func (p *Parser) expectPunct(text string) lexer.Token {
	if !p.atPunct(text) {
		p.errorf("'"+text+"'", "unexpected %s", describe(p.tok()))
	}
	return p.advance()
}

func (p *Parser) expectOp(text string) lexer.Token {
	if !p.atOp(text) {
		p.errorf("'"+text+"'", "unexpected %s", describe(p.tok()))
	}
	return p.advance()
}

// expectClose consumes the closing delimiter if present and records a soft
// error otherwise. The caller keeps whatever it has parsed either way.
func (p *Parser) expectClose(text string) {
	if p.atPunct(text) {
		p.advance()
		return
	}
	p.softErrorf("'"+text+"'", "unexpected %s", describe(p.tok()))
}

// stmtStart lists keywords that begin a statement; synchronization stops at
// any of these so one error costs at most the broken statement.
var stmtStart = map[string]bool{
	"var": true, "let": true, "const": true, "function": true, "class": true,
	"if": true, "for": true, "while": true, "do": true, "switch": true,
	"try": true, "return": true, "throw": true, "break": true,
	"continue": true, "import": true, "export": true, "debugger": true,
}

func (p *Parser) synchronize() {
	for !p.eof() {
		if p.atPunct(";") {
			p.advance()
			return
		}
		if p.atPunct("}") {
			return
		}
		if t := p.tok(); t.Kind == lexer.KindKeyword && stmtStart[t.Text] {
			return
		}
		p.advance()
	}
}

// --- statements -------------------------------------------------------------

func (p *Parser) parseStatements(stop func() bool) []Stmt {
	var out []Stmt
	for !p.eof() && !stop() {
		start := p.pos
		if s := p.parseStatementRecover(); s != nil {
			out = append(out, s)
		}
		if p.pos == start {
			// No progress: drop one token rather than loop forever.
			p.advance()
		}
	}
	return out
}

func (p *Parser) parseStatementRecover() (s Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	return p.parseStatement()
}

func (p *Parser) parseStatement() Stmt {
	if p.eof() {
		p.softErrorf("statement", "unexpected end of input")
		return &EmptyStatement{span: span{len(p.src), len(p.src)}}
	}
	start := p.tok().Start

	if p.atPunct(";") {
		p.advance()
		return &EmptyStatement{span: p.sp(start)}
	}
	if p.atPunct("{") {
		return p.parseBlock()
	}

	if t := p.tok(); t.Kind == lexer.KindKeyword {
		switch t.Text {
		case "var", "let", "const":
			return p.parseVariableStatement()
		case "function":
			return p.parseFunctionDeclaration(false)
		case "async":
			if n := p.peek(1); n.Kind == lexer.KindKeyword && n.Text == "function" && p.sameLine(t, n) {
				p.advance()
				return p.parseFunctionDeclaration(true)
			}
		case "class":
			return p.parseClassDeclaration()
		case "if":
			return p.parseIfStatement()
		case "for":
			return p.parseForStatement()
		case "while":
			return p.parseWhileStatement()
		case "do":
			return p.parseDoWhileStatement()
		case "switch":
			return p.parseSwitchStatement()
		case "try":
			return p.parseTryStatement()
		case "throw":
			return p.parseThrowStatement()
		case "return":
			return p.parseReturnStatement()
		case "break":
			p.advance()
			p.eatPunct(";")
			return &BreakStatement{span: p.sp(start)}
		case "continue":
			p.advance()
			p.eatPunct(";")
			return &ContinueStatement{span: p.sp(start)}
		case "import":
			// `import(...)` is a call expression, not a declaration.
			if !(p.peek(1).Kind == lexer.KindPunct && p.peek(1).Text == "(") {
				return p.parseImportDeclaration()
			}
		case "export":
			return p.parseExportDeclaration()
		case "debugger":
			p.advance()
			p.eatPunct(";")
			return &EmptyStatement{span: p.sp(start)}
		}
	}

	// Labeled statement: the label itself is discarded.
	if isIdentLike(p.tok()) && p.peek(1).Kind == lexer.KindPunct && p.peek(1).Text == ":" {
		p.advance()
		p.advance()
		return p.parseStatement()
	}

	x := p.parseExpression()
	p.eatPunct(";")
	return &ExpressionStatement{span: p.sp(start), X: x}
}

func (p *Parser) parseBlock() *BlockStatement {
	start := p.expectPunct("{").Start
	body := p.parseStatements(func() bool { return p.atPunct("}") })
	p.expectClose("}")
	return &BlockStatement{span: p.sp(start), Body: body}
}

func (p *Parser) parseVariableStatement() Stmt {
	decl := p.parseVariableDeclaration()
	p.eatPunct(";")
	decl.end = p.prevEnd()
	return decl
}

// parseVariableDeclaration parses `var|let|const` declarators without the
// trailing semicolon, so for-heads can reuse it.
func (p *Parser) parseVariableDeclaration() *VariableDeclaration {
	kw := p.advance()
	decl := &VariableDeclaration{span: span{kw.Start, kw.End}, DeclKind: kw.Text}
	for {
		dStart := p.tok().Start
		target := p.parseBindingTarget()
		var init Expr
		if p.eatOp("=") {
			init = p.parseAssignment()
		}
		decl.Decls = append(decl.Decls, &VariableDeclarator{
			span:   p.sp(dStart),
			Target: target,
			Init:   init,
		})
		if !p.eatPunct(",") {
			break
		}
	}
	decl.end = p.prevEnd()
	return decl
}

func (p *Parser) parseBindingTarget() Expr {
	switch {
	case p.atPunct("{"):
		return p.parseObjectLiteral()
	case p.atPunct("["):
		return p.parseArrayLiteral()
	default:
		return p.expectIdentifier("binding name")
	}
}

func (p *Parser) parseFunctionDeclaration(isAsync bool) Stmt {
	start := p.tok().Start
	if isAsync {
		start = p.toks[p.pos-1].Start
	}
	p.advance() // function
	isGen := p.eatOp("*")
	var name *Identifier
	if isIdentLike(p.tok()) {
		name = p.identifier()
	} else {
		p.softErrorf("function name", "anonymous function in statement position")
	}
	params := p.parseParams()
	body := p.parseBlock()
	return &FunctionDeclaration{
		span:        p.sp(start),
		Name:        name,
		Params:      params,
		Body:        body,
		IsAsync:     isAsync,
		IsGenerator: isGen,
	}
}

func (p *Parser) parseClassDeclaration() Stmt {
	return p.parseClass()
}

// parseClass parses `class Name? extends Super? { ... }`. It backs both the
// statement and the expression form.
func (p *Parser) parseClass() *ClassDeclaration {
	start := p.advance().Start // class
	cls := &ClassDeclaration{}
	if isIdentLike(p.tok()) {
		cls.Name = p.identifier()
	}
	if p.eatKeyword("extends") {
		cls.SuperClass = p.parseCallMember()
	}
	p.expectPunct("{")
	for !p.eof() && !p.atPunct("}") {
		if p.eatPunct(";") {
			continue
		}
		before := p.pos
		if m := p.parseClassMemberRecover(); m != nil {
			cls.Body = append(cls.Body, m)
		}
		if p.pos == before {
			p.advance()
		}
	}
	p.expectClose("}")
	cls.span = p.sp(start)
	return cls
}

func (p *Parser) parseClassMemberRecover() (m ClassElement) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}
			// Skip to the next member boundary.
			for !p.eof() && !p.atPunct(";") && !p.atPunct("}") && !startsMemberKey(p.tok()) && !p.atOp("*") {
				p.advance()
			}
			p.eatPunct(";")
			m = nil
		}
	}()
	return p.parseClassMember()
}

func (p *Parser) parseClassMember() ClassElement {
	start := p.tok().Start
	isStatic := false
	if p.atKeyword("static") && startsMemberHead(p.peek(1)) {
		p.advance()
		isStatic = true
	}
	isAsync := false
	if p.atKeyword("async") && startsMemberHead(p.peek(1)) && p.sameLine(p.tok(), p.peek(1)) {
		p.advance()
		isAsync = true
	}
	isGen := p.eatOp("*")
	accessor := ""
	if (p.atKeyword("get") || p.atKeyword("set")) && startsMemberKey(p.peek(1)) {
		accessor = p.advance().Text
	}

	key := p.parseMemberKey()

	if p.atPunct("(") {
		fnStart := key.Pos()
		params := p.parseParams()
		body := p.parseBlock()
		kind := "method"
		switch {
		case accessor != "":
			kind = accessor
		case key.Name == "constructor" && !isStatic:
			kind = "constructor"
		}
		return &MethodDefinition{
			span:       p.sp(start),
			Key:        key,
			MethodKind: kind,
			Static:     isStatic,
			Value: &FunctionExpression{
				span:        p.sp(fnStart),
				Params:      params,
				Body:        body,
				IsAsync:     isAsync,
				IsGenerator: isGen,
			},
		}
	}

	prop := &PropertyDefinition{Key: key, Static: isStatic}
	if p.eatOp("=") {
		prop.Value = p.parseAssignment()
	}
	p.eatPunct(";")
	prop.span = p.sp(start)
	return prop
}

// parseMemberKey accepts identifiers, keywords, string and number literals,
// #private names, and computed keys. Computed keys collapse to the literal
// string when one is present and to an anonymous key otherwise.
func (p *Parser) parseMemberKey() *Identifier {
	t := p.tok()
	switch {
	case t.Kind == lexer.KindPlain && t.Text == "#" && isIdentLike(p.peek(1)) && t.End == p.peek(1).Start:
		p.advance()
		name := p.advance()
		return &Identifier{span: span{t.Start, name.End}, Name: "#" + name.Text}
	case isIdentLike(t) || t.Kind == lexer.KindKeyword:
		p.advance()
		return &Identifier{span: span{t.Start, t.End}, Name: t.Text}
	case t.Kind == lexer.KindString:
		p.advance()
		return &Identifier{span: span{t.Start, t.End}, Name: unquoteString(t.Text)}
	case t.Kind == lexer.KindNumber:
		p.advance()
		return &Identifier{span: span{t.Start, t.End}, Name: t.Text}
	case t.Kind == lexer.KindPunct && t.Text == "[":
		p.advance()
		x := p.parseAssignment()
		p.expectClose("]")
		name := ""
		if s, ok := x.(*StringLiteral); ok {
			name = s.Value
		}
		return &Identifier{span: span{t.Start, p.prevEnd()}, Name: name}
	}
	p.errorf("property name", "unexpected %s", describe(t))
	return nil
}

func (p *Parser) parseParams() []*Parameter {
	p.expectPunct("(")
	var params []*Parameter
	for !p.eof() && !p.atPunct(")") {
		start := p.tok().Start
		param := &Parameter{Rest: p.eatOp("...")}
		if p.atPunct("{") || p.atPunct("[") {
			param.Pattern = p.parseBindingTarget()
		} else {
			param.Name = p.expectIdentifier("parameter name")
		}
		if p.eatOp("=") {
			param.Default = p.parseAssignment()
		}
		param.span = p.sp(start)
		params = append(params, param)
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectClose(")")
	return params
}

func (p *Parser) parseIfStatement() Stmt {
	start := p.advance().Start // if
	p.expectPunct("(")
	test := p.parseExpression()
	p.expectClose(")")
	cons := p.parseStatement()
	var alt Stmt
	if p.eatKeyword("else") {
		alt = p.parseStatement()
	}
	return &IfStatement{span: p.sp(start), Test: test, Consequent: cons, Alternate: alt}
}

func (p *Parser) parseForStatement() Stmt {
	start := p.advance().Start // for
	p.eatKeyword("await")
	p.expectPunct("(")

	var init Node
	if !p.atPunct(";") {
		if t := p.tok(); t.Kind == lexer.KindKeyword && (t.Text == "var" || t.Text == "let" || t.Text == "const") {
			kw := p.advance()
			target := p.parseBindingTarget()
			decl := &VariableDeclaration{span: span{kw.Start, p.prevEnd()}, DeclKind: kw.Text}
			d := &VariableDeclarator{span: span{target.Pos(), target.End()}, Target: target}
			decl.Decls = append(decl.Decls, d)

			if p.eatKeyword("of") {
				return p.parseForOfTail(start, decl)
			}
			if p.eatKeyword("in") {
				return p.parseForInTail(start, decl)
			}
			if p.eatOp("=") {
				d.Init = p.parseAssignment()
				d.end = p.prevEnd()
			}
			for p.eatPunct(",") {
				dStart := p.tok().Start
				t2 := p.parseBindingTarget()
				var init2 Expr
				if p.eatOp("=") {
					init2 = p.parseAssignment()
				}
				decl.Decls = append(decl.Decls, &VariableDeclarator{span: p.sp(dStart), Target: t2, Init: init2})
			}
			decl.end = p.prevEnd()
			init = decl
		} else {
			p.noIn++
			left := p.parseExpression()
			p.noIn--
			if p.eatKeyword("of") {
				return p.parseForOfTail(start, left)
			}
			if p.eatKeyword("in") {
				return p.parseForInTail(start, left)
			}
			init = left
		}
	}

	p.expectPunct(";")
	var test, update Expr
	if !p.atPunct(";") {
		test = p.parseExpression()
	}
	p.expectPunct(";")
	if !p.atPunct(")") {
		update = p.parseExpression()
	}
	p.expectClose(")")
	body := p.parseStatement()
	return &ForStatement{span: p.sp(start), Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseForOfTail(start int, left Node) Stmt {
	right := p.parseAssignment()
	p.expectClose(")")
	body := p.parseStatement()
	return &ForOfStatement{span: p.sp(start), Left: left, Right: right, Body: body}
}

func (p *Parser) parseForInTail(start int, left Node) Stmt {
	right := p.parseAssignment()
	p.expectClose(")")
	body := p.parseStatement()
	return &ForInStatement{span: p.sp(start), Left: left, Right: right, Body: body}
}

func (p *Parser) parseWhileStatement() Stmt {
	start := p.advance().Start
	p.expectPunct("(")
	test := p.parseExpression()
	p.expectClose(")")
	body := p.parseStatement()
	return &WhileStatement{span: p.sp(start), Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement() Stmt {
	start := p.advance().Start // do
	body := p.parseStatement()
	if !p.eatKeyword("while") {
		p.errorf("'while'", "unexpected %s", describe(p.tok()))
	}
	p.expectPunct("(")
	test := p.parseExpression()
	p.expectClose(")")
	p.eatPunct(";")
	return &DoWhileStatement{span: p.sp(start), Body: body, Test: test}
}

func (p *Parser) parseSwitchStatement() Stmt {
	start := p.advance().Start // switch
	p.expectPunct("(")
	disc := p.parseExpression()
	p.expectClose(")")
	p.expectPunct("{")
	sw := &SwitchStatement{Disc: disc}
	for !p.eof() && !p.atPunct("}") {
		cStart := p.tok().Start
		var test Expr
		switch {
		case p.eatKeyword("case"):
			test = p.parseExpression()
		case p.eatKeyword("default"):
		default:
			p.softErrorf("'case' or 'default'", "unexpected %s", describe(p.tok()))
			p.advance()
			continue
		}
		p.expectClose(":")
		body := p.parseStatements(func() bool {
			return p.atPunct("}") || p.atKeyword("case") || p.atKeyword("default")
		})
		sw.Cases = append(sw.Cases, &SwitchCase{span: p.sp(cStart), Test: test, Body: body})
	}
	p.expectClose("}")
	sw.span = p.sp(start)
	return sw
}

func (p *Parser) parseTryStatement() Stmt {
	start := p.advance().Start // try
	block := p.parseBlock()
	ts := &TryStatement{Block: block}
	if p.atKeyword("catch") {
		cStart := p.advance().Start
		cc := &CatchClause{}
		if p.eatPunct("(") {
			if p.atPunct("{") || p.atPunct("[") {
				p.parseBindingTarget() // pattern binding is not tracked
			} else {
				cc.Param = p.expectIdentifier("catch parameter")
			}
			p.expectClose(")")
		}
		cc.Body = p.parseBlock()
		cc.span = p.sp(cStart)
		ts.Handler = cc
	}
	if p.eatKeyword("finally") {
		ts.Finalizer = p.parseBlock()
	}
	if ts.Handler == nil && ts.Finalizer == nil {
		p.softErrorf("'catch' or 'finally'", "try without catch or finally")
	}
	ts.span = p.sp(start)
	return ts
}

func (p *Parser) parseThrowStatement() Stmt {
	start := p.advance().Start
	arg := p.parseExpression()
	p.eatPunct(";")
	return &ThrowStatement{span: p.sp(start), Arg: arg}
}

func (p *Parser) parseReturnStatement() Stmt {
	kw := p.advance()
	var arg Expr
	if !p.eof() && !p.atPunct(";") && !p.atPunct("}") && p.sameLine(kw, p.tok()) {
		arg = p.parseExpression()
	}
	p.eatPunct(";")
	return &ReturnStatement{span: p.sp(kw.Start), Arg: arg}
}

func (p *Parser) parseImportDeclaration() Stmt {
	start := p.advance().Start // import
	imp := &ImportDeclaration{}

	if t := p.tok(); t.Kind == lexer.KindString {
		// Side-effect import.
		p.advance()
		imp.Source = unquoteString(t.Text)
		p.eatPunct(";")
		imp.span = p.sp(start)
		return imp
	}

	parseNamed := func() {
		p.expectPunct("{")
		for !p.eof() && !p.atPunct("}") {
			sStart := p.tok().Start
			name := p.expectIdentifier("import name")
			spec := &ImportSpecifier{Name: name}
			if p.eatKeyword("as") {
				spec.Alias = p.expectIdentifier("import alias")
			}
			spec.span = p.sp(sStart)
			imp.Names = append(imp.Names, spec)
			if !p.eatPunct(",") {
				break
			}
		}
		p.expectClose("}")
	}

	switch {
	case p.atPunct("{"):
		parseNamed()
	case p.atOp("*"):
		p.advance()
		if !p.eatKeyword("as") {
			p.errorf("'as'", "unexpected %s", describe(p.tok()))
		}
		imp.Namespace = p.expectIdentifier("namespace name")
	default:
		imp.Default = p.expectIdentifier("import binding")
		if p.eatPunct(",") {
			if p.atOp("*") {
				p.advance()
				if !p.eatKeyword("as") {
					p.errorf("'as'", "unexpected %s", describe(p.tok()))
				}
				imp.Namespace = p.expectIdentifier("namespace name")
			} else {
				parseNamed()
			}
		}
	}

	// A half-typed import keeps its bindings even without a source yet.
	if !p.eatKeyword("from") {
		p.softErrorf("'from'", "import without module path")
		p.eatPunct(";")
		imp.span = p.sp(start)
		return imp
	}
	src := p.tok()
	if src.Kind != lexer.KindString {
		p.softErrorf("module path", "unexpected %s", describe(src))
		imp.span = p.sp(start)
		return imp
	}
	p.advance()
	imp.Source = unquoteString(src.Text)
	p.eatPunct(";")
	imp.span = p.sp(start)
	return imp
}

func (p *Parser) parseExportDeclaration() Stmt {
	start := p.advance().Start // export

	if p.eatKeyword("default") {
		var decl Stmt
		switch {
		case p.atKeyword("function"):
			decl = p.parseFunctionDeclaration(false)
		case p.atKeyword("async") && p.peek(1).Kind == lexer.KindKeyword && p.peek(1).Text == "function":
			p.advance()
			decl = p.parseFunctionDeclaration(true)
		case p.atKeyword("class"):
			decl = p.parseClassDeclaration()
		default:
			x := p.parseAssignment()
			p.eatPunct(";")
			decl = &ExpressionStatement{span: span{x.Pos(), x.End()}, X: x}
		}
		return &ExportDeclaration{span: p.sp(start), Decl: decl}
	}

	if p.atPunct("{") || p.atOp("*") {
		// Re-export or export list: consume through the optional source.
		if p.atOp("*") {
			p.advance()
			if p.eatKeyword("as") {
				p.expectIdentifier("export alias")
			}
		} else {
			p.advance()
			for !p.eof() && !p.atPunct("}") {
				p.advance()
			}
			p.expectClose("}")
		}
		if p.eatKeyword("from") {
			if p.tok().Kind == lexer.KindString {
				p.advance()
			} else {
				p.softErrorf("module path", "unexpected %s", describe(p.tok()))
			}
		}
		p.eatPunct(";")
		return &ExportDeclaration{span: p.sp(start)}
	}

	decl := p.parseStatement()
	return &ExportDeclaration{span: p.sp(start), Decl: decl}
}

// --- identifier helpers -----------------------------------------------------

// contextualKeywords may appear wherever an identifier is expected.
var contextualKeywords = map[string]bool{
	"get": true, "set": true, "static": true, "async": true,
	"of": true, "from": true, "as": true,
}

func isIdentLike(t lexer.Token) bool {
	switch t.Kind {
	case lexer.KindIdent, lexer.KindFunctionName, lexer.KindClassName:
		return true
	case lexer.KindKeyword:
		return contextualKeywords[t.Text]
	}
	return false
}

func (p *Parser) identifier() *Identifier {
	t := p.advance()
	return &Identifier{span: span{t.Start, t.End}, Name: t.Text}
}

func (p *Parser) expectIdentifier(what string) *Identifier {
	if !isIdentLike(p.tok()) {
		p.errorf(what, "unexpected %s", describe(p.tok()))
	}
	return p.identifier()
}

// startsMemberKey reports whether t could begin a class-member or object key.
func startsMemberKey(t lexer.Token) bool {
	switch t.Kind {
	case lexer.KindIdent, lexer.KindKeyword, lexer.KindFunctionName, lexer.KindClassName, lexer.KindString, lexer.KindNumber:
		return true
	case lexer.KindPunct:
		return t.Text == "["
	case lexer.KindPlain:
		return t.Text == "#"
	}
	return false
}

// startsMemberHead additionally admits the generator star, so `static *gen()`
// and `async *gen()` treat static/async as modifiers.
func startsMemberHead(t lexer.Token) bool {
	return startsMemberKey(t) || (t.Kind == lexer.KindOperator && t.Text == "*")
}

func describe(t lexer.Token) string {
	if t.Text == "" {
		return "end of input"
	}
	return "'" + t.Text + "'"
}

package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/cmmoran/jsls/internal/lexer"
)

// binaryPrec orders the binary operators; higher binds tighter. Exponent is
// the one right-associative level.
var binaryPrec = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true,
	"&=": true, "|=": true, "^=": true,
	"&&=": true, "||=": true, "??=": true,
}

// parseExpression parses a full expression including the comma operator.
// Argument lists and array elements use parseAssignment instead, where a
// comma is a separator.
func (p *Parser) parseExpression() Expr {
	x := p.parseAssignment()
	if !p.atPunct(",") {
		return x
	}
	seq := &SequenceExpression{Exprs: []Expr{x}}
	for p.eatPunct(",") {
		seq.Exprs = append(seq.Exprs, p.parseAssignment())
	}
	seq.span = span{x.Pos(), p.prevEnd()}
	return seq
}

func (p *Parser) parseAssignment() Expr {
	if a, ok := p.tryArrow(); ok {
		return a
	}
	left := p.parseConditional()
	if t := p.tok(); t.Kind == lexer.KindOperator && assignOps[t.Text] {
		p.advance()
		right := p.parseAssignment()
		return &AssignmentExpression{span: span{left.Pos(), right.End()}, Op: t.Text, Left: left, Right: right}
	}
	return left
}

// tryArrow recognizes arrow functions before general expression parsing
// starts. A parenthesized head is an arrow head only when the matching close
// paren is directly followed by =>, which one bounded scan of the token
// buffer decides without backtracking.
func (p *Parser) tryArrow() (Expr, bool) {
	t := p.tok()

	if t.Kind == lexer.KindKeyword && t.Text == "async" && p.sameLine(t, p.peek(1)) {
		n := p.peek(1)
		if isIdentLike(n) && p.isOpAt(2, "=>") {
			p.advance() // async
			param := p.singleParam()
			p.expectOp("=>")
			return p.finishArrow(t.Start, []*Parameter{param}, true), true
		}
		if n.Kind == lexer.KindPunct && n.Text == "(" && p.parenArrowAhead(1) {
			p.advance() // async
			params := p.parseParams()
			p.expectOp("=>")
			return p.finishArrow(t.Start, params, true), true
		}
		return nil, false
	}

	if isIdentLike(t) && p.isOpAt(1, "=>") {
		param := p.singleParam()
		p.expectOp("=>")
		return p.finishArrow(t.Start, []*Parameter{param}, false), true
	}

	if t.Kind == lexer.KindPunct && t.Text == "(" && p.parenArrowAhead(0) {
		params := p.parseParams()
		p.expectOp("=>")
		return p.finishArrow(t.Start, params, false), true
	}
	return nil, false
}

func (p *Parser) singleParam() *Parameter {
	name := p.identifier()
	return &Parameter{span: span{name.Pos(), name.End()}, Name: name}
}

func (p *Parser) isOpAt(n int, text string) bool {
	t := p.peek(n)
	return t.Kind == lexer.KindOperator && t.Text == text
}

func (p *Parser) parenArrowAhead(skip int) bool {
	depth := 0
	for i := p.pos + skip; i < len(p.toks); i++ {
		t := p.toks[i]
		if t.Kind != lexer.KindPunct {
			continue
		}
		switch t.Text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i+1 < len(p.toks) && p.toks[i+1].Kind == lexer.KindOperator && p.toks[i+1].Text == "=>"
			}
		}
	}
	return false
}

func (p *Parser) finishArrow(start int, params []*Parameter, isAsync bool) Expr {
	var body Node
	if p.atPunct("{") {
		body = p.parseBlock()
	} else {
		body = p.parseAssignment()
	}
	return &ArrowFunction{span: p.sp(start), Params: params, Body: body, IsAsync: isAsync}
}

func (p *Parser) parseConditional() Expr {
	cond := p.parseBinary(1)
	if !p.atOp("?") {
		return cond
	}
	p.advance()
	cons := p.parseAssignment()
	p.expectPunct(":")
	alt := p.parseAssignment()
	return &ConditionalExpression{span: span{cond.Pos(), alt.End()}, Test: cond, Consequent: cons, Alternate: alt}
}

// binaryOpAt reports the binary operator at the cursor, if any. `in` is
// suppressed while a for-head is being parsed so `for (k in obj)` is not
// swallowed as a binary expression.
func (p *Parser) binaryOpAt() (string, int, bool) {
	t := p.tok()
	switch t.Kind {
	case lexer.KindOperator:
		if prec, ok := binaryPrec[t.Text]; ok {
			return t.Text, prec, true
		}
	case lexer.KindKeyword:
		switch t.Text {
		case "instanceof":
			return "instanceof", 8, true
		case "in":
			if p.noIn == 0 {
				return "in", 8, true
			}
		}
	}
	return "", 0, false
}

func (p *Parser) parseBinary(minPrec int) Expr {
	left := p.parseUnary()
	for {
		op, prec, ok := p.binaryOpAt()
		if !ok || prec < minPrec {
			return left
		}
		p.advance()
		next := prec + 1
		if op == "**" {
			next = prec
		}
		right := p.parseBinary(next)
		sp := span{left.Pos(), right.End()}
		switch op {
		case "&&", "||", "??":
			left = &LogicalExpression{span: sp, Op: op, Left: left, Right: right}
		default:
			left = &BinaryExpression{span: sp, Op: op, Left: left, Right: right}
		}
	}
}

func (p *Parser) parseUnary() Expr {
	t := p.tok()
	if t.Kind == lexer.KindOperator {
		switch t.Text {
		case "!", "~", "+", "-":
			p.advance()
			arg := p.parseUnary()
			return &UnaryExpression{span: span{t.Start, arg.End()}, Op: t.Text, Arg: arg}
		case "++", "--":
			p.advance()
			arg := p.parseUnary()
			return &UpdateExpression{span: span{t.Start, arg.End()}, Op: t.Text, Arg: arg, Prefix: true}
		}
	}
	if t.Kind == lexer.KindKeyword {
		switch t.Text {
		case "typeof", "void", "delete", "await":
			p.advance()
			arg := p.parseUnary()
			return &UnaryExpression{span: span{t.Start, arg.End()}, Op: t.Text, Arg: arg}
		case "yield":
			p.advance()
			p.eatOp("*")
			var arg Expr
			if p.startsExpression() && p.sameLine(t, p.tok()) {
				arg = p.parseAssignment()
			}
			return &UnaryExpression{span: p.sp(t.Start), Op: "yield", Arg: arg}
		case "new":
			return p.parseNew()
		}
	}
	return p.parsePostfix()
}

func (p *Parser) startsExpression() bool {
	t := p.tok()
	switch t.Kind {
	case lexer.KindIdent, lexer.KindFunctionName, lexer.KindClassName, lexer.KindNumber, lexer.KindString:
		return true
	case lexer.KindKeyword:
		switch t.Text {
		case "this", "super", "null", "undefined", "true", "false", "NaN",
			"Infinity", "function", "class", "new", "typeof", "void", "delete",
			"await", "async", "yield", "import":
			return true
		}
		return contextualKeywords[t.Text]
	case lexer.KindPunct:
		return t.Text == "(" || t.Text == "[" || t.Text == "{"
	case lexer.KindOperator:
		switch t.Text {
		case "!", "~", "+", "-", "++", "--":
			return true
		}
	}
	return false
}

func (p *Parser) parsePostfix() Expr {
	x := p.parseCallMember()
	if t := p.tok(); t.Kind == lexer.KindOperator && (t.Text == "++" || t.Text == "--") &&
		p.pos > 0 && p.sameLine(p.toks[p.pos-1], t) {
		p.advance()
		return &UpdateExpression{span: span{x.Pos(), t.End}, Op: t.Text, Arg: x}
	}
	return x
}

func (p *Parser) parseNew() Expr {
	start := p.advance().Start // new
	if p.atPunct(".") {
		// new.target
		dot := p.advance()
		p.memberIdent(dot)
		return &Identifier{span: p.sp(start), Name: "new.target"}
	}
	var callee Expr
	if p.atKeyword("new") {
		callee = p.parseNew()
	} else {
		callee = p.parseMemberTail(p.parsePrimary())
	}
	var args []Expr
	if p.atPunct("(") {
		args = p.parseArgs()
	}
	x := &NewExpression{span: p.sp(start), Callee: callee, Args: args}
	return p.parseCallTail(x)
}

// parseMemberTail extends x with member accesses only; a call ends the callee
// of a `new` expression.
func (p *Parser) parseMemberTail(x Expr) Expr {
	for {
		switch {
		case p.atPunct("."):
			dot := p.advance()
			name := p.memberIdent(dot)
			x = &MemberExpression{span: span{x.Pos(), name.End()}, Object: x, Property: name}
		case p.atPunct("["):
			p.advance()
			idx := p.parseExpression()
			p.expectClose("]")
			x = &MemberExpression{span: span{x.Pos(), p.prevEnd()}, Object: x, Index: idx}
		default:
			return x
		}
	}
}

func (p *Parser) parseCallMember() Expr {
	return p.parseCallTail(p.parsePrimary())
}

func (p *Parser) parseCallTail(x Expr) Expr {
	for {
		t := p.tok()
		switch {
		case t.Kind == lexer.KindPunct && t.Text == ".":
			dot := p.advance()
			name := p.memberIdent(dot)
			x = &MemberExpression{span: span{x.Pos(), name.End()}, Object: x, Property: name}
		case t.Kind == lexer.KindOperator && t.Text == "?.":
			dot := p.advance()
			switch {
			case p.atPunct("("):
				args := p.parseArgs()
				x = &CallExpression{span: span{x.Pos(), p.prevEnd()}, Callee: x, Args: args, Optional: true}
			case p.atPunct("["):
				p.advance()
				idx := p.parseExpression()
				p.expectClose("]")
				x = &MemberExpression{span: span{x.Pos(), p.prevEnd()}, Object: x, Index: idx, Optional: true}
			default:
				name := p.memberIdent(dot)
				x = &MemberExpression{span: span{x.Pos(), name.End()}, Object: x, Property: name, Optional: true}
			}
		case t.Kind == lexer.KindPunct && t.Text == "[":
			p.advance()
			idx := p.parseExpression()
			p.expectClose("]")
			x = &MemberExpression{span: span{x.Pos(), p.prevEnd()}, Object: x, Index: idx}
		case t.Kind == lexer.KindPunct && t.Text == "(":
			args := p.parseArgs()
			x = &CallExpression{span: span{x.Pos(), p.prevEnd()}, Callee: x, Args: args}
		case t.Kind == lexer.KindString && t.Text == "`":
			tpl := p.parseTemplate()
			x = &CallExpression{span: span{x.Pos(), tpl.End()}, Callee: x, Args: []Expr{tpl}}
		default:
			return x
		}
	}
}

// memberIdent reads the property name after a dot. Any keyword is a valid
// property name there, except that a statement keyword on the next line is
// left alone: `foo.` at the end of a line must not swallow the `let` below
// it while the user is still typing. A missing name yields an empty
// identifier so the chain so far survives in the tree.
func (p *Parser) memberIdent(dot lexer.Token) *Identifier {
	t := p.tok()
	if t.Kind == lexer.KindPlain && t.Text == "#" && isIdentLike(p.peek(1)) && t.End == p.peek(1).Start {
		p.advance()
		n := p.advance()
		return &Identifier{span: span{t.Start, n.End}, Name: "#" + n.Text}
	}
	if t.Kind == lexer.KindKeyword && !contextualKeywords[t.Text] && stmtStart[t.Text] && !p.sameLine(dot, t) {
		p.softErrorf("property name", "missing property name")
		return &Identifier{span: span{dot.End, dot.End}, Name: ""}
	}
	if isIdentLike(t) || t.Kind == lexer.KindKeyword {
		p.advance()
		return &Identifier{span: span{t.Start, t.End}, Name: t.Text}
	}
	p.softErrorf("property name", "unexpected %s", describe(t))
	return &Identifier{span: span{t.Start, t.Start}, Name: ""}
}

func (p *Parser) parseArgs() []Expr {
	p.expectPunct("(")
	var args []Expr
	for !p.eof() && !p.atPunct(")") {
		if p.atOp("...") {
			s := p.advance()
			arg := p.parseAssignment()
			args = append(args, &SpreadElement{span: span{s.Start, arg.End()}, Arg: arg})
		} else {
			args = append(args, p.parseAssignment())
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectClose(")")
	return args
}

func (p *Parser) parsePrimary() Expr {
	t := p.tok()
	switch t.Kind {
	case lexer.KindIdent, lexer.KindFunctionName, lexer.KindClassName:
		return p.identifier()
	case lexer.KindNumber:
		p.advance()
		return &NumberLiteral{span: span{t.Start, t.End}, Value: parseNumeric(t.Text), Raw: t.Text}
	case lexer.KindString:
		if t.Text == "`" {
			return p.parseTemplate()
		}
		p.advance()
		return &StringLiteral{span: span{t.Start, t.End}, Value: unquoteString(t.Text), Raw: t.Text}
	case lexer.KindKeyword:
		switch t.Text {
		case "this":
			p.advance()
			return &ThisExpression{span: span{t.Start, t.End}}
		case "super":
			p.advance()
			return &SuperExpression{span: span{t.Start, t.End}}
		case "null":
			p.advance()
			return &NullLiteral{span: span{t.Start, t.End}}
		case "undefined":
			p.advance()
			return &UndefinedLiteral{span: span{t.Start, t.End}}
		case "true", "false":
			p.advance()
			return &BooleanLiteral{span: span{t.Start, t.End}, Value: t.Text == "true"}
		case "NaN":
			p.advance()
			return &NumberLiteral{span: span{t.Start, t.End}, Value: math.NaN(), Raw: t.Text}
		case "Infinity":
			p.advance()
			return &NumberLiteral{span: span{t.Start, t.End}, Value: math.Inf(1), Raw: t.Text}
		case "function":
			return p.parseFunctionExpression(false)
		case "async":
			if n := p.peek(1); n.Kind == lexer.KindKeyword && n.Text == "function" && p.sameLine(t, n) {
				p.advance()
				return p.parseFunctionExpression(true)
			}
			p.advance()
			return &Identifier{span: span{t.Start, t.End}, Name: t.Text}
		case "class":
			return p.parseClass()
		case "new":
			return p.parseNew()
		case "import":
			// Dynamic import: leave the callee as a plain identifier.
			p.advance()
			return &Identifier{span: span{t.Start, t.End}, Name: t.Text}
		default:
			if contextualKeywords[t.Text] {
				p.advance()
				return &Identifier{span: span{t.Start, t.End}, Name: t.Text}
			}
		}
	case lexer.KindPunct:
		switch t.Text {
		case "(":
			p.advance()
			x := p.parseExpression()
			p.expectClose(")")
			return x
		case "[":
			return p.parseArrayLiteral()
		case "{":
			return p.parseObjectLiteral()
		}
	}
	p.errorf("expression", "unexpected %s", describe(t))
	return nil
}

func (p *Parser) parseFunctionExpression(isAsync bool) Expr {
	start := p.tok().Start
	if isAsync {
		start = p.toks[p.pos-1].Start
	}
	p.advance() // function
	isGen := p.eatOp("*")
	var name *Identifier
	if isIdentLike(p.tok()) {
		name = p.identifier()
	}
	params := p.parseParams()
	body := p.parseBlock()
	return &FunctionExpression{
		span:        p.sp(start),
		Name:        name,
		Params:      params,
		Body:        body,
		IsAsync:     isAsync,
		IsGenerator: isGen,
	}
}

func (p *Parser) parseArrayLiteral() *ArrayLiteral {
	start := p.expectPunct("[").Start
	arr := &ArrayLiteral{}
	for !p.eof() && !p.atPunct("]") {
		if p.atPunct(",") {
			// Elision hole.
			p.advance()
			continue
		}
		if p.atOp("...") {
			s := p.advance()
			arg := p.parseAssignment()
			arr.Elements = append(arr.Elements, &SpreadElement{span: span{s.Start, arg.End()}, Arg: arg})
		} else {
			arr.Elements = append(arr.Elements, p.parseAssignment())
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectClose("]")
	arr.span = p.sp(start)
	return arr
}

func (p *Parser) parseObjectLiteral() *ObjectLiteral {
	start := p.expectPunct("{").Start
	obj := &ObjectLiteral{}
	for !p.eof() && !p.atPunct("}") {
		pStart := p.tok().Start

		if p.atOp("...") {
			s := p.advance()
			arg := p.parseAssignment()
			sp := span{s.Start, arg.End()}
			obj.Props = append(obj.Props, &Property{span: sp, Key: "...", Value: &SpreadElement{span: sp, Arg: arg}})
			if !p.eatPunct(",") {
				break
			}
			continue
		}

		isAsync := false
		if p.atKeyword("async") && startsMemberHead(p.peek(1)) && p.sameLine(p.tok(), p.peek(1)) {
			p.advance()
			isAsync = true
		}
		isGen := p.eatOp("*")
		if (p.atKeyword("get") || p.atKeyword("set")) && startsMemberKey(p.peek(1)) {
			// Accessor properties surface as plain methods.
			p.advance()
		}
		key := p.parseMemberKey()

		switch {
		case p.atPunct("("):
			params := p.parseParams()
			body := p.parseBlock()
			fe := &FunctionExpression{span: span{key.Pos(), p.prevEnd()}, Params: params, Body: body, IsAsync: isAsync, IsGenerator: isGen}
			obj.Props = append(obj.Props, &Property{span: p.sp(pStart), Key: key.Name, Value: fe, Method: true})
		case p.eatPunct(":"):
			v := p.parseAssignment()
			obj.Props = append(obj.Props, &Property{span: p.sp(pStart), Key: key.Name, Value: v})
		default:
			// Shorthand; a destructuring default may follow.
			v := &Identifier{span: span{key.Pos(), key.End()}, Name: key.Name}
			if p.eatOp("=") {
				p.parseAssignment()
			}
			obj.Props = append(obj.Props, &Property{span: p.sp(pStart), Key: key.Name, Value: v, Shorthand: true})
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectClose("}")
	obj.span = p.sp(start)
	return obj
}

// parseTemplate reassembles a template literal from the lexer's piecewise
// tokens: an opening backtick, string runs, ${ ... } splices, and a closing
// backtick.
func (p *Parser) parseTemplate() *TemplateLiteral {
	open := p.advance() // `
	tpl := &TemplateLiteral{}
	var quasi strings.Builder
	closed := false
	for !p.eof() {
		t := p.tok()
		if t.Kind == lexer.KindString && t.Text == "`" {
			p.advance()
			closed = true
			break
		}
		if t.Kind == lexer.KindPunct && t.Text == "${" {
			p.advance()
			tpl.Quasis = append(tpl.Quasis, quasi.String())
			quasi.Reset()
			tpl.Exprs = append(tpl.Exprs, p.parseExpression())
			p.expectClose("}")
			continue
		}
		if t.Kind == lexer.KindString {
			quasi.WriteString(t.Text)
			p.advance()
			continue
		}
		break
	}
	tpl.Quasis = append(tpl.Quasis, quasi.String())
	if !closed {
		p.softErrorf("'`'", "unterminated template literal")
	}
	tpl.span = p.sp(open.Start)
	return tpl
}

// --- literals ---------------------------------------------------------------

func parseNumeric(raw string) float64 {
	s := strings.TrimSuffix(raw, "n")
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			if v, err := strconv.ParseUint(s[2:], 16, 64); err == nil {
				return float64(v)
			}
		case 'b', 'B':
			if v, err := strconv.ParseUint(s[2:], 2, 64); err == nil {
				return float64(v)
			}
		case 'o', 'O':
			if v, err := strconv.ParseUint(s[2:], 8, 64); err == nil {
				return float64(v)
			}
		}
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// unquoteString strips the quotes from a string literal and resolves the
// common escapes. Unterminated literals (no closing quote on the line) keep
// their tail as-is.
func unquoteString(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	q := raw[0]
	if q != '\'' && q != '"' {
		return raw
	}
	s := raw[1:]
	if s[len(s)-1] == q {
		s = s[:len(s)-1]
	}
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte('x')
		case 'u':
			if i+4 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

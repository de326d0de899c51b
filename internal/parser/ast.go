package parser

// NodeKind tags every AST node. The set is closed: the tree is always built
// by Parse and rebuilt wholesale on each analysis pass, so downstream code
// may switch exhaustively over kinds (or concrete types) without a default
// escape hatch for unknown nodes.
type NodeKind int

const (
	KindProgram NodeKind = iota

	// Statements
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindClassDeclaration
	KindMethodDefinition
	KindPropertyDefinition
	KindParameter
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindSwitchStatement
	KindSwitchCase
	KindTryStatement
	KindCatchClause
	KindThrowStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindBlockStatement
	KindExpressionStatement
	KindEmptyStatement
	KindImportDeclaration
	KindImportSpecifier
	KindExportDeclaration

	// Expressions
	KindIdentifier
	KindStringLiteral
	KindNumberLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindUndefinedLiteral
	KindTemplateLiteral
	KindArrayLiteral
	KindObjectLiteral
	KindProperty
	KindFunctionExpression
	KindArrowFunction
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindConditionalExpression
	KindAssignmentExpression
	KindSequenceExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindThisExpression
	KindSuperExpression
	KindSpreadElement
)

// Node is any AST node. Pos/End are byte offsets into the document; every
// node's span covers its children. The tree has no parent links: ancestry is
// recovered by walking from the root, which stays cheap at this scale.
type Node interface {
	Kind() NodeKind
	Pos() int
	End() int
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// ClassElement is implemented by class-body members.
type ClassElement interface {
	Node
	classElement()
}

type span struct {
	start, end int
}

func (s span) Pos() int { return s.start }
func (s span) End() int { return s.end }

// Program is the AST root. It is never nil, even for unparseable input.
type Program struct {
	span
	Body []Stmt
}

func (*Program) Kind() NodeKind { return KindProgram }

// --- Statements -------------------------------------------------------------

// VariableDeclaration is `var|let|const` with one or more declarators.
type VariableDeclaration struct {
	span
	DeclKind string // "var", "let", "const"
	Decls    []*VariableDeclarator
}

// VariableDeclarator binds one target to an optional initializer. Target is
// usually an *Identifier; destructuring patterns arrive as object/array
// literals and contribute their shallow names via TargetNames.
type VariableDeclarator struct {
	span
	Target Expr
	Init   Expr
}

// TargetNames lists the identifiers bound by the declarator, looking one
// level into destructuring patterns.
func (d *VariableDeclarator) TargetNames() []*Identifier {
	switch t := d.Target.(type) {
	case *Identifier:
		return []*Identifier{t}
	case *ObjectLiteral:
		var out []*Identifier
		for _, p := range t.Props {
			if id, ok := p.Value.(*Identifier); ok {
				out = append(out, id)
			}
		}
		return out
	case *ArrayLiteral:
		var out []*Identifier
		for _, el := range t.Elements {
			if id, ok := el.(*Identifier); ok {
				out = append(out, id)
			}
		}
		return out
	}
	return nil
}

type FunctionDeclaration struct {
	span
	Name        *Identifier
	Params      []*Parameter
	Body        *BlockStatement
	IsAsync     bool
	IsGenerator bool
}

// Parameter is one formal parameter. Destructuring patterns keep the whole
// pattern expression in Pattern with a nil Name; BoundNames flattens either
// form into the identifiers the parameter binds.
type Parameter struct {
	span
	Name    *Identifier
	Pattern Expr
	Default Expr
	Rest    bool
}

// BoundNames lists the identifiers bound by the parameter, looking one level
// into destructuring patterns.
func (p *Parameter) BoundNames() []*Identifier {
	if p.Name != nil {
		return []*Identifier{p.Name}
	}
	switch t := p.Pattern.(type) {
	case *ObjectLiteral:
		var out []*Identifier
		for _, pr := range t.Props {
			if id, ok := pr.Value.(*Identifier); ok {
				out = append(out, id)
			}
		}
		return out
	case *ArrayLiteral:
		var out []*Identifier
		for _, el := range t.Elements {
			if id, ok := el.(*Identifier); ok {
				out = append(out, id)
			}
		}
		return out
	}
	return nil
}

type ClassDeclaration struct {
	span
	Name       *Identifier
	SuperClass Expr
	Body       []ClassElement
}

// MethodDefinition covers constructors, methods, getters and setters.
// MethodKind is one of "constructor", "method", "get", "set".
type MethodDefinition struct {
	span
	Key        *Identifier
	MethodKind string
	Value      *FunctionExpression
	Static     bool
}

// PropertyDefinition is a class field, with or without an initializer.
type PropertyDefinition struct {
	span
	Key    *Identifier
	Value  Expr
	Static bool
}

type IfStatement struct {
	span
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil without else
}

type ForStatement struct {
	span
	Init   Node // *VariableDeclaration, Expr, or nil
	Test   Expr
	Update Expr
	Body   Stmt
}

type ForInStatement struct {
	span
	Left  Node // *VariableDeclaration or Expr
	Right Expr
	Body  Stmt
}

type ForOfStatement struct {
	span
	Left  Node
	Right Expr
	Body  Stmt
}

type WhileStatement struct {
	span
	Test Expr
	Body Stmt
}

type DoWhileStatement struct {
	span
	Body Stmt
	Test Expr
}

type SwitchStatement struct {
	span
	Disc  Expr
	Cases []*SwitchCase
}

type SwitchCase struct {
	span
	Test Expr // nil for default
	Body []Stmt
}

type TryStatement struct {
	span
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

type CatchClause struct {
	span
	Param *Identifier // nil for `catch {}`
	Body  *BlockStatement
}

type ThrowStatement struct {
	span
	Arg Expr
}

type ReturnStatement struct {
	span
	Arg Expr // nil for bare return
}

type BreakStatement struct{ span }

type ContinueStatement struct{ span }

type BlockStatement struct {
	span
	Body []Stmt
}

type ExpressionStatement struct {
	span
	X Expr
}

type EmptyStatement struct{ span }

type ImportDeclaration struct {
	span
	Default   *Identifier        // import Default from '...'
	Namespace *Identifier        // import * as NS from '...'
	Names     []*ImportSpecifier // import { a, b as c } from '...'
	Source    string
}

type ImportSpecifier struct {
	span
	Name  *Identifier
	Alias *Identifier // nil without `as`
}

// ExportDeclaration wraps the exported declaration; bare `export { ... }`
// lists and re-exports carry a nil Decl.
type ExportDeclaration struct {
	span
	Decl Stmt
}

func (*VariableDeclaration) Kind() NodeKind { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() NodeKind  { return KindVariableDeclarator }
func (*FunctionDeclaration) Kind() NodeKind { return KindFunctionDeclaration }
func (*Parameter) Kind() NodeKind           { return KindParameter }
func (*ClassDeclaration) Kind() NodeKind    { return KindClassDeclaration }
func (*MethodDefinition) Kind() NodeKind    { return KindMethodDefinition }
func (*PropertyDefinition) Kind() NodeKind  { return KindPropertyDefinition }
func (*IfStatement) Kind() NodeKind         { return KindIfStatement }
func (*ForStatement) Kind() NodeKind        { return KindForStatement }
func (*ForInStatement) Kind() NodeKind      { return KindForInStatement }
func (*ForOfStatement) Kind() NodeKind      { return KindForOfStatement }
func (*WhileStatement) Kind() NodeKind      { return KindWhileStatement }
func (*DoWhileStatement) Kind() NodeKind    { return KindDoWhileStatement }
func (*SwitchStatement) Kind() NodeKind     { return KindSwitchStatement }
func (*SwitchCase) Kind() NodeKind          { return KindSwitchCase }
func (*TryStatement) Kind() NodeKind        { return KindTryStatement }
func (*CatchClause) Kind() NodeKind         { return KindCatchClause }
func (*ThrowStatement) Kind() NodeKind      { return KindThrowStatement }
func (*ReturnStatement) Kind() NodeKind     { return KindReturnStatement }
func (*BreakStatement) Kind() NodeKind      { return KindBreakStatement }
func (*ContinueStatement) Kind() NodeKind   { return KindContinueStatement }
func (*BlockStatement) Kind() NodeKind      { return KindBlockStatement }
func (*ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }
func (*EmptyStatement) Kind() NodeKind      { return KindEmptyStatement }
func (*ImportDeclaration) Kind() NodeKind   { return KindImportDeclaration }
func (*ImportSpecifier) Kind() NodeKind     { return KindImportSpecifier }
func (*ExportDeclaration) Kind() NodeKind   { return KindExportDeclaration }

func (*VariableDeclaration) stmtNode() {}
func (*FunctionDeclaration) stmtNode() {}
func (*ClassDeclaration) stmtNode()    {}
func (*IfStatement) stmtNode()         {}
func (*ForStatement) stmtNode()        {}
func (*ForInStatement) stmtNode()      {}
func (*ForOfStatement) stmtNode()      {}
func (*WhileStatement) stmtNode()      {}
func (*DoWhileStatement) stmtNode()    {}
func (*SwitchStatement) stmtNode()     {}
func (*TryStatement) stmtNode()        {}
func (*ThrowStatement) stmtNode()      {}
func (*ReturnStatement) stmtNode()     {}
func (*BreakStatement) stmtNode()      {}
func (*ContinueStatement) stmtNode()   {}
func (*BlockStatement) stmtNode()      {}
func (*ExpressionStatement) stmtNode() {}
func (*EmptyStatement) stmtNode()      {}
func (*ImportDeclaration) stmtNode()   {}
func (*ExportDeclaration) stmtNode()   {}

func (*MethodDefinition) classElement()   {}
func (*PropertyDefinition) classElement() {}

// Class expressions reuse ClassDeclaration rather than a parallel node type.
func (*ClassDeclaration) exprNode() {}

// --- Expressions ------------------------------------------------------------

type Identifier struct {
	span
	Name string
}

type StringLiteral struct {
	span
	Value string // unquoted, escapes resolved best-effort
	Raw   string
}

type NumberLiteral struct {
	span
	Value float64
	Raw   string
}

type BooleanLiteral struct {
	span
	Value bool
}

type NullLiteral struct{ span }

type UndefinedLiteral struct{ span }

// TemplateLiteral interleaves Quasis and Exprs; len(Quasis) == len(Exprs)+1.
type TemplateLiteral struct {
	span
	Quasis []string
	Exprs  []Expr
}

type ArrayLiteral struct {
	span
	Elements []Expr
}

type ObjectLiteral struct {
	span
	Props []*Property
}

// Property is one object-literal entry. Computed keys collapse to a literal
// string when one is present and to an empty Key otherwise.
type Property struct {
	span
	Key       string
	Value     Expr
	Shorthand bool
	Method    bool
}

type FunctionExpression struct {
	span
	Name        *Identifier // optional
	Params      []*Parameter
	Body        *BlockStatement
	IsAsync     bool
	IsGenerator bool
}

// ArrowFunction's Body is a *BlockStatement or a bare Expr.
type ArrowFunction struct {
	span
	Params  []*Parameter
	Body    Node
	IsAsync bool
}

type UnaryExpression struct {
	span
	Op  string // ! ~ + - typeof void delete await
	Arg Expr
}

type UpdateExpression struct {
	span
	Op     string // ++ --
	Arg    Expr
	Prefix bool
}

type BinaryExpression struct {
	span
	Op          string
	Left, Right Expr
}

type LogicalExpression struct {
	span
	Op          string // && || ??
	Left, Right Expr
}

type ConditionalExpression struct {
	span
	Test, Consequent, Alternate Expr
}

type AssignmentExpression struct {
	span
	Op          string // = += -= ...
	Left, Right Expr
}

type SequenceExpression struct {
	span
	Exprs []Expr
}

type CallExpression struct {
	span
	Callee   Expr
	Args     []Expr
	Optional bool // a?.b(...)
}

type NewExpression struct {
	span
	Callee Expr
	Args   []Expr
}

// MemberExpression is `obj.name` or `obj[index]`. Property is set for dot
// access, Index for computed access.
type MemberExpression struct {
	span
	Object   Expr
	Property *Identifier
	Index    Expr
	Optional bool
}

// Computed reports whether this is an `obj[index]` access.
func (m *MemberExpression) Computed() bool { return m.Index != nil }

type ThisExpression struct{ span }

type SuperExpression struct{ span }

type SpreadElement struct {
	span
	Arg Expr
}

func (*Identifier) Kind() NodeKind            { return KindIdentifier }
func (*StringLiteral) Kind() NodeKind         { return KindStringLiteral }
func (*NumberLiteral) Kind() NodeKind         { return KindNumberLiteral }
func (*BooleanLiteral) Kind() NodeKind        { return KindBooleanLiteral }
func (*NullLiteral) Kind() NodeKind           { return KindNullLiteral }
func (*UndefinedLiteral) Kind() NodeKind      { return KindUndefinedLiteral }
func (*TemplateLiteral) Kind() NodeKind       { return KindTemplateLiteral }
func (*ArrayLiteral) Kind() NodeKind          { return KindArrayLiteral }
func (*ObjectLiteral) Kind() NodeKind         { return KindObjectLiteral }
func (*Property) Kind() NodeKind              { return KindProperty }
func (*FunctionExpression) Kind() NodeKind    { return KindFunctionExpression }
func (*ArrowFunction) Kind() NodeKind         { return KindArrowFunction }
func (*UnaryExpression) Kind() NodeKind       { return KindUnaryExpression }
func (*UpdateExpression) Kind() NodeKind      { return KindUpdateExpression }
func (*BinaryExpression) Kind() NodeKind      { return KindBinaryExpression }
func (*LogicalExpression) Kind() NodeKind     { return KindLogicalExpression }
func (*ConditionalExpression) Kind() NodeKind { return KindConditionalExpression }
func (*AssignmentExpression) Kind() NodeKind  { return KindAssignmentExpression }
func (*SequenceExpression) Kind() NodeKind    { return KindSequenceExpression }
func (*CallExpression) Kind() NodeKind        { return KindCallExpression }
func (*NewExpression) Kind() NodeKind         { return KindNewExpression }
func (*MemberExpression) Kind() NodeKind      { return KindMemberExpression }
func (*ThisExpression) Kind() NodeKind        { return KindThisExpression }
func (*SuperExpression) Kind() NodeKind       { return KindSuperExpression }
func (*SpreadElement) Kind() NodeKind         { return KindSpreadElement }

func (*Identifier) exprNode()            {}
func (*StringLiteral) exprNode()         {}
func (*NumberLiteral) exprNode()         {}
func (*BooleanLiteral) exprNode()        {}
func (*NullLiteral) exprNode()           {}
func (*UndefinedLiteral) exprNode()      {}
func (*TemplateLiteral) exprNode()       {}
func (*ArrayLiteral) exprNode()          {}
func (*ObjectLiteral) exprNode()         {}
func (*FunctionExpression) exprNode()    {}
func (*ArrowFunction) exprNode()         {}
func (*UnaryExpression) exprNode()       {}
func (*UpdateExpression) exprNode()      {}
func (*BinaryExpression) exprNode()      {}
func (*LogicalExpression) exprNode()     {}
func (*ConditionalExpression) exprNode() {}
func (*AssignmentExpression) exprNode()  {}
func (*SequenceExpression) exprNode()    {}
func (*CallExpression) exprNode()        {}
func (*NewExpression) exprNode()         {}
func (*MemberExpression) exprNode()      {}
func (*ThisExpression) exprNode()        {}
func (*SuperExpression) exprNode()       {}
func (*SpreadElement) exprNode()         {}

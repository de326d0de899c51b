package parser

// Walk traverses the tree rooted at n in pre-order, calling fn for each node.
// If fn returns false the node's children are skipped. Nil children are never
// visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch v := n.(type) {
	case *Program:
		for _, s := range v.Body {
			Walk(s, fn)
		}
	case *VariableDeclaration:
		for _, d := range v.Decls {
			Walk(d, fn)
		}
	case *VariableDeclarator:
		walkExpr(v.Target, fn)
		walkExpr(v.Init, fn)
	case *FunctionDeclaration:
		walkIdent(v.Name, fn)
		for _, p := range v.Params {
			Walk(p, fn)
		}
		walkBlock(v.Body, fn)
	case *Parameter:
		walkIdent(v.Name, fn)
		walkExpr(v.Pattern, fn)
		walkExpr(v.Default, fn)
	case *ClassDeclaration:
		walkIdent(v.Name, fn)
		walkExpr(v.SuperClass, fn)
		for _, m := range v.Body {
			Walk(m, fn)
		}
	case *MethodDefinition:
		walkIdent(v.Key, fn)
		if v.Value != nil {
			Walk(v.Value, fn)
		}
	case *PropertyDefinition:
		walkIdent(v.Key, fn)
		walkExpr(v.Value, fn)
	case *IfStatement:
		walkExpr(v.Test, fn)
		walkStmt(v.Consequent, fn)
		walkStmt(v.Alternate, fn)
	case *ForStatement:
		if v.Init != nil {
			Walk(v.Init, fn)
		}
		walkExpr(v.Test, fn)
		walkExpr(v.Update, fn)
		walkStmt(v.Body, fn)
	case *ForInStatement:
		if v.Left != nil {
			Walk(v.Left, fn)
		}
		walkExpr(v.Right, fn)
		walkStmt(v.Body, fn)
	case *ForOfStatement:
		if v.Left != nil {
			Walk(v.Left, fn)
		}
		walkExpr(v.Right, fn)
		walkStmt(v.Body, fn)
	case *WhileStatement:
		walkExpr(v.Test, fn)
		walkStmt(v.Body, fn)
	case *DoWhileStatement:
		walkStmt(v.Body, fn)
		walkExpr(v.Test, fn)
	case *SwitchStatement:
		walkExpr(v.Disc, fn)
		for _, c := range v.Cases {
			Walk(c, fn)
		}
	case *SwitchCase:
		walkExpr(v.Test, fn)
		for _, s := range v.Body {
			Walk(s, fn)
		}
	case *TryStatement:
		walkBlock(v.Block, fn)
		if v.Handler != nil {
			Walk(v.Handler, fn)
		}
		walkBlock(v.Finalizer, fn)
	case *CatchClause:
		walkIdent(v.Param, fn)
		walkBlock(v.Body, fn)
	case *ThrowStatement:
		walkExpr(v.Arg, fn)
	case *ReturnStatement:
		walkExpr(v.Arg, fn)
	case *BlockStatement:
		for _, s := range v.Body {
			Walk(s, fn)
		}
	case *ExpressionStatement:
		walkExpr(v.X, fn)
	case *ImportDeclaration:
		walkIdent(v.Default, fn)
		walkIdent(v.Namespace, fn)
		for _, s := range v.Names {
			Walk(s, fn)
		}
	case *ImportSpecifier:
		walkIdent(v.Name, fn)
		walkIdent(v.Alias, fn)
	case *ExportDeclaration:
		walkStmt(v.Decl, fn)
	case *TemplateLiteral:
		for _, e := range v.Exprs {
			Walk(e, fn)
		}
	case *ArrayLiteral:
		for _, e := range v.Elements {
			walkExpr(e, fn)
		}
	case *ObjectLiteral:
		for _, p := range v.Props {
			Walk(p, fn)
		}
	case *Property:
		walkExpr(v.Value, fn)
	case *FunctionExpression:
		walkIdent(v.Name, fn)
		for _, p := range v.Params {
			Walk(p, fn)
		}
		walkBlock(v.Body, fn)
	case *ArrowFunction:
		for _, p := range v.Params {
			Walk(p, fn)
		}
		if v.Body != nil {
			Walk(v.Body, fn)
		}
	case *UnaryExpression:
		walkExpr(v.Arg, fn)
	case *UpdateExpression:
		walkExpr(v.Arg, fn)
	case *BinaryExpression:
		walkExpr(v.Left, fn)
		walkExpr(v.Right, fn)
	case *LogicalExpression:
		walkExpr(v.Left, fn)
		walkExpr(v.Right, fn)
	case *ConditionalExpression:
		walkExpr(v.Test, fn)
		walkExpr(v.Consequent, fn)
		walkExpr(v.Alternate, fn)
	case *AssignmentExpression:
		walkExpr(v.Left, fn)
		walkExpr(v.Right, fn)
	case *SequenceExpression:
		for _, e := range v.Exprs {
			walkExpr(e, fn)
		}
	case *CallExpression:
		walkExpr(v.Callee, fn)
		for _, a := range v.Args {
			walkExpr(a, fn)
		}
	case *NewExpression:
		walkExpr(v.Callee, fn)
		for _, a := range v.Args {
			walkExpr(a, fn)
		}
	case *MemberExpression:
		walkExpr(v.Object, fn)
		walkIdent(v.Property, fn)
		walkExpr(v.Index, fn)
	case *SpreadElement:
		walkExpr(v.Arg, fn)
	}
}

func walkExpr(e Expr, fn func(Node) bool) {
	if e != nil {
		Walk(e, fn)
	}
}

func walkStmt(s Stmt, fn func(Node) bool) {
	if s != nil {
		Walk(s, fn)
	}
}

func walkBlock(b *BlockStatement, fn func(Node) bool) {
	if b != nil {
		Walk(b, fn)
	}
}

func walkIdent(id *Identifier, fn func(Node) bool) {
	if id != nil {
		Walk(id, fn)
	}
}

// NodeAt returns the innermost node whose span contains the byte offset, or
// nil when the offset falls outside every node. Ties go to the deepest match.
func NodeAt(root Node, offset int) Node {
	var best Node
	Walk(root, func(n Node) bool {
		if offset < n.Pos() || offset > n.End() {
			return false
		}
		best = n
		return true
	})
	return best
}

// PathAt returns the chain of nodes from the root down to the innermost node
// containing the offset. Empty when the offset is outside the root.
func PathAt(root Node, offset int) []Node {
	var path []Node
	Walk(root, func(n Node) bool {
		if offset < n.Pos() || offset > n.End() {
			return false
		}
		path = append(path, n)
		return true
	})
	return path
}

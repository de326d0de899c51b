package lexer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Tokenizer states. root is the default mode; the others handle multi-line
// constructs and the one-token lookahead needed to tag function/class names.
const (
	stateRoot         = "root"
	stateBlockComment = "blockComment"
	stateTemplate     = "template"
	stateTemplateExpr = "templateExpr"
	stateFunctionName = "functionName"
	stateClassName    = "className"
)

// Directives recognized in ruleSpec.next. A named state acts as "push current,
// switch to target". Directives may be space-separated compounds ("@pop @pop").
const (
	dirPush = "@push"
	dirPop  = "@pop"
)

// namedLists are referenced from patterns and case clauses as "@name". They
// are substituted during compilation, so the grammar below stays declarative.
var namedLists = map[string][]string{
	"keywords": {
		"var", "let", "const", "function", "class", "return", "if", "else",
		"for", "while", "do", "switch", "case", "default", "break", "continue",
		"new", "delete", "typeof", "instanceof", "in", "of", "void", "this",
		"super", "extends", "import", "export", "from", "as", "async", "await",
		"yield", "try", "catch", "finally", "throw", "get", "set", "static",
		"null", "undefined", "true", "false", "NaN", "Infinity", "debugger",
	},
	"operators": {
		">>>=", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
		"...", "=>", "**", "==", "!=", "<=", ">=", "&&", "||", "??", "?.",
		"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
		"=", "+", "-", "*", "/", "%", "<", ">", "!", "~", "&", "|", "^", "?",
	},
}

// caseSpec maps list membership to a token kind; an empty list is the default
// clause. First matching clause wins.
type caseSpec struct {
	list string
	kind Kind
}

// ruleSpec is one declarative grammar rule: a pattern (with optional @list
// substitutions), a kind or a cases table, and an optional state directive.
// A ruleSpec with include set splices another state's rules in place.
type ruleSpec struct {
	pattern string
	kind    Kind
	cases   []caseSpec
	next    string
	include string
}

// grammarSpec is the full tokenizer grammar. Matching is greedy
// first-rule-wins at each position; an unmatched byte becomes a single-char
// plain token, so tokenization never fails.
var grammarSpec = map[string][]ruleSpec{
	stateRoot: {
		{pattern: `[ \t\r]+`, kind: KindWhitespace},
		{pattern: `//.*`, kind: KindComment},
		{pattern: `/\*`, kind: KindComment, next: stateBlockComment},
		{pattern: "`", kind: KindString, next: stateTemplate},
		{pattern: `'(?:[^'\\]|\\.)*'`, kind: KindString},
		{pattern: `"(?:[^"\\]|\\.)*"`, kind: KindString},
		// Unterminated string literals recover at end of line.
		{pattern: `'(?:[^'\\]|\\.)*$`, kind: KindString},
		{pattern: `"(?:[^"\\]|\\.)*$`, kind: KindString},
		{pattern: `0[xX][0-9a-fA-F]+n?|0[bB][01]+n?|0[oO][0-7]+n?|\d+\.?\d*(?:[eE][+-]?\d+)?n?|\.\d+(?:[eE][+-]?\d+)?`, kind: KindNumber},
		{pattern: `function\b`, kind: KindKeyword, next: stateFunctionName},
		{pattern: `class\b`, kind: KindKeyword, next: stateClassName},
		{pattern: `[A-Za-z_$][A-Za-z0-9_$]*`, cases: []caseSpec{
			{list: "keywords", kind: KindKeyword},
			{kind: KindIdent},
		}},
		{pattern: `@operators`, kind: KindOperator},
		{pattern: `[{}()\[\];,.:]`, kind: KindPunct},
	},
	stateBlockComment: {
		{pattern: `/\*`, kind: KindComment, next: dirPush}, // tolerate nesting
		{pattern: `\*/`, kind: KindComment, next: dirPop},
		{pattern: `[^/*]+`, kind: KindComment},
		{pattern: `[/*]`, kind: KindComment},
	},
	stateTemplate: {
		{pattern: "`", kind: KindString, next: dirPop},
		{pattern: `\$\{`, kind: KindPunct, next: stateTemplateExpr},
		{pattern: `\\.`, kind: KindString},
		{pattern: "[^`\\\\$]+", kind: KindString},
		{pattern: `\$`, kind: KindString},
	},
	stateTemplateExpr: {
		{pattern: `\}`, kind: KindPunct, next: dirPop},
		// Balanced inner braces ride the state stack, so object literals
		// inside ${...} close correctly.
		{pattern: `\{`, kind: KindPunct, next: stateTemplateExpr},
		{include: stateRoot},
	},
	stateFunctionName: {
		{pattern: `[ \t\r]+`, kind: KindWhitespace},
		{pattern: `\*`, kind: KindOperator}, // function* generators
		{pattern: `[A-Za-z_$][A-Za-z0-9_$]*`, kind: KindFunctionName, next: dirPop},
		// Anonymous function: bail without consuming.
		{pattern: ``, next: dirPop},
	},
	stateClassName: {
		{pattern: `[ \t\r]+`, kind: KindWhitespace},
		{pattern: `[A-Za-z_$][A-Za-z0-9_$]*`, kind: KindClassName, next: dirPop},
		{pattern: ``, next: dirPop},
	},
}

// caseClause is a compiled caseSpec; a nil member set is the default clause.
type caseClause struct {
	members map[string]bool
	kind    Kind
}

// rule is a compiled ruleSpec with an anchored regexp and parsed directives.
type rule struct {
	re    *regexp.Regexp
	kind  Kind
	cases []caseClause
	next  []string
}

type grammar struct {
	states map[string][]rule
}

// js is the compiled grammar, built once at package init. Compilation errors
// are programmer errors in the tables above and panic immediately.
var js = compileGrammar(grammarSpec)

func compileGrammar(spec map[string][]ruleSpec) *grammar {
	g := &grammar{states: make(map[string][]rule, len(spec))}
	for name := range spec {
		g.states[name] = compileState(spec, name, map[string]bool{})
	}
	return g
}

func compileState(spec map[string][]ruleSpec, name string, active map[string]bool) []rule {
	if active[name] {
		panic(fmt.Sprintf("lexer: include cycle through state %q", name))
	}
	active[name] = true
	defer delete(active, name)

	specs, ok := spec[name]
	if !ok {
		panic(fmt.Sprintf("lexer: unknown state %q", name))
	}

	var out []rule
	for _, rs := range specs {
		if rs.include != "" {
			out = append(out, compileState(spec, rs.include, active)...)
			continue
		}
		out = append(out, compileRule(rs))
	}
	return out
}

func compileRule(rs ruleSpec) rule {
	r := rule{
		re:   regexp.MustCompile("^(?:" + substituteLists(rs.pattern) + ")"),
		kind: rs.kind,
		next: parseDirectives(rs.next),
	}
	for _, cs := range rs.cases {
		c := caseClause{kind: cs.kind}
		if cs.list != "" {
			words, ok := namedLists[cs.list]
			if !ok {
				panic(fmt.Sprintf("lexer: unknown list %q", cs.list))
			}
			c.members = make(map[string]bool, len(words))
			for _, w := range words {
				c.members[w] = true
			}
		}
		r.cases = append(r.cases, c)
	}
	return r
}

// substituteLists expands "@name" references into a quoted alternation,
// longest entries first so the regexp engine prefers the longest literal.
func substituteLists(pattern string) string {
	for name, words := range namedLists {
		ref := "@" + name
		if !strings.Contains(pattern, ref) {
			continue
		}
		sorted := make([]string, len(words))
		copy(sorted, words)
		sort.Slice(sorted, func(i, j int) bool {
			if len(sorted[i]) != len(sorted[j]) {
				return len(sorted[i]) > len(sorted[j])
			}
			return sorted[i] < sorted[j]
		})
		quoted := make([]string, len(sorted))
		for i, w := range sorted {
			quoted[i] = regexp.QuoteMeta(w)
		}
		pattern = strings.ReplaceAll(pattern, ref, "(?:"+strings.Join(quoted, "|")+")")
	}
	return pattern
}

func parseDirectives(next string) []string {
	if next == "" {
		return nil
	}
	return strings.Fields(next)
}

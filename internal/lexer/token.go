package lexer

// Kind classifies a token.
type Kind int

const (
	KindPlain Kind = iota // unmatched input; never a hard failure
	KindKeyword
	KindIdent
	KindString
	KindNumber
	KindComment
	KindOperator
	KindPunct
	KindFunctionName // identifier immediately following `function`
	KindClassName    // identifier immediately following `class`
	KindWhitespace
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindKeyword:
		return "keyword"
	case KindIdent:
		return "identifier"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindComment:
		return "comment"
	case KindOperator:
		return "operator"
	case KindPunct:
		return "punctuation"
	case KindFunctionName:
		return "function-name"
	case KindClassName:
		return "class-name"
	case KindWhitespace:
		return "whitespace"
	}
	return "unknown"
}

// Token is one lexical unit. Start/End are byte offsets; TokenizeLine emits
// them relative to the line start so cached lines stay valid when earlier
// lines change length. Document-absolute offsets are produced by
// TokenizeDocument.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// IsTrivia reports whether the parser should discard the token.
func (t Token) IsTrivia() bool {
	return t.Kind == KindWhitespace || t.Kind == KindComment
}

// Shifted returns a copy of the token with offsets moved by delta.
func (t Token) Shifted(delta int) Token {
	t.Start += delta
	t.End += delta
	return t
}

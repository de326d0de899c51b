package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func textsOf(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestTokenizeLineBasics(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKinds []Kind
		wantTexts []string
	}{
		{
			name:      "declaration",
			line:      "const x = 1;",
			wantKinds: []Kind{KindKeyword, KindWhitespace, KindIdent, KindWhitespace, KindOperator, KindWhitespace, KindNumber, KindPunct},
			wantTexts: []string{"const", " ", "x", " ", "=", " ", "1", ";"},
		},
		{
			name:      "strings",
			line:      `let s = 'a\'b' + "c";`,
			wantKinds: []Kind{KindKeyword, KindWhitespace, KindIdent, KindWhitespace, KindOperator, KindWhitespace, KindString, KindWhitespace, KindOperator, KindWhitespace, KindString, KindPunct},
		},
		{
			name:      "line comment",
			line:      "x // trailing",
			wantKinds: []Kind{KindIdent, KindWhitespace, KindComment},
			wantTexts: []string{"x", " ", "// trailing"},
		},
		{
			name:      "numbers",
			line:      "0xFF 0b10 1.5e3 .25 10n",
			wantKinds: []Kind{KindNumber, KindWhitespace, KindNumber, KindWhitespace, KindNumber, KindWhitespace, KindNumber, KindWhitespace, KindNumber},
		},
		{
			name:      "compound operators win over singles",
			line:      "a === b => c",
			wantTexts: []string{"a", " ", "===", " ", "b", " ", "=>", " ", "c"},
		},
		{
			name:      "function name tagging",
			line:      "function greet() {}",
			wantKinds: []Kind{KindKeyword, KindWhitespace, KindFunctionName, KindPunct, KindPunct, KindWhitespace, KindPunct, KindPunct},
		},
		{
			name:      "anonymous function bails cleanly",
			line:      "const f = function() {}",
			wantKinds: []Kind{KindKeyword, KindWhitespace, KindIdent, KindWhitespace, KindOperator, KindWhitespace, KindKeyword, KindPunct, KindPunct, KindWhitespace, KindPunct, KindPunct},
		},
		{
			name:      "class name tagging",
			line:      "class Point extends Base {}",
			wantKinds: []Kind{KindKeyword, KindWhitespace, KindClassName, KindWhitespace, KindKeyword, KindWhitespace, KindIdent, KindWhitespace, KindPunct, KindPunct},
		},
		{
			name:      "unmatched byte becomes plain",
			line:      "a # b",
			wantKinds: []Kind{KindIdent, KindWhitespace, KindPlain, KindWhitespace, KindIdent},
		},
		{
			name:      "unterminated string recovers at eol",
			line:      `x = 'oops`,
			wantKinds: []Kind{KindIdent, KindWhitespace, KindOperator, KindWhitespace, KindString},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, end := TokenizeLine(tt.line, Root())
			require.True(t, end.Equal(Root()), "single-line constructs must return to root, got %s", end)
			if tt.wantKinds != nil {
				assert.Empty(t, cmp.Diff(tt.wantKinds, kindsOf(tokens)))
			}
			if tt.wantTexts != nil {
				assert.Empty(t, cmp.Diff(tt.wantTexts, textsOf(tokens)))
			}
		})
	}
}

func TestTokenizeLineIsPure(t *testing.T) {
	line := "const a = `x ${y + 1} z`; /* tail"
	t1, s1 := TokenizeLine(line, Root())
	t2, s2 := TokenizeLine(line, Root())
	require.Empty(t, cmp.Diff(t1, t2))
	require.True(t, s1.Equal(s2))
}

func TestOffsetsCoverLine(t *testing.T) {
	line := `let total = price * 1.2; // tax`
	tokens, _ := TokenizeLine(line, Root())
	pos := 0
	for _, tok := range tokens {
		require.Equal(t, pos, tok.Start, "token %q", tok.Text)
		require.Equal(t, tok.Text, line[tok.Start:tok.End])
		pos = tok.End
	}
	require.Equal(t, len(line), pos)
}

func TestBlockCommentSpansLines(t *testing.T) {
	tokens, st := TokenizeLine("before /* one", Root())
	require.Equal(t, stateBlockComment, st.Name)
	assert.Equal(t, KindComment, tokens[len(tokens)-1].Kind)

	tokens, st = TokenizeLine("still comment", st)
	require.Equal(t, stateBlockComment, st.Name)
	for _, tok := range tokens {
		assert.Equal(t, KindComment, tok.Kind)
	}

	tokens, st = TokenizeLine("done */ after", st)
	require.True(t, st.Equal(Root()))
	assert.Equal(t, KindIdent, tokens[len(tokens)-1].Kind)
}

func TestTemplateLiteralStates(t *testing.T) {
	tokens, st := TokenizeLine("const s = `a ${obj.name} b", Root())
	require.Equal(t, stateTemplate, st.Name)

	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, KindString)
	assert.Contains(t, kinds, KindIdent) // obj inside ${}

	// Template continues on the next line and closes.
	_, st = TokenizeLine(" tail`;", st)
	require.True(t, st.Equal(Root()))
}

func TestTemplateExprBalancesBraces(t *testing.T) {
	line := "`${ {a: 1}.a } done`"
	tokens, st := TokenizeLine(line, Root())
	require.True(t, st.Equal(Root()), "object literal braces inside ${} must balance, got %s", st)
	last := tokens[len(tokens)-1]
	assert.Equal(t, KindString, last.Kind)
	assert.Equal(t, "`", last.Text)
}

func TestFunctionNameAcrossLines(t *testing.T) {
	_, st := TokenizeLine("function", Root())
	require.Equal(t, stateFunctionName, st.Name)
	tokens, st := TokenizeLine("  delayed() {}", st)
	require.True(t, st.Equal(Root()))
	assert.Equal(t, KindFunctionName, tokens[1].Kind)
	assert.Equal(t, "delayed", tokens[1].Text)
}

// State threading invariant: tokenizing line by line with the carried state
// must agree with tokenizing the joined buffer through TokenizeDocument.
func TestStateThreadingInvariant(t *testing.T) {
	src := strings.Join([]string{
		"const a = 1; /* start",
		"   middle of comment",
		"end */ let b = `tpl ${a",
		"+ 2} tail`;",
		"class Shape { area() { return 0; } }",
	}, "\n")

	lines := strings.Split(src, "\n")

	var threaded []Token
	st := Root()
	lineStart := 0
	for _, line := range lines {
		toks, end := TokenizeLine(line, st)
		for _, tok := range toks {
			threaded = append(threaded, tok.Shifted(lineStart))
		}
		st = end
		lineStart += len(line) + 1
	}

	whole := TokenizeDocument(lines, nil)
	require.Empty(t, cmp.Diff(threaded, whole))

	for _, tok := range whole {
		require.Equal(t, tok.Text, src[tok.Start:tok.End], "absolute offsets must slice the source")
	}
}

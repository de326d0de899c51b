// Package lexer is a table-driven, state-machine tokenizer for JavaScript
// source. Lines tokenize independently given an incoming State, which makes
// per-line caching and incremental retokenization cheap: a line's tokens are
// valid for reuse whenever its text and incoming state both match the cache.
package lexer

// TokenizeLine tokenizes one line under the incoming state and returns the
// tokens plus the state to carry into the next line. It is pure: identical
// inputs always produce identical outputs. Token offsets are relative to the
// line start.
func TokenizeLine(line string, st State) ([]Token, State) {
	var tokens []Token
	pos := 0
	for pos < len(line) {
		rules, ok := js.states[st.Name]
		if !ok {
			// Unknown state can only come from a corrupted cache entry;
			// recovering to root keeps the tokenizer total.
			st = Root()
			rules = js.states[stateRoot]
		}

		matched := false
		for i := range rules {
			r := &rules[i]
			loc := r.re.FindStringIndex(line[pos:])
			if loc == nil {
				continue
			}
			if loc[1] == 0 {
				// Zero-width rules only transition state. Require an actual
				// change so a misordered table cannot loop forever.
				next := applyDirectives(st, r.next)
				if next.Equal(st) {
					continue
				}
				st = next
				matched = true
				break
			}
			text := line[pos : pos+loc[1]]
			tokens = append(tokens, Token{
				Kind:  resolveKind(r, text),
				Text:  text,
				Start: pos,
				End:   pos + loc[1],
			})
			pos += loc[1]
			st = applyDirectives(st, r.next)
			matched = true
			break
		}
		if !matched {
			// Lexical anomaly: emit the byte as a plain token and move on.
			tokens = append(tokens, Token{Kind: KindPlain, Text: line[pos : pos+1], Start: pos, End: pos + 1})
			pos++
		}
	}
	return tokens, st
}

func resolveKind(r *rule, text string) Kind {
	if r.cases == nil {
		return r.kind
	}
	for _, c := range r.cases {
		if c.members == nil || c.members[text] {
			return c.kind
		}
	}
	return r.kind
}

func applyDirectives(st State, dirs []string) State {
	for _, d := range dirs {
		switch d {
		case dirPush:
			st = st.Push(st.Name)
		case dirPop:
			st = st.Pop()
		default:
			st = st.Push(d)
		}
	}
	return st
}

// TokenizeDocument tokenizes all lines, threading state across line
// boundaries and consulting the cache when one is supplied. The returned
// tokens carry document-absolute offsets. Lines are assumed to be
// newline-free, as produced by document.Document.
func TokenizeDocument(lines []string, cache *LineCache) []Token {
	var out []Token
	st := Root()
	lineStart := 0
	for i, line := range lines {
		toks, end := tokenizeCached(i, line, st, cache)
		for _, t := range toks {
			out = append(out, t.Shifted(lineStart))
		}
		st = end
		lineStart += len(line) + 1
	}
	return out
}

func tokenizeCached(i int, line string, st State, cache *LineCache) ([]Token, State) {
	if cache == nil {
		return TokenizeLine(line, st)
	}
	if toks, end, ok := cache.Get(i, line, st); ok {
		return toks, end
	}
	toks, end := TokenizeLine(line, st)
	cache.Put(i, line, st, toks, end)
	return toks, end
}

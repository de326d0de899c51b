package lexer

// LineCache memoizes per-line tokenization. An entry hits only when both the
// line text and the incoming state match, so edits invalidate naturally once
// InvalidateFrom is called for the first changed line: downstream lines whose
// incoming state re-stabilizes hit the cache again without retokenizing.
type LineCache struct {
	entries []*cacheEntry
}

type cacheEntry struct {
	text   string
	start  State
	tokens []Token
	end    State
}

// NewLineCache returns an empty cache.
func NewLineCache() *LineCache {
	return &LineCache{}
}

// Get returns the cached tokens and end state for line i when text and
// incoming state both match the stored entry.
func (c *LineCache) Get(i int, text string, start State) ([]Token, State, bool) {
	if i < 0 || i >= len(c.entries) || c.entries[i] == nil {
		return nil, State{}, false
	}
	e := c.entries[i]
	if e.text != text || !e.start.Equal(start) {
		return nil, State{}, false
	}
	return e.tokens, e.end, true
}

// Put stores the tokenization of line i.
func (c *LineCache) Put(i int, text string, start State, tokens []Token, end State) {
	if i < 0 {
		return
	}
	for len(c.entries) <= i {
		c.entries = append(c.entries, nil)
	}
	c.entries[i] = &cacheEntry{text: text, start: start, tokens: tokens, end: end}
}

// InvalidateFrom drops every entry at or after line i.
func (c *LineCache) InvalidateFrom(i int) {
	if i < 0 {
		i = 0
	}
	for j := i; j < len(c.entries); j++ {
		c.entries[j] = nil
	}
}

// Invalidate drops the whole cache.
func (c *LineCache) Invalidate() {
	c.entries = nil
}

// Cached reports whether line i currently holds an entry. Test hook.
func (c *LineCache) Cached(i int) bool {
	return i >= 0 && i < len(c.entries) && c.entries[i] != nil
}

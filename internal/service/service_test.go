package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/jsls/internal/model"
)

// quiet keeps the debounce timer out of synchronous tests.
func quiet() *Options {
	return &Options{Debounce: time.Hour}
}

func outlineNames(svc *Service) []string {
	var names []string
	for _, ds := range svc.DocumentSymbols() {
		names = append(names, ds.Name)
	}
	return names
}

func TestInitialPassServesReads(t *testing.T) {
	svc := New("const alpha = 1\nfunction twice(n) { return n * 2 }", quiet())

	assert.Equal(t, 1, svc.Version())
	assert.Equal(t, 1, svc.AnalyzedVersion())
	assert.Empty(t, svc.Diagnostics())

	names := outlineNames(svc)
	assert.Contains(t, names, "alpha")
	assert.Contains(t, names, "twice")
}

func TestReadsFreshenAfterEdit(t *testing.T) {
	svc := New("const alpha = 1", quiet())

	svc.SetText("const alpha = 1\nconst beta = 2")
	assert.Equal(t, 1, svc.AnalyzedVersion(), "edits schedule a pass, they do not run one")

	assert.Contains(t, outlineNames(svc), "beta")
	assert.Equal(t, 2, svc.AnalyzedVersion(), "the read ran the pass inline")
}

func TestDebounceCoalescesEditBursts(t *testing.T) {
	svc := New("let a = 1", &Options{Debounce: 60 * time.Millisecond})
	events := make(chan Event, 8)
	svc.Subscribe(func(ev Event) { events <- ev })

	svc.Insert(9, "0")
	svc.Insert(10, "0")
	svc.Insert(11, "0")
	require.Equal(t, 1, svc.AnalyzedVersion())

	require.Eventually(t, func() bool { return svc.AnalyzedVersion() == 4 },
		3*time.Second, 5*time.Millisecond)

	ev := <-events
	assert.Equal(t, EventAnalyzed, ev.Kind)
	assert.Equal(t, 4, ev.Version, "the burst coalesced into one pass over the final text")
	select {
	case extra := <-events:
		t.Fatalf("burst ran more than one pass: %+v", extra)
	case <-time.After(120 * time.Millisecond):
	}

	assert.Equal(t, "let a = 1000", svc.Text())
}

func TestEditKeepsPrefixLinesCached(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "let v" + string(rune('0'+i)) + " = " + string(rune('0'+i))
	}
	svc := New(strings.Join(lines, "\n"), quiet())
	for i := 0; i < 10; i++ {
		require.True(t, svc.cache.Cached(i))
	}

	off := svc.doc.LineStartOffset(5) + len(svc.doc.Line(5))
	svc.Insert(off, " + 1")

	for i := 0; i < 5; i++ {
		assert.True(t, svc.cache.Cached(i), "line %d must survive an edit on line 5", i)
	}
	for i := 5; i < 10; i++ {
		assert.False(t, svc.cache.Cached(i), "line %d must be dropped", i)
	}

	svc.Analyze()
	for i := 0; i < 10; i++ {
		assert.True(t, svc.cache.Cached(i), "line %d must be repopulated", i)
	}
	assert.Equal(t, 2, svc.AnalyzedVersion())
}

func TestInvalidateForcesColdPass(t *testing.T) {
	svc := New("let a = 1\nlet b = 2", quiet())
	require.True(t, svc.cache.Cached(0))

	svc.Invalidate()
	assert.False(t, svc.cache.Cached(0))
	assert.Equal(t, 0, svc.AnalyzedVersion())

	_ = svc.Diagnostics()
	assert.Equal(t, svc.Version(), svc.AnalyzedVersion())
	assert.True(t, svc.cache.Cached(0))
}

func TestPanicRecoveryKeepsLastGoodAnalysis(t *testing.T) {
	src := "const alpha = 1"
	svc := New(src, quiet())
	var events []Event
	svc.Subscribe(func(ev Event) { events = append(events, ev) })

	svc.prePass = func() { panic("synthetic pipeline failure") }
	svc.Insert(len(src), "\nconst added = 9")

	names := outlineNames(svc)
	assert.Contains(t, names, "alpha", "the previous analysis stays served")
	assert.NotContains(t, names, "added")

	require.Len(t, events, 1)
	assert.Equal(t, EventAnalysisError, events[0].Kind)
	assert.Equal(t, 2, events[0].Version)
	assert.ErrorContains(t, events[0].Err, "synthetic pipeline failure")

	svc.prePass = nil
	svc.Analyze()
	require.Len(t, events, 2)
	assert.Equal(t, EventAnalyzed, events[1].Kind)
	assert.Contains(t, outlineNames(svc), "added")
}

func TestDiagnosticsSurviveBrokenStatements(t *testing.T) {
	svc := New("const = 1\nlet x = 2", quiet())

	diags := svc.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, model.SeverityError, diags[0].Severity)
	assert.NotEmpty(t, diags[0].Message)

	assert.Contains(t, outlineNames(svc), "x", "recovery keeps the rest of the file usable")
}

func TestSymbolAtResolvesLexically(t *testing.T) {
	src := "const user = { name: 'Ada' }\nconsole.log(user)"
	svc := New(src, quiet())

	sym := svc.SymbolAt(strings.Index(src, "user)"))
	require.NotNil(t, sym)
	assert.Equal(t, "user", sym.Name)
	assert.Equal(t, model.KindVariable, sym.Kind)

	builtin := svc.SymbolAt(strings.Index(src, "console"))
	require.NotNil(t, builtin)
	assert.True(t, builtin.Builtin)

	assert.Nil(t, svc.SymbolAt(strings.Index(src, "=")), "no identifier under the cursor")
	assert.Nil(t, svc.SymbolAt(strings.Index(src, "Ada")), "string contents resolve to nothing")
}

func TestCompletionAndHoverEndToEnd(t *testing.T) {
	src := "class P {\n" +
		"  constructor(n) {\n" +
		"    this.name = n\n" +
		"  }\n" +
		"  greet() {\n" +
		"    return 'hi ' + this.name\n" +
		"  }\n" +
		"}\n" +
		"const p = new P('Ada')\n" +
		"p."
	svc := New(src, quiet())

	items := svc.Completions(len(src))
	require.NotEmpty(t, items)
	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"greet", "name"}, labels)

	hov := svc.Hover(strings.Index(src, "P {"))
	require.NotNil(t, hov)
	require.NotEmpty(t, hov.Contents)
	assert.Equal(t, "class P", hov.Contents[0].Value)
}

func TestSnapshotCounts(t *testing.T) {
	svc := New("function add(a, b) { return a + b }", quiet())

	a := svc.Snapshot()
	require.NotNil(t, a)
	assert.Equal(t, 1, a.Version)
	assert.NotEmpty(t, a.Tokens)
	assert.Greater(t, a.NodeCount(), 5)
}

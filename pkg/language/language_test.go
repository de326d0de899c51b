package language

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeAnalyzesOnConstruction(t *testing.T) {
	src := "const user = { name: 'Ada' }\nuser.name"
	svc := New(src, WithDebounce(time.Hour))

	items := svc.Completions(strings.LastIndex(src, ".") + 1)
	require.NotEmpty(t, items)
	assert.Equal(t, "name", items[0].Label)
	assert.Empty(t, svc.Diagnostics())
}

func TestOptionPlumbing(t *testing.T) {
	src := "let alpha = 1\nlet altitude = 2\nal"
	svc := New(src,
		WithDebounce(time.Hour),
		WithMaxCompletions(1),
		WithRecencyBoost(),
	)

	items := svc.Completions(len(src))
	require.Len(t, items, 1)
	assert.Equal(t, "alpha", items[0].Label)

	svc.MarkUsed("altitude")
	items = svc.Completions(len(src))
	require.Len(t, items, 1)
	assert.Equal(t, "altitude", items[0].Label, "recency flows through the facade")
}

func TestDebouncedEventsThroughFacade(t *testing.T) {
	svc := New("let a = 1",
		WithDebounce(40*time.Millisecond),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	events := make(chan Event, 4)
	svc.Subscribe(func(ev Event) { events <- ev })

	svc.SetText("let a = 1\nlet b = 2")

	ev := <-events
	assert.Equal(t, EventAnalyzed, ev.Kind)
	assert.Equal(t, 2, ev.Version)

	var names []string
	for _, ds := range svc.DocumentSymbols() {
		names = append(names, ds.Name)
	}
	assert.Contains(t, names, "b")
}

func TestOptionsNormalize(t *testing.T) {
	o := &Options{Debounce: -1, MaxCompletions: 0}
	o.Normalize()

	assert.Equal(t, 150*time.Millisecond, o.Debounce)
	assert.Equal(t, 50, o.MaxCompletions)
	require.NotNil(t, o.Logger)
}

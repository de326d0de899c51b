package language

import (
	"log/slog"
	"time"

	"github.com/cmmoran/jsls/internal/service"
)

// Options control analysis scheduling and completion behavior.
//
// Debounce       – quiet period after the last edit before a pass runs.
// MaxCompletions – cap on returned completion items.
// RecencyBoost   – rank recently accepted completions higher.
// LocalityBoost  – rank symbols declared near the cursor higher (default on).
// Logger         – receives pass telemetry and failure reports.
type Options struct {
	Debounce       time.Duration `json:"debounce,omitempty" yaml:"debounce,omitempty" toml:"debounce,omitempty" mapstructure:"debounce,omitempty"`
	MaxCompletions int           `json:"max_completions,omitempty" yaml:"max_completions,omitempty" toml:"max_completions,omitempty" mapstructure:"max_completions,omitempty"`
	RecencyBoost   bool          `json:"recency_boost,omitempty" yaml:"recency_boost,omitempty" toml:"recency_boost,omitempty" mapstructure:"recency_boost,omitempty"`
	LocalityBoost  bool          `json:"locality_boost,omitempty" yaml:"locality_boost,omitempty" toml:"locality_boost,omitempty" mapstructure:"locality_boost,omitempty"`
	Logger         *slog.Logger  `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		Debounce:       150 * time.Millisecond,
		MaxCompletions: 50,
		LocalityBoost:  true,
	}
}

// Normalize fills invalid fields with usable defaults.
func (o *Options) Normalize() *Options {
	if o.Debounce <= 0 {
		o.Debounce = 150 * time.Millisecond
	}
	if o.MaxCompletions <= 0 {
		o.MaxCompletions = 50
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// service maps the public options onto the internal configuration.
func (o *Options) service() *service.Options {
	so := service.NewOptions()
	so.Debounce = o.Debounce
	so.Completion.MaxItems = o.MaxCompletions
	so.Completion.RecencyBoost = o.RecencyBoost
	so.Completion.LocalityBoost = o.LocalityBoost
	so.Logger = o.Logger
	return so
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithDebounce(d time.Duration) Option   { return func(o *Options) { o.Debounce = d } }
func WithMaxCompletions(n int) Option       { return func(o *Options) { o.MaxCompletions = n } }
func WithRecencyBoost() Option              { return func(o *Options) { o.RecencyBoost = true } }
func WithLocalityBoost(enabled bool) Option { return func(o *Options) { o.LocalityBoost = enabled } }
func WithLogger(l *slog.Logger) Option      { return func(o *Options) { o.Logger = l } }

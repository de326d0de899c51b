package service

import (
	"log/slog"
	"time"

	"github.com/cmmoran/jsls/internal/provider"
)

// Options configure one service instance.
//
// Debounce   – quiet period after the last edit before a scheduled pass runs.
// Completion – provider configuration, shared by every pass.
// Logger     – receives pass telemetry and failure reports.
type Options struct {
	Debounce   time.Duration     `json:"debounce,omitempty" yaml:"debounce,omitempty" toml:"debounce,omitempty" mapstructure:"debounce,omitempty"`
	Completion *provider.Options `json:"completion,omitempty" yaml:"completion,omitempty" toml:"completion,omitempty" mapstructure:"completion,omitempty"`
	Logger     *slog.Logger      `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		Debounce:   150 * time.Millisecond,
		Completion: provider.NewOptions(),
	}
}

// Normalize fills invalid fields with usable defaults.
func (o *Options) Normalize() *Options {
	if o.Debounce <= 0 {
		o.Debounce = 150 * time.Millisecond
	}
	if o.Completion == nil {
		o.Completion = provider.NewOptions()
	}
	o.Completion.Normalize()
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

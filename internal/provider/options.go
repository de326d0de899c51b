package provider

// Options control completion assembly and ranking.
//
// MaxItems      – cap on returned completions.
// RecencyBoost  – rank recently accepted labels higher.
// LocalityBoost – rank symbols declared near the cursor higher, bucketed
//                 by line distance (<10, <50, beyond).
type Options struct {
	MaxItems      int  `json:"max_items,omitempty" yaml:"max_items,omitempty" toml:"max_items,omitempty" mapstructure:"max_items,omitempty"`
	RecencyBoost  bool `json:"recency_boost,omitempty" yaml:"recency_boost,omitempty" toml:"recency_boost,omitempty" mapstructure:"recency_boost,omitempty"`
	LocalityBoost bool `json:"locality_boost,omitempty" yaml:"locality_boost,omitempty" toml:"locality_boost,omitempty" mapstructure:"locality_boost,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		MaxItems:      50,
		LocalityBoost: true,
	}
}

// Normalize fills invalid fields with usable defaults.
func (o *Options) Normalize() *Options {
	if o.MaxItems <= 0 {
		o.MaxItems = 50
	}
	return o
}

package model

// CompletionItem is one ranked suggestion.
type CompletionItem struct {
	// Identity ------------------------------------------------------------
	Label      string     `json:"label"`
	InsertText string     `json:"insertText"`
	Kind       SymbolKind `json:"kind"`

	// Presentation ---------------------------------------------------------
	TypeInfo string `json:"typeInfo,omitempty"` // rendered type, e.g. "function(x): string"
	Detail   string `json:"detail,omitempty"`

	// Ranking --------------------------------------------------------------
	IsUnknown bool `json:"isUnknown,omitempty"` // unknown-typed symbols rank last
	SortOrder int  `json:"-"`                   // assigned by the provider after sorting
	DeclLine  int  `json:"declLine,omitempty"`  // -1 when the symbol has no declaration site
}

// HoverContentKind tags a hover fragment as code or prose.
type HoverContentKind string

const (
	HoverCode HoverContentKind = "code"
	HoverText HoverContentKind = "text"
)

// HoverContent is one fragment of a hover card.
type HoverContent struct {
	Kind  HoverContentKind `json:"kind"`
	Value string           `json:"value"`
}

// HoverInfo is the hover card for a document offset, nil when nothing resolves.
type HoverInfo struct {
	Contents []HoverContent `json:"contents"`
	Range    Range          `json:"range"`
}

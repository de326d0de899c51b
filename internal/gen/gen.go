// Package gen regenerates the builtin environment tables compiled into
// internal/builtins. It decodes builtins.toml and emits builtins_gen.go,
// so the shipped analyzer carries no runtime data files.
package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dave/jennifer/jen"
)

// Options locate the TOML source and the generated output. Zero values
// resolve to the files of the package the generator runs in, which is
// how the go:generate directive in internal/builtins invokes it.
type Options struct {
	Data string
	Out  string
}

func (o *Options) Normalize() {
	if o.Data == "" {
		o.Data = "builtins.toml"
	}
	if o.Out == "" {
		o.Out = "builtins_gen.go"
	}
}

type tables struct {
	Keywords []keywordEntry `toml:"keywords"`
	Strings  []memberEntry  `toml:"strings"`
	Arrays   []memberEntry  `toml:"arrays"`
	Numbers  []memberEntry  `toml:"numbers"`
	Globals  []globalEntry  `toml:"globals"`
}

type keywordEntry struct {
	Name string `toml:"name"`
	Doc  string `toml:"doc"`
}

type memberEntry struct {
	Name   string   `toml:"name"`
	Call   bool     `toml:"call"`
	Static bool     `toml:"static"`
	Params []string `toml:"params"`
	Ret    string   `toml:"ret"`
	Doc    string   `toml:"doc"`
}

type globalEntry struct {
	Name    string        `toml:"name"`
	Kind    string        `toml:"kind"`
	Params  []string      `toml:"params"`
	Ret     string        `toml:"ret"`
	Doc     string        `toml:"doc"`
	Members []memberEntry `toml:"members"`
}

// multiline renders one element per line with trailing commas, the shape
// gofmt keeps for slice literals.
var multiline = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// Generate decodes opts.Data, validates it, and writes the Go tables to
// opts.Out.
func Generate(opts *Options) error {
	opts.Normalize()
	var doc tables
	if _, err := toml.DecodeFile(opts.Data, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", opts.Data, err)
	}
	if err := validate(&doc); err != nil {
		return fmt.Errorf("%s: %w", opts.Data, err)
	}

	f := jen.NewFile("builtins")
	f.HeaderComment(fmt.Sprintf("Code generated by jsls generate from %s. DO NOT EDIT.", filepath.Base(opts.Data)))
	f.Var().Id("keywords").Op("=").Index().Id("Keyword").Custom(multiline, keywordValues(doc.Keywords)...)
	f.Var().Id("stringMembers").Op("=").Index().Id("Member").Custom(multiline, memberValues(doc.Strings)...)
	f.Var().Id("arrayMembers").Op("=").Index().Id("Member").Custom(multiline, memberValues(doc.Arrays)...)
	f.Var().Id("numberMembers").Op("=").Index().Id("Member").Custom(multiline, memberValues(doc.Numbers)...)
	f.Var().Id("globals").Op("=").Index().Id("Global").Custom(multiline, globalValues(doc.Globals)...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", opts.Out, err)
	}
	if err := os.WriteFile(opts.Out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Out, err)
	}
	return nil
}

func keywordValues(entries []keywordEntry) []jen.Code {
	out := make([]jen.Code, len(entries))
	for i, k := range entries {
		out[i] = jen.Values(
			jen.Id("Name").Op(":").Lit(k.Name),
			jen.Id("Doc").Op(":").Lit(k.Doc),
		)
	}
	return out
}

func memberValues(entries []memberEntry) []jen.Code {
	out := make([]jen.Code, len(entries))
	for i, m := range entries {
		out[i] = memberValue(m)
	}
	return out
}

func memberValue(m memberEntry) jen.Code {
	fields := []jen.Code{jen.Id("Name").Op(":").Lit(m.Name)}
	if m.Call {
		fields = append(fields, jen.Id("Call").Op(":").True())
	}
	if m.Static {
		fields = append(fields, jen.Id("Static").Op(":").True())
	}
	if len(m.Params) > 0 {
		fields = append(fields, jen.Id("Params").Op(":").Add(stringSlice(m.Params)))
	}
	if m.Ret != "" {
		fields = append(fields, jen.Id("Ret").Op(":").Lit(m.Ret))
	}
	if m.Doc != "" {
		fields = append(fields, jen.Id("Doc").Op(":").Lit(m.Doc))
	}
	return jen.Values(fields...)
}

func globalValues(entries []globalEntry) []jen.Code {
	out := make([]jen.Code, len(entries))
	for i, g := range entries {
		fields := []jen.Code{
			jen.Id("Name").Op(":").Lit(g.Name),
			jen.Id("Kind").Op(":").Lit(g.Kind),
		}
		if len(g.Params) > 0 {
			fields = append(fields, jen.Id("Params").Op(":").Add(stringSlice(g.Params)))
		}
		if g.Ret != "" {
			fields = append(fields, jen.Id("Ret").Op(":").Lit(g.Ret))
		}
		if g.Doc != "" {
			fields = append(fields, jen.Id("Doc").Op(":").Lit(g.Doc))
		}
		if len(g.Members) > 0 {
			fields = append(fields, jen.Id("Members").Op(":").Index().Id("Member").Custom(multiline, memberValues(g.Members)...))
		}
		out[i] = jen.Values(fields...)
	}
	return out
}

func stringSlice(ss []string) jen.Code {
	lits := make([]jen.Code, len(ss))
	for i, s := range ss {
		lits[i] = jen.Lit(s)
	}
	return jen.Index().String().Values(lits...)
}

// typeWords are valid anywhere a member type appears. The contextual
// words self and elem resolve against the owning value at lookup time.
var typeWords = map[string]bool{
	"":          true,
	"any":       true,
	"string":    true,
	"number":    true,
	"boolean":   true,
	"void":      true,
	"null":      true,
	"undefined": true,
	"never":     true,
	"self":      true,
	"elem":      true,
}

func validate(doc *tables) error {
	for _, k := range doc.Keywords {
		if k.Name == "" || k.Doc == "" {
			return fmt.Errorf("keyword entries need both name and doc")
		}
	}

	classes := map[string]bool{}
	seen := map[string]bool{}
	for _, g := range doc.Globals {
		if g.Name == "" {
			return fmt.Errorf("global with empty name")
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate global %q", g.Name)
		}
		seen[g.Name] = true
		switch g.Kind {
		case "object", "function", "class":
		default:
			return fmt.Errorf("global %q: unknown kind %q", g.Name, g.Kind)
		}
		if g.Kind == "class" {
			classes[g.Name] = true
		}
	}

	word := func(owner, name, w string) error {
		if typeWords[strings.TrimSuffix(w, "[]")] || classes[strings.TrimSuffix(w, "[]")] {
			return nil
		}
		if name != "" {
			owner += "." + name
		}
		return fmt.Errorf("%s: unknown type word %q", owner, w)
	}
	members := func(owner string, ms []memberEntry) error {
		names := map[string]bool{}
		for _, m := range ms {
			if names[m.Name] {
				return fmt.Errorf("%s: duplicate member %q", owner, m.Name)
			}
			names[m.Name] = true
			if err := word(owner, m.Name, m.Ret); err != nil {
				return err
			}
		}
		return nil
	}

	if err := members("strings", doc.Strings); err != nil {
		return err
	}
	if err := members("arrays", doc.Arrays); err != nil {
		return err
	}
	if err := members("numbers", doc.Numbers); err != nil {
		return err
	}
	for _, g := range doc.Globals {
		if err := members(g.Name, g.Members); err != nil {
			return err
		}
		if g.Kind == "function" {
			if err := word(g.Name, "", g.Ret); err != nil {
				return err
			}
		}
	}
	return nil
}

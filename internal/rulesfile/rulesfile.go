// Package rulesfile loads override rules from HCL documents.
//
// A document holds an optional global block (process-wide rules) and an
// optional local block (consumer rules), each listing rule blocks labeled
// with their match key:
//
//	global {
//	  rule "iPhone14,3" {
//	    width_scale   = 0.8
//	    height_scale  = 0.7
//	    corner_radius = 12
//	  }
//	  rule "iPhone" {
//	    width_scale = 0.9
//	    match       = "prefix"
//	  }
//	}
//
// Rules keep document order. Files ending in .json use HCL's JSON syntax.
package rulesfile

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-notch/internal/override"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// File is a decoded rule document.
type File struct {
	Global override.RuleSet
	Local  override.RuleSet
}

// All returns every rule in the document, global rules first.
func (f File) All() []override.Rule {
	return append(f.Global.Rules(), f.Local.Rules()...)
}

type document struct {
	Global *scope `hcl:"global,block"`
	Local  *scope `hcl:"local,block"`
}

type scope struct {
	Rules []ruleBlock `hcl:"rule,block"`
}

type ruleBlock struct {
	Key          string   `hcl:"key,label"`
	WidthScale   *float64 `hcl:"width_scale,optional"`
	HeightScale  *float64 `hcl:"height_scale,optional"`
	CornerRadius float64  `hcl:"corner_radius,optional"`
	Match        string   `hcl:"match,optional"`
}

// Load reads and decodes the file at path.
func Load(path string) (File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read rules file: %w", err)
	}
	return Decode(path, src)
}

// Decode parses src. filename selects the syntax by extension and is used
// in diagnostics.
func Decode(filename string, src []byte) (File, error) {
	var doc document
	if err := hclsimple.Decode(filename, src, nil, &doc); err != nil {
		return File{}, fmt.Errorf("decode rules file: %w", err)
	}

	global, err := doc.Global.ruleSet()
	if err != nil {
		return File{}, fmt.Errorf("%s: global: %w", filename, err)
	}
	local, err := doc.Local.ruleSet()
	if err != nil {
		return File{}, fmt.Errorf("%s: local: %w", filename, err)
	}
	return File{Global: global, Local: local}, nil
}

func (s *scope) ruleSet() (override.RuleSet, error) {
	if s == nil {
		return override.RuleSet{}, nil
	}
	rules := make([]override.Rule, 0, len(s.Rules))
	for _, b := range s.Rules {
		mode, err := override.ParseMatchMode(b.Match)
		if err != nil {
			return override.RuleSet{}, fmt.Errorf("rule %q: %w", b.Key, err)
		}
		rules = append(rules, override.Rule{
			Key:          b.Key,
			WidthScale:   valueOr(b.WidthScale, 1),
			HeightScale:  valueOr(b.HeightScale, 1),
			CornerRadius: b.CornerRadius,
			Mode:         mode,
		})
	}
	return override.NewRuleSet(rules...), nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// Package binlist carries a catalog of named issuer prefixes so users
// can ask for "visa" or "mastercard" instead of remembering raw BINs.
// The built-in catalog covers well-known sandbox ranges; a YAML file of
// the same shape can replace it:
//
//	presets:
//	  - name: visa
//	    prefix: "411111"
//	    scheme: visa
//	    note: the classic 4111 1111 1111 1111 range
//
// Scheme and note are display metadata only. Every preset feeds the
// same 16-digit generator.
package binlist

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/paykit/cardsmith/internal/cardgen"
)

// Preset is one named issuer prefix.
type Preset struct {
	Name   string `yaml:"name" json:"name"`
	Prefix string `yaml:"prefix" json:"prefix"`
	Scheme string `yaml:"scheme" json:"scheme"`
	Note   string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Catalog holds presets in their authored order with name lookup.
type Catalog struct {
	presets []Preset
	byName  map[string]Preset
}

var defaultPresets = []Preset{
	{Name: "visa", Prefix: "411111", Scheme: "visa", Note: "the classic 4111 1111 1111 1111 range"},
	{Name: "visa-debit", Prefix: "400005", Scheme: "visa"},
	{Name: "mastercard", Prefix: "555555", Scheme: "mastercard", Note: "the 5555 5555 5555 4444 range"},
	{Name: "mastercard-debit", Prefix: "520082", Scheme: "mastercard"},
	{Name: "mastercard-2series", Prefix: "222300", Scheme: "mastercard", Note: "2-series BINs introduced in 2017"},
	{Name: "discover", Prefix: "601111", Scheme: "discover", Note: "the 6011 1111 1111 1117 range"},
	{Name: "jcb", Prefix: "356600", Scheme: "jcb"},
	{Name: "unionpay", Prefix: "620000", Scheme: "unionpay"},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := newCatalog(defaultPresets)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads a user-supplied preset catalog from a YAML file,
// replacing the built-in one entirely.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing presets file %s: %w", path, err)
	}
	c, err := newCatalog(doc.Presets)
	if err != nil {
		return nil, fmt.Errorf("presets file %s: %w", path, err)
	}
	return c, nil
}

func newCatalog(presets []Preset) (*Catalog, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("catalog has no presets")
	}
	c := &Catalog{byName: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset with prefix %q has no name", p.Prefix)
		}
		if len(p.Prefix) != cardgen.PrefixLen || !cardgen.IsDigits(p.Prefix) {
			return nil, fmt.Errorf("preset %q: prefix must be %d digits, got %q", p.Name, cardgen.PrefixLen, p.Prefix)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset name %q", p.Name)
		}
		if p.Scheme == "" {
			p.Scheme = Scheme(p.Prefix)
		}
		c.byName[p.Name] = p
		c.presets = append(c.presets, p)
	}
	return c, nil
}

// Get returns the preset registered under name.
func (c *Catalog) Get(name string) (Preset, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// All returns the presets in authored order.
func (c *Catalog) All() []Preset {
	out := make([]Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Names returns the preset names in authored order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.presets))
	for _, p := range c.presets {
		names = append(names, p.Name)
	}
	return names
}

// Scheme labels an issuer prefix with its card network using the
// leading-digit ranges the networks publish: visa, mastercard,
// discover, jcb, unionpay or unknown. The label is display metadata
// and never changes how numbers are generated.
func Scheme(prefix string) string {
	if len(prefix) < 4 || !cardgen.IsDigits(prefix[:4]) {
		return "unknown"
	}
	two, _ := strconv.Atoi(prefix[:2])
	four, _ := strconv.Atoi(prefix[:4])
	three := four / 10
	switch {
	case prefix[0] == '4':
		return "visa"
	case two >= 51 && two <= 55:
		return "mastercard"
	case four >= 2221 && four <= 2720:
		return "mastercard"
	case four == 6011 || two == 65 || (three >= 644 && three <= 649):
		return "discover"
	case four >= 3528 && four <= 3589:
		return "jcb"
	case two == 62:
		return "unionpay"
	default:
		return "unknown"
	}
}

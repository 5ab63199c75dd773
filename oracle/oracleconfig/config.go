package oracleconfig

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nadav-alali/fairsweep/oracle"
)

// bracketYAML mirrors oracle.Bracket for YAML decoding.
type bracketYAML struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// bracketedYAML is the on-disk shape consumed by LoadBracketed:
//
//	top_k_fraction: 0.3
//	constraints:
//	  0: # attribute slot index
//	    AfricanAmerican: {min: 0.0, max: 0.4}
//	    Caucasian:       {min: 0.2, max: 1.0}
type bracketedYAML struct {
	TopKFraction float64                    `yaml:"top_k_fraction"`
	Constraints  map[int]map[string]bracketYAML `yaml:"constraints"`
}

// LoadBracketed decodes a YAML document from r and constructs an
// oracle.Bracketed from it. Validation of the decoded values (fraction
// range, bracket bounds, at least one constraint) is delegated entirely to
// oracle.NewBracketed so the two constructors never drift out of sync.
func LoadBracketed(r io.Reader) (*oracle.Bracketed, error) {
	var doc bracketedYAML
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("oracleconfig: decode: %w", err)
	}

	constraints := make(map[int]map[string]oracle.Bracket, len(doc.Constraints))
	for slot, groups := range doc.Constraints {
		owned := make(map[string]oracle.Bracket, len(groups))
		for group, b := range groups {
			owned[group] = oracle.Bracket{Min: b.Min, Max: b.Max}
		}
		constraints[slot] = owned
	}

	o, err := oracle.NewBracketed(doc.TopKFraction, constraints)
	if err != nil {
		return nil, fmt.Errorf("oracleconfig: %w", err)
	}

	return o, nil
}

// LoadBracketedFile opens path and delegates to LoadBracketed.
func LoadBracketedFile(path string) (*oracle.Bracketed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("oracleconfig: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadBracketed(f)
}

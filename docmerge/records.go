package docmerge

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Record is one element's business documentation, keyed by up to two
// candidate absolute path strings.
type Record struct {
	// ID is the record's stable identifier (e.g. a business term number).
	ID string `yaml:"id" json:"id"`

	// BusinessTerm is the element's business term.
	BusinessTerm string `yaml:"businessTerm" json:"businessTerm"`

	// BusinessRule is the rule text associated with the element.
	BusinessRule string `yaml:"businessRule,omitempty" json:"businessRule,omitempty"`

	// Description is the element's long-form description.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Profiles lists per-profile support markers (e.g. MINIMUM, BASIC,
	// EXTENDED).
	Profiles []string `yaml:"profiles,omitempty" json:"profiles,omitempty"`

	// Path is the record's primary absolute path key.
	Path string `yaml:"path" json:"path"`

	// AltPath is the fallback path key, used only when the primary key is
	// already taken by another record.
	AltPath string `yaml:"altPath,omitempty" json:"altPath,omitempty"`
}

// LoadRecords reads documentation records from a YAML file containing a
// list of records.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docmerge: failed to read %s: %w", path, err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("docmerge: failed to parse %s: %w", path, err)
	}
	return records, nil
}

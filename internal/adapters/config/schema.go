package config

import (
	"gopkg.in/yaml.v3"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cullfile represents the structure of the cull.yaml configuration file.
type Cullfile struct {
	Version  string       `yaml:"version"`
	Strategy StringList   `yaml:"strategy"`
	Stub     string       `yaml:"stub"`
	Lock     string       `yaml:"lock"`
	Vendor   string       `yaml:"vendor"`
	Store    string       `yaml:"store"`
	Workers  int          `yaml:"workers"`
	Exclude  []string     `yaml:"exclude"`
	Features []FeatureDTO `yaml:"features"`
}

// FeatureDTO represents one feature table row in the configuration.
type FeatureDTO struct {
	Match   string   `yaml:"match"`
	Provide []string `yaml:"provide"`
}

// StringList accepts either a single YAML scalar or a sequence of scalars.
// The strategy field takes both forms so a run configured with several
// strategies can be rejected with a precise error instead of a YAML type
// mismatch.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = StringList(many)
		return nil
	default:
		return zerr.With(domain.ErrConfigParseFailed, "line", value.Line)
	}
}

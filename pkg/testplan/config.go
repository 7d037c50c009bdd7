package testplan

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DimensionConfig declares one dimension of the test plan's value space.
type DimensionConfig struct {
	Name        string `yaml:"name" json:"name"`
	Values      []any  `yaml:"values" json:"values"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ConstraintConfig declares one constraint. Only "exclude" constraints are
// representable declaratively in YAML: require and at_most_one constraints
// need predicate closures supplied in Go, so a plan can only name them for
// documentation purposes; BuildConstraintSet skips any kind it can't
// construct and reports why.
type ConstraintConfig struct {
	Kind        string         `yaml:"kind" json:"kind"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Forbidden   map[string]any `yaml:"forbidden,omitempty" json:"forbidden,omitempty"`
}

// Config is a complete, loaded test plan.
type Config struct {
	Seed        uint64             `yaml:"seed" json:"seed"`
	Strength    int                `yaml:"strength" json:"strength"`
	Dimensions  []DimensionConfig  `yaml:"dimensions" json:"dimensions"`
	Constraints []ConstraintConfig `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

// LoadConfig reads and parses a YAML test plan from path, auto-generating
// a seed if the file doesn't specify one, and validating the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testplan: reading %s: %w", path, err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses a YAML test plan from raw bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("testplan: parsing yaml: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if cfg.Strength == 0 {
		cfg.Strength = 2
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the plan is internally consistent: at least one
// dimension, every dimension named and non-empty, strength at least 1, and
// every constraint's kind recognized.
func (c *Config) Validate() error {
	if len(c.Dimensions) == 0 {
		return ErrNoDimensions
	}
	if c.Strength < 1 {
		return ErrInvalidStrength
	}

	seen := make(map[string]bool, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if d.Name == "" {
			return ErrDimensionNoName
		}
		if len(d.Values) == 0 {
			return fmt.Errorf("%w: %q", ErrDimensionNoValues, d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("testplan: duplicate dimension name %q", d.Name)
		}
		seen[d.Name] = true
	}

	for _, cc := range c.Constraints {
		switch cc.Kind {
		case "exclude", "require", "at_most_one":
			// recognized; require/at_most_one just can't be built from YAML alone.
		default:
			return fmt.Errorf("%w: %q", ErrUnknownConstraintKind, cc.Kind)
		}
	}
	return nil
}

// ToYAML re-serializes the config canonically.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash returns a sha256 digest of the config's canonical YAML, suitable
// for folding into a covering-array generator's seed derivation so a
// changed plan never silently reuses a stale generation.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		var seedBytes [8]byte
		binary.BigEndian.PutUint64(seedBytes[:], c.Seed)
		sum := sha256.Sum256(seedBytes[:])
		return sum[:]
	}
	sum := sha256.Sum256(data)
	return sum[:]
}

func generateSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt           = 1e-10
	DefaultDuration     = 1e-6
	DefaultAngularScale = 6.283185307179586
)

type Config struct {
	Subsystems   []SubsystemConfig   `yaml:"subsystems"`
	Interactions []InteractionConfig `yaml:"interactions"`
	Run          RunConfig           `yaml:"run"`
	Initial      InitialConfig       `yaml:"initial"`
}

type SubsystemConfig struct {
	Name  string  `yaml:"name"`
	Kind  string  `yaml:"kind"` // "qubit" or "oscillator"
	Dim   int     `yaml:"dim"`
	Omega float64 `yaml:"omega"` // Hz
	Delta float64 `yaml:"delta"` // anharmonicity, Hz
	T1    float64 `yaml:"t1"`    // seconds; zero means no relaxation
	T2    float64 `yaml:"t2"`
}

type InteractionConfig struct {
	A        string  `yaml:"a"`
	B        string  `yaml:"b"`
	Kind     string  `yaml:"kind"` // "ZZ" or "FlipFlop"
	Strength float64 `yaml:"strength"`
}

type RunConfig struct {
	Dt           float64 `yaml:"dt"`
	Duration     float64 `yaml:"duration"`
	Stepper      string  `yaml:"stepper"`
	AngularScale float64 `yaml:"angular_scale"`
	Dissipation  bool    `yaml:"dissipation"`
}

// InitialConfig names the starting product state: one occupied level per
// subsystem, in declaration order. Missing entries default to ground.
type InitialConfig struct {
	Levels []int `yaml:"levels"`
}

func DefaultConfig() *Config {
	return &Config{
		Subsystems: []SubsystemConfig{
			{Name: "q0", Kind: "qubit", Dim: 3, Omega: 4.863e9, Delta: -300e6, T1: 5.2e-6, T2: 3.1e-6},
		},
		Run: RunConfig{
			Dt:           DefaultDt,
			Duration:     DefaultDuration,
			Stepper:      "rk4",
			AngularScale: DefaultAngularScale,
			Dissipation:  true,
		},
		Initial: InitialConfig{Levels: []int{1}},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy of the config.
func (c *Config) Clone() *Config {
	out := *c
	out.Subsystems = append([]SubsystemConfig(nil), c.Subsystems...)
	out.Interactions = append([]InteractionConfig(nil), c.Interactions...)
	out.Initial.Levels = append([]int(nil), c.Initial.Levels...)
	return &out
}

// Validate checks cross-references and parameter ranges before any
// matrices are built.
func (c *Config) Validate() error {
	if len(c.Subsystems) == 0 {
		return fmt.Errorf("config: no subsystems defined")
	}

	names := make(map[string]bool, len(c.Subsystems))
	for i, s := range c.Subsystems {
		if s.Name == "" {
			return fmt.Errorf("config: subsystem %d has no name", i)
		}
		if names[s.Name] {
			return fmt.Errorf("config: duplicate subsystem %q", s.Name)
		}
		names[s.Name] = true
		if s.Dim < 2 {
			return fmt.Errorf("config: subsystem %q needs dim >= 2, got %d", s.Name, s.Dim)
		}
		switch s.Kind {
		case "qubit", "oscillator":
		default:
			return fmt.Errorf("config: subsystem %q has unknown kind %q", s.Name, s.Kind)
		}
	}

	for i, in := range c.Interactions {
		if !names[in.A] || !names[in.B] {
			return fmt.Errorf("config: interaction %d references unknown subsystem (%q, %q)", i, in.A, in.B)
		}
		if in.A == in.B {
			return fmt.Errorf("config: interaction %d couples %q to itself", i, in.A)
		}
		switch in.Kind {
		case "ZZ", "FlipFlop":
		default:
			return fmt.Errorf("config: interaction %d has unknown kind %q", i, in.Kind)
		}
	}

	if c.Run.Dt <= 0 {
		return fmt.Errorf("config: run dt must be positive, got %g", c.Run.Dt)
	}
	if c.Run.Duration <= 0 {
		return fmt.Errorf("config: run duration must be positive, got %g", c.Run.Duration)
	}
	switch c.Run.Stepper {
	case "", "rk4", "euler":
	default:
		return fmt.Errorf("config: unknown stepper %q", c.Run.Stepper)
	}

	if len(c.Initial.Levels) > len(c.Subsystems) {
		return fmt.Errorf("config: %d initial levels for %d subsystems",
			len(c.Initial.Levels), len(c.Subsystems))
	}
	for i, lvl := range c.Initial.Levels {
		if lvl < 0 || lvl >= c.Subsystems[i].Dim {
			return fmt.Errorf("config: initial level %d out of range for subsystem %q",
				lvl, c.Subsystems[i].Name)
		}
	}

	return nil
}

// InitialIndex returns the full-space basis index of the configured
// product state, row-major over the subsystem dimensions.
func (c *Config) InitialIndex() int {
	idx := 0
	for i, s := range c.Subsystems {
		lvl := 0
		if i < len(c.Initial.Levels) {
			lvl = c.Initial.Levels[i]
		}
		idx = idx*s.Dim + lvl
	}
	return idx
}

package config

import (
	"fmt"

	"github.com/san-kum/qsim/internal/device"
	"github.com/san-kum/qsim/internal/operator"
	"github.com/san-kum/qsim/internal/quantum"
)

// BuildDevice assembles the configured subsystems and couplings into a
// device. T1 collapse operators are attached when the run enables
// dissipation.
func (c *Config) BuildDevice() (*device.Device, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	d := device.New()
	for _, sc := range c.Subsystems {
		var (
			s   *quantum.Subsystem
			err error
		)
		switch sc.Kind {
		case "oscillator":
			s, err = quantum.NewOscillator(sc.Name, sc.Dim, sc.Omega, sc.Delta)
		default:
			s, err = quantum.NewQubit(sc.Name, sc.Dim, sc.Omega, sc.Delta, sc.T1, sc.T2)
		}
		if err != nil {
			return nil, fmt.Errorf("config: subsystem %q: %w", sc.Name, err)
		}
		if err := d.AddSubsystem(s); err != nil {
			return nil, err
		}
	}

	for _, ic := range c.Interactions {
		if _, err := d.AddInteraction(ic.A, ic.B, operator.InteractionKind(ic.Kind), ic.Strength); err != nil {
			return nil, fmt.Errorf("config: interaction %s-%s: %w", ic.A, ic.B, err)
		}
	}

	if c.Run.Dissipation {
		if err := d.AddT1Dissipators(); err != nil {
			return nil, err
		}
	}

	return d, nil
}

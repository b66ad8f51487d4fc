package config

var Presets = map[string]map[string]*Config{
	"single_transmon": {
		"t1": {
			Subsystems: []SubsystemConfig{
				{Name: "q0", Kind: "qubit", Dim: 3, Omega: 4.863e9, Delta: -300e6, T1: 5.2e-6, T2: 3.1e-6},
			},
			Run:     RunConfig{Dt: 5e-9, Duration: 2.5e-5, Stepper: "rk4", AngularScale: DefaultAngularScale, Dissipation: true},
			Initial: InitialConfig{Levels: []int{1}},
		},
		"leakage": {
			Subsystems: []SubsystemConfig{
				{Name: "q0", Kind: "qubit", Dim: 4, Omega: 4.863e9, Delta: -300e6, T1: 5.2e-6, T2: 3.1e-6},
			},
			Run:     RunConfig{Dt: 5e-9, Duration: 2.5e-5, Stepper: "rk4", AngularScale: DefaultAngularScale, Dissipation: true},
			Initial: InitialConfig{Levels: []int{2}},
		},
	},
	"two_transmon": {
		"flipflop": {
			Subsystems: []SubsystemConfig{
				{Name: "q0", Kind: "qubit", Dim: 3, Omega: 4.863e9, Delta: -300e6, T1: 5.2e-6, T2: 3.1e-6},
				{Name: "q1", Kind: "qubit", Dim: 3, Omega: 5.193e9, Delta: -313.656e6, T1: 4.4e-6, T2: 2.8e-6},
			},
			Interactions: []InteractionConfig{
				{A: "q0", B: "q1", Kind: "FlipFlop", Strength: -4.25e6},
			},
			Run:     RunConfig{Dt: 1e-10, Duration: 2e-6, Stepper: "rk4", AngularScale: DefaultAngularScale, Dissipation: true},
			Initial: InitialConfig{Levels: []int{1, 0}},
		},
		"zz": {
			Subsystems: []SubsystemConfig{
				{Name: "q0", Kind: "qubit", Dim: 3, Omega: 4.863e9, Delta: -300e6, T1: 5.2e-6, T2: 3.1e-6},
				{Name: "q1", Kind: "qubit", Dim: 3, Omega: 5.193e9, Delta: -313.656e6, T1: 4.4e-6, T2: 2.8e-6},
			},
			Interactions: []InteractionConfig{
				{A: "q0", B: "q1", Kind: "ZZ", Strength: 250e3},
			},
			Run:     RunConfig{Dt: 1e-10, Duration: 2e-6, Stepper: "rk4", AngularScale: DefaultAngularScale, Dissipation: true},
			Initial: InitialConfig{Levels: []int{1, 1}},
		},
	},
	"qubit_resonator": {
		"vacuum": {
			Subsystems: []SubsystemConfig{
				{Name: "q0", Kind: "qubit", Dim: 3, Omega: 4.863e9, Delta: -300e6, T1: 5.2e-6, T2: 3.1e-6},
				{Name: "r0", Kind: "oscillator", Dim: 5, Omega: 7.1e9, Delta: 0},
			},
			Interactions: []InteractionConfig{
				{A: "q0", B: "r0", Kind: "FlipFlop", Strength: 50e6},
			},
			Run:     RunConfig{Dt: 5e-11, Duration: 5e-7, Stepper: "rk4", AngularScale: DefaultAngularScale, Dissipation: true},
			Initial: InitialConfig{Levels: []int{1, 0}},
		},
	},
}

// GetPreset returns a copy of the named preset; callers may overwrite
// fields (flag overrides) without touching the shared table.
func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}

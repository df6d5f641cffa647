package config

import "sort"

// Presets are named parameterizations of the injection experiment. The
// "reference" preset is the study's headline run: R0 reduced to 2, ten
// background infections, ten injected.
var Presets = map[string]*Config{
	"reference": {
		R0: 2.0, Population: 1e7, Gamma: 1.0,
		Rate: 1e-6, Delta: 10,
		Dt: 1e-5, Horizon: 50.0,
		Severe: DefaultSevere, Threshold: DefaultThreshold,
	},
	"high-background": {
		R0: 2.0, Population: 1e7, Gamma: 1.0,
		Rate: 1e-5, Delta: 10,
		Dt: 1e-5, Horizon: 50.0,
		Severe: DefaultSevere, Threshold: DefaultThreshold,
	},
	"fast-spread": {
		R0: 3.5, Population: 1e7, Gamma: 1.0,
		Rate: 1e-6, Delta: 10,
		Dt: 1e-5, Horizon: 50.0,
		Severe: DefaultSevere, Threshold: DefaultThreshold,
	},
	"late-injection": {
		R0: 2.0, Population: 1e7, Gamma: 1.0,
		Rate: 1e-6, Delta: 10, InjectAt: 5.0,
		Dt: 1e-5, Horizon: 50.0,
		Severe: DefaultSevere, Threshold: DefaultThreshold,
	},
	"coarse": {
		R0: 2.0, Population: 1e7, Gamma: 1.0,
		Rate: 1e-6, Delta: 10,
		Dt: 1e-3, Horizon: 50.0,
		Severe: DefaultSevere, Threshold: DefaultThreshold,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

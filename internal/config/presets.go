package config

import "sort"

// Presets are the two published variants of the presentation. The
// classic cut ends on the highlight; the extended cut adds the
// converge and disperse slides.
var Presets = map[string]*Config{
	"classic": {
		Variant: "classic",
		Slides:  []string{"slide1", "slide2", "slide3"},
	},
	"extended": {
		Variant: "extended",
		Slides:  []string{"slide1", "slide2", "slide3", "slide4", "slide5"},
	},
}

func GetPreset(variant string) *Config {
	cfg, ok := Presets[variant]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

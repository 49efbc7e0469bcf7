package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name: "default", "light" or "monochrome"
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers and field labels)
	Accent string `yaml:"accent"`

	// Status colors
	Pending string `yaml:"pending"`
	Overdue string `yaml:"overdue"`
	Done    string `yaml:"done"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	ErrorFg string `yaml:"error_fg"`
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Pending, preset.Pending)
	fill(&c.Overdue, preset.Overdue)
	fill(&c.Done, preset.Done)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.ErrorFg, preset.ErrorFg)
}

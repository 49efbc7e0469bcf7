package colors

// DefaultPreset is used when the config names no preset or an unknown one
const DefaultPreset = "default"

// presets holds the built-in schemes by name. Status colors are the ones
// the list, show and stats commands draw with.
var presets = map[string]ColorScheme{
	// Dark terminal background
	DefaultPreset: {
		Accent:  "#7C3AED",
		Pending: "#EAB308",
		Overdue: "#EF4444",
		Done:    "#22C55E",
		Title:   "#F9FAFB",
		Subtle:  "#6B7280",
		Normal:  "#E5E7EB",
		ErrorFg: "#F87171",
	},
	"light": {
		Accent:  "#5B21B6",
		Pending: "#A16207",
		Overdue: "#B91C1C",
		Done:    "#15803D",
		Title:   "#111827",
		Subtle:  "#6B7280",
		Normal:  "#1F2937",
		ErrorFg: "#DC2626",
	},
	// Greys only; overdue stands out by brightness and bold text
	"monochrome": {
		Accent:  "#FFFFFF",
		Pending: "#D4D4D4",
		Overdue: "#FFFFFF",
		Done:    "#737373",
		Title:   "#FFFFFF",
		Subtle:  "#737373",
		Normal:  "#D4D4D4",
		ErrorFg: "#FFFFFF",
	},
}

// Default returns the scheme used when the config sets no colors
func Default() *ColorScheme {
	return GetPreset(DefaultPreset)
}

// GetPreset returns a copy of the named preset, falling back to the default
func GetPreset(name string) *ColorScheme {
	scheme, ok := presets[name]
	if !ok {
		name = DefaultPreset
		scheme = presets[DefaultPreset]
	}
	scheme.Preset = name
	return &scheme
}

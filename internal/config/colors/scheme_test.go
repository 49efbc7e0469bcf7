package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name       string
		scheme     ColorScheme
		wantPreset string
		wantDone   string
	}{
		{"empty scheme gets the default preset", ColorScheme{}, "default", "#22C55E"},
		{"named preset fills its colors", ColorScheme{Preset: "light"}, "light", "#15803D"},
		{"unknown preset keeps its name", ColorScheme{Preset: "neon"}, "neon", "#22C55E"},
		{"explicit color wins", ColorScheme{Preset: "monochrome", Done: "#000000"}, "monochrome", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme := tt.scheme
			scheme.ApplyDefaults()

			assert.Equal(t, tt.wantPreset, scheme.Preset)
			assert.Equal(t, tt.wantDone, scheme.Done)
			assert.NotEmpty(t, scheme.Overdue)
			assert.NotEmpty(t, scheme.ErrorFg)
		})
	}
}

func TestGetPreset_ReturnsCopies(t *testing.T) {
	first := GetPreset("light")
	first.Done = "#000000"

	assert.Equal(t, "#15803D", GetPreset("light").Done)
	assert.Equal(t, "default", GetPreset("missing").Preset)
	assert.Equal(t, GetPreset("default"), Default())
}

package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/config/colors"
	"github.com/thenoetrevino/tasklist/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Deadline:", "Category:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Notes"
	ErrorStyle    lipgloss.Style

	statusColors map[models.Status]string
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg))

	statusColors = map[models.Status]string{
		models.StatusPending: scheme.Pending,
		models.StatusOverdue: scheme.Overdue,
		models.StatusDone:    scheme.Done,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStatus renders a status in its configured color, padded to a
// fixed width so list columns line up
func RenderStatus(status models.Status) string {
	text := fmt.Sprintf("%-7s", status)
	hex, ok := statusColors[status]
	if !ok {
		return text
	}
	return lipgloss.NewStyle().
		Bold(status == models.StatusOverdue).
		Foreground(lipgloss.Color(hex)).
		Render(text)
}

// StatusColor returns the configured hex color for status
func StatusColor(status models.Status) string {
	return statusColors[status]
}

// RenderField renders a "Label: value" line
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderProgressBar draws a width-character bar filled to percent
func RenderProgressBar(percent, width int) string {
	percent = max(0, min(percent, 100))
	filled := percent * width / 100

	bar := ColoredText(strings.Repeat("█", filled), statusColors[models.StatusDone]) +
		SubtitleStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

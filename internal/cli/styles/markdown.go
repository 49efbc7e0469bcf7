package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNotes renders task notes as markdown, falling back to the raw text
// if rendering fails
func RenderNotes(notes string, width int) string {
	if strings.TrimSpace(notes) == "" {
		return SubtitleStyle.Italic(true).Render("No notes")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return notes
	}
	rendered, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(rendered)
}

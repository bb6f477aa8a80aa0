// render.go turns a calculator's markdown doc into the ANSI text shown in the
// help panel.
//
// Glamour TermRenderer instances are moderately expensive to build, so they
// are cached per (theme, width bucket) in a package-level map guarded by a
// mutex. The glamour style follows the UI theme so the help panel matches
// the rest of the screen after a theme toggle.
package app

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/treykane/cli-calc/internal/config"
)

type rendererKey struct {
	theme string
	width int
}

var (
	rendererMu    sync.Mutex
	rendererCache = map[rendererKey]*glamour.TermRenderer{}
)

// renderMarkdown renders content for the given theme and width. Rendering
// failures fall back to the raw markdown.
func renderMarkdown(content, theme string, width int) string {
	key := rendererKey{theme: glamourStyle(theme), width: renderWidthBucket(width)}

	rendererMu.Lock()
	defer rendererMu.Unlock()

	renderer, ok := rendererCache[key]
	if !ok {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(key.theme),
			glamour.WithWordWrap(key.width),
		)
		if err != nil {
			appLog.Warn("create markdown renderer", "theme", key.theme, "width", key.width, "error", err)
			return content
		}
		rendererCache[key] = renderer
	}

	out, err := renderer.Render(content)
	if err != nil {
		appLog.Warn("render markdown", "error", err)
		return content
	}
	return strings.TrimRight(out, "\n")
}

func glamourStyle(theme string) string {
	if theme == config.ThemeLight {
		return "light"
	}
	return "dark"
}

package app

import (
	"log/slog"

	"github.com/treykane/cli-calc/internal/logging"
)

// appLog is the package-level structured logger for the TUI, tagged with
// component="app". Output goes to stderr so it never draws over the UI.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// logs the error with any additional slog-style attrs.
//
//	m.setStatusError("Could not save theme", err, "theme", m.theme)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}

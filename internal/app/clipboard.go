package app

import (
	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests; headless CI has no clipboard.
var writeClipboard = clipboard.WriteAll

// copyResultToClipboard copies the display string of the active tab's last
// outcome, placeholder included, to the system clipboard.
func (m *Model) copyResultToClipboard() {
	tab := m.activeTab()
	if tab == nil || tab.outcome == nil {
		m.status = "No result to copy"
		return
	}
	if err := writeClipboard(tab.outcome.Display); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = "Copied " + tab.outcome.Display
}

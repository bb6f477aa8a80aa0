package app

import (
	"encoding/json"
	"os"
	"slices"
	"strings"

	"github.com/treykane/cli-calc/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Actions sit between physical key presses and behavior: a key is looked up
// in keyToAction and the resulting action is dispatched in handleKey. Keys
// that map to no action are typed into the focused field, so defaults avoid
// plain printable characters.
//
// Users can override any assignment via the "keybindings" map in
// config.json or via an external keymap file (default:
// ~/.cli-calc/keymap.json).
// ---------------------------------------------------------------------------

const (
	// actionToolNext switches to the next calculator tab (wraps).
	actionToolNext = "tool.next"

	// actionToolPrev switches to the previous calculator tab (wraps).
	actionToolPrev = "tool.prev"

	// actionFieldNext focuses the next input of the active tab.
	actionFieldNext = "field.next"

	// actionFieldPrev focuses the previous input of the active tab.
	actionFieldPrev = "field.prev"

	// actionCalculate evaluates the active tab.
	actionCalculate = "calc.run"

	// actionClear empties every field of the active tab and its result.
	actionClear = "calc.clear"

	// actionCopy copies the last result of the active tab to the clipboard.
	actionCopy = "result.copy"

	// actionTheme toggles between the dark and light themes and saves the
	// choice to config.json.
	actionTheme = "theme.toggle"

	// actionHelp toggles the help panel for the active calculator.
	actionHelp = "help.toggle"

	// actionClose closes the help panel.
	actionClose = "help.close"

	// actionQuit exits the application.
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation: "ctrl+", "alt+", "shift+"
// modifiers and names such as "enter", "esc", "tab", "up", "f1".
var defaultActionKeys = map[string][]string{
	actionToolNext:  {"ctrl+n", "ctrl+right"},
	actionToolPrev:  {"ctrl+p", "ctrl+left"},
	actionFieldNext: {"tab", "down"},
	actionFieldPrev: {"shift+tab", "up"},
	actionCalculate: {"enter"},
	actionClear:     {"ctrl+x"},
	actionCopy:      {"ctrl+y"},
	actionTheme:     {"ctrl+t"},
	actionHelp:      {"f1", "ctrl+g"},
	actionClose:     {"esc"},
	actionQuit:      {"ctrl+c", "ctrl+q"},
}

// loadKeybindings builds the key↔action maps from, in increasing priority,
// defaultActionKeys, cfg.Keybindings and the keymap file at cfg.KeymapFile.
// An override replaces the action's full default key set.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	for action, key := range loadKeymapFile(cfg.KeymapFile) {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

// loadKeymapFile reads a flat JSON object of action → key. A missing file
// is not an error; unreadable or malformed files are logged and ignored.
func loadKeymapFile(path string) map[string]string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			appLog.Warn("read keymap file", "path", path, "error", err)
		}
		return nil
	}
	overrides := map[string]string{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		appLog.Warn("parse keymap file", "path", path, "error", err)
		return nil
	}
	return overrides
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction from keyForAction. When two
// actions claim one key, the first one seen keeps it and a warning is
// logged. Actions are visited in sorted order so the winner is stable.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString trims and lowercases a key. A single uppercase letter
// becomes "shift+<letter>", matching how Bubble Tea reports shifted keys.
//
//	normalizeKeyString("Ctrl+T") → "ctrl+t"
//	normalizeKeyString(" Y ")    → "shift+y"
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"pgup":      "PgUp",
		"pgdown":    "PgDn",
		"space":     "Space",
		"backspace": "Backspace",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}

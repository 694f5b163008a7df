package shell

import "strings"

// KeyEvent mirrors the renderer's keydown payload.
type KeyEvent struct {
	Type    string `json:"type"`
	Key     string `json:"key"`
	Control bool   `json:"control"`
	Shift   bool   `json:"shift"`
	Alt     bool   `json:"alt"`
	Meta    bool   `json:"meta"`
}

func isDevToolsShortcut(ev KeyEvent) bool {
	if !strings.EqualFold(ev.Type, "keydown") {
		return false
	}
	if ev.Key == "F12" {
		return true
	}
	return ev.Control && ev.Shift && strings.EqualFold(ev.Key, "i")
}

// HandleKey toggles developer tools on F12 or Ctrl+Shift+I. The return value
// tells the renderer to suppress its default handling.
func (s *Shell) HandleKey(ev KeyEvent) bool {
	if !isDevToolsShortcut(ev) {
		return false
	}
	w := s.current()
	if w == nil {
		return false
	}
	s.logger.WithEvent("key-down").Debug("devtools shortcut", "key", ev.Key)
	w.ToggleDevTools()
	return true
}

package shell

import (
	"fmt"

	"go-picview/internal/core/utils"
)

const (
	MenuDevTools = "devtools"
	MenuInspect  = "inspect"
	MenuReload   = "reload"
)

type MenuItem struct {
	ID        string `json:"id,omitempty"`
	Label     string `json:"label,omitempty"`
	Separator bool   `json:"separator,omitempty"`
}

// ContextMenu returns the right-click menu for a click at (x, y).
func (s *Shell) ContextMenu(x, y int) []MenuItem {
	s.logger.WithEvent("context-menu").Debug("menu requested", "x", x, "y", y)
	return []MenuItem{
		{ID: MenuDevTools, Label: "Open DevTools"},
		{ID: MenuInspect, Label: "Inspect Element"},
		{Separator: true},
		{ID: MenuReload, Label: "Reload"},
	}
}

// SelectMenuItem runs the action behind a context-menu item.
func (s *Shell) SelectMenuItem(id string, x, y int) error {
	w := s.current()
	if w == nil {
		return utils.NewWindowError("context menu", ErrNoWindow)
	}

	switch id {
	case MenuDevTools:
		w.ToggleDevTools()
	case MenuInspect:
		w.InspectElement(x, y)
	case MenuReload:
		w.Reload()
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown menu item %q", id), nil)
	}
	return nil
}

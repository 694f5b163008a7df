package shell

import (
	"errors"
	"fmt"

	"go-picview/internal/core/utils"
)

// Command is a one-way window-control message from the renderer.
type Command string

const (
	CmdMinimise   Command = "window-min"
	CmdMaximise   Command = "window-max"
	CmdClose      Command = "window-close"
	CmdFullscreen Command = "window-fullscreen"
	CmdResizeInc  Command = "window-resize-inc"
	CmdResizeDec  Command = "window-resize-dec"
)

// Commands lists every window-control message in wire order.
var Commands = []Command{
	CmdMinimise,
	CmdMaximise,
	CmdClose,
	CmdFullscreen,
	CmdResizeInc,
	CmdResizeDec,
}

var ErrNoWindow = errors.New("no live window")

func ParseCommand(name string) (Command, error) {
	for _, c := range Commands {
		if string(c) == name {
			return c, nil
		}
	}
	return "", utils.NewValidationError(fmt.Sprintf("unknown window command %q", name), nil)
}

// Dispatch applies cmd to the live window. Resize commands are silently
// dropped when no window is live; the others report ErrNoWindow.
func (s *Shell) Dispatch(cmd Command) error {
	log := s.logger.WithEvent(string(cmd))

	switch cmd {
	case CmdResizeInc, CmdResizeDec:
		w := s.current()
		if w == nil {
			log.Debug("resize ignored, no window")
			return nil
		}
		s.resize(w, cmd == CmdResizeInc)
		return nil
	case CmdMinimise, CmdMaximise, CmdClose, CmdFullscreen:
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown window command %q", cmd), nil)
	}

	w := s.current()
	if w == nil {
		return utils.NewWindowError(string(cmd), ErrNoWindow)
	}

	switch cmd {
	case CmdMinimise:
		w.Minimise()
	case CmdMaximise:
		if w.IsMaximised() {
			w.Unmaximise()
		} else {
			w.Maximise()
		}
	case CmdFullscreen:
		w.SetFullscreen(!w.IsFullscreen())
	case CmdClose:
		if s.opts.KeepResident {
			w.Hide()
			s.Closed()
		} else {
			w.Close()
		}
	}
	log.Debug("window command applied")
	return nil
}

func (s *Shell) resize(w Window, grow bool) {
	before := w.Bounds()
	var after Bounds
	if grow {
		after = Grow(before, s.opts.ResizeStep)
	} else {
		after = Shrink(before, s.opts.ResizeStep, s.opts.MinWidth, s.opts.MinHeight)
	}
	w.SetBounds(after)
	s.logger.WithOperation("resize").Debug("bounds changed",
		"from", before, "to", after)
}

// Package shell owns the viewer's single top-level window and translates
// renderer messages into native window operations.
package shell

import (
	"sync"

	"go-picview/internal/core/launch"
	"go-picview/internal/core/utils"
)

// EventOpenFile is pushed to the renderer once per load with the launch path.
const EventOpenFile = "open-file"

type State int

const (
	StateAbsent State = iota
	StateLive
)

func (s State) String() string {
	if s == StateLive {
		return "live"
	}
	return "absent"
}

// Window is the native window as seen by the shell. Implementations are
// expected to be thin wrappers over a webview runtime.
type Window interface {
	Minimise()
	Unminimise()
	IsMaximised() bool
	Maximise()
	Unmaximise()
	IsFullscreen() bool
	SetFullscreen(on bool)
	Bounds() Bounds
	SetBounds(b Bounds)
	Show()
	Hide()
	Close()
	Reload()
	ToggleDevTools()
	InspectElement(x, y int)
	Emit(event string, data ...interface{})
	OpenFile(opts DialogOptions) (string, error)
}

type Options struct {
	ResizeStep float64
	MinWidth   int
	MinHeight  int
	// KeepResident hides the window on close instead of ending the process,
	// following the macOS convention for background apps. Reopen is the way
	// back.
	KeepResident bool
	// Args is the process argument list scanned on every content load.
	Args     []string
	Resolver *launch.Resolver
}

type Shell struct {
	mu     sync.Mutex
	opts   Options
	logger *utils.Logger
	window Window
	state  State
	// pending holds arguments of a request that arrived while the window was
	// absent; the next ContentReady opens them after the launch path.
	pending []string
}

func New(opts Options, logger *utils.Logger) *Shell {
	if opts.ResizeStep <= 0 {
		opts.ResizeStep = 0.1
	}
	if opts.MinWidth <= 0 {
		opts.MinWidth = 400
	}
	if opts.MinHeight <= 0 {
		opts.MinHeight = 300
	}
	if opts.Resolver == nil {
		opts.Resolver = launch.NewResolver(nil)
	}
	return &Shell{
		opts:   opts,
		logger: logger,
		state:  StateAbsent,
	}
}

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Create takes ownership of w and moves the shell to the live state. It does
// not check whether a window is already live.
func (s *Shell) Create(w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = w
	s.state = StateLive
	s.logger.WithOperation("create").Info("window live")
}

// Closed releases the window reference.
func (s *Shell) Closed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = nil
	s.state = StateAbsent
	s.logger.WithOperation("close").Info("window closed")
}

// Activate brings back a window that was hidden by a resident close. It
// reports whether anything happened.
func (s *Shell) Activate(w Window) bool {
	if s.State() == StateLive {
		return false
	}
	w.Show()
	w.Reload()
	s.Create(w)
	return true
}

// Reopen brings w forward for a request carrying args, such as a second
// launch or a file handed over by the desktop. An absent window is
// re-created and the request waits for its content to load; a live one gets
// the file immediately.
func (s *Shell) Reopen(w Window, args []string) {
	if s.Activate(w) {
		s.mu.Lock()
		s.pending = args
		s.mu.Unlock()
		return
	}
	w.Unminimise()
	w.Show()
	s.ForwardArgs(args)
}

// ContentReady runs after each renderer load and pushes the launch path, if
// any, followed by a request queued by Reopen.
func (s *Shell) ContentReady() {
	s.openFromArgs(s.opts.Args)

	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	if pending != nil {
		s.openFromArgs(pending)
	}
}

// ForwardArgs resolves another process's arguments and hands the match to the
// live window.
func (s *Shell) ForwardArgs(args []string) bool {
	return s.openFromArgs(args)
}

func (s *Shell) openFromArgs(args []string) bool {
	path, ok := s.opts.Resolver.Resolve(args)
	if !ok {
		s.logger.Debug("no launch file in arguments", "args", len(args))
		return false
	}

	w := s.current()
	if w == nil {
		return false
	}
	s.logger.WithEvent(EventOpenFile).Info("sending launch file", "path", path)
	w.Emit(EventOpenFile, path)
	return true
}

func (s *Shell) current() Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

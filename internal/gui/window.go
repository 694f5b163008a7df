package gui

import (
	"context"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"go-picview/internal/shell"
)

const (
	EventDevTools = "devtools"
	EventInspect  = "inspect"
)

// wailsWindow drives the webview window through the Wails runtime.
type wailsWindow struct {
	ctx context.Context

	mu       sync.Mutex
	devtools bool
}

var _ shell.Window = (*wailsWindow)(nil)

func newWailsWindow(ctx context.Context) *wailsWindow {
	return &wailsWindow{ctx: ctx}
}

func (w *wailsWindow) Minimise()         { runtime.WindowMinimise(w.ctx) }
func (w *wailsWindow) Unminimise()       { runtime.WindowUnminimise(w.ctx) }
func (w *wailsWindow) IsMaximised() bool { return runtime.WindowIsMaximised(w.ctx) }
func (w *wailsWindow) Maximise()         { runtime.WindowMaximise(w.ctx) }
func (w *wailsWindow) Unmaximise()       { runtime.WindowUnmaximise(w.ctx) }
func (w *wailsWindow) IsFullscreen() bool {
	return runtime.WindowIsFullscreen(w.ctx)
}

func (w *wailsWindow) SetFullscreen(on bool) {
	if on {
		runtime.WindowFullscreen(w.ctx)
	} else {
		runtime.WindowUnfullscreen(w.ctx)
	}
}

func (w *wailsWindow) Bounds() shell.Bounds {
	x, y := runtime.WindowGetPosition(w.ctx)
	width, height := runtime.WindowGetSize(w.ctx)
	return shell.Bounds{X: x, Y: y, Width: width, Height: height}
}

// SetBounds resizes before moving so the centred position is not clamped
// against the old size.
func (w *wailsWindow) SetBounds(b shell.Bounds) {
	runtime.WindowSetSize(w.ctx, b.Width, b.Height)
	runtime.WindowSetPosition(w.ctx, b.X, b.Y)
}

func (w *wailsWindow) Show()   { runtime.WindowShow(w.ctx) }
func (w *wailsWindow) Hide()   { runtime.WindowHide(w.ctx) }
func (w *wailsWindow) Close()  { runtime.Quit(w.ctx) }
func (w *wailsWindow) Reload() { runtime.WindowReload(w.ctx) }

// ToggleDevTools flips the inspector state and tells the renderer. The Wails
// v2 runtime has no call to open the native inspector, so the native one is
// only reachable through the default context menu when devtools are built in.
func (w *wailsWindow) ToggleDevTools() {
	w.mu.Lock()
	w.devtools = !w.devtools
	open := w.devtools
	w.mu.Unlock()
	runtime.EventsEmit(w.ctx, EventDevTools, open)
}

func (w *wailsWindow) InspectElement(x, y int) {
	runtime.EventsEmit(w.ctx, EventInspect, map[string]int{"x": x, "y": y})
}

func (w *wailsWindow) Emit(event string, data ...interface{}) {
	runtime.EventsEmit(w.ctx, event, data...)
}

func (w *wailsWindow) OpenFile(opts shell.DialogOptions) (string, error) {
	return runtime.OpenFileDialog(w.ctx, dialogOptions(opts))
}

func dialogOptions(opts shell.DialogOptions) runtime.OpenDialogOptions {
	filters := make([]runtime.FileFilter, 0, len(opts.Filters))
	for _, f := range opts.Filters {
		filters = append(filters, runtime.FileFilter{
			DisplayName: f.DisplayName,
			Pattern:     strings.Join(f.Patterns, ";"),
		})
	}
	return runtime.OpenDialogOptions{
		Title:   opts.Title,
		Filters: filters,
	}
}

package shell

import (
	"io"

	"go-picview/internal/core/utils"
)

type emitted struct {
	event string
	data  []interface{}
}

type fakeWindow struct {
	bounds     Bounds
	maximised  bool
	fullscreen bool
	minimised  bool
	hidden     bool
	closed     bool
	reloads    int
	devtools   int
	inspected  []Bounds
	events     []emitted

	dialogPath string
	dialogErr  error
	dialogOpts DialogOptions
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{bounds: Bounds{X: 100, Y: 100, Width: 800, Height: 600}}
}

func (f *fakeWindow) Minimise()             { f.minimised = true }
func (f *fakeWindow) Unminimise()           { f.minimised = false }
func (f *fakeWindow) IsMaximised() bool     { return f.maximised }
func (f *fakeWindow) Maximise()             { f.maximised = true }
func (f *fakeWindow) Unmaximise()           { f.maximised = false }
func (f *fakeWindow) IsFullscreen() bool    { return f.fullscreen }
func (f *fakeWindow) SetFullscreen(on bool) { f.fullscreen = on }
func (f *fakeWindow) Bounds() Bounds        { return f.bounds }
func (f *fakeWindow) SetBounds(b Bounds)    { f.bounds = b }
func (f *fakeWindow) Show()                 { f.hidden = false }
func (f *fakeWindow) Hide()                 { f.hidden = true }
func (f *fakeWindow) Close()                { f.closed = true }
func (f *fakeWindow) Reload()               { f.reloads++ }
func (f *fakeWindow) ToggleDevTools()       { f.devtools++ }

func (f *fakeWindow) InspectElement(x, y int) {
	f.inspected = append(f.inspected, Bounds{X: x, Y: y})
}

func (f *fakeWindow) Emit(event string, data ...interface{}) {
	f.events = append(f.events, emitted{event: event, data: data})
}

func (f *fakeWindow) OpenFile(opts DialogOptions) (string, error) {
	f.dialogOpts = opts
	return f.dialogPath, f.dialogErr
}

func testLogger() *utils.Logger {
	return utils.NewLoggerWithWriter(io.Discard, "debug", "text")
}

func newLiveShell(opts Options) (*Shell, *fakeWindow) {
	s := New(opts, testLogger())
	w := newFakeWindow()
	s.Create(w)
	return s, w
}

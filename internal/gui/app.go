package gui

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"go-picview/internal/core/config"
	"go-picview/internal/core/launch"
	"go-picview/internal/core/utils"
	"go-picview/internal/shell"
)

type App struct {
	ctx    context.Context
	config *config.Config
	logger *utils.Logger
	shell  *shell.Shell
	files  *FileServer
	window shell.Window
	offs   []func()
}

// NewApp wires a shell for one process. args is the full process argument
// list, program name included.
func NewApp(cfg *config.Config, logger *utils.Logger, args []string) *App {
	osfs := afero.NewOsFs()
	sh := shell.New(shell.Options{
		ResizeStep:   cfg.Window.ResizeStep,
		MinWidth:     cfg.Window.MinWidth,
		MinHeight:    cfg.Window.MinHeight,
		KeepResident: cfg.Window.KeepResident,
		Args:         args,
		Resolver:     launch.NewResolver(osfs),
	}, logger)

	return &App{
		config: cfg,
		logger: logger,
		shell:  sh,
		files:  NewFileServer(osfs, logger),
	}
}

func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx
	a.window = newWailsWindow(ctx)
	runtime.WindowCenter(ctx)
	a.shell.Create(a.window)

	for _, cmd := range shell.Commands {
		off := runtime.EventsOn(ctx, string(cmd), func(_ ...interface{}) {
			a.dispatch(cmd)
		})
		a.offs = append(a.offs, off)
	}
	a.logger.Info("GUI application started")
}

func (a *App) OnDomReady(ctx context.Context) {
	a.logger.Debug("DOM ready")
	a.shell.ContentReady()
}

func (a *App) OnShutdown(ctx context.Context) {
	for _, off := range a.offs {
		off()
	}
	a.offs = nil
	a.shell.Closed()
	a.logger.Info("GUI application shutting down")
}

// OnSecondInstanceLaunch runs when single-instance locking is enabled and the
// viewer is started again.
func (a *App) OnSecondInstanceLaunch(data options.SecondInstanceData) {
	a.logger.Info("second instance launched", "args", data.Args)
	a.reopen(absArgs(data.Args, data.WorkingDirectory))
}

// OnFileOpen runs when macOS hands the running viewer a file, from Finder's
// "Open With" or a drop on the dock icon.
func (a *App) OnFileOpen(path string) {
	a.logger.Info("file opened by the desktop", "path", path)
	a.reopen([]string{"", path})
}

func (a *App) reopen(args []string) {
	if a.window == nil {
		return
	}
	a.shell.Reopen(a.window, args)
}

// absArgs prepends an empty program name and anchors relative paths at dir.
func absArgs(args []string, dir string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, "")
	for _, arg := range args {
		if dir != "" && !strings.HasPrefix(arg, "-") && !filepath.IsAbs(arg) {
			arg = filepath.Join(dir, arg)
		}
		out = append(out, arg)
	}
	return out
}

// Options builds the Wails application options for a borderless viewer window.
func (a *App) Options(assets fs.FS) (*options.App, error) {
	r, g, b, err := a.config.BackgroundRGB()
	if err != nil {
		return nil, utils.NewConfigError("window background", err)
	}

	opts := &options.App{
		Title:            a.config.Window.Title,
		Width:            a.config.Window.Width,
		Height:           a.config.Window.Height,
		MinWidth:         a.config.Window.MinWidth,
		MinHeight:        a.config.Window.MinHeight,
		Frameless:        a.config.Window.Frameless,
		BackgroundColour: &options.RGBA{R: r, G: g, B: b, A: 255},
		// no application menu
		Menu: nil,
		AssetServer: &assetserver.Options{
			Assets:  assets,
			Handler: a.files,
		},
		Logger:                   utils.NewWailsLogger(a.logger),
		LogLevel:                 utils.WailsLogLevel(a.config.Logging.Level),
		EnableDefaultContextMenu: a.config.DevTools.Enabled,
		Debug: options.Debug{
			OpenInspectorOnStartup: a.config.DevTools.OpenOnStartup,
		},
		OnStartup:  a.OnStartup,
		OnDomReady: a.OnDomReady,
		OnShutdown: a.OnShutdown,
		Bind: []interface{}{
			a,
		},
		HideWindowOnClose: a.config.Window.KeepResident,
		Mac: &mac.Options{
			TitleBar:   a.macTitleBar(),
			OnFileOpen: a.OnFileOpen,
			About: &mac.AboutInfo{
				Title:   a.config.Window.Title,
				Message: "Borderless image viewer.",
			},
		},
		Windows: &windows.Options{
			DisableFramelessWindowDecorations: false,
		},
		Linux: &linux.Options{
			ProgramName: "go-picview",
		},
	}

	if a.config.Instance.Single {
		opts.SingleInstanceLock = &options.SingleInstanceLock{
			UniqueId:               a.config.Instance.ID,
			OnSecondInstanceLaunch: a.OnSecondInstanceLaunch,
		}
	}

	return opts, nil
}

func (a *App) macTitleBar() *mac.TitleBar {
	if a.config.Window.Frameless {
		return mac.TitleBarHidden()
	}
	return mac.TitleBarDefault()
}

// checkDisplay fails early on Linux when no X11 or Wayland display is set.
func checkDisplay(goos string, getenv func(string) string) error {
	if goos != "linux" {
		return nil
	}
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return utils.NewWindowError("no display detected: DISPLAY and WAYLAND_DISPLAY are not set", nil)
	}
	return nil
}

func (a *App) Run(assets fs.FS) error {
	a.logger.Info("Starting Wails GUI application")

	if err := checkDisplay(goruntime.GOOS, os.Getenv); err != nil {
		return err
	}

	opts, err := a.Options(assets)
	if err != nil {
		return err
	}
	if err := wails.Run(opts); err != nil {
		return fmt.Errorf("failed to run Wails application: %w", err)
	}
	return nil
}

func (a *App) dispatch(cmd shell.Command) error {
	err := a.shell.Dispatch(cmd)
	if err != nil {
		a.logger.WithEvent(string(cmd)).WithError(err).Error("window command failed")
	}
	return err
}

// Bound methods called by the renderer

func (a *App) WindowMin() error        { return a.dispatch(shell.CmdMinimise) }
func (a *App) WindowMax() error        { return a.dispatch(shell.CmdMaximise) }
func (a *App) WindowClose() error      { return a.dispatch(shell.CmdClose) }
func (a *App) WindowFullscreen() error { return a.dispatch(shell.CmdFullscreen) }
func (a *App) WindowResizeInc() error  { return a.dispatch(shell.CmdResizeInc) }
func (a *App) WindowResizeDec() error  { return a.dispatch(shell.CmdResizeDec) }

// Command dispatches a window-control message by its wire name.
func (a *App) Command(name string) error {
	cmd, err := shell.ParseCommand(name)
	if err != nil {
		return err
	}
	return a.dispatch(cmd)
}

func (a *App) OpenFileDialog() ([]string, error) {
	paths, err := a.shell.OpenFileDialog()
	if err != nil {
		a.logger.WithError(err).Error("open file dialog failed")
	}
	return paths, err
}

func (a *App) HandleKey(ev shell.KeyEvent) bool {
	return a.shell.HandleKey(ev)
}

func (a *App) ContextMenu(x, y int) []shell.MenuItem {
	return a.shell.ContextMenu(x, y)
}

func (a *App) ContextMenuSelect(id string, x, y int) error {
	return a.shell.SelectMenuItem(id, x, y)
}

// FileURL maps a local image path to the URL the webview can load it from.
func (a *App) FileURL(path string) string {
	return LocalFileURL(path)
}

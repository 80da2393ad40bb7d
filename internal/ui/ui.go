// Package ui is the GTK frontend: one window with the text-only tree on the
// left and the icon tree on the right.
package ui

import (
	"log/slog"
	"os"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"treeview/internal/config"
	"treeview/internal/resource"
	"treeview/internal/selection"
	"treeview/internal/store"
)

// App owns the window and everything packed into it for the lifetime of
// the GTK application.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	loader store.IconLoader

	app   *gtk.Application
	win   *gtk.ApplicationWindow
	left  *treePane
	right *treePane
	sync  *selection.Synchronizer
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		loader: resource.NewLoader(cfg.Image),
	}
}

// Run registers the application id, runs the main loop until the window is
// closed and returns the loop's exit status.
func (a *App) Run(args []string) int {
	app, err := gtk.ApplicationNew(a.cfg.AppID, glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		a.logger.Error("application init failed", "app_id", a.cfg.AppID, "err", err)
		return 1
	}
	a.app = app
	a.logger.Debug("application created", "app_id", a.cfg.AppID)

	app.Connect("activate", func() {
		if err := a.build(); err != nil {
			a.logger.Error("building window failed", "err", err)
			app.Quit()
		}
	})

	status := app.Run(args)
	a.logger.Debug("main loop exited", "status", status)
	return status
}

func (a *App) build() error {
	win, err := gtk.ApplicationWindowNew(a.app)
	if err != nil {
		return err
	}
	a.win = win
	win.SetTitle(a.cfg.Title)
	win.SetPosition(gtk.WIN_POS_CENTER)

	reporter := &dialogReporter{parent: win, sched: glibScheduler{}, logger: a.logger}
	panes := store.BuildPanes(a.cfg.Roots, a.loader, a.cfg.ImageName(), reporter, a.logger)

	if a.left, err = newTextPane(panes.Left); err != nil {
		return err
	}
	icon := iconPixbuf(panes.Icon, reporter, a.logger)
	if a.right, err = newIconPane(panes.Right, icon); err != nil {
		return err
	}

	a.sync = selection.NewSynchronizer(a.right, a.logger)
	if err := a.left.onSelectionChanged(func() { a.sync.Handle(a.left) }); err != nil {
		return err
	}

	split, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 10)
	if err != nil {
		return err
	}
	split.SetSizeRequest(-1, -1)
	split.Add(a.left.view)
	split.Add(a.right.view)

	win.Add(split)
	win.ShowAll()
	a.logger.Debug("window shown", "title", a.cfg.Title)
	return nil
}

// Run is the gui command entry point.
func Run(cfg *config.Config, logger *slog.Logger) int {
	return New(cfg, logger).Run(os.Args[:1])
}

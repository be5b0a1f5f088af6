// Package ui hosts the GTK application shell for the site permissions
// panel.
package ui

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/sitepanel/internal/application/usecase"
	"github.com/bnema/sitepanel/internal/infrastructure/config"
	"github.com/bnema/sitepanel/internal/logging"
	"github.com/bnema/sitepanel/internal/ui/component"
	"github.com/bnema/sitepanel/internal/ui/controller"
	"github.com/bnema/sitepanel/internal/ui/panel"
)

const (
	defaultWidth  = 420
	defaultHeight = 480
)

// App is the GTK application showing the permission panel for one
// origin. Renders always run on the GTK main thread: user-driven
// changes and config reloads both schedule a render through an idle
// source.
type App struct {
	origin  string
	uc      *usecase.SitePermissionsUseCase
	cfgMgr  *config.Manager
	gtkApp  *gtk.Application
	window  *gtk.ApplicationWindow
	paneled *component.SitePermissionsPanel
	view    *panel.View

	retainedCallbacks []interface{}
}

// NewApp creates the GTK shell for one origin.
func NewApp(origin string, uc *usecase.SitePermissionsUseCase, cfgMgr *config.Manager) *App {
	return &App{origin: origin, uc: uc, cfgMgr: cfgMgr}
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)

	a.gtkApp = gtk.NewApplication("", gio.GApplicationFlagsNoneValue)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	activateCb := func(_ gio.Application) {
		a.onActivate(ctx)
	}
	a.retainedCallbacks = append(a.retainedCallbacks, activateCb)
	a.gtkApp.ConnectActivate(&activateCb)

	log.Info().Str("origin", a.origin).Msg("starting GTK main loop")
	return int(a.gtkApp.Run(int32(len(args)), args))
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)

	a.window = gtk.NewApplicationWindow(a.gtkApp)
	if a.window == nil {
		log.Error().Msg("failed to create application window")
		return
	}
	title := "Site permissions — " + a.origin
	a.window.SetTitle(title)
	a.window.SetDefaultSize(defaultWidth, defaultHeight)

	paneled, err := component.NewSitePermissionsPanel()
	if err != nil {
		log.Error().Err(err).Msg("failed to build permissions panel")
		return
	}
	a.paneled = paneled

	interactor := controller.NewOriginInteractor(ctx, a.origin, a.uc, func() {
		a.scheduleRender(ctx)
	})

	view, err := panel.NewView(paneled, interactor)
	if err != nil {
		log.Error().Err(err).Msg("failed to build panel view")
		return
	}
	a.view = view

	a.window.SetChild(paneled.Widget())
	a.window.Present()

	a.renderNow(ctx)

	// Config reloads change defaults and labels; re-render on the main
	// thread when the watcher fires.
	a.cfgMgr.OnChange(func(_ *config.Config) {
		a.scheduleRender(ctx)
	})
	a.cfgMgr.Watch()
}

// scheduleRender queues a render pass on the GTK main thread.
func (a *App) scheduleRender(ctx context.Context) {
	cb := glib.SourceFunc(func(_ uintptr) bool {
		a.renderNow(ctx)
		return false
	})
	a.retainedCallbacks = append(a.retainedCallbacks, cb)
	glib.IdleAdd(&cb, 0)
}

func (a *App) renderNow(ctx context.Context) {
	log := logging.FromContext(ctx)

	state, err := a.uc.State(ctx, a.origin)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute permission state")
		return
	}
	if err := a.view.Render(ctx, state); err != nil {
		log.Error().Err(err).Msg("failed to render permission panel")
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/api"
	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/locale"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.url-shortener"
	AppName = "URL Shortener"
)

func main() {
	opts, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid arguments: %v\n", err)
		return
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	// Flags and environment override stored preferences
	settings := config.NewSettings(myApp)
	settings.Apply(opts)

	if err := logger.Initialize(settings.GetLogLevel()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Log.Info("URL Shortener starting",
		zap.String("version", version),
		zap.String("api", settings.GetAPIBaseURL()))

	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	client := api.NewClient(settings.GetAPIBaseURL(), nil)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(myWindow, client, settings, localization)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	myApp.Lifecycle().SetOnStarted(func() {
		root.Start(ctx)
	})

	// Show and run
	myWindow.ShowAndRun()
}

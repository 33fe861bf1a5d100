package ui

import (
	"context"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/api"
	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/controller"
	"github.com/ytget/url-shortener/internal/locale"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/notify"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *locale.Localization
	controller   *controller.Controller
	toasts       *notify.Queue
	toastStack   *toastStack

	titleLabel   *widget.Label
	shortenTitle *widget.Label
	statsTitle   *widget.Label
	urlEntry     *widget.Entry
	shortenBtn   *widget.Button
	codeEntry    *widget.Entry
	statsBtn     *widget.Button
	loadingLabel *widget.Label

	urlInput    *entryInput
	codeInput   *entryInput
	loading     *loadingIndicator
	shortenCard *shortenCard
	statsCard   *statsCard
	copyButton  *copyButton
	scroll      *container.Scroll
}

// NewRootUI builds the window content and the controller driving it
func NewRootUI(window fyne.Window, gateway api.Gateway, settings *config.Settings, localization *locale.Localization, opts ...controller.Option) *RootUI {
	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		toastStack:   newToastStack(),
	}
	ui.toasts = notify.NewQueue(ui.toastStack)

	window.SetTitle(localization.GetText(locale.KeyAppTitle))
	ui.setupUI()

	ui.controller = controller.New(gateway, ui.toasts, localization, ui.regions(), opts...)
	logger.Log.Info("RootUI initialized", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// Start shows the welcome toast and checks API health
func (ui *RootUI) Start(ctx context.Context) {
	ui.controller.Start(ctx)
}

// Controller returns the controller that handles user commands
func (ui *RootUI) Controller() *controller.Controller {
	return ui.controller
}

// Toasts returns the notification queue
func (ui *RootUI) Toasts() *notify.Queue {
	return ui.toasts
}

func (ui *RootUI) dispatch(cmd controller.Command) {
	if ui.controller == nil {
		return
	}
	ui.controller.Dispatch(cmd)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(locale.KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.SizeName = theme.SizeNameHeadingText

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, settingsBtn, ui.titleLabel)

	// Shorten section
	ui.shortenTitle = widget.NewLabel(ui.localization.GetText(locale.KeyShortenTitle))
	ui.shortenTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(locale.KeyEnterURL))
	ui.urlEntry.Validator = validateURLInput
	ui.urlInput = newEntryInput(ui.urlEntry, func(text string) {
		ui.dispatch(controller.InputChanged(text))
	})
	ui.urlEntry.OnSubmitted = func(string) {
		ui.dispatch(controller.Cmd(controller.SubmitShorten))
	}
	ui.shortenBtn = widget.NewButton(ui.localization.GetText(locale.KeyShorten), func() {
		ui.dispatch(controller.Cmd(controller.SubmitShorten))
	})
	ui.shortenBtn.Importance = widget.HighImportance
	shortenRow := container.NewBorder(nil, nil, nil, ui.shortenBtn, ui.urlEntry)

	// Loading row under the inputs (hidden by default)
	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(locale.KeyLoading))
	spinner := widget.NewProgressBarInfinite()
	loadingRow := container.NewBorder(nil, nil, ui.loadingLabel, nil, spinner)
	loadingRow.Hide()
	ui.loading = &loadingIndicator{row: loadingRow, spinner: spinner}

	ui.shortenCard = newShortenCard(ui.localization, func() {
		ui.dispatch(controller.Cmd(controller.Copy))
	})
	ui.copyButton = &copyButton{
		button:   ui.shortenCard.copyBtn,
		idleText: func() string { return ui.localization.GetText(locale.KeyCopy) },
		doneText: func() string { return ui.localization.GetText(locale.KeyCopied) },
	}

	// Stats section
	ui.statsTitle = widget.NewLabel(ui.localization.GetText(locale.KeyStatsTitle))
	ui.statsTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.codeEntry = widget.NewEntry()
	ui.codeEntry.SetPlaceHolder(ui.localization.GetText(locale.KeyEnterShortCode))
	ui.codeInput = newEntryInput(ui.codeEntry, nil)
	ui.codeEntry.OnSubmitted = func(string) {
		ui.dispatch(controller.Cmd(controller.KeyEnterInStats))
	}
	ui.statsBtn = widget.NewButton(ui.localization.GetText(locale.KeyGetStats), func() {
		ui.dispatch(controller.Cmd(controller.SubmitStats))
	})
	statsRow := container.NewBorder(nil, nil, nil, ui.statsBtn, ui.codeEntry)

	ui.statsCard = newStatsCard(ui.localization)

	body := container.NewVBox(
		header,
		widget.NewSeparator(),
		ui.shortenTitle,
		shortenRow,
		loadingRow,
		ui.shortenCard.card,
		widget.NewSeparator(),
		ui.statsTitle,
		statsRow,
		ui.statsCard.card,
	)
	ui.scroll = container.NewVScroll(container.NewPadded(body))
	ui.shortenCard.scroll = ui.scroll
	ui.statsCard.scroll = ui.scroll

	ui.window.SetContent(container.NewStack(ui.scroll, ui.toastStack.overlay))
	logger.Log.Debug("UI setup completed")
}

func (ui *RootUI) regions() controller.Regions {
	return controller.Regions{
		URLInput:          ui.urlInput,
		CodeInput:         ui.codeInput,
		Loading:           ui.loading,
		ShortenPanel:      ui.shortenCard,
		StatsPanel:        ui.statsCard,
		CopyButton:        ui.copyButton,
		Clipboard:         &appClipboard{},
		FallbackClipboard: &selectionClipboard{entry: widget.NewEntry(), source: ui.window.Clipboard},
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(locale.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(locale.KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(locale.KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language and remembers the choice
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	logger.Log.Info("language changed", zap.String("language", ui.localization.GetCurrentLanguage()))

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	texts := ui.localization
	ui.window.SetTitle(texts.GetText(locale.KeyAppTitle))
	ui.titleLabel.SetText(texts.GetText(locale.KeyAppTitle))
	ui.shortenTitle.SetText(texts.GetText(locale.KeyShortenTitle))
	ui.statsTitle.SetText(texts.GetText(locale.KeyStatsTitle))
	ui.urlEntry.SetPlaceHolder(texts.GetText(locale.KeyEnterURL))
	ui.codeEntry.SetPlaceHolder(texts.GetText(locale.KeyEnterShortCode))
	ui.shortenBtn.SetText(texts.GetText(locale.KeyShorten))
	ui.statsBtn.SetText(texts.GetText(locale.KeyGetStats))
	ui.loadingLabel.SetText(texts.GetText(locale.KeyLoading))
	ui.shortenCard.refreshTexts(texts)
	ui.statsCard.refreshTexts(texts)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved(change SettingsChange) {
	if change.LanguageChanged {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}
	ui.toasts.Notify(ui.localization.GetText(locale.KeySettingsSaved), model.SeveritySuccess)
	if change.BaseURLChanged {
		ui.toasts.Notify(ui.localization.GetText(locale.KeyRestartRequired), model.SeverityInfo)
	}
}

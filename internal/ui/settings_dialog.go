package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/locale"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/validate"
)

// languageOrder fixes the order of the language select
var languageOrder = []string{locale.LanguageSystem, "en", "ru", "pt"}

// SettingsChange reports what a saved settings dialog changed
type SettingsChange struct {
	BaseURLChanged  bool
	LanguageChanged bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *locale.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChange)

	// UI components
	baseURLEntry   *widget.Entry
	languageSelect *widget.Select
	languageLabels map[string]string
}

// ShowSettingsDialog creates and shows the dialog; onSaved runs after a successful save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *locale.Localization, onSaved func(SettingsChange)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *locale.Localization, window fyne.Window, onSaved func(SettingsChange)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:       settings,
		localization:   localization,
		window:         window,
		onSaved:        onSaved,
		languageLabels: settings.GetLanguageOptions(),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)
	sd.baseURLEntry.Validator = validateBaseURL

	labels := make([]string, 0, len(languageOrder))
	for _, code := range languageOrder {
		labels = append(labels, sd.languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(locale.KeyAPIBaseURL)+LabelSeparator),
		sd.baseURLEntry,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(locale.KeyLanguage)+LabelSeparator),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(locale.KeySettings),
		"OK",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 260))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
}

// selectedLanguage maps the selected label back to its code
func (sd *SettingsDialog) selectedLanguage() string {
	for code, label := range sd.languageLabels {
		if label == sd.languageSelect.Selected {
			return code
		}
	}
	return ""
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	change := sd.apply()
	if sd.onSaved != nil {
		sd.onSaved(change)
	}
}

// apply stores valid field values and reports what changed
func (sd *SettingsDialog) apply() SettingsChange {
	var change SettingsChange

	base := config.NormalizeBaseURL(sd.baseURLEntry.Text)
	if err := validateBaseURL(base); err != nil {
		logger.Log.Warn("ignoring invalid API base URL", zap.String("url", base), zap.Error(err))
	} else if base != sd.settings.GetAPIBaseURL() {
		sd.settings.SetAPIBaseURL(base)
		change.BaseURLChanged = true
	}

	if lang := sd.selectedLanguage(); lang != "" && lang != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(lang)
		change.LanguageChanged = true
	}

	logger.Log.Info("settings saved",
		zap.Bool("baseURLChanged", change.BaseURLChanged),
		zap.Bool("languageChanged", change.LanguageChanged))
	return change
}

var errBaseURL = errors.New("API address must be an http:// or https:// URL")

func validateBaseURL(base string) error {
	if !validate.IsValidURL(base) {
		return errBaseURL
	}
	return nil
}

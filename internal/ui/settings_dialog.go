package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/washwatch/washwatch/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	languageCodes  []string
	durationEntry  *widget.Entry
	notifyCheck    *widget.Check
	confirmCheck   *widget.Check
	exportDirEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(window, settings, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, options sorted so the order is stable
	languageLabels := sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	var languageOptions []string
	for _, code := range sd.languageCodes {
		languageOptions = append(languageOptions, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Default cycle duration
	sd.durationEntry = widget.NewEntry()
	sd.durationEntry.SetPlaceHolder(strconv.Itoa(config.DefaultDurationMinutes))

	// Completion notifications and destructive-action confirmations
	sd.notifyCheck = widget.NewCheck(sd.localization.GetText(KeyNotifications), nil)
	sd.confirmCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmations), nil)

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseBtn, sd.exportDirEntry)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyDefaultDuration)+":"),
		sd.durationEntry,

		widget.NewSeparator(),
		sd.notifyCheck,
		sd.confirmCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyExportDirectory)+":"),
		exportDirRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	labels := sd.settings.GetLanguageOptions()
	if label, ok := labels[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(label)
	}
	sd.durationEntry.SetText(strconv.Itoa(sd.settings.GetDefaultDurationMinutes()))
	sd.notifyCheck.SetChecked(sd.settings.GetNotifyOnComplete())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDestructive())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save language by mapping the display label back to its code
	idx := sd.languageSelect.SelectedIndex()
	if idx >= 0 && idx < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[idx])
	}

	// Validate and save default duration, setter clamps the range
	if text := sd.durationEntry.Text; text != "" {
		if minutes, err := strconv.Atoi(text); err == nil && minutes > 0 {
			sd.settings.SetDefaultDurationMinutes(minutes)
		}
	}

	sd.settings.SetNotifyOnComplete(sd.notifyCheck.Checked)
	sd.settings.SetConfirmDestructive(sd.confirmCheck.Checked)
	sd.settings.SetExportDirectory(sd.exportDirEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

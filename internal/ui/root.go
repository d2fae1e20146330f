package ui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/washwatch/washwatch/internal/config"
	"github.com/washwatch/washwatch/internal/model"
	"github.com/washwatch/washwatch/internal/platform"
	"github.com/washwatch/washwatch/internal/stats"
	"github.com/washwatch/washwatch/internal/storage"
	"github.com/washwatch/washwatch/internal/track"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	svc          *track.Service
	store        *storage.Store
	settings     *config.Settings
	sites        *config.SiteRegistry
	localization *Localization

	// Start-load form
	kindSelect     *widget.Select
	locationSelect *widget.Select
	categoryEntry  *widget.Entry
	durationEntry  *widget.Entry
	notesEntry     *widget.Entry
	startBtn       *widget.Button

	// Lists
	activeList   *widget.List
	activeLoads  []*model.Load
	historyList  *widget.List
	historyLoads []*model.Load

	activeHeader  *widget.Label
	historyHeader *widget.Label
	emptyActive   *widget.Label
	emptyHistory  *widget.Label

	// Statistics panel
	statsHeader   *widget.Label
	statsActive   *widget.Label
	statsToday    *widget.Label
	statsWeek     *widget.Label
	statsTotal    *widget.Label
	statsAvg      *widget.Label
	statsCategory *widget.Label

	// Statuses as seen at the previous change callback, used to detect
	// loads that just reached completed so a notification fires once.
	lastStatuses map[string]model.LoadStatus
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc *track.Service, store *storage.Store, sites *config.SiteRegistry) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		svc:          svc,
		store:        store,
		settings:     settings,
		sites:        sites,
		localization: localization,
		lastStatuses: make(map[string]model.LoadStatus),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Service callbacks arrive off the UI thread, hop via fyne.Do.
	svc.SetCallbacks(
		func() { fyne.Do(ui.onCollectionChange) },
		func(load *model.Load) { fyne.Do(func() { ui.onLoadTick(load) }) },
		func(err error) { fyne.Do(func() { ui.onStoreError(err) }) },
	)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	form := ui.createStartForm()

	ui.activeHeader = widget.NewLabel(ui.localization.GetText(KeyActiveLoads))
	ui.activeHeader.TextStyle = fyne.TextStyle{Bold: true}
	ui.emptyActive = widget.NewLabel(ui.localization.GetText(KeyNoActiveLoads))
	ui.emptyActive.Importance = widget.LowImportance

	ui.activeList = widget.NewList(
		func() int { return len(ui.activeLoads) },
		func() fyne.CanvasObject { return ui.createActiveItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateActiveItem(id, obj) },
	)

	ui.historyHeader = widget.NewLabel(ui.localization.GetText(KeyHistory))
	ui.historyHeader.TextStyle = fyne.TextStyle{Bold: true}
	ui.emptyHistory = widget.NewLabel(ui.localization.GetText(KeyNoHistory))
	ui.emptyHistory.Importance = widget.LowImportance

	ui.historyList = widget.NewList(
		func() int { return len(ui.historyLoads) },
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)

	clearBtn := widget.NewButton(ui.localization.GetText(KeyClearHistory), ui.onClearHistory)
	clearBtn.Importance = widget.LowImportance
	exportBtn := widget.NewButton(IconExport+" "+ui.localization.GetText(KeyExport), ui.onExportHistory)
	exportBtn.Importance = widget.LowImportance

	historyBar := container.NewBorder(nil, nil, ui.historyHeader, container.NewHBox(exportBtn, clearBtn))

	statsPanel := ui.createStatsPanel()

	activeSection := container.NewBorder(
		container.NewVBox(ui.activeHeader, ui.emptyActive), nil, nil, nil,
		ui.activeList,
	)
	historySection := container.NewBorder(
		container.NewVBox(historyBar, ui.emptyHistory), nil, nil, nil,
		ui.historyList,
	)

	lists := container.NewVSplit(activeSection, historySection)
	lists.SetOffset(0.6)

	content := container.NewBorder(
		form,       // top
		statsPanel, // bottom
		nil,
		nil,
		lists, // center
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createStartForm builds the start-load form shown at the top of the window
func (ui *RootUI) createStartForm() *fyne.Container {
	ui.kindSelect = widget.NewSelect(
		[]string{ui.localization.GetText(KeyWash), ui.localization.GetText(KeyDry)},
		nil,
	)
	ui.kindSelect.SetSelectedIndex(0)

	var locationNames []string
	for _, code := range ui.sites.Codes() {
		locationNames = append(locationNames, ui.sites.DisplayName(code))
	}
	ui.locationSelect = widget.NewSelect(locationNames, nil)
	if len(locationNames) > 0 {
		ui.locationSelect.SetSelectedIndex(0)
	}

	ui.categoryEntry = widget.NewEntry()
	ui.categoryEntry.SetPlaceHolder(ui.localization.GetText(KeyCategory))

	ui.durationEntry = widget.NewEntry()
	ui.durationEntry.SetText(strconv.Itoa(ui.settings.GetDefaultDurationMinutes()))

	ui.notesEntry = widget.NewEntry()
	ui.notesEntry.SetPlaceHolder(ui.localization.GetText(KeyNotes))
	// Start from the notes field on Enter, same as pressing the button.
	ui.notesEntry.OnSubmitted = func(string) {
		ui.onStartLoad()
	}

	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStartLoad), ui.onStartLoad)
	ui.startBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	notifyBtn := widget.NewButton(IconBell+" "+ui.localization.GetText(KeyNotifyMe), ui.onShowSignup)
	notifyBtn.Importance = widget.LowImportance

	fields := container.NewGridWithColumns(5,
		container.NewVBox(widget.NewLabel(ui.localization.GetText(KeyStartLoad)), ui.kindSelect),
		container.NewVBox(widget.NewLabel(ui.localization.GetText(KeyLocation)), ui.locationSelect),
		container.NewVBox(widget.NewLabel(ui.localization.GetText(KeyCategory)), ui.categoryEntry),
		container.NewVBox(widget.NewLabel(ui.localization.GetText(KeyDurationMinutes)), ui.durationEntry),
		container.NewVBox(widget.NewLabel(ui.localization.GetText(KeyNotes)), ui.notesEntry),
	)

	buttons := container.NewHBox(ui.startBtn, notifyBtn, settingsBtn)

	return container.NewVBox(fields, container.NewBorder(nil, nil, nil, buttons), widget.NewSeparator())
}

// createStatsPanel builds the derived-statistics strip at the bottom
func (ui *RootUI) createStatsPanel() *fyne.Container {
	ui.statsHeader = widget.NewLabel(ui.localization.GetText(KeyStatistics))
	ui.statsHeader.TextStyle = fyne.TextStyle{Bold: true}

	ui.statsActive = widget.NewLabel("")
	ui.statsToday = widget.NewLabel("")
	ui.statsWeek = widget.NewLabel("")
	ui.statsTotal = widget.NewLabel("")
	ui.statsAvg = widget.NewLabel("")
	ui.statsCategory = widget.NewLabel("")

	row := container.NewHBox(
		ui.statsActive,
		ui.statsToday,
		ui.statsWeek,
		ui.statsTotal,
		ui.statsAvg,
		ui.statsCategory,
	)

	return container.NewVBox(widget.NewSeparator(), ui.statsHeader, row)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExportHistory)
	clearItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearHistory), ui.onClearHistory)
	notifyItem := fyne.NewMenuItem(ui.localization.GetText(KeyNotifyMe), ui.onShowSignup)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), exportItem, clearItem, notifyItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.kindSelect.Options = []string{
		ui.localization.GetText(KeyWash),
		ui.localization.GetText(KeyDry),
	}
	ui.kindSelect.Refresh()
	ui.categoryEntry.SetPlaceHolder(ui.localization.GetText(KeyCategory))
	ui.notesEntry.SetPlaceHolder(ui.localization.GetText(KeyNotes))
	ui.startBtn.SetText(ui.localization.GetText(KeyStartLoad))

	ui.activeHeader.SetText(ui.localization.GetText(KeyActiveLoads))
	ui.historyHeader.SetText(ui.localization.GetText(KeyHistory))
	ui.emptyActive.SetText(ui.localization.GetText(KeyNoActiveLoads))
	ui.emptyHistory.SetText(ui.localization.GetText(KeyNoHistory))
	ui.statsHeader.SetText(ui.localization.GetText(KeyStatistics))

	ui.refreshStats()
	ui.activeList.Refresh()
	ui.historyList.Refresh()
}

// selectedKind maps the kind select index back to a wire value
func (ui *RootUI) selectedKind() string {
	if ui.kindSelect.SelectedIndex() == 1 {
		return model.KindDry
	}
	return model.KindWash
}

// selectedLocation maps the location select index back to a site code
func (ui *RootUI) selectedLocation() string {
	codes := ui.sites.Codes()
	idx := ui.locationSelect.SelectedIndex()
	if idx >= 0 && idx < len(codes) {
		return codes[idx]
	}
	return ""
}

// onStartLoad handles the start button click
func (ui *RootUI) onStartLoad() {
	durationText := strings.TrimSpace(ui.durationEntry.Text)
	minutes, err := strconv.Atoi(durationText)
	if err != nil || minutes <= 0 {
		ui.showToast(IconError, ui.localization.GetText(KeyInvalidDuration), ToastError)
		return
	}

	category := strings.TrimSpace(ui.categoryEntry.Text)
	notes := strings.TrimSpace(ui.notesEntry.Text)

	load, err := ui.svc.Create(ui.selectedKind(), ui.selectedLocation(), category, minutes, notes)
	if err != nil {
		log.Warn().Err(err).Msg("start load rejected")
		ui.showToast(IconError, err.Error(), ToastError)
		return
	}

	log.Info().Str("load_id", load.ID).Str("kind", load.Kind).Msg("load started from form")

	// Keep kind/location/duration for the next cycle, clear the free text.
	ui.categoryEntry.SetText("")
	ui.notesEntry.SetText("")

	ui.showToast(IconCheck, ui.localization.GetText(KeyLoadStarted), ToastSuccess)
}

// createActiveItem creates a new active list row widget
func (ui *RootUI) createActiveItem() fyne.CanvasObject {
	// Placeholder load, replaced in updateActiveItem.
	dummy := &model.Load{
		ID:     "placeholder",
		Kind:   model.KindWash,
		Status: model.StatusRunning,
	}

	row := NewLoadRow(dummy, ui.localization, ui.sites, ui.svc.Now)
	row.SetCallbacks(ui.onPauseResume, ui.onCompleteLoad, ui.onCancelLoad)
	return row
}

// updateActiveItem updates an active list row with current data
func (ui *RootUI) updateActiveItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.activeLoads) {
		return
	}

	load := ui.activeLoads[id]
	if load == nil {
		return
	}

	if row, ok := item.(*LoadRow); ok {
		// Rows are recycled across loads, re-bind callbacks every update.
		row.SetCallbacks(ui.onPauseResume, ui.onCompleteLoad, ui.onCancelLoad)
		row.UpdateLoad(load)
	}
}

// createHistoryItem creates a compact single-line history row
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	title := widget.NewLabel("")
	title.Truncation = fyne.TextTruncateEllipsis
	status := widget.NewLabel("")
	status.Alignment = fyne.TextAlignTrailing
	return container.NewBorder(nil, nil, nil, status, title)
}

// updateHistoryItem updates a history row with current data
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.historyLoads) {
		return
	}

	load := ui.historyLoads[id]
	row, ok := item.(*fyne.Container)
	if load == nil || !ok || len(row.Objects) < 2 {
		return
	}

	title, _ := row.Objects[0].(*widget.Label)
	status, _ := row.Objects[1].(*widget.Label)
	if title == nil || status == nil {
		return
	}

	when := DashPlaceholder
	if !load.EndTime.IsZero() {
		when = load.EndTime.Format("Jan 2 15:04")
	}
	title.SetText(kindIcon(load.Kind) + " " + load.DisplayTitle() + MiddleDotSeparator + ui.sites.DisplayName(load.Location))

	status.SetText(ui.localization.StatusText(load.Status.String()) + MiddleDotSeparator + when)
	if load.Status == model.StatusCompleted {
		status.Importance = widget.SuccessImportance
	} else {
		status.Importance = widget.LowImportance
	}
}

// onPauseResume toggles a load between running and paused
func (ui *RootUI) onPauseResume(loadID string) {
	load, exists := ui.svc.Get(loadID)
	if !exists {
		log.Warn().Str("load_id", loadID).Msg("pause/resume for unknown load")
		return
	}

	switch load.Status {
	case model.StatusRunning:
		ui.svc.Pause(loadID)
	case model.StatusPaused:
		ui.svc.Resume(loadID)
	}
}

// onCompleteLoad marks a load done right now
func (ui *RootUI) onCompleteLoad(loadID string) {
	ui.svc.Complete(loadID)
}

// onCancelLoad cancels a load, asking first when confirmations are on
func (ui *RootUI) onCancelLoad(loadID string) {
	if !ui.settings.GetConfirmDestructive() {
		ui.svc.Cancel(loadID)
		ui.showToast(IconStop, ui.localization.GetText(KeyLoadCancelled), ToastInfo)
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyConfirmCancel),
		ui.localization.GetText(KeyConfirmCancelMsg),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.svc.Cancel(loadID)
			ui.showToast(IconStop, ui.localization.GetText(KeyLoadCancelled), ToastInfo)
		},
		ui.window,
	)
}

// onClearHistory removes terminal loads, asking first when confirmations are on
func (ui *RootUI) onClearHistory() {
	clearNow := func() {
		removed := ui.svc.ClearHistory()
		log.Info().Int("removed", removed).Msg("history cleared")
		ui.showToast(IconCheck, ui.localization.GetText(KeyHistoryCleared), ToastSuccess)
	}

	if !ui.settings.GetConfirmDestructive() {
		clearNow()
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyConfirmClear),
		ui.localization.GetText(KeyConfirmClearMsg),
		func(confirmed bool) {
			if confirmed {
				clearNow()
			}
		},
		ui.window,
	)
}

// onExportHistory writes the full collection as a JSON document
func (ui *RootUI) onExportHistory() {
	data, err := storage.ExportDocument(ui.svc.Loads(), ui.svc.Now())
	if err != nil {
		log.Error().Err(err).Msg("export encode failed")
		ui.showToast(IconError, ui.localization.GetText(KeyExportFailed), ToastError)
		return
	}

	dir := ui.settings.GetExportDirectory()
	if dir == "" {
		dir = platform.DefaultExportDir()
	}
	if err := platform.EnsureDir(dir); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("export directory unavailable")
		ui.showToast(IconError, ui.localization.GetText(KeyExportFailed), ToastError)
		return
	}

	path := filepath.Join(dir, platform.ExportFilename(ui.svc.Now()))
	if err := platform.WriteFileAtomic(path, data); err != nil {
		log.Error().Err(err).Str("path", path).Msg("export write failed")
		ui.showToast(IconError, ui.localization.GetText(KeyExportFailed), ToastError)
		return
	}

	log.Info().Str("path", path).Msg("history exported")
	ui.showToast(IconCheck, ui.localization.GetText(KeyExportDone)+": "+path, ToastSuccess)

	if err := platform.OpenFileInManager(path); err != nil {
		log.Debug().Err(err).Msg("could not reveal export")
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.durationEntry.SetText(strconv.Itoa(ui.settings.GetDefaultDurationMinutes()))
		ui.onLanguageChange(ui.settings.GetLanguage())
		ui.showToast(IconCheck, ui.localization.GetText(KeySettingsSaved), ToastSuccess)
	})
}

// onShowSignup shows the notify-me signup dialog
func (ui *RootUI) onShowSignup() {
	ShowSignupDialog(ui.window, ui.store, ui.sites, ui.localization, func() {
		ui.showToast(IconBell, ui.localization.GetText(KeySignupSaved), ToastInfo)
	})
}

// onCollectionChange re-renders lists and statistics after any mutation
func (ui *RootUI) onCollectionChange() {
	ui.activeLoads = ui.svc.ActiveLoads()
	ui.historyLoads = ui.svc.History(HistoryDisplayLimit)

	if len(ui.activeLoads) == 0 {
		ui.emptyActive.Show()
	} else {
		ui.emptyActive.Hide()
	}
	if len(ui.historyLoads) == 0 {
		ui.emptyHistory.Show()
	} else {
		ui.emptyHistory.Hide()
	}

	ui.notifyNewCompletions()

	ui.activeList.Refresh()
	ui.historyList.Refresh()
	ui.refreshStats()
}

// notifyNewCompletions fires a notification for loads that turned
// completed since the previous change callback
func (ui *RootUI) notifyNewCompletions() {
	current := make(map[string]model.LoadStatus)
	for _, load := range ui.svc.Loads() {
		current[load.ID] = load.Status

		prev, seen := ui.lastStatuses[load.ID]
		justCompleted := load.Status == model.StatusCompleted && (!seen || prev != model.StatusCompleted)
		if !justCompleted {
			continue
		}

		// A load restored from disk as completed is not news.
		if !seen && len(ui.lastStatuses) == 0 {
			continue
		}

		ui.showToast(IconCheck, ui.localization.GetText(KeyLoadCompleted)+": "+load.DisplayTitle(), ToastSuccess)

		if ui.settings.GetNotifyOnComplete() {
			ui.app.SendNotification(&fyne.Notification{
				Title:   ui.localization.GetText(KeyLoadCompleted),
				Content: load.DisplayTitle() + MiddleDotSeparator + ui.sites.DisplayName(load.Location),
			})
		}
	}
	ui.lastStatuses = current
}

// onLoadTick refreshes the countdown of the row showing this load
func (ui *RootUI) onLoadTick(load *model.Load) {
	for i, active := range ui.activeLoads {
		if active.ID == load.ID {
			ui.activeList.RefreshItem(i)
			return
		}
	}
}

// onStoreError surfaces a failed persistence write without interrupting tracking
func (ui *RootUI) onStoreError(err error) {
	log.Error().Err(err).Msg("persistence failure surfaced to user")
	ui.showToast(IconError, ui.localization.GetText(KeySaveFailed), ToastError)
}

// refreshStats recomputes the statistics strip from the full collection
func (ui *RootUI) refreshStats() {
	summary := stats.Compute(ui.svc.Loads(), ui.svc.Now())

	ui.statsActive.SetText(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyStatsActive), summary.Active))
	ui.statsToday.SetText(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyStatsToday), summary.StartedToday))
	ui.statsWeek.SetText(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyStatsWeek), summary.StartedThisWeek))
	ui.statsTotal.SetText(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyStatsTotal), summary.Total))

	avg := DashPlaceholder
	if summary.AvgDurationMinutes > 0 {
		avg = fmt.Sprintf("%.0f min", summary.AvgDurationMinutes)
	}
	ui.statsAvg.SetText(ui.localization.GetText(KeyStatsAvg) + ": " + avg)

	top := summary.TopCategory
	if top == "" {
		top = DashPlaceholder
	}
	ui.statsCategory.SetText(ui.localization.GetText(KeyStatsCategory) + ": " + top)
}

// ToastSeverity classifies a toast notification
type ToastSeverity int

const (
	ToastInfo ToastSeverity = iota
	ToastSuccess
	ToastError
)

// importance maps a severity to the label color used in the toast body
func (sev ToastSeverity) importance() widget.Importance {
	switch sev {
	case ToastSuccess:
		return widget.SuccessImportance
	case ToastError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

// showToast shows an in-app toast notification in the top-right corner
func (ui *RootUI) showToast(icon, message string, severity ToastSeverity) {
	titleLabel := widget.NewLabel(icon + " " + ui.localization.GetText(KeyAppTitle))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Importance = severity.importance()

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}

// Start pulls the initial collection into the lists once the service is running
func (ui *RootUI) Start() {
	ui.onCollectionChange()
}

package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/washwatch/washwatch/internal/config"
	"github.com/washwatch/washwatch/internal/model"
)

// LoadRow represents a compact active-load row widget with a live
// countdown and the lifecycle action buttons
type LoadRow struct {
	widget.BaseWidget

	load         *model.Load
	localization *Localization
	sites        *config.SiteRegistry
	now          func() time.Time

	// UI components
	titleLabel     *widget.Label
	locationLabel  *widget.Label
	statusLabel    *widget.Label
	countdownLabel *widget.Label
	progressBar    *widget.ProgressBar

	// Action buttons
	pauseResumeBtn *widget.Button
	completeBtn    *widget.Button
	cancelBtn      *widget.Button

	// Callbacks
	onPauseResume func(loadID string)
	onComplete    func(loadID string)
	onCancel      func(loadID string)
}

// NewLoadRow creates a new load row widget
func NewLoadRow(load *model.Load, localization *Localization, sites *config.SiteRegistry, now func() time.Time) *LoadRow {
	if load == nil {
		log.Warn().Msg("NewLoadRow called with nil load")
		// Create a dummy load to prevent crashes
		load = &model.Load{
			ID:     "dummy",
			Kind:   model.KindWash,
			Status: model.StatusRunning,
		}
	}

	lr := &LoadRow{
		load:         load,
		localization: localization,
		sites:        sites,
		now:          now,
	}
	lr.ExtendBaseWidget(lr)
	lr.createUI()
	lr.updateFromLoad()
	return lr
}

// SetCallbacks sets the action callbacks
func (lr *LoadRow) SetCallbacks(
	onPauseResume func(loadID string),
	onComplete func(loadID string),
	onCancel func(loadID string),
) {
	lr.onPauseResume = onPauseResume
	lr.onComplete = onComplete
	lr.onCancel = onCancel
}

// UpdateLoad updates the row with new load data
func (lr *LoadRow) UpdateLoad(load *model.Load) {
	if load == nil {
		log.Warn().Str("load_id", lr.load.ID).Msg("UpdateLoad called with nil load")
		return
	}

	lr.load = load
	lr.updateFromLoad()
	lr.Refresh()
}

// UpdateCountdown refreshes only the remaining-time text and progress,
// called on every timer tick for this row's load
func (lr *LoadRow) UpdateCountdown() {
	if lr.load == nil {
		return
	}
	now := lr.now()
	lr.countdownLabel.SetText(lr.load.RemainingString(now))
	lr.progressBar.SetValue(lr.load.Progress(now))
}

// createUI creates the UI components
func (lr *LoadRow) createUI() {
	lr.titleLabel = widget.NewLabel("")
	lr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	lr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	lr.titleLabel.Alignment = fyne.TextAlignLeading

	lr.locationLabel = widget.NewLabel("")
	lr.locationLabel.Alignment = fyne.TextAlignLeading

	lr.statusLabel = widget.NewLabel("")
	lr.statusLabel.Alignment = fyne.TextAlignTrailing

	lr.countdownLabel = widget.NewLabel("")
	lr.countdownLabel.Alignment = fyne.TextAlignTrailing
	lr.countdownLabel.TextStyle = fyne.TextStyle{Monospace: true}

	lr.progressBar = widget.NewProgressBar()
	lr.progressBar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, int(lr.progressBar.Value*100))
	}

	lr.pauseResumeBtn = widget.NewButton(lr.localization.GetText(KeyPause), func() {
		if lr.onPauseResume != nil {
			lr.onPauseResume(lr.load.ID)
		}
	})
	lr.pauseResumeBtn.Importance = widget.MediumImportance

	lr.completeBtn = widget.NewButton(lr.localization.GetText(KeyComplete), func() {
		if lr.onComplete != nil {
			lr.onComplete(lr.load.ID)
		}
	})
	lr.completeBtn.Importance = widget.HighImportance

	lr.cancelBtn = widget.NewButton(lr.localization.GetText(KeyCancelLoad), func() {
		if lr.onCancel != nil {
			lr.onCancel(lr.load.ID)
		}
	})
	lr.cancelBtn.Importance = widget.DangerImportance
}

// updateFromLoad updates UI components based on load state
func (lr *LoadRow) updateFromLoad() {
	if lr.load == nil {
		return
	}

	lr.titleLabel.SetText(kindIcon(lr.load.Kind) + " " + lr.load.DisplayTitle())
	lr.locationLabel.SetText(lr.sites.DisplayName(lr.load.Location))

	// Status label color and text by state
	switch lr.load.Status {
	case model.StatusRunning:
		lr.statusLabel.Importance = widget.HighImportance
		lr.statusLabel.SetText(IconPlay + " " + lr.localization.StatusText(lr.load.Status.String()))
	case model.StatusPaused:
		lr.statusLabel.Importance = widget.WarningImportance
		lr.statusLabel.SetText(IconPause + " " + lr.localization.StatusText(lr.load.Status.String()))
	case model.StatusCompleted:
		lr.statusLabel.Importance = widget.SuccessImportance
		lr.statusLabel.SetText(lr.localization.StatusText(lr.load.Status.String()))
	case model.StatusCancelled:
		lr.statusLabel.Importance = widget.LowImportance
		lr.statusLabel.SetText(IconStop + " " + lr.localization.StatusText(lr.load.Status.String()))
	default:
		lr.statusLabel.Importance = widget.MediumImportance
		lr.statusLabel.SetText(lr.load.Status.String())
	}

	lr.UpdateCountdown()
	lr.updateButtons()
}

// updateButtons updates button states based on load status
func (lr *LoadRow) updateButtons() {
	switch lr.load.Status {
	case model.StatusRunning:
		lr.pauseResumeBtn.Enable()
		lr.pauseResumeBtn.SetText(lr.localization.GetText(KeyPause))
		lr.completeBtn.Enable()
		lr.cancelBtn.Enable()
	case model.StatusPaused:
		lr.pauseResumeBtn.Enable()
		lr.pauseResumeBtn.SetText(lr.localization.GetText(KeyResume))
		lr.completeBtn.Enable()
		lr.cancelBtn.Enable()
	default:
		// Terminal loads keep the row readable but inert.
		lr.pauseResumeBtn.Disable()
		lr.pauseResumeBtn.SetText(lr.localization.GetText(KeyPause))
		lr.completeBtn.Disable()
		lr.cancelBtn.Disable()
	}
}

// kindIcon returns the icon for a load kind
func kindIcon(kind string) string {
	if kind == model.KindDry {
		return IconDry
	}
	return IconWash
}

// CreateRenderer creates the widget renderer
func (lr *LoadRow) CreateRenderer() fyne.WidgetRenderer {
	return &loadRowRenderer{loadRow: lr}
}

// loadRowRenderer renders the load row widget
type loadRowRenderer struct {
	loadRow *LoadRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *loadRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *loadRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *loadRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *loadRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *loadRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *loadRowRenderer) createLayout() {
	lr := r.loadRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Left side: title over location.
	leftSide := container.NewVBox(lr.titleLabel, lr.locationLabel)

	// Right side: status over countdown, fixed widths so rows align.
	rightSide := container.NewVBox(
		fixedWidth(StatusLabelWidth, lr.statusLabel),
		fixedWidth(CountdownLabelWidth, lr.countdownLabel),
	)

	actionRow := container.NewHBox(
		lr.pauseResumeBtn,
		lr.completeBtn,
		lr.cancelBtn,
	)

	// Border layout keeps the action buttons flush to the row's right edge.
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, rightSide)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, leftSide)

	r.layout = container.NewVBox(
		mainContent,
		lr.progressBar,
		widget.NewSeparator(),
	)

	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/washwatch/washwatch/internal/config"
	"github.com/washwatch/washwatch/internal/storage"
)

// SignupDialog collects an email address and the locations the user wants
// machine-availability notifications for
type SignupDialog struct {
	store        *storage.Store
	sites        *config.SiteRegistry
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	emailEntry     *widget.Entry
	locationChecks []*widget.Check
	locationCodes  []string
}

// NewSignupDialog creates a new signup dialog
func NewSignupDialog(window fyne.Window, store *storage.Store, sites *config.SiteRegistry, localization *Localization, onSaved func()) *SignupDialog {
	sg := &SignupDialog{
		store:        store,
		sites:        sites,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sg.createUI()
	return sg
}

// ShowSignupDialog creates and shows the signup dialog
func ShowSignupDialog(window fyne.Window, store *storage.Store, sites *config.SiteRegistry, localization *Localization, onSaved func()) {
	NewSignupDialog(window, store, sites, localization, onSaved).Show()
}

// Show displays the signup dialog
func (sg *SignupDialog) Show() {
	sg.dialog.Show()
}

// createUI creates the signup dialog UI
func (sg *SignupDialog) createUI() {
	sg.emailEntry = widget.NewEntry()
	sg.emailEntry.SetPlaceHolder("you@example.com")

	locationBox := container.NewVBox()
	for _, code := range sg.sites.Codes() {
		check := widget.NewCheck(sg.sites.DisplayName(code), nil)
		sg.locationChecks = append(sg.locationChecks, check)
		sg.locationCodes = append(sg.locationCodes, code)
		locationBox.Add(check)
	}

	form := container.NewVBox(
		widget.NewLabel(sg.localization.GetText(KeyEmail)+":"),
		sg.emailEntry,
		widget.NewSeparator(),
		widget.NewLabel(sg.localization.GetText(KeyLocation)+":"),
		locationBox,
	)

	sg.dialog = dialog.NewCustomConfirm(
		sg.localization.GetText(KeyNotifyMe),
		sg.localization.GetText(KeySave),
		sg.localization.GetText(KeyCancel),
		form,
		sg.onSave,
		sg.window,
	)

	sg.dialog.Resize(fyne.NewSize(SignupDialogWidth, SignupDialogHeight))
}

// onSave handles saving the signup
func (sg *SignupDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var locations []string
	for i, check := range sg.locationChecks {
		if check.Checked {
			locations = append(locations, sg.locationCodes[i])
		}
	}

	signup, err := sg.store.AddSignup(sg.emailEntry.Text, locations)
	if err != nil {
		dialog.ShowInformation(
			sg.localization.GetText(KeyNotifyMe),
			sg.localization.GetText(KeyInvalidEmail),
			sg.window,
		)
		return
	}

	log.Info().Str("signup_id", signup.ID).Int("locations", len(locations)).Msg("notification signup saved")

	if sg.onSaved != nil {
		sg.onSaved()
	}
}

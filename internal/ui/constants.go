package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconCheck    = "✔"
	IconStop     = "⏹"
	IconClose    = "×"
	IconError    = "❌"
	IconWash     = "🧺"
	IconDry      = "🌀"
	IconExport   = "📄"
	IconBell     = "🔔"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (LoadRow / lists)
const (
	StatusLabelWidth    float32 = 96
	CountdownLabelWidth float32 = 84

	RowMinWidth  float32 = 420
	RowMinHeight float32 = 84
	RowDefaultH  float32 = 76

	HistoryRowHeight float32 = 36
)

// History list behavior
const (
	HistoryDisplayLimit = 10
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Window sizing
const (
	WindowWidth  float32 = 860
	WindowHeight float32 = 640

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
	SignupDialogWidth    float32 = 420
	SignupDialogHeight   float32 = 360
)

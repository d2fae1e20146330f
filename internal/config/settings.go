package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage           = "app_language"
	KeyDefaultDuration    = "default_duration_minutes"
	KeyNotifyOnComplete   = "notify_on_complete"
	KeyConfirmDestructive = "confirm_destructive"
	KeyExportDirectory    = "export_directory"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultDurationMinutes    = 45
	DefaultNotifyOnComplete   = true
	DefaultConfirmDestructive = true

	MinDurationMinutes = 1
	MaxDurationMinutes = 240
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultDurationMinutes returns the duration pre-filled in the
// start-load form
func (s *Settings) GetDefaultDurationMinutes() int {
	value := s.app.Preferences().Int(KeyDefaultDuration)
	if value <= 0 {
		s.SetDefaultDurationMinutes(DefaultDurationMinutes)
		return DefaultDurationMinutes
	}
	return value
}

// SetDefaultDurationMinutes sets the pre-filled duration, clamped to a
// sane cycle length
func (s *Settings) SetDefaultDurationMinutes(minutes int) {
	if minutes < MinDurationMinutes {
		minutes = MinDurationMinutes
	}
	if minutes > MaxDurationMinutes {
		minutes = MaxDurationMinutes
	}
	s.app.Preferences().SetInt(KeyDefaultDuration, minutes)
}

// GetNotifyOnComplete returns whether to raise a system notification when
// a load finishes
func (s *Settings) GetNotifyOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyNotifyOnComplete, DefaultNotifyOnComplete)
}

// SetNotifyOnComplete sets whether to raise completion notifications
func (s *Settings) SetNotifyOnComplete(enabled bool) {
	s.app.Preferences().SetBool(KeyNotifyOnComplete, enabled)
}

// GetConfirmDestructive returns whether cancel and clear-history ask for
// confirmation first
func (s *Settings) GetConfirmDestructive() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDestructive, DefaultConfirmDestructive)
}

// SetConfirmDestructive sets whether destructive actions ask first
func (s *Settings) SetConfirmDestructive(enabled bool) {
	s.app.Preferences().SetBool(KeyConfirmDestructive, enabled)
}

// GetExportDirectory returns the configured export directory, empty when
// the platform default should be used
func (s *Settings) GetExportDirectory() string {
	return s.app.Preferences().String(KeyExportDirectory)
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDirectory, dir)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

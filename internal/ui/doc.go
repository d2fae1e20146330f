package ui

// Package ui implements the Fyne presentation surface: the root window
// with the start-load form, active and history lists, the statistics
// panel, toast notifications, and the settings and notify-me dialogs. It
// calls into the track service for every user intent and re-renders on
// the service's change callbacks.

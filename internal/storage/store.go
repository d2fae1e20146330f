// Package storage serializes the load collection, the notify-me signup
// list, and the export document over the app's key-value preference store.
// Snapshots are written whole after each mutation and read whole on
// startup; a corrupt snapshot falls back to an empty collection.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/washwatch/washwatch/internal/model"
)

// Fixed keys in the preference store
const (
	KeyLoads   = "washwatch_loads"
	KeySignups = "washwatch_signups"
)

// ExportVersion identifies the export document format
const ExportVersion = "1.0"

// Preferences is the key-value surface the store needs. fyne.Preferences
// satisfies it; tests use fyne's in-memory test app.
type Preferences interface {
	String(key string) string
	SetString(key, value string)
}

// Store reads and writes app state under fixed preference keys
type Store struct {
	prefs Preferences
}

// NewStore creates a store over the given preferences
func NewStore(prefs Preferences) *Store {
	return &Store{prefs: prefs}
}

// savedState is the persisted snapshot document
type savedState struct {
	Loads     []*model.Load `json:"loads"`
	LastSaved time.Time     `json:"lastSaved"`
}

// Signup is one notify-me registration
type Signup struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	Locations []string  `json:"locations"`
}

// exportDocument is the on-demand export payload
type exportDocument struct {
	Loads      []*model.Load `json:"loads"`
	ExportDate time.Time     `json:"exportDate"`
	Version    string        `json:"version"`
}

// SaveLoads writes the full collection snapshot. The returned error is
// reported to the user as a notification, never treated as fatal.
func (s *Store) SaveLoads(loads []*model.Load) error {
	state := savedState{Loads: loads, LastSaved: time.Now()}
	data, err := sonic.Marshal(&state)
	if err != nil {
		return fmt.Errorf("marshal loads: %w", err)
	}
	s.prefs.SetString(KeyLoads, string(data))
	log.Debug().Int("loads", len(loads)).Msg("snapshot saved")
	return nil
}

// LoadLoads restores the collection from the last snapshot. A missing or
// unreadable snapshot yields an empty collection so startup never fails.
func (s *Store) LoadLoads() []*model.Load {
	raw := s.prefs.String(KeyLoads)
	if raw == "" {
		return nil
	}

	var state savedState
	if err := sonic.Unmarshal([]byte(raw), &state); err != nil {
		log.Warn().Err(err).Msg("stored snapshot unreadable, starting empty")
		return nil
	}
	return state.Loads
}

// AddSignup appends a notify-me registration for the given locations
func (s *Store) AddSignup(email string, locations []string) (*Signup, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, &model.ValidationError{Field: "email", Reason: "must be a valid address"}
	}

	signup := Signup{
		ID:        "signup-" + uuid.NewString(),
		Email:     email,
		Timestamp: time.Now(),
		Locations: locations,
	}

	signups := append(s.Signups(), signup)
	data, err := sonic.Marshal(signups)
	if err != nil {
		return nil, fmt.Errorf("marshal signups: %w", err)
	}
	s.prefs.SetString(KeySignups, string(data))

	log.Info().Str("signup_id", signup.ID).Int("locations", len(locations)).Msg("signup recorded")
	return &signup, nil
}

// Signups returns all notify-me registrations
func (s *Store) Signups() []Signup {
	raw := s.prefs.String(KeySignups)
	if raw == "" {
		return nil
	}

	var signups []Signup
	if err := sonic.Unmarshal([]byte(raw), &signups); err != nil {
		log.Warn().Err(err).Msg("stored signups unreadable")
		return nil
	}
	return signups
}

// ExportDocument renders the downloadable export payload
func ExportDocument(loads []*model.Load, now time.Time) ([]byte, error) {
	doc := exportDocument{Loads: loads, ExportDate: now, Version: ExportVersion}
	data, err := sonic.ConfigDefault.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

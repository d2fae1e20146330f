package storage

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/bytedance/sonic"

	"github.com/washwatch/washwatch/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	loads := []*model.Load{
		{ID: "load-1", Kind: model.KindWash, Location: "campus-north", Category: "cotton",
			DurationMinutes: 30, Notes: "cold wash", Status: model.StatusRunning, StartTime: start},
		{ID: "load-2", Kind: model.KindWash, Status: model.StatusPaused, StartTime: start,
			DurationMinutes: 45, PausedAt: start.Add(5 * time.Minute), PausedMS: 60000},
		{ID: "load-3", Kind: model.KindDry, Status: model.StatusCompleted, StartTime: start,
			DurationMinutes: 60, EndTime: start.Add(time.Hour)},
		{ID: "load-4", Kind: model.KindDry, Status: model.StatusCancelled, StartTime: start,
			DurationMinutes: 20, EndTime: start.Add(10 * time.Minute), PausedMS: 120000},
	}

	if err := store.SaveLoads(loads); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	restored := store.LoadLoads()
	if len(restored) != len(loads) {
		t.Fatalf("Expected %d loads, got %d", len(loads), len(restored))
	}

	for i, want := range loads {
		got := restored[i]
		if got.ID != want.ID {
			t.Errorf("Load %d: expected ID %s, got %s", i, want.ID, got.ID)
		}
		if got.Status != want.Status {
			t.Errorf("Load %d: expected status %s, got %s", i, want.Status, got.Status)
		}
		if !got.StartTime.Equal(want.StartTime) {
			t.Errorf("Load %d: expected StartTime %v, got %v", i, want.StartTime, got.StartTime)
		}
		if !got.EndTime.Equal(want.EndTime) {
			t.Errorf("Load %d: expected EndTime %v, got %v", i, want.EndTime, got.EndTime)
		}
		if !got.PausedAt.Equal(want.PausedAt) {
			t.Errorf("Load %d: expected PausedAt %v, got %v", i, want.PausedAt, got.PausedAt)
		}
		if got.PausedMS != want.PausedMS {
			t.Errorf("Load %d: expected PausedMS %d, got %d", i, want.PausedMS, got.PausedMS)
		}
		if got.DurationMinutes != want.DurationMinutes {
			t.Errorf("Load %d: expected duration %d, got %d", i, want.DurationMinutes, got.DurationMinutes)
		}
	}
}

func TestLoadLoadsEmptyStore(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	if loads := store.LoadLoads(); len(loads) != 0 {
		t.Errorf("Expected empty collection from empty store, got %d", len(loads))
	}
}

func TestLoadLoadsCorruptSnapshot(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyLoads, "{not valid json")

	store := NewStore(app.Preferences())
	if loads := store.LoadLoads(); len(loads) != 0 {
		t.Errorf("Expected empty collection fallback for corrupt snapshot, got %d", len(loads))
	}
}

func TestAddSignup(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	signup, err := store.AddSignup("user@example.com", []string{"campus-north", "main-st"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if signup.Email != "user@example.com" {
		t.Errorf("Expected email kept, got %s", signup.Email)
	}

	_, err = store.AddSignup("second@example.com", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	signups := store.Signups()
	if len(signups) != 2 {
		t.Fatalf("Expected 2 signups, got %d", len(signups))
	}
	if signups[0].Email != "user@example.com" || signups[1].Email != "second@example.com" {
		t.Error("Expected signups in insertion order")
	}
	if len(signups[0].Locations) != 2 {
		t.Errorf("Expected 2 locations on first signup, got %d", len(signups[0].Locations))
	}
}

func TestAddSignupValidation(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app.Preferences())

	for _, email := range []string{"", "   ", "not-an-address"} {
		if _, err := store.AddSignup(email, nil); err == nil {
			t.Errorf("Expected error for email '%s', got nil", email)
		}
	}

	if signups := store.Signups(); len(signups) != 0 {
		t.Errorf("Expected no signups recorded, got %d", len(signups))
	}
}

func TestExportDocument(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	exportDate := start.Add(2 * time.Hour)
	loads := []*model.Load{
		{ID: "load-1", Kind: model.KindWash, Status: model.StatusCompleted, StartTime: start,
			DurationMinutes: 30, EndTime: start.Add(30 * time.Minute)},
	}

	data, err := ExportDocument(loads, exportDate)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var doc struct {
		Loads      []*model.Load `json:"loads"`
		ExportDate time.Time     `json:"exportDate"`
		Version    string        `json:"version"`
	}
	if err := sonic.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Export document not valid JSON: %v", err)
	}

	if doc.Version != ExportVersion {
		t.Errorf("Expected version %s, got %s", ExportVersion, doc.Version)
	}
	if !doc.ExportDate.Equal(exportDate) {
		t.Errorf("Expected export date %v, got %v", exportDate, doc.ExportDate)
	}
	if len(doc.Loads) != 1 || doc.Loads[0].ID != "load-1" {
		t.Error("Expected exported loads preserved")
	}
}

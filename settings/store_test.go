package settings

import (
	"path/filepath"
	"testing"

	"weatherly/models"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestLoadReturnsDefaultsWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	prefs, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if prefs != DefaultPreferences() {
		t.Errorf("empty store loaded %+v, want defaults", prefs)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s, path := newTestStore(t)

	prefs := DefaultPreferences()
	prefs.TemperatureUnit = models.UnitFahrenheit
	prefs.DefaultCity = "Reykjavik"
	prefs.ThemeMode = ThemeLight
	prefs.AutoRefresh = false

	if err := s.Save(prefs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != prefs {
		t.Errorf("loaded %+v, want %+v", loaded, prefs)
	}

	// A fresh store instance must see the persisted blob
	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	reloaded, err := s2.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded != prefs {
		t.Errorf("reloaded %+v, want %+v", reloaded, prefs)
	}
}

func TestSaveReplacesPreviousBlob(t *testing.T) {
	s, _ := newTestStore(t)

	first := DefaultPreferences()
	first.DefaultCity = "Lisbon"
	if err := s.Save(first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := first
	second.DefaultCity = "Porto"
	if err := s.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultCity != "Porto" {
		t.Errorf("city = %q, want Porto", loaded.DefaultCity)
	}
}

func TestDarkMode(t *testing.T) {
	testCases := []struct {
		mode ThemeMode
		want bool
	}{
		{ThemeDark, true},
		{ThemeLight, false},
		// System currently resolves to dark
		{ThemeSystem, true},
	}

	for _, tc := range testCases {
		p := Preferences{ThemeMode: tc.mode}
		if got := p.DarkMode(); got != tc.want {
			t.Errorf("DarkMode() with %q = %t, want %t", tc.mode, got, tc.want)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/rd/internal/models"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "" || cfg.DarkMode || cfg.LoggedIn {
		t.Errorf("got %+v, want zero config", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := &models.Config{
		BaseURL:  "http://localhost:5000",
		DarkMode: true,
		LoggedIn: true,
		Username: "admin",
	}
	if err := Save(dir, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, &models.Config{BaseURL: "http://x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(Dir(dir))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(Dir(dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(Dir(dir), "config.json"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load should fail on corrupt JSON")
	}
}

func TestSetBaseURLPreservesOtherFields(t *testing.T) {
	dir := t.TempDir()
	if err := SetDarkMode(dir, true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	if err := SetBaseURL(dir, "http://api.example.test"); err != nil {
		t.Fatalf("SetBaseURL: %v", err)
	}

	url, err := BaseURL(dir)
	if err != nil || url != "http://api.example.test" {
		t.Errorf("BaseURL: got %q, %v", url, err)
	}
	dark, err := DarkMode(dir)
	if err != nil || !dark {
		t.Errorf("DarkMode lost by unrelated set: got %v, %v", dark, err)
	}
}

func TestSetLoggedInRoundTrip(t *testing.T) {
	dir := t.TempDir()

	loggedIn, name, err := LoggedIn(dir)
	if err != nil || loggedIn || name != "" {
		t.Fatalf("initial state: %v %q %v", loggedIn, name, err)
	}

	if err := SetLoggedIn(dir, true, "admin"); err != nil {
		t.Fatalf("SetLoggedIn: %v", err)
	}
	loggedIn, name, err = LoggedIn(dir)
	if err != nil || !loggedIn || name != "admin" {
		t.Errorf("after login: %v %q %v", loggedIn, name, err)
	}

	if err := SetLoggedIn(dir, false, ""); err != nil {
		t.Fatalf("SetLoggedIn(false): %v", err)
	}
	loggedIn, name, _ = LoggedIn(dir)
	if loggedIn || name != "" {
		t.Errorf("after logout: %v %q", loggedIn, name)
	}
}

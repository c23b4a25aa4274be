package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadReadsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.json")
	content := `{"max_undo_entries": 50, "max_add_bytes": 4096, "initial_file": "notes.txt"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxUndoEntries != 50 {
		t.Errorf("expected MaxUndoEntries 50, got %d", cfg.MaxUndoEntries)
	}
	if cfg.MaxAddBytes != 4096 {
		t.Errorf("expected MaxAddBytes 4096, got %d", cfg.MaxAddBytes)
	}
	if cfg.InitialFile != "notes.txt" {
		t.Errorf("expected InitialFile notes.txt, got %q", cfg.InitialFile)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.json")
	if err := os.WriteFile(path, []byte(`{"max_add_bytes": 10}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxUndoEntries != DefaultMaxUndoEntries {
		t.Errorf("expected default MaxUndoEntries, got %d", cfg.MaxUndoEntries)
	}
	if cfg.MaxAddBytes != 10 {
		t.Errorf("expected MaxAddBytes 10, got %d", cfg.MaxAddBytes)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.json")
	if err := os.WriteFile(path, []byte(`{"max_undo_entries": -1}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.json")
	if err := os.WriteFile(path, []byte(`{"max_undo_entries": 50}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvPrefix+"MAX_UNDO_ENTRIES", "7")
	t.Setenv(EnvPrefix+"INITIAL_FILE", "env.txt")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxUndoEntries != 7 {
		t.Errorf("expected env override 7, got %d", cfg.MaxUndoEntries)
	}
	if cfg.InitialFile != "env.txt" {
		t.Errorf("expected env.txt, got %q", cfg.InitialFile)
	}
}

func TestEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv(EnvPrefix+"MAX_UNDO_ENTRIES", "many")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxUndoEntries != DefaultMaxUndoEntries {
		t.Errorf("expected default, got %d", cfg.MaxUndoEntries)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.json")
	want := Config{MaxUndoEntries: 9, MaxAddBytes: 128, InitialFile: "a.txt"}

	if err := Write(path, want); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

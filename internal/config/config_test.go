package config

import (
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{Version: "1", Year: 2025, InputDir: "puzzle-inputs"}
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Year != cfg.Year {
		t.Errorf("Year = %d, want %d", loaded.Year, cfg.Year)
	}
	if loaded.InputDir != cfg.InputDir {
		t.Errorf("InputDir = %q, want %q", loaded.InputDir, cfg.InputDir)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error loading config from empty dir")
	}
}

func TestLoadFillsDefaultInputDir(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, &Config{Version: "1", Year: 2025}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.InputDir != DefaultInputDir {
		t.Errorf("InputDir = %q, want %q", loaded.InputDir, DefaultInputDir)
	}
}

func TestInputPath(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want string
	}{
		{
			name: "single digit day is zero padded",
			day:  2,
			want: "inputs/day02.txt",
		},
		{
			name: "double digit day",
			day:  12,
			want: "inputs/day12.txt",
		},
	}

	cfg := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.InputPath(tt.day); got != tt.want {
				t.Errorf("InputPath(%d) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}

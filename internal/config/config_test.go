package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		wantLevel    string
		wantFormat   string
		wantInPlace  bool
		wantEditorCf bool
		wantErr      bool
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `editorconfig = false

[log]
level = "debug"
format = "json"

[output]
in_place = true
`,
			wantLevel:   "debug",
			wantFormat:  "json",
			wantInPlace: true,
		},
		{
			name: "yaml keeps defaults",
			file: "config.yaml",
			content: `output:
  in_place: true
`,
			wantLevel:    "warn",
			wantFormat:   "text",
			wantInPlace:  true,
			wantEditorCf: true,
		},
		{
			name: "ini",
			file: "config.ini",
			content: `editorconfig = false

[log]
level = warning

[output]
in_place = true
`,
			wantLevel:   "warning",
			wantFormat:  "text",
			wantInPlace: true,
		},
		{
			name:    "invalid level",
			file:    "config.yml",
			content: "log:\n  level: loud\n",
			wantErr: true,
		},
		{
			name:    "invalid toml",
			file:    "config.toml",
			content: "[log",
			wantErr: true,
		},
		{
			name:    "unsupported extension",
			file:    "config.json",
			content: "{}",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Log.Level != tt.wantLevel {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.wantLevel)
			}
			if cfg.Log.Format != tt.wantFormat {
				t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, tt.wantFormat)
			}
			if cfg.Output.InPlace != tt.wantInPlace {
				t.Errorf("Output.InPlace = %v, want %v", cfg.Output.InPlace, tt.wantInPlace)
			}
			if cfg.EditorConfig != tt.wantEditorCf {
				t.Errorf("EditorConfig = %v, want %v", cfg.EditorConfig, tt.wantEditorCf)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Log.Level = "info"
	cfg.Output.InPlace = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{level: "debug", format: "json"},
		{level: "warning", format: "text"},
		{level: "WARN", format: ""},
		{level: "loud", format: "text", wantErr: true},
		{level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			cfg := Default()
			cfg.Log = Log{Level: tt.level, Format: tt.format}
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "underlinee", "config.toml")
	if err := Default().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load() error = %v", err)
	}
}

func TestLoadDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("LoadDefault() = %+v, want defaults", cfg)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Window.Width != 850 || cfg.Window.Height != 900 {
		t.Errorf("window = %dx%d, want 850x900", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Projection.Mode != "orthographic" {
		t.Errorf("mode = %q, want orthographic", cfg.Projection.Mode)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Textures.Table != TableTexture {
		t.Errorf("table texture = %q, want %q", cfg.Textures.Table, TableTexture)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1024
projection:
  mode: perspective
textures:
  napkin: assets/napkin.png
shading:
  lit: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("width = %d, want 1024", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("height = %d, want default 900", cfg.Window.Height)
	}
	if cfg.Projection.Mode != "perspective" {
		t.Errorf("mode = %q, want perspective", cfg.Projection.Mode)
	}
	if cfg.Textures.Napkin != "assets/napkin.png" {
		t.Errorf("napkin = %q", cfg.Textures.Napkin)
	}
	if cfg.Textures.Candle != CandleTexture {
		t.Errorf("candle = %q, want default", cfg.Textures.Candle)
	}
	if !cfg.Shading.Lit {
		t.Error("shading.lit not applied")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"window", "window:\n  width: 0\n", "window size"},
		{"planes", "projection:\n  near: 10\n  far: 1\n", "near"},
		{"mode", "projection:\n  mode: fisheye\n", "projection mode"},
		{"lights", "lights:\n  - position: [0, 0, 0]\n    color: [1, 1, 1]\n", "2 lights"},
		{"texture", "textures:\n  wick: \"\"\n", "wick"},
		{"syntax", "window: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "candle.example.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Window != def.Window || cfg.Camera != def.Camera || cfg.Projection != def.Projection {
		t.Errorf("example window/camera/projection differ from defaults:\n%+v\n%+v", cfg, def)
	}
	if cfg.Textures != def.Textures || cfg.Shading != def.Shading {
		t.Errorf("example textures/shading differ from defaults")
	}
}

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/resonicon/pkg/errors"
	"github.com/matzehuels/resonicon/pkg/icon"
)

func TestLoadEmptyPath(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if s != icon.DefaultStyle() {
		t.Error("Load(\"\") should return the default style")
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "style.toml", `
[palette]
background = "#102030"
active_line = "#A855F7B4"

[geometry]
graph_ratio = 0.3
node_div = 18
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if want := (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}); s.Palette.Background != want {
		t.Errorf("Background = %v, want %v", s.Palette.Background, want)
	}
	if want := (color.NRGBA{R: 168, G: 85, B: 247, A: 180}); s.Palette.ActiveLine != want {
		t.Errorf("ActiveLine = %v, want %v", s.Palette.ActiveLine, want)
	}
	if s.Geometry.GraphRatio != 0.3 || s.Geometry.NodeDiv != 18 {
		t.Errorf("geometry overrides not applied: %+v", s.Geometry)
	}

	// Untouched values keep their defaults
	def := icon.DefaultStyle()
	if s.Palette.Node != def.Palette.Node || s.Geometry.LineDiv != def.Geometry.LineDiv {
		t.Error("values absent from the file should keep defaults")
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"style.yaml", "style.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, `
palette:
  ring: "#FFFFFF80"
geometry:
  blur_div: 40
  wave_ratio: 0.15
`)
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if want := (color.NRGBA{R: 255, G: 255, B: 255, A: 128}); s.Palette.Ring != want {
				t.Errorf("Ring = %v, want %v", s.Palette.Ring, want)
			}
			if s.Geometry.BlurDiv != 40 || s.Geometry.WaveRatio != 0.15 {
				t.Errorf("geometry overrides not applied: %+v", s.Geometry)
			}
		})
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s != icon.DefaultStyle() {
		t.Error("an empty file should yield the default style")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unsupported extension", "style.json", `{}`},
		{"malformed toml", "style.toml", `[palette`},
		{"unknown toml key", "style.toml", "[geometry]\nnode_size = 3\n"},
		{"unknown yaml key", "style.yaml", "geometry:\n  node_size: 3\n"},
		{"unknown palette color", "style.toml", "[palette]\nsky = \"#000000\"\n"},
		{"bad color", "style.toml", "[palette]\nnode = \"purple\"\n"},
		{"invalid geometry", "style.toml", "[geometry]\nline_div = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load error = %v, want INVALID_CONFIG", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#0F172A", color.NRGBA{R: 15, G: 23, B: 42, A: 255}, false},
		{"#a855f7", color.NRGBA{R: 168, G: 85, B: 247, A: 255}, false},
		{"#A855F73C", color.NRGBA{R: 168, G: 85, B: 247, A: 60}, false},
		{"  #000000  ", color.NRGBA{A: 255}, false},
		{"0F172A", color.NRGBA{}, true},
		{"#0F1", color.NRGBA{}, true},
		{"#0F172AZZ", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteKeys(t *testing.T) {
	keys := PaletteKeys()
	if len(keys) != 10 {
		t.Errorf("PaletteKeys() = %d keys, want 10", len(keys))
	}
	if keys[0] != "active_border" {
		t.Errorf("PaletteKeys() should be sorted, first = %q", keys[0])
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

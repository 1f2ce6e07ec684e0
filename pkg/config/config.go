// Package config loads icon style overrides from TOML or YAML files.
//
// A style file only lists what it changes; everything else keeps the value
// from [icon.DefaultStyle]. Colors are hex strings, "#RRGGBB" or "#RRGGBBAA".
//
//	[palette]
//	background = "#0F172A"
//	active_line = "#A855F7B4"
//
//	[geometry]
//	graph_ratio = 0.33
//	node_div = 18
//
// The YAML form uses the same keys:
//
//	palette:
//	  background: "#0F172A"
//	geometry:
//	  graph_ratio: 0.33
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/resonicon/pkg/errors"
	"github.com/matzehuels/resonicon/pkg/icon"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

type file struct {
	Palette  map[string]string `toml:"palette" yaml:"palette"`
	Geometry geometry          `toml:"geometry" yaml:"geometry"`
}

type geometry struct {
	MarginDiv       *int     `toml:"margin_div" yaml:"margin_div"`
	RingStepDiv     *int     `toml:"ring_step_div" yaml:"ring_step_div"`
	NodeDiv         *int     `toml:"node_div" yaml:"node_div"`
	LineDiv         *int     `toml:"line_div" yaml:"line_div"`
	ActiveLineDiv   *int     `toml:"active_line_div" yaml:"active_line_div"`
	BlurDiv         *int     `toml:"blur_div" yaml:"blur_div"`
	RingWidthDiv    *int     `toml:"ring_width_div" yaml:"ring_width_div"`
	GraphRatio      *float64 `toml:"graph_ratio" yaml:"graph_ratio"`
	WaveRatio       *float64 `toml:"wave_ratio" yaml:"wave_ratio"`
	WaveStepRatio   *float64 `toml:"wave_step_ratio" yaml:"wave_step_ratio"`
	GlowScale       *float64 `toml:"glow_scale" yaml:"glow_scale"`
	ActiveGlowScale *float64 `toml:"active_glow_scale" yaml:"active_glow_scale"`
	ActiveNodeScale *float64 `toml:"active_node_scale" yaml:"active_node_scale"`
}

// Load reads a style file, choosing the decoder from its extension.
// An empty path returns the default style.
func Load(path string) (icon.Style, error) {
	if path == "" {
		return icon.DefaultStyle(), nil
	}

	format, err := FormatOf(path)
	if err != nil {
		return icon.Style{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return icon.Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read style file %s", path)
	}
	return Parse(data, format)
}

// FormatOf maps a file extension to FormatTOML or FormatYAML.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unsupported style file %s (want .toml, .yaml or .yml)", path)
}

// Parse decodes a style document and applies it over the default style.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte, format string) (icon.Style, error) {
	var f file
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return icon.Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return icon.Style{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return icon.Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return icon.Style{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported format %q", format)
	}

	s := icon.DefaultStyle()
	if err := applyPalette(&s.Palette, f.Palette); err != nil {
		return icon.Style{}, err
	}
	applyGeometry(&s.Geometry, f.Geometry)

	if err := s.Validate(); err != nil {
		return icon.Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid style")
	}
	return s, nil
}

func paletteFields(p *icon.Palette) map[string]*color.NRGBA {
	return map[string]*color.NRGBA{
		"background":    &p.Background,
		"line":          &p.Line,
		"active_line":   &p.ActiveLine,
		"glow":          &p.Glow,
		"active_glow":   &p.ActiveGlow,
		"node":          &p.Node,
		"node_border":   &p.NodeBorder,
		"active_node":   &p.ActiveNode,
		"active_border": &p.ActiveBorder,
		"ring":          &p.Ring,
	}
}

// PaletteKeys lists the color names accepted in the palette table.
func PaletteKeys() []string {
	var p icon.Palette
	return slices.Sorted(maps.Keys(paletteFields(&p)))
}

func applyPalette(p *icon.Palette, overrides map[string]string) error {
	fields := paletteFields(p)
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		dst, ok := fields[name]
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown palette color %q", name)
		}
		c, err := ParseColor(overrides[name])
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette color %q", name)
		}
		*dst = c
	}
	return nil
}

func applyGeometry(g *icon.Geometry, o geometry) {
	setInt(&g.MarginDiv, o.MarginDiv)
	setInt(&g.RingStepDiv, o.RingStepDiv)
	setInt(&g.NodeDiv, o.NodeDiv)
	setInt(&g.LineDiv, o.LineDiv)
	setInt(&g.ActiveLineDiv, o.ActiveLineDiv)
	setInt(&g.BlurDiv, o.BlurDiv)
	setInt(&g.RingWidthDiv, o.RingWidthDiv)
	setFloat(&g.GraphRatio, o.GraphRatio)
	setFloat(&g.WaveRatio, o.WaveRatio)
	setFloat(&g.WaveStepRatio, o.WaveStepRatio)
	setFloat(&g.GlowScale, o.GlowScale)
	setFloat(&g.ActiveGlowScale, o.ActiveGlowScale)
	setFloat(&g.ActiveNodeScale, o.ActiveNodeScale)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ParseColor parses "#RRGGBB" (opaque) or "#RRGGBBAA".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	var alpha uint64 = 255
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q", s)
		}
		alpha = a
		s = s[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q (want #RRGGBB or #RRGGBBAA)", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

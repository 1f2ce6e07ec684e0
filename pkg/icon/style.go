package icon

import (
	"image/color"

	"github.com/matzehuels/resonicon/pkg/errors"
)

// Palette holds every color the renderer paints with.
//
// Line, Ring and Background are used for their RGB components only; the
// renderer supplies per-layer alpha from its fixed tables.
type Palette struct {
	Background   color.NRGBA `json:"background"`
	Line         color.NRGBA `json:"line"`
	ActiveLine   color.NRGBA `json:"active_line"`
	Glow         color.NRGBA `json:"glow"`
	ActiveGlow   color.NRGBA `json:"active_glow"`
	Node         color.NRGBA `json:"node"`
	NodeBorder   color.NRGBA `json:"node_border"`
	ActiveNode   color.NRGBA `json:"active_node"`
	ActiveBorder color.NRGBA `json:"active_border"`
	Ring         color.NRGBA `json:"ring"`
}

// Geometry holds the size-relative proportions of the icon.
//
// Fields ending in Div are integer divisors of the canvas size: a stroke with
// LineDiv 200 is size/200 pixels wide, truncated and clamped to at least one
// pixel. Fields ending in Ratio or Scale are continuous multipliers.
type Geometry struct {
	MarginDiv       int     `json:"margin_div"`        // background inset
	RingStepDiv     int     `json:"ring_step_div"`     // growth of each background layer
	NodeDiv         int     `json:"node_div"`          // base node radius
	LineDiv         int     `json:"line_div"`          // connection and node border width
	ActiveLineDiv   int     `json:"active_line_div"`   // active connection width
	BlurDiv         int     `json:"blur_div"`          // glow blur sigma
	RingWidthDiv    int     `json:"ring_width_div"`    // center ring stroke width
	GraphRatio      float64 `json:"graph_ratio"`       // node circle radius / size
	WaveRatio       float64 `json:"wave_ratio"`        // outer center ring radius / size
	WaveStepRatio   float64 `json:"wave_step_ratio"`   // spacing between center rings / size
	GlowScale       float64 `json:"glow_scale"`        // inactive glow radius / node radius
	ActiveGlowScale float64 `json:"active_glow_scale"` // active glow radius / node radius
	ActiveNodeScale float64 `json:"active_node_scale"` // active node radius / node radius
}

// Style combines the palette and geometry used by a render.
// The zero value is not usable; start from [DefaultStyle].
type Style struct {
	Palette  Palette  `json:"palette"`
	Geometry Geometry `json:"geometry"`
}

// DefaultStyle returns the resonant graph look: a slate disk with purple
// accents on the C-E-G triad.
func DefaultStyle() Style {
	purple := color.NRGBA{R: 168, G: 85, B: 247, A: 255}
	slate := color.NRGBA{R: 100, G: 116, B: 139, A: 255}

	return Style{
		Palette: Palette{
			Background:   color.NRGBA{R: 15, G: 23, B: 42, A: 255},
			Line:         slate,
			ActiveLine:   color.NRGBA{R: 168, G: 85, B: 247, A: 180},
			Glow:         color.NRGBA{R: 100, G: 116, B: 139, A: 30},
			ActiveGlow:   color.NRGBA{R: 168, G: 85, B: 247, A: 60},
			Node:         color.NRGBA{R: 51, G: 65, B: 85, A: 255},
			NodeBorder:   color.NRGBA{R: 100, G: 116, B: 139, A: 150},
			ActiveNode:   purple,
			ActiveBorder: color.NRGBA{R: 255, G: 255, B: 255, A: 200},
			Ring:         purple,
		},
		Geometry: Geometry{
			MarginDiv:       16,
			RingStepDiv:     512,
			NodeDiv:         20,
			LineDiv:         200,
			ActiveLineDiv:   100,
			BlurDiv:         30,
			RingWidthDiv:    150,
			GraphRatio:      0.35,
			WaveRatio:       0.12,
			WaveStepRatio:   0.03,
			GlowScale:       1.5,
			ActiveGlowScale: 3,
			ActiveNodeScale: 1.2,
		},
	}
}

// Validate reports an INVALID_ARGUMENT error if any geometry value would
// produce a degenerate drawing.
func (s Style) Validate() error {
	g := s.Geometry
	divs := []struct {
		name string
		v    int
	}{
		{"margin_div", g.MarginDiv},
		{"ring_step_div", g.RingStepDiv},
		{"node_div", g.NodeDiv},
		{"line_div", g.LineDiv},
		{"active_line_div", g.ActiveLineDiv},
		{"blur_div", g.BlurDiv},
		{"ring_width_div", g.RingWidthDiv},
	}
	for _, d := range divs {
		if d.v <= 0 {
			return errors.New(errors.ErrCodeInvalidArgument, "%s must be positive, got %d", d.name, d.v)
		}
	}
	if g.MarginDiv < 3 {
		return errors.New(errors.ErrCodeInvalidArgument, "margin_div must be at least 3, got %d", g.MarginDiv)
	}

	ratios := []struct {
		name string
		v    float64
	}{
		{"graph_ratio", g.GraphRatio},
		{"wave_ratio", g.WaveRatio},
		{"glow_scale", g.GlowScale},
		{"active_glow_scale", g.ActiveGlowScale},
		{"active_node_scale", g.ActiveNodeScale},
	}
	for _, r := range ratios {
		if r.v <= 0 {
			return errors.New(errors.ErrCodeInvalidArgument, "%s must be positive, got %g", r.name, r.v)
		}
	}
	if g.GraphRatio > 0.5 {
		return errors.New(errors.ErrCodeInvalidArgument, "graph_ratio must not exceed 0.5, got %g", g.GraphRatio)
	}
	if g.WaveStepRatio < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "wave_step_ratio must not be negative, got %g", g.WaveStepRatio)
	}
	if inner := g.WaveRatio - float64(len(ringAlphas)-1)*g.WaveStepRatio; inner <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "innermost center ring collapses (wave_ratio %g, wave_step_ratio %g)", g.WaveRatio, g.WaveStepRatio)
	}
	return nil
}

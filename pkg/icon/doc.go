// Package icon renders the resonant graph application icon.
//
// # Overview
//
// The icon is a stylized node graph: twelve nodes, one per pitch class, sit
// evenly on a circle starting at twelve o'clock. They are joined by the
// circle of fifths plus three stacked thirds, and the C-E-G major triad is
// highlighted with brighter strokes, larger nodes and a blurred glow. Three
// faint concentric rings hint at a waveform in the middle.
//
// # Rendering
//
// [Render] draws onto a fogleman/gg canvas in a fixed order:
//
//  1. Backdrop disk, layered three times with decreasing alpha
//  2. Dim connections, alpha cycling through three levels
//  3. Active connections, thicker and in the accent color
//  4. Glow layer, blurred with disintegration/imaging and composited over
//  5. Node disks with outlines
//  6. Center rings
//
// Every stroke width and radius scales with the canvas size. Integer
// divisors are truncated and clamped to one pixel, so very small renders
// keep visible lines. For small icon sizes prefer downsampling a large
// render (see package iconset) over rendering directly.
//
//	img, err := icon.Render(1024)
//	if err != nil {
//	    return err
//	}
//	return icon.EncodePNG(w, img)
//
// # Styles
//
// [DefaultStyle] reproduces the original look. A custom [Style] can be passed
// with [WithStyle]; see package config for loading one from a file.
package icon

package icon

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/resonicon/pkg/errors"
)

// MaxSize is the largest edge length Render accepts.
const MaxSize = 8192

// RenderVersion identifies the drawing code. Bump it whenever a change alters
// the pixels Render produces, so cached renders from older builds miss.
const RenderVersion = "1"

// Option configures a render.
type Option func(*renderer)

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(r *renderer) { r.style = s }
}

type renderer struct {
	size  int
	style Style
}

func newRenderer(size int, opts []Option) (*renderer, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "icon size must be positive, got %d", size)
	}
	if size > MaxSize {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "icon size %d exceeds maximum %d", size, MaxSize)
	}
	r := &renderer{size: size, style: DefaultStyle()}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.style.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Render draws the icon on a transparent size×size canvas.
//
// The result depends only on size and style, so repeated calls return
// pixel-identical images. Sizes outside 1..MaxSize and invalid styles fail
// with an INVALID_ARGUMENT error.
func Render(size int, opts ...Option) (*image.NRGBA, error) {
	r, err := newRenderer(size, opts)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := gg.NewContextForRGBA(canvas)
	dc.SetLineCapButt()

	nodes := r.nodes()
	r.drawBackground(dc)
	r.drawConnections(dc, nodes)
	r.compositeGlow(canvas, nodes)
	r.drawNodes(dc, nodes)
	r.drawRings(dc)

	return imaging.Clone(canvas), nil
}

// drawBackground layers the backdrop disk three times, each larger and more
// transparent than the last, to soften its rim.
func (r *renderer) drawBackground(dc *gg.Context) {
	g := r.style.Geometry
	margin := r.size / g.MarginDiv
	step := float64(scaled(r.size, g.RingStepDiv))
	radius := float64(r.size-2*margin) / 2
	c := float64(margin) + radius

	for i, a := range backgroundAlphas {
		dc.SetColor(withAlpha(r.style.Palette.Background, a))
		dc.DrawCircle(c, c, radius+float64(i)*step)
		dc.Fill()
	}
}

func (r *renderer) drawConnections(dc *gg.Context, nodes []Node) {
	g := r.style.Geometry
	p := r.style.Palette

	dc.SetLineWidth(float64(scaled(r.size, g.LineDiv)))
	for _, c := range Connections() {
		a, b := nodes[c.From].Pos, nodes[c.To].Pos
		dc.SetColor(withAlpha(p.Line, c.Alpha))
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}

	dc.SetLineWidth(float64(scaled(r.size, g.ActiveLineDiv)))
	dc.SetColor(p.ActiveLine)
	for _, c := range ActiveConnections() {
		a, b := nodes[c.From].Pos, nodes[c.To].Pos
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}
}

// compositeGlow paints every node's halo on a separate layer, blurs it and
// lays it over the canvas.
func (r *renderer) compositeGlow(canvas *image.RGBA, nodes []Node) {
	layer := gg.NewContext(r.size, r.size)
	for _, n := range nodes {
		layer.SetColor(n.Glow)
		layer.DrawCircle(n.Pos.X, n.Pos.Y, n.GlowRadius)
		layer.Fill()
	}

	sigma := float64(scaled(r.size, r.style.Geometry.BlurDiv))
	glow := imaging.Blur(layer.Image(), sigma)
	xdraw.Draw(canvas, canvas.Bounds(), glow, image.Point{}, xdraw.Over)
}

// drawNodes fills each node and strokes its rim. Outlines sit inside the
// disk so that active and inactive nodes keep their nominal radius.
func (r *renderer) drawNodes(dc *gg.Context, nodes []Node) {
	w := float64(scaled(r.size, r.style.Geometry.LineDiv))
	dc.SetLineWidth(w)
	for _, n := range nodes {
		dc.SetColor(n.Fill)
		dc.DrawCircle(n.Pos.X, n.Pos.Y, n.Radius)
		dc.Fill()

		dc.SetColor(n.Border)
		dc.DrawCircle(n.Pos.X, n.Pos.Y, inset(n.Radius, w))
		dc.Stroke()
	}
}

// drawRings adds the concentric center motif, fading toward the middle.
func (r *renderer) drawRings(dc *gg.Context) {
	g := r.style.Geometry
	c := center(r.size)
	size := float64(r.size)
	w := float64(scaled(r.size, g.RingWidthDiv))

	dc.SetLineWidth(w)
	for i, a := range ringAlphas {
		radius := size*g.WaveRatio - float64(i)*size*g.WaveStepRatio
		dc.SetColor(withAlpha(r.style.Palette.Ring, a))
		dc.DrawCircle(c, c, inset(radius, w))
		dc.Stroke()
	}
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

// DecodePNG reads an image previously written by EncodePNG.
func DecodePNG(rd io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(rd)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode png")
	}
	return imaging.Clone(img), nil
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// inset returns the path radius for a stroke of width w that stays within
// radius. Strokes wider than the disk collapse onto its center.
func inset(radius, w float64) float64 {
	if r := radius - w/2; r > 0 {
		return r
	}
	return 0
}

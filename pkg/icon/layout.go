package icon

import (
	"image/color"
	"math"
	"slices"
)

// NodeCount is the number of nodes on the graph circle, one per pitch class.
const NodeCount = 12

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// Node is one drawn graph node with its derived appearance.
type Node struct {
	Index  int
	Pos    Point
	Active bool

	Radius float64     // filled disk radius
	Fill   color.NRGBA // disk color
	Border color.NRGBA // outline color

	GlowRadius float64     // radius of the disk painted on the glow layer
	Glow       color.NRGBA // glow layer color
}

// Connection is an edge between two node indices drawn with the given alpha.
type Connection struct {
	From, To int
	Alpha    uint8
}

// edges walks the circle of fifths (0-7-2-9-...-5-0) and then adds three
// thirds stacked on the C-E-G triad.
var edges = [...][2]int{
	{0, 7}, {7, 2}, {2, 9}, {9, 4}, {4, 11}, {11, 6},
	{6, 1}, {1, 8}, {8, 3}, {3, 10}, {10, 5}, {5, 0},
	{0, 4}, {4, 7}, {7, 11},
}

// activeEdges are overdrawn in the accent color.
var activeEdges = [...][2]int{{0, 7}, {7, 2}, {0, 4}}

// activeNodes form a major triad: C, E, G.
var activeNodes = [...]int{0, 4, 7}

var (
	lineAlphas       = [...]uint8{80, 120, 160}
	backgroundAlphas = [...]uint8{255, 225, 195}
	ringAlphas       = [...]uint8{40, 30, 20}
)

// Connections returns the dim connection table. Alpha cycles through three
// levels by position in the table.
func Connections() []Connection {
	out := make([]Connection, len(edges))
	for i, e := range edges {
		out[i] = Connection{From: e[0], To: e[1], Alpha: lineAlphas[i%len(lineAlphas)]}
	}
	return out
}

// ActiveConnections returns the connections overdrawn in the accent color.
// Their alpha is taken from the palette's ActiveLine.
func ActiveConnections() []Connection {
	out := make([]Connection, len(activeEdges))
	for i, e := range activeEdges {
		out[i] = Connection{From: e[0], To: e[1]}
	}
	return out
}

// IsActive reports whether node i belongs to the highlighted triad.
func IsActive(i int) bool {
	return slices.Contains(activeNodes[:], i)
}

// NodeAngle returns the angle of node i in radians, measured from the
// positive x axis with y pointing down. Node 0 sits at the top.
func NodeAngle(i int) float64 {
	return -math.Pi/2 + float64(i)/NodeCount*2*math.Pi
}

// NodePositions places NodeCount points evenly on a circle of radius
// ratio*size around the canvas center, clockwise from the top.
func NodePositions(size int, ratio float64) []Point {
	c := center(size)
	r := float64(size) * ratio

	pts := make([]Point, NodeCount)
	for i := range pts {
		a := NodeAngle(i)
		pts[i] = Point{X: c + r*math.Cos(a), Y: c + r*math.Sin(a)}
	}
	return pts
}

// Nodes computes the full node table for a canvas of the given size.
func Nodes(size int, opts ...Option) ([]Node, error) {
	r, err := newRenderer(size, opts)
	if err != nil {
		return nil, err
	}
	return r.nodes(), nil
}

func (r *renderer) nodes() []Node {
	g := r.style.Geometry
	p := r.style.Palette
	base := float64(scaled(r.size, g.NodeDiv))

	pts := NodePositions(r.size, g.GraphRatio)
	nodes := make([]Node, len(pts))
	for i, pt := range pts {
		n := Node{Index: i, Pos: pt, Active: IsActive(i)}
		if n.Active {
			n.Radius = base * g.ActiveNodeScale
			n.Fill, n.Border = p.ActiveNode, p.ActiveBorder
			n.GlowRadius, n.Glow = base*g.ActiveGlowScale, p.ActiveGlow
		} else {
			n.Radius = base
			n.Fill, n.Border = p.Node, p.NodeBorder
			n.GlowRadius, n.Glow = base*g.GlowScale, p.Glow
		}
		nodes[i] = n
	}
	return nodes
}

func center(size int) float64 {
	return float64(size) / 2
}

// scaled returns size/div truncated, but never less than one pixel.
func scaled(size, div int) int {
	if v := size / div; v > 0 {
		return v
	}
	return 1
}

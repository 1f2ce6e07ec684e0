package icon

import (
	"math"
	"testing"
)

func TestNodePositionsScenario(t *testing.T) {
	pts := NodePositions(100, 0.35)
	if len(pts) != NodeCount {
		t.Fatalf("NodePositions returned %d points, want %d", len(pts), NodeCount)
	}
	if math.Abs(pts[0].X-50) > 1e-9 || math.Abs(pts[0].Y-15) > 1e-9 {
		t.Errorf("node 0 = (%.3f, %.3f), want (50, 15)", pts[0].X, pts[0].Y)
	}
	// Clockwise: node 3 is at three o'clock.
	if math.Abs(pts[3].X-85) > 1e-9 || math.Abs(pts[3].Y-50) > 1e-9 {
		t.Errorf("node 3 = (%.3f, %.3f), want (85, 50)", pts[3].X, pts[3].Y)
	}
}

func TestNodeAnglesInvariantUnderSize(t *testing.T) {
	for _, size := range []int{16, 100, 512, 1000, 1024} {
		c := float64(size) / 2
		for i, p := range NodePositions(size, 0.35) {
			got := math.Atan2(p.Y-c, p.X-c) * 180 / math.Pi
			want := -90 + 30*float64(i)
			d := math.Mod(got-want+540, 360) - 180
			if math.Abs(d) > 1e-6 {
				t.Errorf("size %d node %d angle = %.6f°, want %.1f°", size, i, got, want)
			}

			dist := math.Hypot(p.X-c, p.Y-c)
			if math.Abs(dist-0.35*float64(size)) > 1e-9 {
				t.Errorf("size %d node %d distance = %.6f, want %.6f", size, i, dist, 0.35*float64(size))
			}
		}
	}
}

func TestConnections(t *testing.T) {
	conns := Connections()
	if len(conns) != 15 {
		t.Fatalf("Connections() = %d entries, want 15", len(conns))
	}

	wantAlpha := []uint8{80, 120, 160}
	seen := make(map[[2]int]bool)
	for i, c := range conns {
		if c.Alpha != wantAlpha[i%3] {
			t.Errorf("connection %d alpha = %d, want %d", i, c.Alpha, wantAlpha[i%3])
		}
		if c.From < 0 || c.From >= NodeCount || c.To < 0 || c.To >= NodeCount {
			t.Errorf("connection %d (%d,%d) references a missing node", i, c.From, c.To)
		}
		seen[[2]int{c.From, c.To}] = true
	}

	// The first twelve edges walk the full circle of fifths.
	for i := 0; i < 12; i++ {
		c := conns[i]
		step := (c.To - c.From + NodeCount) % NodeCount
		if step != 7 && step != 5 {
			t.Errorf("connection %d (%d,%d) is not a fifth", i, c.From, c.To)
		}
	}

	active := ActiveConnections()
	if len(active) != 3 {
		t.Fatalf("ActiveConnections() = %d entries, want 3", len(active))
	}
	for _, c := range active {
		if !seen[[2]int{c.From, c.To}] {
			t.Errorf("active connection (%d,%d) is not in the connection table", c.From, c.To)
		}
	}
}

func TestConnectionsReturnsCopy(t *testing.T) {
	conns := Connections()
	conns[0].From = 11
	if Connections()[0].From != 0 {
		t.Error("mutating the returned slice should not affect the table")
	}
}

func TestIsActive(t *testing.T) {
	active := 0
	for i := 0; i < NodeCount; i++ {
		if IsActive(i) {
			active++
		}
	}
	if active != 3 {
		t.Errorf("active node count = %d, want 3", active)
	}
	for _, i := range []int{0, 4, 7} {
		if !IsActive(i) {
			t.Errorf("IsActive(%d) = false, want true", i)
		}
	}
}

func TestNodes(t *testing.T) {
	nodes, err := Nodes(1000)
	if err != nil {
		t.Fatalf("Nodes error: %v", err)
	}
	if len(nodes) != NodeCount {
		t.Fatalf("Nodes returned %d, want %d", len(nodes), NodeCount)
	}

	style := DefaultStyle()
	for _, n := range nodes {
		if n.Active {
			if math.Abs(n.Radius-60) > 1e-9 {
				t.Errorf("active node %d radius = %v, want 60", n.Index, n.Radius)
			}
			if n.GlowRadius != 150 || n.Fill != style.Palette.ActiveNode {
				t.Errorf("active node %d has glow %v fill %v", n.Index, n.GlowRadius, n.Fill)
			}
		} else {
			if n.Radius != 50 || n.GlowRadius != 75 || n.Fill != style.Palette.Node {
				t.Errorf("inactive node %d has radius %v glow %v fill %v", n.Index, n.Radius, n.GlowRadius, n.Fill)
			}
		}
	}
}

func TestNodesInvalidSize(t *testing.T) {
	if _, err := Nodes(0); err == nil {
		t.Error("Nodes(0) should fail")
	}
}

func TestScaled(t *testing.T) {
	tests := []struct {
		size, div, want int
	}{
		{1024, 200, 5},
		{1024, 100, 10},
		{199, 200, 1},
		{16, 200, 1},
		{400, 200, 2},
	}
	for _, tt := range tests {
		if got := scaled(tt.size, tt.div); got != tt.want {
			t.Errorf("scaled(%d, %d) = %d, want %d", tt.size, tt.div, got, tt.want)
		}
	}
}

package icon

import (
	"testing"

	"github.com/matzehuels/resonicon/pkg/errors"
)

func TestDefaultStyleValid(t *testing.T) {
	if err := DefaultStyle().Validate(); err != nil {
		t.Fatalf("DefaultStyle().Validate() error: %v", err)
	}
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Geometry)
	}{
		{"zero margin divisor", func(g *Geometry) { g.MarginDiv = 0 }},
		{"margin eats the canvas", func(g *Geometry) { g.MarginDiv = 2 }},
		{"negative node divisor", func(g *Geometry) { g.NodeDiv = -20 }},
		{"zero blur divisor", func(g *Geometry) { g.BlurDiv = 0 }},
		{"zero graph ratio", func(g *Geometry) { g.GraphRatio = 0 }},
		{"graph ratio off canvas", func(g *Geometry) { g.GraphRatio = 0.6 }},
		{"negative glow scale", func(g *Geometry) { g.GlowScale = -1 }},
		{"negative wave step", func(g *Geometry) { g.WaveStepRatio = -0.01 }},
		{"collapsed center rings", func(g *Geometry) { g.WaveStepRatio = 0.06 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s.Geometry)
			err := s.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("Validate() error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	rerrors "github.com/matzehuels/resonicon/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", context.Canceled, exitInterrupted},
		{"wrapped interrupt", fmt.Errorf("export: %w", context.Canceled), exitInterrupted},
		{"write failure", rerrors.New(rerrors.ErrCodeIO, "write icon.png"), exitFailure},
		{"bad size", rerrors.New(rerrors.ErrCodeInvalidArgument, "size 0"), exitUsage},
		{"bad style file", rerrors.New(rerrors.ErrCodeInvalidConfig, "unknown key"), exitUsage},
		{"plain error", errors.New("accepts at most 1 arg(s)"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRunUnwritableTarget(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "icons")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := run(context.Background(), []string{blocker, "--no-cache"})
	if !rerrors.Is(err, rerrors.ErrCodeIO) {
		t.Fatalf("run error = %v, want IO_FAILURE", err)
	}
	if code := exitCode(err); code == 0 {
		t.Error("an unwritable target must exit non-zero")
	}
}

func TestRunRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "icon.png")

	if err := run(context.Background(), []string{"render", "-s", "32", "-o", out}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("render did not write %s: %v", out, err)
	}
}

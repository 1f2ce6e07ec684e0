package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "size must be positive, got %d", -3)

	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidArgument)
	}
	if err.Message != "size must be positive, got -3" {
		t.Errorf("Message = %q", err.Message)
	}
	if got := err.Error(); got != "INVALID_ARGUMENT: size must be positive, got -3" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapUnwrap(t *testing.T) {
	err := Wrap(ErrCodeIO, os.ErrPermission, "write %s", "icon.png")

	if !errors.Is(err, os.ErrPermission) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if got := err.Error(); got != "IO_FAILURE: write icon.png: permission denied" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIs(t *testing.T) {
	base := New(ErrCodeIO, "create directory")
	wrapped := fmt.Errorf("export: %w", base)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", base, ErrCodeIO, true},
		{"wrapped match", wrapped, ErrCodeIO, true},
		{"different code", base, ErrCodeInvalidArgument, false},
		{"plain error", errors.New("boom"), ErrCodeIO, false},
		{"nil", nil, ErrCodeIO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidConfig, "bad")); got != ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidConfig)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidArgument, "size too large"), "size too large"},
		{"coded with cause", Wrap(ErrCodeIO, os.ErrPermission, "write icon.png"), "write icon.png: permission denied"},
		{"plain", errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnknownComponent", ErrUnknownComponent},
		{"ErrUnsupportedStyle", ErrUnsupportedStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrInvalidInput tests ErrInvalidInput error
func TestErrInvalidInput(t *testing.T) {
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
	assert.True(t, errors.Is(ErrInvalidInput, ErrInvalidInput))
	assert.False(t, errors.Is(ErrInvalidInput, ErrUnknownComponent))
}

// TestErrUnknownComponent tests ErrUnknownComponent error
func TestErrUnknownComponent(t *testing.T) {
	assert.Equal(t, "unknown vector component", ErrUnknownComponent.Error())
	assert.False(t, errors.Is(ErrUnknownComponent, ErrUnsupportedStyle))
}

// TestErrUnsupportedStyle tests ErrUnsupportedStyle error
func TestErrUnsupportedStyle(t *testing.T) {
	assert.Equal(t, "unsupported render style", ErrUnsupportedStyle.Error())
	assert.False(t, errors.Is(ErrUnsupportedStyle, ErrInvalidInput))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("render vec4: %w", ErrUnsupportedStyle)

	assert.ErrorIs(t, wrapped, ErrUnsupportedStyle)
	assert.Contains(t, wrapped.Error(), "unsupported render style")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentLabel(t *testing.T) {
	assert.Equal(t, "Vec2.x", ComponentLabel(2, ComponentX))
	assert.Equal(t, "Vec3.y", ComponentLabel(3, ComponentY))
}

func TestVectorLabel(t *testing.T) {
	assert.Equal(t, "Vec4", VectorLabel(4))
}

func TestLine_String(t *testing.T) {
	tests := []struct {
		name     string
		line     Line
		expected string
	}{
		{
			name:     "label fills column",
			line:     Line{Label: "Vec2.x", Value: "2"},
			expected: "Vec2.x | 2",
		},
		{
			name:     "short label is padded",
			line:     Line{Label: "Vec4", Value: "[1, 3.2345, 4, 0.25]"},
			expected: "Vec4   | [1, 3.2345, 4, 0.25]",
		},
		{
			name:     "long label is not truncated",
			line:     Line{Label: "Vector4", Value: "1"},
			expected: "Vector4 | 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.line.String())
		})
	}
}

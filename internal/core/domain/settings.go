package domain

const unknownDescription = "Unknown"

// RenderStyle defines how a whole vector is converted to text.
type RenderStyle string

// Available render styles.
const (
	// RenderStyleBracket renders "[1, 3.2345, 4, 0.25]".
	RenderStyleBracket RenderStyle = "bracket"

	// RenderStyleGLM renders "vec4(1.000000, 3.234500, 4.000000, 0.250000)",
	// matching glm::to_string.
	RenderStyleGLM RenderStyle = "glm"
)

// AllRenderStyles returns every supported style.
func AllRenderStyles() []RenderStyle {
	return []RenderStyle{RenderStyleBracket, RenderStyleGLM}
}

// IsValid returns true if the render style is recognised.
func (s RenderStyle) IsValid() bool {
	switch s {
	case RenderStyleBracket, RenderStyleGLM:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s RenderStyle) String() string {
	return string(s)
}

// Description returns a human-readable description of the style.
func (s RenderStyle) Description() string {
	switch s {
	case RenderStyleBracket:
		return "Bracket ([a, b, c, d])"
	case RenderStyleGLM:
		return "GLM (vecN(a, b, ...) with six decimals)"
	default:
		return unknownDescription
	}
}

// DemoSettings holds the options that affect how the demo renders and logs.
// None of them change which vectors are built or which components are read.
type DemoSettings struct {
	Style   RenderStyle `json:"style"`
	Verbose bool        `json:"verbose"`
}

// DefaultDemoSettings returns settings matching a bare invocation.
func DefaultDemoSettings() DemoSettings {
	return DemoSettings{
		Style:   RenderStyleBracket,
		Verbose: false,
	}
}

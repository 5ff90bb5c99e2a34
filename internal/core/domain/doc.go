// Package domain defines the core types for vecdemo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Line: A labelled row of demo output
//   - Component: A named vector component (x, y, z, w)
//   - RenderStyle: How whole vectors are turned into text
//   - DemoSettings: User-tunable rendering and logging options
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse. Vector values themselves come from mgl32 and
// are handled in services, so domain never sees them.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package render provides driven.VectorRenderer implementations.
//
// Renderers:
//   - Bracket: "[1, 3.2345, 4, 0.25]" (default)
//   - GLM: "vec4(1.000000, 3.234500, 4.000000, 0.250000)", as glm::to_string prints it
//
// Both format scalars as the shortest decimal that round-trips a float32,
// so a literal such as 3.2345 prints back as written.
package render

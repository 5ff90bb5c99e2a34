// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate
// calls to driven ports (adapters).
//
// Vector values are mgl32 types; services are the only core package
// that touches them. Domain and ports see plain float32 components.
package services

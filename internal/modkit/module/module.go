// Package module defines the minimal contract for a modkit module
package module

// Module defines the minimal contract used by modkit
// keep this tiny so modules stay decoupled
type Module interface {
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Package module implements the contributions service module
package module

import (
	"chronicle/internal/modkit"
	"chronicle/internal/services/contributions/domain"
	"chronicle/internal/services/contributions/ingest"
	"chronicle/internal/services/contributions/service"
)

// Ports exposed by the contributions module
type Ports struct {
	Collector domain.CollectorPort
}

// Module implements the contributions service module
type Module struct {
	deps  modkit.Deps
	ports Ports
	opts  Options
}

// New constructs a new contributions module.
// Override fields win over the CHRONICLE_* config values
func New(deps modkit.Deps, over Options) *Module {
	opts := FromConfig(deps.Cfg).merge(over)

	search, pulls := ingest.New(deps)
	svc := service.New(search, pulls)

	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{
		Collector: svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "contributions" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Params returns the collect params resolved from options
func (m *Module) Params() domain.Params {
	return domain.Params{User: m.opts.User, SinceYear: m.opts.SinceYear}
}

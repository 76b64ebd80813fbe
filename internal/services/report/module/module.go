// Package module implements the report service module
package module

import (
	"chronicle/internal/modkit"
	"chronicle/internal/services/report/domain"
	"chronicle/internal/services/report/repo"
	"chronicle/internal/services/report/service"
)

// Ports exposed by the report module
type Ports struct {
	Reporter domain.ReporterPort
}

// Module implements the report service module
type Module struct {
	deps  modkit.Deps
	ports Ports
	opts  Options
}

// New constructs a new report module.
// Override fields win over the CHRONICLE_* config values
func New(deps modkit.Deps, over Options) *Module {
	opts := FromConfig(deps.Cfg).merge(over)

	writer := repo.NewFS(opts.OutDir)
	svc := service.New(writer)

	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{
		Reporter: svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "report" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

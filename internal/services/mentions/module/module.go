// Package module implements the mentions module
package module

import (
	"wtwm/internal/core/recognizer"
	"wtwm/internal/core/vocab"
	"wtwm/internal/modkit"
	perr "wtwm/internal/platform/errors"
	"wtwm/internal/platform/validate"
	"wtwm/internal/services/mentions/domain"
	"wtwm/internal/services/mentions/service"
)

// Ports exposed by the mentions module
type Ports struct {
	Runner domain.RunnerPort
	// Reloader is nil unless the pattern recognizer is in use
	Reloader domain.ReloaderPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	opts  Options
	rec   recognizer.Recognizer
	ports Ports
}

// New constructs the mentions module. Options from deps.Cfg are merged with
// overrides; a domain.Ports passed through modkit.WithPorts may supply the
// recognizer directly
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("mentions"),
	}, opts...)...)

	var injected domain.Ports
	if b.Ports != nil {
		p, ok := b.Ports.(domain.Ports)
		if !ok {
			panic("mentions module: expected WithPorts(mentions/domain.Ports)")
		}
		injected = p
	}

	cfg := FromConfig(deps.Cfg).merge(overrides)
	if err := validate.Struct(cfg); err != nil {
		return nil, perr.WithOp(err, "mentions.New")
	}

	m := &Module{deps: deps, opts: cfg}

	switch {
	case injected.Recognizer != nil:
		m.rec = injected.Recognizer

	case cfg.Kind == string(recognizer.KindRegex):
		rx, err := recognizer.LoadRegexFile(cfg.BaselinePath, cfg.DefaultLabel)
		if err != nil {
			return nil, perr.WithOp(err, "mentions.New")
		}
		m.rec = rx

	case cfg.Kind == string(recognizer.KindModel):
		return nil, perr.WithOp(perr.InvalidArgf("recognizer %s is served externally; inject it with WithPorts", cfg.Kind), "mentions.New")

	default:
		v, err := vocab.LoadFile(cfg.VocabPath)
		if err != nil {
			return nil, perr.WithOp(err, "mentions.New")
		}
		h := recognizer.NewHandle(v)
		m.rec = recognizer.NewPattern(h, cfg.DefaultLabel)
		if cfg.VocabPath != "" {
			m.ports.Reloader = service.NewReloader(h, cfg.VocabPath)
		}
	}

	m.ports.Runner = service.New(m.rec, service.Config{Workers: cfg.Workers})

	deps.Logger().Debug().
		Str("module", b.Name).
		Str("recognizer", m.rec.Kind().String()).
		Int("workers", cfg.Workers).
		Bool("reloadable", m.ports.Reloader != nil).
		Msg("module ready")
	return m, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "mentions" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the effective options after env and overrides
func (m *Module) Options() Options { return m.opts }

// Recognizer returns the recognizer the runner uses
func (m *Module) Recognizer() recognizer.Recognizer { return m.rec }

// Package document builds the configured PDF page loaders.
package document

import (
	"fmt"

	"quoteparse/internal/config"
	"quoteparse/internal/document/plain"
	"quoteparse/internal/document/tabula"
	"quoteparse/internal/port"
)

// BackendFactory creates a DocumentLoader from the document config.
type BackendFactory func(cfg config.DocumentConfig) (port.DocumentLoader, error)

// Backends maps backend names to their factories.
type Backends map[string]BackendFactory

// DefaultBackends returns the built-in loader backends.
func DefaultBackends() Backends {
	return Backends{
		tabula.Name: func(cfg config.DocumentConfig) (port.DocumentLoader, error) {
			return tabula.NewLoader(cfg.TempDir), nil
		},
		plain.Name: func(config.DocumentConfig) (port.DocumentLoader, error) {
			return plain.NewLoader(), nil
		},
	}
}

// New creates a single DocumentLoader by backend name.
func (b Backends) New(name string, cfg config.DocumentConfig) (port.DocumentLoader, error) {
	factory, ok := b[name]
	if !ok {
		return nil, fmt.Errorf("unknown document backend: %s", name)
	}
	return factory(cfg)
}

// NewLoader builds the loader chain named by cfg. A single backend is
// returned as is; several are wrapped in a FallbackLoader.
func NewLoader(cfg config.DocumentConfig, backends Backends) (port.DocumentLoader, error) {
	names := cfg.Backends()
	if len(names) == 0 {
		return nil, fmt.Errorf("no document backend configured")
	}

	loaders := make([]port.DocumentLoader, 0, len(names))
	for _, name := range names {
		l, err := backends.New(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("creating %s loader: %w", name, err)
		}
		loaders = append(loaders, l)
	}
	if len(loaders) == 1 {
		return loaders[0], nil
	}
	return NewFallbackLoader(loaders), nil
}

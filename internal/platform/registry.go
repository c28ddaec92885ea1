package platform

import (
	"context"
	"log/slog"
)

// Registry holds the configured adapters in a stable order so distribution
// and allocation remainders are deterministic.
type Registry struct {
	order    []string
	adapters map[string]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{
		adapters: make(map[string]Adapter),
	}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

func (r *Registry) Register(a Adapter) {
	if _, exists := r.adapters[a.Name()]; !exists {
		r.order = append(r.order, a.Name())
	}
	r.adapters[a.Name()] = a
}

func (r *Registry) Get(name string) (Adapter, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Authenticated returns the adapters that currently hold a working session,
// in registration order.
func (r *Registry) Authenticated() []Adapter {
	var out []Adapter
	for _, name := range r.order {
		if a := r.adapters[name]; a.IsAuthenticated() {
			out = append(out, a)
		}
	}
	return out
}

// AuthenticateAll tries every configured adapter and reports the outcome per
// platform. Unconfigured platforms are skipped, not treated as failures.
func (r *Registry) AuthenticateAll(ctx context.Context) map[string]bool {
	results := make(map[string]bool)
	for _, name := range r.order {
		a := r.adapters[name]
		if !a.IsConfigured() {
			slog.Info("platform not configured, skipping authentication", "platform", name)
			results[name] = false
			continue
		}
		if err := a.Authenticate(ctx); err != nil {
			slog.Info("authentication failed", "platform", name, "error", err.Error())
			results[name] = false
			continue
		}
		results[name] = true
	}
	return results
}

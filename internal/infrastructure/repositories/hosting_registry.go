package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/localguide/internal/domain/repositories"
)

// HostingFactory is a constructor function that creates a HostingRepository
// given an auth token. An empty token means anonymous access.
type HostingFactory func(token string) domainRepos.HostingRepository

// HostingRegistry manages all registered hosting implementations.
type HostingRegistry struct {
	hostings map[string]HostingFactory
}

// NewHostingRegistry creates an empty hosting registry.
func NewHostingRegistry() *HostingRegistry {
	return &HostingRegistry{
		hostings: make(map[string]HostingFactory),
	}
}

// Register adds a hosting factory under the given name (e.g. "github").
func (r *HostingRegistry) Register(name string, factory HostingFactory) {
	r.hostings[name] = factory
}

// Get returns a configured hosting instance for the given name and token.
func (r *HostingRegistry) Get(name, token string) (domainRepos.HostingRepository, error) {
	factory, ok := r.hostings[name]
	if !ok {
		return nil, fmt.Errorf("unknown hosting type: %q", name)
	}
	return factory(token), nil
}

// Names returns the sorted list of registered hosting names.
func (r *HostingRegistry) Names() []string {
	names := make([]string, 0, len(r.hostings))
	for name := range r.hostings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

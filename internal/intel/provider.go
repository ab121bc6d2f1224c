// internal/intel/provider.go
package intel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bl4cksku11/rto-toolkit/internal/core"
)

// Status classifies the outcome of one asset lookup.
type Status int

const (
	StatusSuccess Status = iota // provider returned a non-empty report
	StatusEmpty                 // provider answered but holds no data for the asset
	StatusFailure               // transport, auth or provider error
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusEmpty:
		return "no-data"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the outcome of looking up a single asset. Report is only set on
// StatusSuccess; Err is only set on StatusFailure.
type Result struct {
	Status Status
	Report string
	Err    error
}

// Provider is the single capability the batch runner depends on: look up one
// asset and classify the outcome. Implementations perform exactly one
// outbound call per Lookup and must honor the context deadline.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, asset string) Result
}

var (
	providersMu sync.Mutex
	providers   = make(map[string]Provider)
)

// Register makes a provider selectable by name. Later registrations with the
// same name replace earlier ones.
func Register(p Provider) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers[p.Name()] = p
}

// Get returns the provider registered under name.
func Get(name string) (Provider, error) {
	providersMu.Lock()
	defer providersMu.Unlock()
	p, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, core.ErrProviderNotFound)
	}
	return p, nil
}

// Names lists the registered provider names, sorted.
func Names() []string {
	providersMu.Lock()
	defer providersMu.Unlock()
	names := make([]string, 0, len(providers))
	for n := range providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Package netresolver provides a dnsx.Resolver backed by the system resolver.
package netresolver

import (
	"context"
	"fmt"
	"net"
	"time"

	"flowtrack/pkg/dnsx"
)

// Resolver wraps net.Resolver and bounds every lookup with a fixed timeout so
// a slow nameserver can never stall an enrichment worker.
type Resolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// New constructs a Resolver using the default system resolver. A non-positive
// timeout disables the per-lookup bound.
func New(timeout time.Duration) *Resolver {
	return &Resolver{
		resolver: net.DefaultResolver,
		timeout:  timeout,
	}
}

func (r *Resolver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, r.timeout)
}

// LookupMX returns the domain's MX records.
func (r *Resolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	records, err := r.resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("could not resolve MX for %q: %w", domain, err)
	}

	return records, nil
}

// LookupTXT returns the domain's TXT records.
func (r *Resolver) LookupTXT(ctx context.Context, domain string) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	records, err := r.resolver.LookupTXT(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("could not resolve TXT for %q: %w", domain, err)
	}

	return records, nil
}

// LookupHost resolves the domain to addresses.
func (r *Resolver) LookupHost(ctx context.Context, domain string) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	addrs, err := r.resolver.LookupHost(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("could not resolve host %q: %w", domain, err)
	}

	return addrs, nil
}

// Ensure Resolver conforms to the dnsx.Resolver interface at compile time.
var _ dnsx.Resolver = (*Resolver)(nil)

// Package dnsx defines the DNS capability consumed by the enrichment
// pipeline. The pipeline only needs MX and TXT lookups plus a cheap existence
// check, so the interface stays deliberately small.
package dnsx

import (
	"context"
	"net"
)

// Resolver is the abstraction over DNS lookups used by the pipeline.
//
//go:generate mockgen -package mockdnsx -source=interface.go -destination=mock/mockdnsx.go *
type Resolver interface {
	// LookupMX returns the domain's mail-exchange records. Implementations
	// return an error when the domain has no MX records; callers treat that as
	// an empty result.
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)

	// LookupTXT returns the domain's TXT records, one string per record with
	// character-string fragments already joined.
	LookupTXT(ctx context.Context, domain string) ([]string, error)

	// LookupHost resolves the domain to addresses. It is used purely as an
	// existence check during domain inference.
	LookupHost(ctx context.Context, domain string) ([]string, error)
}

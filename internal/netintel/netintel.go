// Package netintel collects DNS-level intelligence about a company domain:
// MX records, TXT records and the SPF/DMARC policies derived from them, plus
// a best-effort classification of the email provider behind the MX hosts.
package netintel

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"flowtrack/pkg/dnsx"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
)

// Collector gathers DNS intelligence for a domain. Lookups are best-effort:
// a failing record type yields an empty field rather than an error, since a
// domain without TXT records is still worth enriching.
type Collector struct {
	resolver dnsx.Resolver
}

func NewCollector(resolver dnsx.Resolver) *Collector {
	return &Collector{resolver: resolver}
}

// Collect fetches MX and TXT records for the domain and derives the SPF and
// DMARC policies. MX records are returned sorted by ascending priority.
func (c *Collector) Collect(ctx context.Context, dom string) domain.DNSIntelligence {
	var intel domain.DNSIntelligence

	mxs, err := c.resolver.LookupMX(ctx, dom)
	if err != nil {
		logger.Debug(ctx, "mx lookup failed", zap.String("domain", dom), zap.Error(err))
	}
	sort.SliceStable(mxs, func(i, j int) bool { return mxs[i].Pref < mxs[j].Pref })
	for _, mx := range mxs {
		intel.MX = append(intel.MX, domain.MXRecord{
			Exchange: strings.TrimSuffix(mx.Host, "."),
			Priority: mx.Pref,
		})
	}

	txts, err := c.resolver.LookupTXT(ctx, dom)
	if err != nil {
		logger.Debug(ctx, "txt lookup failed", zap.String("domain", dom), zap.Error(err))
	}
	intel.TXT = txts
	for _, txt := range txts {
		if strings.HasPrefix(txt, "v=spf1") {
			intel.SPF = txt

			break
		}
	}

	dmarcTxts, err := c.resolver.LookupTXT(ctx, "_dmarc."+dom)
	if err != nil {
		logger.Debug(ctx, "dmarc lookup failed", zap.String("domain", dom), zap.Error(err))
	}
	for _, txt := range dmarcTxts {
		if strings.HasPrefix(txt, "v=DMARC1") {
			intel.DMARC = txt

			break
		}
	}

	return intel
}

// providerRule maps an MX host substring to an email provider.
type providerRule struct {
	substring string
	provider  domain.EmailProvider
}

// providerRules are checked in order against the lowercased primary MX host.
var providerRules = []providerRule{ //nolint: gochecknoglobals
	{"google.com", domain.EmailProviderGoogleWorkspace},
	{"googlemail.com", domain.EmailProviderGoogleWorkspace},
	{"outlook.com", domain.EmailProviderMicrosoft365},
	{"protection.outlook.com", domain.EmailProviderMicrosoft365},
	{"zoho.com", domain.EmailProviderZoho},
	{"protonmail", domain.EmailProviderProtonMail},
	{"mailgun", domain.EmailProviderMailgun},
	{"sendgrid", domain.EmailProviderSendGrid},
}

// ClassifyProvider determines the email provider from the primary (lowest
// priority) MX record. A primary MX matching no known provider is classified
// self-hosted when its root domain equals the input domain, otherwise
// unknown. A domain without MX records is unknown.
func ClassifyProvider(dom string, records []domain.MXRecord) domain.EmailProvider {
	if len(records) == 0 {
		return domain.EmailProviderUnknown
	}

	primary := strings.ToLower(records[0].Exchange)
	for _, rule := range providerRules {
		if strings.Contains(primary, rule.substring) {
			return rule.provider
		}
	}

	if rootDomain(primary) == strings.ToLower(dom) {
		return domain.EmailProviderSelfHosted
	}

	return domain.EmailProviderUnknown
}

// rootDomain returns the last two labels of a hostname.
func rootDomain(host string) string {
	labels := strings.Split(strings.TrimSuffix(host, "."), ".")
	if len(labels) < 2 {
		return host
	}

	return strings.Join(labels[len(labels)-2:], ".")
}

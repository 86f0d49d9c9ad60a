// Package resolver turns a lead's email address into the organization domain
// used for enrichment. Personal mailbox domains (gmail.com and friends) carry
// no company signal, so the resolver substitutes the organization's real
// domain using two fallback strategies: direct DNS-based inference over a
// fixed TLD list, then a web search scrape validated against the company
// name.
package resolver

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"flowtrack/pkg/dnsx"
	"flowtrack/pkg/logger"
	"flowtrack/pkg/webclient"
)

// Resolution is the outcome of resolving a lead's domain. A non-empty
// SkipReason means the lead cannot be enriched; that is a recorded decision,
// not an error.
type Resolution struct {
	// Domain is the domain enrichment should run against.
	Domain string
	// OriginalDomain is the domain extracted from the email address.
	OriginalDomain string
	// UsedFallback reports whether Domain was substituted via fallback.
	UsedFallback bool
	// FallbackReason explains the substitution for auditing.
	FallbackReason string
	// SkipReason is set when no usable domain could be determined.
	SkipReason string
}

// Resolver resolves organization domains.
type Resolver struct {
	dns    dnsx.Resolver
	probe  webclient.Client
	search webclient.Client
}

// New creates a Resolver. probe is used for website accessibility checks
// during direct inference; search fetches search engine result pages.
func New(dns dnsx.Resolver, probe, search webclient.Client) *Resolver {
	return &Resolver{dns: dns, probe: probe, search: search}
}

var personalDomains = map[string]struct{}{ //nolint: gochecknoglobals
	"gmail.com":      {},
	"googlemail.com": {},
	"yahoo.com":      {},
	"yahoo.co.uk":    {},
	"yahoo.fr":       {},
	"yahoo.in":       {},
	"yahoo.co.jp":    {},
	"yahoo.de":       {},
	"outlook.com":    {},
	"hotmail.com":    {},
	"live.com":       {},
	"msn.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"mac.com":        {},
	"aol.com":        {},
	"protonmail.com": {},
	"proton.me":      {},
	"mail.com":       {},
	"zoho.com":       {},
	"yandex.com":     {},
	"yandex.ru":      {},
}

// commonTLDs is the candidate order for direct domain inference.
var commonTLDs = []string{ //nolint: gochecknoglobals
	"com",
	"in",
	"io",
	"co",
	"ai",
	"net",
	"org",
	"co.in",
	"co.uk",
	"de",
	"fr",
	"jp",
	"au",
}

// excludedSearchDomains never belong to the company being searched for.
var excludedSearchDomains = []string{ //nolint: gochecknoglobals
	"google.com",
	"linkedin.com",
	"facebook.com",
	"twitter.com",
	"youtube.com",
	"instagram.com",
	"wikipedia.org",
	"yelp.com",
	"glassdoor.com",
	"indeed.com",
	"crunchbase.com",
	"bloomberg.com",
}

// compoundCountryTLDs are two-label suffixes that make a three-label domain a
// registrable name rather than a subdomain.
var compoundCountryTLDs = map[string]struct{}{ //nolint: gochecknoglobals
	"co.uk":  {},
	"co.in":  {},
	"co.jp":  {},
	"co.au":  {},
	"com.au": {},
}

const minWebsiteContentLength = 500

var (
	domainFromEmail = regexp.MustCompile(`@(.+)$`)
	searchResultURL = regexp.MustCompile(`https?://([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	nonDomainChars  = regexp.MustCompile(`[^a-z0-9-]`)
)

// ExtractDomain returns the lowercased domain part of an email address.
func ExtractDomain(email string) (string, bool) {
	m := domainFromEmail.FindStringSubmatch(email)
	if m == nil {
		return "", false
	}

	return strings.ToLower(m[1]), true
}

// IsPersonalDomain reports whether the domain belongs to a consumer mailbox
// provider.
func IsPersonalDomain(dom string) bool {
	_, ok := personalDomains[strings.ToLower(dom)]

	return ok
}

// Resolve determines the enrichment domain for the email/company pair.
func (r *Resolver) Resolve(ctx context.Context, email, companyName string) Resolution {
	dom, ok := ExtractDomain(email)
	if !ok {
		return Resolution{SkipReason: "Invalid email format - no domain found"}
	}

	res := Resolution{Domain: dom, OriginalDomain: dom}
	if !IsPersonalDomain(dom) {
		return res
	}

	if companyName == "" {
		res.Domain = ""
		res.SkipReason = fmt.Sprintf(
			"Personal email domain detected (%s) but no company name provided. Cannot enrich without company information.",
			dom)

		return res
	}

	companyDomain := r.inferDomain(ctx, companyName)
	if companyDomain == "" {
		companyDomain = r.searchDomain(ctx, companyName)
	}
	if companyDomain == "" {
		res.Domain = ""
		res.SkipReason = fmt.Sprintf(
			"Could not determine company domain for %q. Personal email domain (%s) detected "+
				"but company domain lookup failed via both direct inference and web search.",
			companyName, dom)

		return res
	}

	res.Domain = companyDomain
	res.UsedFallback = true
	res.FallbackReason = fmt.Sprintf("Personal email domain (%s) replaced with company domain", dom)

	return res
}

// inferDomain tests {normalizedCompanyName}.{tld} for each common TLD. With a
// single DNS hit that candidate wins; with several, the first one serving
// substantial website content wins, falling back to the first DNS hit.
func (r *Resolver) inferDomain(ctx context.Context, companyName string) string {
	base := nonDomainChars.ReplaceAllString(
		strings.ReplaceAll(strings.ToLower(companyName), " ", ""), "")
	if base == "" {
		return ""
	}

	var validDomains []string
	for _, tld := range commonTLDs {
		candidate := base + "." + tld
		if r.domainExists(ctx, candidate) {
			validDomains = append(validDomains, candidate)
		}
	}

	switch len(validDomains) {
	case 0:
		return ""
	case 1:
		return validDomains[0]
	}

	for _, candidate := range validDomains {
		if r.websiteAccessible(ctx, candidate) {
			return candidate
		}
	}

	// none distinguishable by website, keep TLD priority order
	return validDomains[0]
}

// searchDomain scrapes a web search for "{companyName} official website" and
// returns the first candidate domain that passes the exclusion list, the
// subdomain filter, a name match against the company and a DNS check.
func (r *Resolver) searchDomain(ctx context.Context, companyName string) string {
	searchURL := "https://www.google.com/search?q=" +
		url.QueryEscape(companyName+" official website")

	page, err := r.search.Fetch(ctx, searchURL)
	if err != nil {
		logger.Warn(ctx, "domain search failed",
			zap.String("company", companyName), zap.Error(err))

		return ""
	}

	for _, m := range searchResultURL.FindAllStringSubmatch(string(page.Body), -1) {
		dom := strings.TrimSpace(strings.ToLower(strings.TrimPrefix(m[1], "www.")))

		if isExcludedDomain(dom) || isSubdomain(dom) {
			continue
		}
		if !domainMatchesCompanyName(dom, companyName) {
			continue
		}
		if !r.domainExists(ctx, dom) {
			continue
		}

		logger.Info(ctx, "found company domain via search",
			zap.String("company", companyName), zap.String("domain", dom))

		return dom
	}

	return ""
}

func (r *Resolver) domainExists(ctx context.Context, dom string) bool {
	addrs, err := r.dns.LookupHost(ctx, dom)

	return err == nil && len(addrs) > 0
}

// websiteAccessible reports whether https://{domain} answers with a
// non-error status and more than a trivial amount of content.
func (r *Resolver) websiteAccessible(ctx context.Context, dom string) bool {
	page, err := r.probe.Fetch(ctx, "https://"+dom)
	if err != nil {
		return false
	}
	if page.StatusCode < 200 || page.StatusCode >= 400 {
		return false
	}

	return len(page.Body) > minWebsiteContentLength
}

func isExcludedDomain(dom string) bool {
	for _, excluded := range excludedSearchDomains {
		if strings.Contains(dom, excluded) {
			return true
		}
	}

	return false
}

// isSubdomain reports whether the domain has more than two labels and is not
// a recognized compound country-code TLD registration.
func isSubdomain(dom string) bool {
	parts := strings.Split(dom, ".")
	if len(parts) <= 2 {
		return false
	}

	lastTwo := strings.Join(parts[len(parts)-2:], ".")
	_, ok := compoundCountryTLDs[lastTwo]

	return !ok
}

// domainMatchesCompanyName checks a bidirectional substring match between the
// normalized domain label and the normalized company name.
func domainMatchesCompanyName(dom, companyName string) bool {
	normalize := func(s string) string {
		return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
	}

	company := normalize(companyName)
	label := normalize(strings.Split(strings.TrimPrefix(strings.ToLower(dom), "www."), ".")[0])
	if company == "" || label == "" {
		return false
	}

	return label == company ||
		strings.Contains(label, company) ||
		strings.Contains(company, label)
}

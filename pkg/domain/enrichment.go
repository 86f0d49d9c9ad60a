package domain

import "time"

// EnrichmentVersion is stamped into every result document so stored results
// can be migrated if the shape ever changes.
const EnrichmentVersion = "1.0"

// MXRecord is a single DNS mail-exchange record.
type MXRecord struct {
	// Exchange is the mail server hostname.
	Exchange string `json:"exchange"`
	// Priority is the MX preference value; lower is tried first.
	Priority uint16 `json:"priority"`
}

// DNSIntelligence holds the DNS records collected for a domain during one
// enrichment run. It is derived fresh per run and never cached here.
type DNSIntelligence struct {
	// MX lists the domain's mail exchangers sorted ascending by priority.
	MX []MXRecord `json:"mx"`
	// TXT lists the raw TXT record strings.
	TXT []string `json:"txt"`
	// SPF is the `v=spf1` TXT record, when present.
	SPF string `json:"spf,omitempty"`
	// DMARC is the `v=DMARC1` TXT record, when present.
	DMARC string `json:"dmarc,omitempty"`
}

// EmailProvider classifies who hosts a domain's mailboxes, inferred from the
// primary MX hostname.
type EmailProvider string

const (
	EmailProviderGoogleWorkspace EmailProvider = "GOOGLE_WORKSPACE"
	EmailProviderMicrosoft365    EmailProvider = "MICROSOFT_365"
	EmailProviderZoho            EmailProvider = "ZOHO"
	EmailProviderProtonMail      EmailProvider = "PROTONMAIL"
	EmailProviderMailgun         EmailProvider = "MAILGUN"
	EmailProviderSendGrid        EmailProvider = "SENDGRID"
	EmailProviderSelfHosted      EmailProvider = "SELF_HOSTED"
	EmailProviderUnknown         EmailProvider = "UNKNOWN"
)

// EmailEnrichment is the deliverability assessment for a lead's address.
// It is a value object, immutable once computed.
type EmailEnrichment struct {
	// IsValid reports whether the address matches the expected format.
	IsValid bool `json:"isValid"`
	// IsDeliverable reports whether the mail exchanger accepted the recipient
	// during the SMTP probe.
	IsDeliverable bool `json:"isDeliverable"`
	// IsDisposable reports whether the domain belongs to a throwaway provider.
	IsDisposable bool `json:"isDisposable"`
	// IsCatchAll reports whether the domain accepts mail for any local part,
	// which makes deliverability checks unreliable.
	IsCatchAll bool `json:"isCatchAll"`
	// IsRoleAccount reports whether the local part is a functional mailbox
	// such as info@ or support@.
	IsRoleAccount bool `json:"isRoleAccount"`
	// Provider is the classified mailbox hosting provider.
	Provider EmailProvider `json:"provider"`
	// SMTPVerified reports whether the SMTP handshake completed with a 250.
	SMTPVerified bool `json:"smtpVerified"`
	// MXRecords lists the exchanger hostnames, highest priority first.
	MXRecords []string `json:"mxRecords"`
}

// TechCategory groups detected technologies into product areas.
type TechCategory string

const (
	TechCategoryCRM         TechCategory = "crm"
	TechCategoryAnalytics   TechCategory = "analytics"
	TechCategoryMarketing   TechCategory = "marketing"
	TechCategoryChat        TechCategory = "chat"
	TechCategoryCMS         TechCategory = "cms"
	TechCategoryEcommerce   TechCategory = "ecommerce"
	TechCategoryCDN         TechCategory = "cdn"
	TechCategoryHosting     TechCategory = "hosting"
	TechCategoryPayment     TechCategory = "payment"
	TechCategoryDevelopment TechCategory = "development"
	TechCategoryOther       TechCategory = "other"
)

// TechCategories lists every category in presentation order. Grouped outputs
// contain all of these keys, with empty lists where nothing was detected.
var TechCategories = []TechCategory{ //nolint: gochecknoglobals
	TechCategoryCRM,
	TechCategoryAnalytics,
	TechCategoryMarketing,
	TechCategoryChat,
	TechCategoryCMS,
	TechCategoryEcommerce,
	TechCategoryCDN,
	TechCategoryHosting,
	TechCategoryPayment,
	TechCategoryDevelopment,
	TechCategoryOther,
}

// TechConfidence expresses how reliable a signature match is.
type TechConfidence string

const (
	TechConfidenceHigh   TechConfidence = "high"
	TechConfidenceMedium TechConfidence = "medium"
	TechConfidenceLow    TechConfidence = "low"
)

// TechPattern describes one entry of the static technology signature catalog.
type TechPattern struct {
	// Name is the product name reported in results.
	Name string `json:"name"`
	// Category is the product area the technology belongs to.
	Category TechCategory `json:"category"`
	// Confidence is how strong this particular signal is.
	Confidence TechConfidence `json:"confidence"`
}

// CompanyEnrichment is the structured profile of the lead's organization
// derived from its public website.
type CompanyEnrichment struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
	TwitterURL  string `json:"twitterUrl,omitempty"`
	FacebookURL string `json:"facebookUrl,omitempty"`
	// TechStack is the flat list of detected technology names.
	TechStack []string `json:"techStack,omitempty"`
	// TechStackDetailed groups detected names by category. When present it
	// contains every category key, including empty ones.
	TechStackDetailed map[TechCategory][]string `json:"techStackDetailed,omitempty"`
}

// PersonEnrichment is the best-effort public profile found for the lead.
type PersonEnrichment struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
}

// EnrichmentRawData carries per-run bookkeeping persisted alongside the
// enrichment sections, mostly for auditing the domain resolution decision.
type EnrichmentRawData struct {
	// DNS is the intelligence collected for the enriched domain.
	DNS DNSIntelligence `json:"dns"`
	// UsedFallback reports whether the email's own domain was replaced with an
	// inferred company domain.
	UsedFallback bool `json:"usedFallback"`
	// FallbackReason explains the substitution when UsedFallback is true.
	FallbackReason string `json:"fallbackReason,omitempty"`
	// OriginalEmailDomain is the domain taken from the email address.
	OriginalEmailDomain string `json:"originalEmailDomain"`
	// EnrichedDomain is the domain the run actually enriched.
	EnrichedDomain string `json:"enrichedDomain"`
}

// EnrichmentResult is the aggregate document produced by one enrichment run
// and persisted onto the lead record. Exactly one result (or a terminal
// SKIPPED/FAILED status) exists per completed attempt.
type EnrichmentResult struct {
	// EnrichedAt is when the run completed.
	EnrichedAt time.Time `json:"enrichedAt"`
	// Version identifies the result document shape.
	Version string `json:"enrichmentVersion"`
	// Company is the organization profile; nil when the website was unreachable.
	Company *CompanyEnrichment `json:"company,omitempty"`
	// Person is the public profile match; nil when no name was supplied or no
	// profile was found.
	Person *PersonEnrichment `json:"person,omitempty"`
	// Email is the deliverability assessment.
	Email *EmailEnrichment `json:"email,omitempty"`
	// RawData carries run bookkeeping.
	RawData EnrichmentRawData `json:"rawData"`
}

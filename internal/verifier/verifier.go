// Package verifier assesses mailbox deliverability. It combines cheap local
// heuristics (format, disposable domains, role accounts) with a live SMTP
// handshake against the domain's primary mail exchanger, performed without
// sending mail.
package verifier

import (
	"context"
	"fmt"
	"net"
	"net/textproto"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"flowtrack/internal/netintel"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
)

// Dialer abstracts the raw TCP connection used for the SMTP handshake so
// tests can substitute an in-memory pipe. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Options configure the SMTP verification handshake.
type Options struct {
	// Port is the SMTP port to connect to on the mail exchanger.
	Port int
	// Timeout bounds the whole SMTP conversation.
	Timeout time.Duration
	// HELODomain is announced in the HELO command.
	HELODomain string
	// MailFrom is the envelope sender presented during verification.
	MailFrom string
}

// Verifier computes EmailEnrichment values.
type Verifier struct {
	dialer  Dialer
	options Options
}

func New(dialer Dialer, options Options) *Verifier {
	return &Verifier{dialer: dialer, options: options}
}

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var disposableDomains = []string{ //nolint: gochecknoglobals
	"tempmail.com",
	"guerrillamail.com",
	"10minutemail.com",
	"throwaway.email",
	"mailinator.com",
	"trashmail.com",
	"yopmail.com",
}

var roleAccounts = map[string]struct{}{ //nolint: gochecknoglobals
	"info":      {},
	"support":   {},
	"admin":     {},
	"contact":   {},
	"sales":     {},
	"marketing": {},
	"hello":     {},
	"team":      {},
	"noreply":   {},
	"no-reply":  {},
}

// Verify assembles the email enrichment for the address. Local heuristics
// never fail; the SMTP probe is best-effort and resolves to "not verified"
// on any network error or timeout.
func (v *Verifier) Verify(ctx context.Context, email, dom string, intel domain.DNSIntelligence) domain.EmailEnrichment {
	enrichment := domain.EmailEnrichment{
		IsValid:       IsValidFormat(email),
		IsDisposable:  IsDisposable(email),
		IsRoleAccount: IsRoleAccount(email),
		Provider:      netintel.ClassifyProvider(dom, intel.MX),
	}
	for _, mx := range intel.MX {
		enrichment.MXRecords = append(enrichment.MXRecords, mx.Exchange)
	}

	// without MX records the address cannot receive mail
	if len(intel.MX) == 0 {
		return enrichment
	}

	verified := v.smtpProbe(ctx, intel.MX[0].Exchange, email)
	enrichment.SMTPVerified = verified
	enrichment.IsDeliverable = verified

	return enrichment
}

// smtpProbe runs the four-step SMTP exchange: greeting, HELO, MAIL FROM and
// RCPT TO. A 250 reply to RCPT TO means the mailbox is deliverable. Any
// error, unexpected reply or timeout yields false.
func (v *Verifier) smtpProbe(ctx context.Context, mxHost, email string) bool {
	addr := net.JoinHostPort(mxHost, fmt.Sprintf("%d", v.options.Port))
	conn, err := v.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		logger.Debug(ctx, "smtp connect failed", zap.String("mx", mxHost), zap.Error(err))

		return false
	}
	defer func() { _ = conn.Close() }()

	// one deadline bounds the whole conversation
	if err := conn.SetDeadline(time.Now().Add(v.options.Timeout)); err != nil {
		return false
	}

	tc := textproto.NewConn(conn)

	if _, _, err := tc.ReadResponse(220); err != nil {
		return false
	}
	if !v.command(tc, fmt.Sprintf("HELO %s", v.options.HELODomain)) {
		return false
	}
	if !v.command(tc, fmt.Sprintf("MAIL FROM:<%s>", v.options.MailFrom)) {
		return false
	}
	deliverable := v.command(tc, fmt.Sprintf("RCPT TO:<%s>", email))

	_ = tc.PrintfLine("QUIT")

	return deliverable
}

// command sends a line and reports whether the server replied 250.
func (v *Verifier) command(tc *textproto.Conn, line string) bool {
	if err := tc.PrintfLine("%s", line); err != nil {
		return false
	}
	_, _, err := tc.ReadResponse(250)

	return err == nil
}

// IsValidFormat reports whether the address has the shape local@domain.tld
// without whitespace.
func IsValidFormat(email string) bool {
	return emailFormat.MatchString(email)
}

// IsDisposable reports whether the address belongs to a known throwaway
// mailbox provider.
func IsDisposable(email string) bool {
	_, dom, found := strings.Cut(email, "@")
	if !found {
		return false
	}
	dom = strings.ToLower(dom)
	for _, d := range disposableDomains {
		if strings.Contains(dom, d) {
			return true
		}
	}

	return false
}

// IsRoleAccount reports whether the local part is a shared mailbox name like
// info or support.
func IsRoleAccount(email string) bool {
	local, _, _ := strings.Cut(email, "@")
	_, ok := roleAccounts[strings.ToLower(local)]

	return ok
}

package verifier_test

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flowtrack/internal/verifier"
	"flowtrack/pkg/domain"
)

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@acme.com", true},
		{"jane.doe+tag@sub.acme.co.uk", true},
		{"no-at-sign", false},
		{"jane@acme", false},
		{"jane doe@acme.com", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, verifier.IsValidFormat(tt.email), tt.email)
	}
}

func TestIsDisposable(t *testing.T) {
	require.True(t, verifier.IsDisposable("x@mailinator.com"))
	require.True(t, verifier.IsDisposable("x@mail.yopmail.com"))
	require.False(t, verifier.IsDisposable("x@acme.com"))
	require.False(t, verifier.IsDisposable("not-an-email"))
}

func TestIsRoleAccount(t *testing.T) {
	require.True(t, verifier.IsRoleAccount("info@acme.com"))
	require.True(t, verifier.IsRoleAccount("No-Reply@acme.com"))
	require.False(t, verifier.IsRoleAccount("jane@acme.com"))
}

// pipeDialer returns a pre-established in-memory connection and records the
// address it was asked to dial.
type pipeDialer struct {
	conn net.Conn
	addr string
	err  error
}

func (d *pipeDialer) DialContext(_ context.Context, _, addr string) (net.Conn, error) {
	d.addr = addr
	if d.err != nil {
		return nil, d.err
	}

	return d.conn, nil
}

// fakeSMTPServer drives one side of a net.Pipe like a minimal SMTP server.
// rcptReply is the reply code line sent in response to RCPT TO.
func fakeSMTPServer(t *testing.T, conn net.Conn, rcptReply string) {
	t.Helper()

	go func() {
		defer func() { _ = conn.Close() }()
		r := bufio.NewReader(conn)

		write := func(line string) {
			_, _ = conn.Write([]byte(line + "\r\n"))
		}
		read := func() string {
			line, err := r.ReadString('\n')
			if err != nil {
				return ""
			}

			return strings.TrimSpace(line)
		}

		write("220 mx.test ESMTP ready")
		if !strings.HasPrefix(read(), "HELO") {
			return
		}
		write("250 mx.test")
		if !strings.HasPrefix(read(), "MAIL FROM:") {
			return
		}
		write("250 2.1.0 OK")
		if !strings.HasPrefix(read(), "RCPT TO:") {
			return
		}
		write(rcptReply)
		// QUIT (may not arrive before close)
		_ = read()
	}()
}

func newTestVerifier(d verifier.Dialer) *verifier.Verifier {
	return verifier.New(d, verifier.Options{
		Port:       25,
		Timeout:    2 * time.Second,
		HELODomain: "flowtrack.io",
		MailFrom:   "verify@flowtrack.io",
	})
}

func mxIntel(hosts ...string) domain.DNSIntelligence {
	var intel domain.DNSIntelligence
	for i, h := range hosts {
		intel.MX = append(intel.MX, domain.MXRecord{Exchange: h, Priority: uint16(i + 1)}) //nolint: gosec
	}

	return intel
}

func TestVerify_DeliverableMailbox(t *testing.T) {
	client, server := net.Pipe()
	fakeSMTPServer(t, server, "250 2.1.5 OK")
	d := &pipeDialer{conn: client}

	v := newTestVerifier(d)
	res := v.Verify(context.Background(), "jane@acme.com", "acme.com", mxIntel("mail.acme.com"))

	require.Equal(t, "mail.acme.com:25", d.addr)
	require.True(t, res.IsValid)
	require.True(t, res.SMTPVerified)
	require.True(t, res.IsDeliverable)
	require.Equal(t, []string{"mail.acme.com"}, res.MXRecords)
	require.Equal(t, domain.EmailProviderSelfHosted, res.Provider)
}

func TestVerify_RejectedMailbox(t *testing.T) {
	client, server := net.Pipe()
	fakeSMTPServer(t, server, "550 5.1.1 user unknown")
	d := &pipeDialer{conn: client}

	v := newTestVerifier(d)
	res := v.Verify(context.Background(), "ghost@acme.com", "acme.com", mxIntel("mail.acme.com"))

	require.False(t, res.SMTPVerified)
	require.False(t, res.IsDeliverable)
}

func TestVerify_NoMXRecords(t *testing.T) {
	d := &pipeDialer{err: errors.New("should not dial")}

	v := newTestVerifier(d)
	res := v.Verify(context.Background(), "jane@acme.com", "acme.com", domain.DNSIntelligence{})

	require.False(t, res.IsDeliverable)
	require.False(t, res.SMTPVerified)
	require.Empty(t, d.addr, "no connection should be attempted without MX records")
	require.Equal(t, domain.EmailProviderUnknown, res.Provider)
}

func TestVerify_ConnectionErrorIsNotVerified(t *testing.T) {
	d := &pipeDialer{err: errors.New("connection refused")}

	v := newTestVerifier(d)
	res := v.Verify(context.Background(), "jane@acme.com", "acme.com", mxIntel("mail.acme.com"))

	require.True(t, res.IsValid)
	require.False(t, res.SMTPVerified)
	require.False(t, res.IsDeliverable)
}

func TestVerify_TimeoutIsNotVerified(t *testing.T) {
	// server never sends a greeting
	client, server := net.Pipe()
	t.Cleanup(func() { _ = server.Close() })
	d := &pipeDialer{conn: client}

	v := verifier.New(d, verifier.Options{
		Port:       25,
		Timeout:    50 * time.Millisecond,
		HELODomain: "flowtrack.io",
		MailFrom:   "verify@flowtrack.io",
	})

	start := time.Now()
	res := v.Verify(context.Background(), "jane@acme.com", "acme.com", mxIntel("mail.acme.com"))

	require.False(t, res.SMTPVerified)
	require.Less(t, time.Since(start), time.Second)
}

func TestVerify_LocalHeuristicsForRoleAndDisposable(t *testing.T) {
	client, server := net.Pipe()
	fakeSMTPServer(t, server, "250 OK")
	d := &pipeDialer{conn: client}

	v := newTestVerifier(d)
	res := v.Verify(context.Background(), "info@mailinator.com", "mailinator.com", mxIntel("mx.mailinator.com"))

	require.True(t, res.IsRoleAccount)
	require.True(t, res.IsDisposable)
}

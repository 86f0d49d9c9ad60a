package netintel_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flowtrack/internal/netintel"
	mockdnsx "flowtrack/pkg/dnsx/mock"
	"flowtrack/pkg/domain"
)

func TestCollector_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mockdnsx.NewMockResolver(ctrl)
	c := netintel.NewCollector(resolver)
	ctx := context.Background()

	resolver.EXPECT().LookupMX(gomock.Any(), "acme.com").Return([]*net.MX{
		{Host: "alt1.aspmx.l.google.com.", Pref: 5},
		{Host: "aspmx.l.google.com.", Pref: 1},
	}, nil)
	resolver.EXPECT().LookupTXT(gomock.Any(), "acme.com").Return([]string{
		"some-verification=abc",
		"v=spf1 include:_spf.google.com ~all",
	}, nil)
	resolver.EXPECT().LookupTXT(gomock.Any(), "_dmarc.acme.com").Return([]string{
		"v=DMARC1; p=reject",
	}, nil)

	intel := c.Collect(ctx, "acme.com")

	// MX sorted ascending by priority, trailing dots stripped
	require.Len(t, intel.MX, 2)
	require.Equal(t, "aspmx.l.google.com", intel.MX[0].Exchange)
	require.EqualValues(t, 1, intel.MX[0].Priority)
	require.EqualValues(t, 5, intel.MX[1].Priority)

	require.Len(t, intel.TXT, 2)
	require.Equal(t, "v=spf1 include:_spf.google.com ~all", intel.SPF)
	require.Equal(t, "v=DMARC1; p=reject", intel.DMARC)
}

func TestCollector_Collect_LookupFailuresAreBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mockdnsx.NewMockResolver(ctrl)
	c := netintel.NewCollector(resolver)

	boom := errors.New("no such host")
	resolver.EXPECT().LookupMX(gomock.Any(), "dead.example").Return(nil, boom)
	resolver.EXPECT().LookupTXT(gomock.Any(), "dead.example").Return(nil, boom)
	resolver.EXPECT().LookupTXT(gomock.Any(), "_dmarc.dead.example").Return(nil, boom)

	intel := c.Collect(context.Background(), "dead.example")

	require.Empty(t, intel.MX)
	require.Empty(t, intel.TXT)
	require.Empty(t, intel.SPF)
	require.Empty(t, intel.DMARC)
}

func TestClassifyProvider(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		records []domain.MXRecord
		want    domain.EmailProvider
	}{
		{
			name:    "no records",
			domain:  "acme.com",
			records: nil,
			want:    domain.EmailProviderUnknown,
		},
		{
			name:   "google workspace",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "ASPMX.L.GOOGLE.COM", Priority: 1},
			},
			want: domain.EmailProviderGoogleWorkspace,
		},
		{
			name:   "microsoft 365",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "acme-com.mail.protection.outlook.com", Priority: 0},
			},
			want: domain.EmailProviderMicrosoft365,
		},
		{
			name:   "zoho",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "mx.zoho.com", Priority: 10},
			},
			want: domain.EmailProviderZoho,
		},
		{
			name:   "protonmail",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "mail.protonmail.ch", Priority: 5},
			},
			want: domain.EmailProviderProtonMail,
		},
		{
			name:   "sendgrid",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "mx.sendgrid.net", Priority: 10},
			},
			want: domain.EmailProviderSendGrid,
		},
		{
			name:   "self hosted",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "mail.acme.com", Priority: 10},
			},
			want: domain.EmailProviderSelfHosted,
		},
		{
			name:   "unrecognized third party",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "mx1.emailsrvr.com", Priority: 10},
			},
			want: domain.EmailProviderUnknown,
		},
		{
			name:   "only primary record considered",
			domain: "acme.com",
			records: []domain.MXRecord{
				{Exchange: "mx1.emailsrvr.com", Priority: 1},
				{Exchange: "aspmx.l.google.com", Priority: 5},
			},
			want: domain.EmailProviderUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, netintel.ClassifyProvider(tt.domain, tt.records))
		})
	}
}

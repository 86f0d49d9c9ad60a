package webprofiler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flowtrack/internal/webprofiler"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/webclient"
	mockwebclient "flowtrack/pkg/webclient/mock"
)

func newProfiler(t *testing.T) (*webprofiler.Profiler, *mockwebclient.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	web := mockwebclient.NewMockClient(ctrl)

	return webprofiler.New(web), web
}

func TestProfiler_Profile_UnreachableWebsite(t *testing.T) {
	p, web := newProfiler(t)
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").
		Return(nil, errors.New("connection refused"))

	require.Nil(t, p.Profile(context.Background(), "acme.com", "Acme", domain.DNSIntelligence{}))
}

func TestProfiler_Profile_Metadata(t *testing.T) {
	p, web := newProfiler(t)

	body := `<html><head>
		<title>Acme - Home</title>
		<meta property="og:title" content="Acme Inc">
		<meta name="description" content="We make anvils.">
	</head><body>
		<a href="/careers">Careers</a>
		<a href="https://www.linkedin.com/company/acme">LinkedIn</a>
		<a href="https://twitter.com/acme">Twitter</a>
	</body></html>`
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").Return(&webclient.Page{
		URL:        "https://acme.com",
		StatusCode: 200,
		Header:     http.Header{},
		Body:       []byte(body),
	}, nil)

	company := p.Profile(context.Background(), "acme.com", "", domain.DNSIntelligence{})
	require.NotNil(t, company)

	// no explicit company name, og:title wins over <title>
	require.Equal(t, "Acme Inc", company.Name)
	require.Equal(t, "acme.com", company.Domain)
	require.Equal(t, "https://acme.com", company.Website)
	require.Equal(t, "https://logo.clearbit.com/acme.com", company.Logo)
	require.Equal(t, "We make anvils.", company.Description)
	require.Equal(t, "https://www.linkedin.com/company/acme", company.LinkedinURL)
	require.Equal(t, "https://twitter.com/acme", company.TwitterURL)
	require.Empty(t, company.FacebookURL)
}

func TestProfiler_Profile_ExplicitNameWins(t *testing.T) {
	p, web := newProfiler(t)
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").Return(&webclient.Page{
		StatusCode: 200,
		Header:     http.Header{},
		Body:       []byte(`<html><head><title>Something Else</title></head></html>`),
	}, nil)

	company := p.Profile(context.Background(), "acme.com", "Acme Corp", domain.DNSIntelligence{})
	require.NotNil(t, company)
	require.Equal(t, "Acme Corp", company.Name)
}

func TestProfiler_Profile_HeaderFingerprints(t *testing.T) {
	p, web := newProfiler(t)

	header := http.Header{}
	header.Set("Server", "cloudflare")
	header.Set("Cf-Ray", "8a1b2c3d4e5f-FRA")
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").Return(&webclient.Page{
		StatusCode: 200,
		Header:     header,
		Body:       []byte(`<html></html>`),
	}, nil)

	company := p.Profile(context.Background(), "acme.com", "Acme", domain.DNSIntelligence{})
	require.NotNil(t, company)

	require.Equal(t, []string{"Cloudflare"}, company.TechStack)
	require.Equal(t, []string{"Cloudflare"}, company.TechStackDetailed[domain.TechCategoryCDN])

	// grouped output always carries every category key
	require.Len(t, company.TechStackDetailed, len(domain.TechCategories))
	require.Empty(t, company.TechStackDetailed[domain.TechCategoryCMS])
}

func TestProfiler_Profile_WordPressSignals(t *testing.T) {
	p, web := newProfiler(t)

	body := `<html><head>
		<link rel="stylesheet" href="/wp-content/themes/acme/style.css">
	</head><body></body></html>`
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").Return(&webclient.Page{
		StatusCode: 200,
		Header:     http.Header{},
		Cookies:    []*http.Cookie{{Name: "wp-settings-1", Value: "x"}},
		Body:       []byte(body),
	}, nil)

	company := p.Profile(context.Background(), "acme.com", "Acme", domain.DNSIntelligence{})
	require.NotNil(t, company)
	require.Equal(t, []string{"WordPress"}, company.TechStack)
	require.Equal(t, []string{"WordPress"}, company.TechStackDetailed[domain.TechCategoryCMS])
}

func TestProfiler_Profile_ScriptAndJSVariableSignals(t *testing.T) {
	p, web := newProfiler(t)

	body := `<html><head>
		<script src="https://js.stripe.com/v3/"></script>
		<script>window.Intercom = function(){};</script>
	</head></html>`
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").Return(&webclient.Page{
		StatusCode: 200,
		Header:     http.Header{},
		Body:       []byte(body),
	}, nil)

	company := p.Profile(context.Background(), "acme.com", "Acme", domain.DNSIntelligence{})
	require.NotNil(t, company)
	require.Equal(t, []string{"Intercom", "Stripe"}, company.TechStack)
	require.Equal(t, []string{"Stripe"}, company.TechStackDetailed[domain.TechCategoryPayment])
	require.Equal(t, []string{"Intercom"}, company.TechStackDetailed[domain.TechCategoryChat])
}

func TestProfiler_Profile_DNSTXTSignals(t *testing.T) {
	p, web := newProfiler(t)
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").Return(&webclient.Page{
		StatusCode: 200,
		Header:     http.Header{},
		Body:       []byte(`<html></html>`),
	}, nil)

	intel := domain.DNSIntelligence{TXT: []string{
		"v=spf1 include:sendgrid.net include:_spf.google.com ~all",
		"stripe-verification=abc123",
	}}

	company := p.Profile(context.Background(), "acme.com", "Acme", intel)
	require.NotNil(t, company)
	require.Equal(t, []string{"Google Workspace", "SendGrid", "Stripe"}, company.TechStack)
}

func TestProfiler_Profile_Deterministic(t *testing.T) {
	p, web := newProfiler(t)

	body := `<html><head>
		<meta name="generator" content="WordPress 6.4">
		<script src="https://www.googletagmanager.com/gtag/js?id=G-1"></script>
		<script src="https://js.hs-scripts.com/123.js"></script>
	</head></html>`
	page := &webclient.Page{
		StatusCode: 200,
		Header:     http.Header{},
		Body:       []byte(body),
	}
	web.EXPECT().Fetch(gomock.Any(), "https://acme.com").Return(page, nil).Times(2)

	first := p.Profile(context.Background(), "acme.com", "Acme", domain.DNSIntelligence{})
	second := p.Profile(context.Background(), "acme.com", "Acme", domain.DNSIntelligence{})

	require.Equal(t, first.TechStack, second.TechStack)
	require.Equal(t, []string{"Google Analytics 4", "HubSpot", "WordPress"}, first.TechStack)
}

package resolver_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flowtrack/internal/resolver"
	mockdnsx "flowtrack/pkg/dnsx/mock"
	"flowtrack/pkg/webclient"
	mockwebclient "flowtrack/pkg/webclient/mock"
)

func TestExtractDomain(t *testing.T) {
	dom, ok := resolver.ExtractDomain("Jane@Acme.COM")
	require.True(t, ok)
	require.Equal(t, "acme.com", dom)

	_, ok = resolver.ExtractDomain("no-at-sign")
	require.False(t, ok)
}

func TestIsPersonalDomain(t *testing.T) {
	require.True(t, resolver.IsPersonalDomain("gmail.com"))
	require.True(t, resolver.IsPersonalDomain("Hotmail.com"))
	require.True(t, resolver.IsPersonalDomain("yahoo.co.jp"))
	require.False(t, resolver.IsPersonalDomain("acme.com"))
}

type fixture struct {
	dns    *mockdnsx.MockResolver
	probe  *mockwebclient.MockClient
	search *mockwebclient.MockClient
	r      *resolver.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		dns:    mockdnsx.NewMockResolver(ctrl),
		probe:  mockwebclient.NewMockClient(ctrl),
		search: mockwebclient.NewMockClient(ctrl),
	}
	f.r = resolver.New(f.dns, f.probe, f.search)

	return f
}

// expectHostLookups wires LookupHost so exactly the given domains resolve.
func (f *fixture) expectHostLookups(resolving ...string) {
	set := map[string]struct{}{}
	for _, d := range resolving {
		set[d] = struct{}{}
	}
	f.dns.EXPECT().LookupHost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dom string) ([]string, error) {
			if _, ok := set[dom]; ok {
				return []string{"203.0.113.10"}, nil
			}

			return nil, errors.New("no such host")
		},
	).AnyTimes()
}

func TestResolve_CorporateDomainPassthrough(t *testing.T) {
	f := newFixture(t)

	res := f.r.Resolve(context.Background(), "jane@acmecorp.com", "Acme Corp")

	require.Empty(t, res.SkipReason)
	require.Equal(t, "acmecorp.com", res.Domain)
	require.Equal(t, "acmecorp.com", res.OriginalDomain)
	require.False(t, res.UsedFallback)
}

func TestResolve_InvalidEmail(t *testing.T) {
	f := newFixture(t)

	res := f.r.Resolve(context.Background(), "not-an-email", "")

	require.NotEmpty(t, res.SkipReason)
	require.Empty(t, res.Domain)
}

func TestResolve_PersonalDomainWithoutCompanyName(t *testing.T) {
	f := newFixture(t)

	res := f.r.Resolve(context.Background(), "jane@gmail.com", "")

	require.Contains(t, res.SkipReason, "gmail.com")
	require.Contains(t, res.SkipReason, "no company name")
	require.Empty(t, res.Domain)
	require.Equal(t, "gmail.com", res.OriginalDomain)
}

func TestResolve_DirectInference_SingleCandidate(t *testing.T) {
	f := newFixture(t)
	f.expectHostLookups("acmecorp.com")

	res := f.r.Resolve(context.Background(), "jane@gmail.com", "Acme Corp")

	require.Empty(t, res.SkipReason)
	require.Equal(t, "acmecorp.com", res.Domain)
	require.True(t, res.UsedFallback)
	require.Contains(t, res.FallbackReason, "gmail.com")
	require.Equal(t, "gmail.com", res.OriginalDomain)
}

func TestResolve_DirectInference_MultipleCandidatesPrefersSubstantialContent(t *testing.T) {
	f := newFixture(t)
	f.expectHostLookups("acmecorp.com", "acmecorp.io")

	// .com has priority but serves a stub page; .io serves real content
	f.probe.EXPECT().Fetch(gomock.Any(), "https://acmecorp.com").Return(&webclient.Page{
		StatusCode: 200,
		Body:       []byte("parked"),
	}, nil)
	f.probe.EXPECT().Fetch(gomock.Any(), "https://acmecorp.io").Return(&webclient.Page{
		StatusCode: 200,
		Body:       []byte(strings.Repeat("a", 600)),
	}, nil)

	res := f.r.Resolve(context.Background(), "jane@gmail.com", "Acme Corp")

	require.Equal(t, "acmecorp.io", res.Domain)
	require.True(t, res.UsedFallback)
}

func TestResolve_DirectInference_NoAccessibleWebsiteKeepsTLDOrder(t *testing.T) {
	f := newFixture(t)
	f.expectHostLookups("acmecorp.com", "acmecorp.net")

	f.probe.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout")).Times(2)

	res := f.r.Resolve(context.Background(), "jane@gmail.com", "Acme Corp")

	require.Equal(t, "acmecorp.com", res.Domain)
}

func TestResolve_SearchFallback(t *testing.T) {
	f := newFixture(t)
	// hyphenated domain is not a direct-inference candidate, so only the
	// search strategy can find it
	f.expectHostLookups("acme-corp.com")

	body := strings.Join([]string{
		`<a href="https://www.google.com/preferences">`,
		`<a href="https://en.wikipedia.org/wiki/Acme">`,
		`<a href="https://blog.somehost.com/acme-review">`,
		`<a href="https://unrelated.com/about">`,
		`<a href="https://www.acme-corp.com/">Acme Corp</a>`,
	}, "\n")
	f.search.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u string) (*webclient.Page, error) {
			require.Contains(t, u, "Acme+Corp+official+website")

			return &webclient.Page{StatusCode: 200, Body: []byte(body)}, nil
		},
	)

	res := f.r.Resolve(context.Background(), "jane@gmail.com", "Acme Corp")

	require.Empty(t, res.SkipReason)
	require.Equal(t, "acme-corp.com", res.Domain)
	require.True(t, res.UsedFallback)
}

func TestResolve_SearchFallback_CompoundCountryTLDAllowed(t *testing.T) {
	f := newFixture(t)
	f.expectHostLookups("acme-corp.co.uk")

	body := `<a href="https://acme-corp.co.uk/home">`
	f.search.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(&webclient.Page{StatusCode: 200, Body: []byte(body)}, nil)

	res := f.r.Resolve(context.Background(), "jane@gmail.com", "Acme Corp")

	require.Equal(t, "acme-corp.co.uk", res.Domain)
}

func TestResolve_BothStrategiesExhausted(t *testing.T) {
	f := newFixture(t)
	f.expectHostLookups() // nothing resolves
	f.search.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("search unreachable"))

	res := f.r.Resolve(context.Background(), "jane@gmail.com", "Acme Corp")

	require.Empty(t, res.Domain)
	require.Contains(t, res.SkipReason, "Acme Corp")
	require.Contains(t, res.SkipReason, "gmail.com")
	require.True(t, strings.Contains(res.SkipReason, "both"))
}

// Package webprofiler builds a company profile from the organization's public
// website: page metadata, social links and a technology fingerprint assembled
// from several independent signal layers (response headers, meta tags, script
// sources, cookies, URL paths, DNS TXT records and inline JS globals).
package webprofiler

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
	"flowtrack/pkg/webclient"
)

// Profiler profiles company websites.
type Profiler struct {
	web webclient.Client
}

func New(web webclient.Client) *Profiler {
	return &Profiler{web: web}
}

// Profile fetches https://{dom} and derives the company profile. An
// unreachable website yields nil; enrichment continues without a company
// section rather than failing the run.
func (p *Profiler) Profile(ctx context.Context, dom, companyName string, intel domain.DNSIntelligence) *domain.CompanyEnrichment {
	website := "https://" + dom

	page, err := p.web.Fetch(ctx, website)
	if err != nil {
		logger.Warn(ctx, "website fetch failed", zap.String("domain", dom), zap.Error(err))

		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		logger.Warn(ctx, "html parse failed", zap.String("domain", dom), zap.Error(err))
		doc = nil
	}

	eng := newEngine()
	eng.run(page.Header, page.Cookies, string(page.Body), doc, intel.TXT)
	stack, detailed := eng.results()

	company := &domain.CompanyEnrichment{
		Domain:            dom,
		Website:           website,
		Logo:              "https://logo.clearbit.com/" + dom,
		TechStackDetailed: detailed,
	}
	if len(stack) > 0 {
		company.TechStack = stack
	}

	var ogTitle, title string
	if doc != nil {
		title = strings.TrimSpace(doc.Find("title").First().Text())
		ogTitle = metaContent(doc, `meta[property="og:title"]`)
		company.Description = firstNonEmpty(
			metaContent(doc, `meta[name="description"]`),
			metaContent(doc, `meta[property="og:description"]`),
		)
		company.LinkedinURL = socialLink(doc, "linkedin.com")
		company.TwitterURL = firstNonEmpty(
			socialLink(doc, "twitter.com"),
			socialLink(doc, "x.com"),
		)
		company.FacebookURL = socialLink(doc, "facebook.com")
	}
	company.Name = firstNonEmpty(companyName, ogTitle, title, dom)

	return company
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")

	return strings.TrimSpace(content)
}

// socialLink returns the first absolute link to the given platform.
func socialLink(doc *goquery.Document, platform string) string {
	var found string
	doc.Find(`a[href*="` + platform + `"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, "http") {
			found = href

			return false
		}

		return true
	})

	return found
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

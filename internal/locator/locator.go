// Package locator finds a lead's public LinkedIn profile through a targeted
// web search. The whole lookup is best-effort: any failure yields no person
// section rather than an error.
package locator

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
	"flowtrack/pkg/webclient"
)

// Locator searches for public person profiles.
type Locator struct {
	search webclient.Client
}

func New(search webclient.Client) *Locator {
	return &Locator{search: search}
}

// Locate searches for the person's LinkedIn profile scoped to their company.
// It returns nil when the lead has no name, the search fails or no profile
// link appears in the results.
func (l *Locator) Locate(ctx context.Context, name, companyName string) *domain.PersonEnrichment {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	query := "site:linkedin.com/in " + name
	if companyName != "" {
		query += " " + companyName
	}
	searchURL := "https://www.google.com/search?q=" + url.QueryEscape(query)

	page, err := l.search.Fetch(ctx, searchURL)
	if err != nil {
		logger.Warn(ctx, "person search failed", zap.String("name", name), zap.Error(err))

		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
	if err != nil {
		return nil
	}

	href, _ := doc.Find(`a[href*="linkedin.com/in/"]`).First().Attr("href")
	if href == "" {
		return nil
	}

	// search result links carry tracking parameters after the profile URL
	if i := strings.Index(href, "&"); i >= 0 {
		href = href[:i]
	}

	first, last := splitName(name)

	return &domain.PersonEnrichment{
		FirstName:   first,
		LastName:    last,
		FullName:    name,
		LinkedinURL: href,
	}
}

// splitName breaks a full name at the first space.
func splitName(name string) (first, last string) {
	first, last, found := strings.Cut(name, " ")
	if !found {
		return name, ""
	}

	return first, last
}

// Package webclient defines the HTTP fetch capability consumed by the
// enrichment pipeline: a single bounded GET that exposes the final response's
// status, headers, cookies and body. The pipeline never needs more than that,
// whether it is profiling a website or scraping a search result page.
package webclient

import (
	"context"
	"net/http"
)

// Page is the outcome of fetching a URL after following redirects.
type Page struct {
	// URL is the final URL after redirects.
	URL string
	// StatusCode is the final response status.
	StatusCode int
	// Header holds the final response headers.
	Header http.Header
	// Cookies are the cookies set by the final response.
	Cookies []*http.Cookie
	// Body is the response body, capped at the client's configured limit.
	Body []byte
}

// Client is the abstraction over HTTP fetching.
//
//go:generate mockgen -package mockwebclient -source=interface.go -destination=mock/mockwebclient.go *
type Client interface {
	// Fetch GETs the URL with a browser user agent, following redirects, and
	// returns the final page. Network failures and timeouts are returned as
	// errors; non-2xx statuses are not.
	Fetch(ctx context.Context, url string) (*Page, error)
}

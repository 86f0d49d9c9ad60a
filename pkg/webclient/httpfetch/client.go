// Package httpfetch provides a webclient.Client implementation backed by
// net/http.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"flowtrack/pkg/webclient"
)

const (
	// DefaultUserAgent mimics a desktop browser; several target sites serve
	// reduced or blocked content to obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36" //nolint: lll

	// defaultMaxBodyBytes caps how much of a response body is read. Enrichment
	// only inspects markup and inline scripts, so 2 MiB is plenty.
	defaultMaxBodyBytes = 2 << 20

	defaultMaxRedirects = 5
)

// Options configure the fetch client.
type Options struct {
	// Timeout bounds the whole request, including redirects and body read.
	Timeout time.Duration
	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string
	// MaxBodyBytes overrides the default body cap when positive.
	MaxBodyBytes int64
}

// Client fetches pages over HTTP with a bounded timeout and a browser user
// agent. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBody    int64
}

// New constructs a Client from the given options.
func New(opts Options) *Client {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= defaultMaxRedirects {
					return http.ErrUseLastResponse
				}

				return nil
			},
		},
		userAgent: userAgent,
		maxBody:   maxBody,
	}
}

// Fetch GETs the URL and returns the final page.
func (c *Client) Fetch(ctx context.Context, url string) (*webclient.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %q: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, fmt.Errorf("could not read body of %q: %w", url, err)
	}

	return &webclient.Page{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Cookies:    resp.Cookies(),
		Body:       body,
	}, nil
}

// Ensure Client conforms to the webclient.Client interface at compile time.
var _ webclient.Client = (*Client)(nil)

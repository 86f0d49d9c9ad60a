package webprofiler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"flowtrack/pkg/domain"
)

// engine accumulates technology detections from the individual signal layers.
// The first detection of a technology name wins; later layers never override
// an earlier match, so layer order determines which confidence is reported.
type engine struct {
	detections map[string]domain.TechPattern
}

func newEngine() *engine {
	return &engine{detections: map[string]domain.TechPattern{}}
}

func (e *engine) add(tech domain.TechPattern) {
	if _, ok := e.detections[tech.Name]; ok {
		return
	}
	e.detections[tech.Name] = tech
}

// run executes every detection layer in a fixed order over the fetched page
// and the domain's TXT records.
func (e *engine) run(header http.Header, cookies []*http.Cookie, body string, doc *goquery.Document, txtRecords []string) {
	e.detectHeaders(header)
	if doc != nil {
		e.detectMeta(doc)
		e.detectScripts(doc)
		e.detectJSVariables(doc)
	}
	e.detectCookies(cookies)
	e.detectURLPaths(body)
	e.detectDNSTXT(txtRecords)
}

// detectHeaders checks platform-specific headers by presence and generic
// headers like Server by matching the technology name inside the value.
func (e *engine) detectHeaders(header http.Header) {
	for name, tech := range presenceHeaders {
		if header.Get(name) != "" {
			e.add(tech)
		}
	}

	for name, candidates := range valueHeaders {
		value := strings.ToLower(header.Get(name))
		if value == "" {
			continue
		}
		for _, tech := range candidates {
			if strings.Contains(value, strings.ToLower(tech.Name)) {
				e.add(tech)
			}
		}
	}
}

func (e *engine) detectMeta(doc *goquery.Document) {
	generator, _ := doc.Find(`meta[name="generator"]`).Attr("content")
	for _, p := range generatorPatterns {
		if strings.Contains(generator, p.substring) {
			e.add(p.tech)
		}
	}

	for _, p := range metaAttributePatterns {
		if doc.Find(`meta[name="` + p.attr + `"]`).Length() > 0 {
			e.add(p.tech)
		}
	}
}

func (e *engine) detectScripts(doc *goquery.Document) {
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		for _, sig := range scriptPatterns {
			if sig.re.MatchString(src) {
				e.add(sig.tech)
			}
		}
	})
}

func (e *engine) detectCookies(cookies []*http.Cookie) {
	for _, cookie := range cookies {
		for _, sig := range cookiePatterns {
			if sig.re.MatchString(cookie.Name) {
				e.add(sig.tech)
			}
		}
	}
}

// detectURLPaths scans the raw HTML so that URLs in any attribute count, not
// just anchors.
func (e *engine) detectURLPaths(body string) {
	for _, sig := range urlPathPatterns {
		if sig.re.MatchString(body) {
			e.add(sig.tech)
		}
	}
}

func (e *engine) detectDNSTXT(txtRecords []string) {
	for _, txt := range txtRecords {
		for _, sig := range dnsTxtPatterns {
			if sig.re.MatchString(txt) {
				e.add(sig.tech)
			}
		}
	}
}

// detectJSVariables scans inline script bodies for well-known globals.
func (e *engine) detectJSVariables(doc *goquery.Document) {
	doc.Find("script:not([src])").Each(func(_ int, s *goquery.Selection) {
		code := s.Text()
		for _, sig := range jsVariablePatterns {
			if sig.re.MatchString(code) {
				e.add(sig.tech)
			}
		}
	})
}

// results returns the detected technology names as a sorted flat list and
// grouped by category. The grouped map always contains every category key and
// each list is sorted, so output is deterministic for a given input.
func (e *engine) results() ([]string, map[domain.TechCategory][]string) {
	detailed := make(map[domain.TechCategory][]string, len(domain.TechCategories))
	for _, cat := range domain.TechCategories {
		detailed[cat] = []string{}
	}

	stack := make([]string, 0, len(e.detections))
	for name, tech := range e.detections {
		stack = append(stack, name)
		detailed[tech.Category] = append(detailed[tech.Category], name)
	}

	sort.Strings(stack)
	for _, names := range detailed {
		sort.Strings(names)
	}

	return stack, detailed
}

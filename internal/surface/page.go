package surface

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const maxSummaryLen = 280

// Link is an activatable link found on a page
type Link struct {
	Text string
	URL  string
}

// Page is the terminal rendition of a loaded document
type Page struct {
	URL     string
	Title   string
	Summary string
	Links   []Link
}

var textPolicy = bluemonday.StrictPolicy()

// ParsePage extracts the title, a short summary and the absolute link
// targets from an HTML document. Scripts are dropped, never run.
func ParsePage(body string, pageURL string) (*Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, template").Remove()

	page := &Page{URL: pageURL}

	titleHTML, _ := doc.Find("title").First().Html()
	page.Title = plainText(titleHTML)
	if page.Title == "" {
		page.Title = base.Host
	}

	page.Summary = summarize(doc)
	page.Links = extractLinks(doc, base)

	return page, nil
}

func summarize(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if text := plainText(desc); text != "" {
			return truncate(text, maxSummaryLen)
		}
	}

	var parts []string
	doc.Find("body p, body h1, body h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		fragment, _ := s.Html()
		if text := plainText(fragment); text != "" {
			parts = append(parts, text)
		}
		return len(strings.Join(parts, " ")) < maxSummaryLen
	})

	return truncate(strings.Join(parts, " "), maxSummaryLen)
}

func extractLinks(doc *goquery.Document, base *url.URL) []Link {
	var links []Link
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		abs.Fragment = ""
		target := abs.String()
		if seen[target] {
			return
		}
		seen[target] = true

		fragment, _ := s.Html()
		text := plainText(fragment)
		if text == "" {
			text = target
		}
		links = append(links, Link{Text: text, URL: target})
	})

	return links
}

// plainText strips all markup from an HTML fragment and collapses
// whitespace.
func plainText(fragment string) string {
	text := html.UnescapeString(textPolicy.Sanitize(fragment))
	return strings.Join(strings.Fields(text), " ")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit-1])) + "…"
}

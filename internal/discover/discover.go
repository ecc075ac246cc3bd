// Package discover locates a blog's feed from its homepage URL: common feed
// endpoints are probed first, then the page's <link rel="alternate">
// declarations.
package discover

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"postpace/internal/feedclient"
	"postpace/internal/logging"
)

// Feed returns the first feed URL that answers with recognizable feed
// content for the given site.
func Feed(ctx context.Context, c feedclient.Client, site string) (string, error) {
	for _, u := range candidates(site) {
		logging.Debug("probing feed candidate", map[string]any{"url": u})
		if probe(ctx, c, u) {
			return u, nil
		}
	}
	// Fall back to the homepage's <link> declarations.
	body, err := c.Fetch(ctx, site)
	if err != nil {
		return "", fmt.Errorf("fetch site %s: %w", site, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	var found string
	doc.Find("link").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		typ, _ := s.Attr("type")
		href, _ := s.Attr("href")
		lr := strings.ToLower(rel)
		lt := strings.ToLower(typ)
		if href == "" || !strings.Contains(lr, "alternate") {
			return true
		}
		if strings.Contains(lt, "rss") || strings.Contains(lt, "atom") || strings.Contains(lt, "json") {
			found = joinURL(site, href)
			return false
		}
		return true
	})
	if found != "" && probe(ctx, c, found) {
		return found, nil
	}
	return "", fmt.Errorf("no feed discovered for %s", site)
}

// candidates lists the common feed endpoints tried before touching the HTML.
func candidates(site string) []string {
	return []string{
		joinURL(site, "/feed.json"),
		joinURL(site, "/index.json"),
		joinURL(site, "/feed"),
		joinURL(site, "/feed.xml"),
		joinURL(site, "/index.xml"),
		joinURL(site, "/atom.xml"),
		joinURL(site, "/rss.xml"),
	}
}

// probe fetches a candidate and sniffs the first bytes for feed markers.
// Any fetch error just disqualifies the candidate.
func probe(ctx context.Context, c feedclient.Client, feedURL string) bool {
	prCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	body, err := c.Fetch(prCtx, feedURL)
	if err != nil {
		return false
	}
	return sniff(body)
}

// sniff recognizes the payload shapes the normalizer accepts: a JSON object
// with an items/entries list, or an RSS/Atom document.
func sniff(body []byte) bool {
	head := body
	if len(head) > 2048 {
		head = head[:2048]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return bytes.Contains(trimmed, []byte(`"items"`)) || bytes.Contains(trimmed, []byte(`"entries"`))
	}
	lb := strings.ToLower(string(trimmed))
	return strings.Contains(lb, "<rss") || strings.Contains(lb, "<feed") || strings.Contains(lb, "<rdf")
}

// joinURL resolves ref against the site URL; absolute refs pass through.
func joinURL(base, ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	u, err := url.Parse(base)
	if err != nil {
		return base + ref
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return base + ref
	}
	return u.ResolveReference(ru).String()
}

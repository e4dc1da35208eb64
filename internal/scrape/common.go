package scrape

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fhttp "github.com/bogdanfinn/fhttp"

	"zimjobs/internal/network"
)

func fetchDocument(ctx context.Context, client *network.Client, target string, headers map[string]string) (*goquery.Document, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	applyHeaders(req, headers)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func applyHeaders(req *fhttp.Request, headers map[string]string) {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["accept"]; !ok {
		headers["accept"] = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	}
	if _, ok := headers["accept-language"]; !ok {
		headers["accept-language"] = "en-US,en;q=0.9"
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

func absoluteURL(base string, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

var (
	emailRe       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	hrefPageRe    = regexp.MustCompile(`page[=/](\d+)`)
	pageOfTextRe  = regexp.MustCompile(`(?i)page\s+\d+\s+of\s+(\d+)`)
	operationalRe = regexp.MustCompile(`(?i)^(no-?reply|admin|webmaster|postmaster|support|abuse|privacy)[@.]`)
)

// extractEmail returns the first application-looking address found in
// text, skipping operational mailboxes. Empty when none qualify.
func extractEmail(text string) string {
	for _, candidate := range emailRe.FindAllString(text, -1) {
		if operationalRe.MatchString(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

// pagesFromLinks walks a pagination container's anchors and returns
// the highest page number it can see: visible digit links, "last"
// links, and page numbers buried in hrefs.
func pagesFromLinks(pagination *goquery.Selection) int {
	maxPage := 1
	pagination.Find("a").Each(func(_ int, link *goquery.Selection) {
		text := strings.TrimSpace(link.Text())
		href := link.AttrOr("href", "")

		if n, err := strconv.Atoi(text); err == nil {
			if n > maxPage {
				maxPage = n
			}
			return
		}
		if strings.Contains(strings.ToLower(text), "last") || href != "" {
			if m := hrefPageRe.FindStringSubmatch(href); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil && n > maxPage {
					maxPage = n
				}
			}
		}
	})
	return maxPage
}

// pagesFromText looks for "Page X of Y" copy anywhere in the document.
func pagesFromText(doc *goquery.Document) int {
	if m := pageOfTextRe.FindStringSubmatch(doc.Text()); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n
		}
	}
	return 1
}

func capPages(n, limit int) int {
	if n < 1 {
		return 1
	}
	if n > limit {
		return limit
	}
	return n
}

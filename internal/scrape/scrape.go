package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent = "teesheet-extract/1.0 (github.com/pfrederiksen/teesheet-extract)"
	timeout   = 30 * time.Second
)

// Leaf block elements become individual text lines for the classifier.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,td,div"

// Fetcher downloads a published tee sheet and flattens it to plain text.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with a sane timeout.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchText fetches the page at url and returns its visible text, one line
// per block element, ready for the tournament parser.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return extractText(resp.Body)
}

// extractText flattens HTML to newline-separated text. Only leaf block
// elements contribute lines, so nested layout containers don't duplicate
// their children's text. Inline markup (bold tags and the ** markers tee
// sheets carry in plain text) is preserved as-is for the classifier.
func extractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script,style,noscript").Remove()

	lines := make([]string, 0)
	doc.Find(blockSelector).Each(func(i int, sel *goquery.Selection) {
		if sel.ChildrenFiltered(blockSelector + ",ul,ol,table").Length() > 0 {
			return
		}
		for _, line := range strings.Split(sel.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	})

	return strings.Join(lines, "\n"), nil
}

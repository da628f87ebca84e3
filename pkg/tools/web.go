package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

const (
	searchEndpoint   = "https://html.duckduckgo.com/html/"
	searchMaxResults = 10
	fetchMaxBytes    = 50 * 1024
	webUserAgent     = "Mozilla/5.0 (compatible; StratusCode/1.0)"
)

var webClient = &http.Client{Timeout: 30 * time.Second}

type searchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type webSearchArgs struct {
	Query string `json:"query" jsonschema:"description=Search query"`
}

func newWebSearchTool() (*Tool, error) {
	return newTool("websearch",
		"Search the web. Returns up to 10 results with title, URL and snippet.",
		&webSearchArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a webSearchArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if strings.TrimSpace(a.Query) == "" {
				return nil, fmt.Errorf("query must not be empty")
			}

			form := url.Values{"q": {a.Query}}
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, searchEndpoint,
				strings.NewReader(form.Encode()))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("User-Agent", webUserAgent)

			resp, err := webClient.Do(req)
			if err != nil {
				return nil, fmt.Errorf("search request failed: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
			}

			doc, err := goquery.NewDocumentFromReader(resp.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to parse search results: %w", err)
			}

			var results []searchResult
			doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
				link := s.Find(".result__a")
				href, _ := link.Attr("href")
				title := strings.TrimSpace(link.Text())
				if title == "" || href == "" {
					return true
				}
				results = append(results, searchResult{
					Title:   title,
					URL:     cleanResultURL(href),
					Snippet: strings.TrimSpace(s.Find(".result__snippet").Text()),
				})
				return len(results) < searchMaxResults
			})

			if len(results) == 0 {
				return "No results found.", nil
			}
			return results, nil
		})
}

// cleanResultURL unwraps DuckDuckGo's redirect links to the target URL.
func cleanResultURL(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	return u.String()
}

type webFetchArgs struct {
	URL string `json:"url" jsonschema:"description=HTTP or HTTPS URL to fetch"`
}

func newWebFetchTool() (*Tool, error) {
	return newTool("webfetch",
		"Fetch a web page and return its content as markdown, capped at 50 KB.",
		&webFetchArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a webFetchArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			u, err := url.Parse(a.URL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
				return nil, fmt.Errorf("url must be http or https")
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("User-Agent", webUserAgent)

			resp, err := webClient.Do(req)
			if err != nil {
				return nil, fmt.Errorf("fetch failed: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
			}

			body, err := io.ReadAll(io.LimitReader(resp.Body, 4*fetchMaxBytes))
			if err != nil {
				return nil, fmt.Errorf("failed to read response: %w", err)
			}

			content := string(body)
			if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
				converter := md.NewConverter("", true, nil)
				if markdown, err := converter.ConvertString(content); err == nil {
					content = markdown
				}
			}
			if len(content) > fetchMaxBytes {
				content = content[:fetchMaxBytes] + "\n... [content truncated]"
			}
			return content, nil
		})
}

// Package cratesindex looks up published crate versions in a crates.io
// sparse index.
package cratesindex

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the index has no usable entry for a crate.
var ErrNotFound = errors.New("crate not found in index")

// Client queries a sparse crate index over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the index at baseURL. A nil httpClient gets
// a client with a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// indexLine is the subset of a sparse index record this package reads.
type indexLine struct {
	Name   string `json:"name"`
	Vers   string `json:"vers"`
	Yanked bool   `json:"yanked"`
}

// Path returns the index path of a crate: 1/, 2/, 3/<c>/ or <cc>/<cc>/
// prefixes followed by the lower-cased name.
func Path(name string) string {
	n := strings.ToLower(name)
	switch len(n) {
	case 0:
		return ""
	case 1:
		return "1/" + n
	case 2:
		return "2/" + n
	case 3:
		return "3/" + n[:1] + "/" + n
	default:
		return n[:2] + "/" + n[2:4] + "/" + n
	}
}

// Latest returns the most recently published, non-yanked version of name.
// Index files list releases in publication order, so that is the last such
// line.
func (c *Client) Latest(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("latest version: empty crate name")
	}

	url := c.baseURL + "/" + Path(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", name, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch index for %s: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("fetch index for %s: HTTP %d: %s", name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return latestFrom(resp.Body, name)
}

// latestFrom scans newline-delimited index records from r.
func latestFrom(r io.Reader, name string) (string, error) {
	var latest string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec indexLine
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return "", fmt.Errorf("index for %s, line %d: %w", name, lineNo, err)
		}
		if !rec.Yanked && rec.Vers != "" {
			latest = rec.Vers
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read index for %s: %w", name, err)
	}

	if latest == "" {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return latest, nil
}

package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrNotImage    = errors.New("response is not an image")
	ErrUnreachable = errors.New("image is unreachable")
)

// SearchURL builds the outbound image-search link:
// <base>/search?q=<percent-encoded query>&mode=images.
func SearchURL(base, query string) (string, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid search engine %q", base)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("search query is required")
	}
	return base + "/search?q=" + url.QueryEscape(query) + "&mode=images", nil
}

// ValidateTarget accepts only absolute http(s) URLs.
func ValidateTarget(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}

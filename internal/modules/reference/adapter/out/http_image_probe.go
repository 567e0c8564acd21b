package out

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"hazepito/internal/modules/reference/domain"
	referenceout "hazepito/internal/modules/reference/port/out"
)

const userAgent = "hazepito/1 (+photo-probe)"

// HTTPImageProbe checks that a photo URL answers with an image. It sends
// HEAD first and retries with GET when the server rejects HEAD.
type HTTPImageProbe struct {
	client *http.Client
}

func NewHTTPImageProbe(timeout time.Duration) referenceout.ImageProbe {
	return &HTTPImageProbe{client: &http.Client{Timeout: timeout}}
}

func NewHTTPImageProbeWithClient(client *http.Client) referenceout.ImageProbe {
	return &HTTPImageProbe{client: client}
}

func (p *HTTPImageProbe) Probe(ctx context.Context, url string) error {
	resp, err := p.do(ctx, http.MethodHead, url)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
		resp, err = p.do(ctx, http.MethodGet, url)
		if err != nil {
			return err
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", domain.ErrUnreachable, resp.StatusCode)
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return fmt.Errorf("%w: content type %q", domain.ErrNotImage, resp.Header.Get("Content-Type"))
	}
	return nil
}

func (p *HTTPImageProbe) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/*")
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	// Only status and headers matter.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
	return resp, nil
}

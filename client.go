package doi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a DOI at construction time.
type Option func(*DOI)

// WithBaseURL sets a custom resolver base URL (for testing, or for
// mirrors of the doi.org resolver). A trailing slash is stripped.
func WithBaseURL(u string) Option {
	return func(d *DOI) {
		d.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout sets the HTTP request timeout on the client in use.
func WithTimeout(timeout time.Duration) Option {
	return func(d *DOI) {
		d.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. Apply this before WithTimeout
// or WithProxy if they should affect the custom client.
func WithHTTPClient(hc *http.Client) Option {
	return func(d *DOI) {
		d.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// The resolver operators ask clients to identify themselves, ideally
// with a contact address.
func WithUserAgent(ua string) Option {
	return func(d *DOI) {
		d.userAgent = ua
	}
}

// WithProxy routes requests through an explicit proxy. Without this
// option the default transport honors the standard proxy environment
// variables (HTTP_PROXY, HTTPS_PROXY, NO_PROXY).
func WithProxy(proxy *url.URL) Option {
	return func(d *DOI) {
		d.httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}
}

// WithRateLimit sets the client-side request rate cap in requests per
// second. Values <= 0 disable the cap.
func WithRateLimit(rps float64) Option {
	return func(d *DOI) {
		if rps <= 0 {
			d.limiter = nil
			return
		}
		d.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// do performs a single rate-limited request against the resolver URL.
// The caller owns the response body.
func (d *DOI) do(ctx context.Context, method, accept string) (*http.Response, error) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, d.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", d.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return resp, nil
}

// checkStatus returns an error if the response status indicates the
// request failed. 404 maps to ErrNotFound, other >= 400 statuses to a
// StatusError.
func (d *DOI) checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, d.doi)
	}
	if resp.StatusCode >= 400 {
		return &StatusError{StatusCode: resp.StatusCode, DOI: d.doi}
	}
	return nil
}

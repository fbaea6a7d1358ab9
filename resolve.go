package doi

import (
	"context"
	"net/http"
)

// Resolve resolves the DOI to its current destination URL. It issues a
// HEAD request to the resolver, follows the redirect chain, and returns
// the final URL. The result is not cached; every call performs a fresh
// round trip.
//
// Resolve fails with an error satisfying IsNotFound when the resolver
// reports the DOI is unregistered, with a StatusError for other
// non-success statuses, and with an error wrapping ErrNetwork when the
// request cannot be sent.
func (d *DOI) Resolve(ctx context.Context) (string, error) {
	resp, err := d.do(ctx, http.MethodHead, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// Some publisher sites answer HEAD with 418 after the redirect
	// chain has already been followed. Treat it as success.
	if resp.StatusCode == http.StatusTeapot {
		return resp.Request.URL.String(), nil
	}

	if err := d.checkStatus(resp); err != nil {
		return "", err
	}

	return resp.Request.URL.String(), nil
}

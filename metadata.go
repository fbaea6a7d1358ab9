package doi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Accept header values understood by the doi.org content negotiation
// service.
const (
	acceptJSON   = "application/json"
	acceptBibTeX = "application/x-bibtex"
)

// Metadata is the structured bibliographic record for a DOI. Every
// field is optional; fields the metadata service omits are left at
// their zero value. The JSON tags follow the citeproc JSON shape
// returned by the resolver.
type Metadata struct {
	DOI            string   `json:"DOI,omitempty"`
	Title          string   `json:"title,omitempty"`
	Authors        []Person `json:"author,omitempty"`
	Type           string   `json:"type,omitempty"` // e.g. journal-article, proceedings-article
	ContainerTitle string   `json:"container-title,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
}

// Person is an author record with optional name parts.
type Person struct {
	Given  string `json:"given,omitempty"`
	Family string `json:"family,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// FullName formats the person as "Given Family Suffix", skipping
// absent parts. Returns the empty string when no part is set.
func (p Person) FullName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.Given, p.Family, p.Suffix} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// metadataCall performs the shared metadata request path: a GET against
// the resolver URL with the given Accept header, returning the response
// body on success.
func (d *DOI) metadataCall(ctx context.Context, accept string) ([]byte, error) {
	resp, err := d.do(ctx, http.MethodGet, accept)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := d.checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}

	return body, nil
}

// Metadata fetches the bibliographic record for the DOI. Fields absent
// from the response are left at their zero value; unrecognized fields
// are ignored. Fails with an error wrapping ErrInvalidResponse on a
// malformed JSON body.
func (d *DOI) Metadata(ctx context.Context) (*Metadata, error) {
	body, err := d.metadataCall(ctx, acceptJSON)
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("%w: parsing metadata: %v", ErrInvalidResponse, err)
	}

	if meta.DOI == "" {
		meta.DOI = d.doi
	}

	return &meta, nil
}

// MetadataJSON fetches the metadata record and decodes it generically,
// for callers needing fields not modeled by Metadata. The result is
// structurally identical to the response body (objects decode to
// map[string]any, arrays to []any).
func (d *DOI) MetadataJSON(ctx context.Context) (any, error) {
	body, err := d.metadataCall(ctx, acceptJSON)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("%w: parsing metadata: %v", ErrInvalidResponse, err)
	}

	return v, nil
}

// MetadataRaw fetches the metadata record and returns the response body
// verbatim, without decoding.
func (d *DOI) MetadataRaw(ctx context.Context) ([]byte, error) {
	return d.metadataCall(ctx, acceptJSON)
}

// BibTeX fetches the metadata record formatted as a BibTeX entry.
func (d *DOI) BibTeX(ctx context.Context) (string, error) {
	body, err := d.metadataCall(ctx, acceptBibTeX)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

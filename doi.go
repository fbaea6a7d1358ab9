// Package doi resolves Digital Object Identifiers (DOIs) against the
// doi.org resolver and retrieves bibliographic metadata.
//
// Basic usage:
//
//	d, err := doi.New("10.1109/TCSII.2024.3366282")
//	if err != nil {
//		log.Fatal(err)
//	}
//	link, err := d.Resolve(context.Background())
//
// Metadata is available as a structured record, as generic JSON, or as
// a BibTeX entry:
//
//	meta, err := d.Metadata(context.Background())
//	raw, err := d.MetadataRaw(context.Background())
//	bib, err := d.BibTeX(context.Background())
//
// All operations are blocking and perform a fresh HTTP round trip on
// every call. Nothing is cached and nothing is retried.
package doi

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the default DOI resolver base URL.
	BaseURL = "https://doi.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit caps outgoing requests per second. The doi.org
	// and Crossref services ask clients to keep request rates modest.
	DefaultRateLimit = 10.0

	// defaultUserAgent identifies this client to the resolver.
	defaultUserAgent = "doi-go (+https://github.com/matsen/doi)"
)

// DOI is a Digital Object Identifier together with the client used to
// resolve it. The identifier is immutable once constructed. A DOI value
// is safe for concurrent use.
type DOI struct {
	doi        string
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// New creates a DOI from an identifier string. The string is normalized
// with Normalize before storage, so "https://doi.org/10.x/y" and
// "doi:10.x/y" are accepted. New fails only when the normalized string
// is empty; any other input constructs successfully and bad identifiers
// surface later as resolver errors.
func New(s string, opts ...Option) (*DOI, error) {
	s = Normalize(s)
	if s == "" {
		return nil, ErrEmptyDOI
	}

	d := &DOI{
		doi:        s,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		baseURL:    BaseURL,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// String returns the DOI number, e.g. "10.1109/TCSII.2024.3366282".
func (d *DOI) String() string {
	return d.doi
}

// URL returns the resolver URL for the DOI, in the format
// <base>/<doi-number>. With the default base URL this is
// "https://doi.org/10.1109/TCSII.2024.3366282".
func (d *DOI) URL() string {
	return d.baseURL + "/" + d.doi
}

// Equal reports whether two DOIs identify the same object. DOIs are
// case-insensitive.
func (d *DOI) Equal(other *DOI) bool {
	if d == nil || other == nil {
		return d == other
	}
	return strings.EqualFold(d.doi, other.doi)
}

// Normalize strips common URL and "doi:" prefixes and surrounding
// whitespace from a DOI string. Case is preserved.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "doi.org/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	if len(s) >= 4 && strings.EqualFold(s[:4], "doi:") {
		s = s[4:]
	}
	return strings.TrimSpace(s)
}

// IsValid performs a loose structural check on a DOI string: it must
// start with "10.", contain a slash, and have a non-empty suffix. New
// does not enforce this; it exists for callers that want to filter
// candidate strings (e.g. text extracted from PDFs) before resolving.
func IsValid(doi string) bool {
	if len(doi) < 10 {
		return false
	}
	if !strings.HasPrefix(doi, "10.") {
		return false
	}
	slashIdx := strings.Index(doi, "/")
	if slashIdx == -1 || slashIdx >= len(doi)-1 {
		return false
	}
	return true
}

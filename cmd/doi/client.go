package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/matsen/doi"
	"github.com/matsen/doi/internal/config"
)

// clientOptions assembles library options from flags, environment, and
// the global config file. Flags win over environment, environment wins
// over the file.
func clientOptions() ([]doi.Option, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var opts []doi.Option

	if base := flagBaseURL; base != "" {
		opts = append(opts, doi.WithBaseURL(base))
	} else if base := config.GetBaseURL(); base != "" {
		opts = append(opts, doi.WithBaseURL(base))
	}

	if flagTimeout > 0 {
		opts = append(opts, doi.WithTimeout(flagTimeout))
	} else if cfg.TimeoutSeconds > 0 {
		opts = append(opts, doi.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}

	if ua := config.GetUserAgent(); ua != "" {
		opts = append(opts, doi.WithUserAgent(ua))
	}

	if cfg.RateLimit > 0 {
		opts = append(opts, doi.WithRateLimit(cfg.RateLimit))
	}

	if proxy := config.GetProxy(); proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", proxy, err)
		}
		opts = append(opts, doi.WithProxy(proxyURL))
	}

	return opts, nil
}

// newDOI constructs a configured DOI value from a command argument,
// exiting with a data error on invalid input.
func newDOI(arg string) *doi.DOI {
	opts, err := clientOptions()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	d, err := doi.New(arg, opts...)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return d
}

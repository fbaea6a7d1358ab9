package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/matsen/doi"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitWithResolverError maps a library error to the right exit code and exits.
func exitWithResolverError(err error) {
	code := ExitAPIError
	if doi.IsNotFound(err) {
		code = ExitNotFound
	}
	exitWithError(code, "%v", err)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// formatAuthors formats an author list as "Given Family, Given Family, ...".
func formatAuthors(authors []doi.Person) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if name := a.FullName(); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

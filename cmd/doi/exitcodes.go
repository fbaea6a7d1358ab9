package main

// Exit codes.
const (
	ExitSuccess   = 0 // Success
	ExitError     = 1 // General error (invalid arguments, runtime failure)
	ExitNotFound  = 2 // DOI not registered with the resolver
	ExitAPIError  = 3 // Resolver or network error
	ExitDataError = 4 // Data error (invalid DOI string, no DOI in PDF)
)

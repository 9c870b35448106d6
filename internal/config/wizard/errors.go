package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errAPIKeyRequired = errors.New("API key is required")
	errAPIKeyInvalid  = errors.New("API key must not contain whitespace")
)

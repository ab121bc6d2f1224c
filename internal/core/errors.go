// internal/core/errors.go
package core

import "errors"

// Define custom errors for better error handling and classification
var (
	ErrInputFormat      = errors.New("asset list matches neither accepted format: comma-separated single line, or newline-separated list")
	ErrCredential       = errors.New("provider credential missing or invalid")
	ErrOutputFormat     = errors.New("unsupported output format")
	ErrFileWrite        = errors.New("failed to write output artifact")
	ErrProviderNotFound = errors.New("no such intelligence provider")
)

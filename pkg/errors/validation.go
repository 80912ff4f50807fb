package errors

import (
	"regexp"
	"strings"
)

// MaxSourceBytes bounds accepted GEDCOM input. Large registry exports
// run to a few megabytes; anything past this is almost certainly not a
// genealogy file.
const MaxSourceBytes = 10 << 20

// ValidateSource validates GEDCOM source text before parsing.
//
// The parser itself is total and skips malformed lines, so validation
// here only rejects input that should not reach it at all:
//   - empty input
//   - input above MaxSourceBytes
//   - null bytes (binary data submitted as text)
func ValidateSource(source string) error {
	if source == "" {
		return New(ErrCodeInvalidSource, "source cannot be empty")
	}

	if len(source) > MaxSourceBytes {
		return New(ErrCodeInvalidSource, "source too large (max %d bytes)", MaxSourceBytes)
	}

	if strings.ContainsRune(source, '\x00') {
		return New(ErrCodeInvalidSource, "source contains null bytes")
	}

	return nil
}

// graphIDRegex matches server-issued graph identifiers (UUID v4).
var graphIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateGraphID validates a graph identifier from a request path.
func ValidateGraphID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraphID, "graph id cannot be empty")
	}

	if !graphIDRegex.MatchString(id) {
		return New(ErrCodeInvalidGraphID, "invalid graph id: %q", id)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	return nil
}

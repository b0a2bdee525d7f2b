package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxSeedLength bounds seed strings accepted from flags, config files and HTTP queries.
const maxSeedLength = 256

// ValidateSeed validates a seed fingerprint string.
//
// The validation rules are intentionally conservative:
//   - No empty seeds
//   - No control characters or null bytes
//   - No whitespace (seeds are copied around in URLs and file names)
//   - Maximum length of 256 characters
func ValidateSeed(seed string) error {
	if seed == "" {
		return New(ErrCodeInvalidSeed, "seed cannot be empty")
	}

	if len(seed) > maxSeedLength {
		return New(ErrCodeInvalidSeed, "seed too long (max %d characters)", maxSeedLength)
	}

	for _, r := range seed {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSeed, "seed contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidSeed, "seed cannot contain whitespace")
		}
	}

	return nil
}

// ValidateFilename validates a capture filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "filename cannot be a hidden file")
	}

	for _, r := range filename {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid characters")
		}
	}

	return nil
}

// ValidateRedisURL validates a redis connection URL.
// It ensures the URL has a redis scheme (redis, rediss or unix).
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfiguration, "redis URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "redis://") &&
		!strings.HasPrefix(rawURL, "rediss://") &&
		!strings.HasPrefix(rawURL, "unix://") {
		return New(ErrCodeInvalidConfiguration, "redis URL must use redis, rediss or unix scheme")
	}

	return nil
}

// slugRegex matches characters that are not allowed in a slug.
var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of characters outside [a-z0-9]
// into a single hyphen. Leading and trailing hyphens are trimmed.
func Slugify(s string) string {
	return strings.Trim(slugRegex.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

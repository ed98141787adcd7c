package usecase

import (
	"regexp"
	"strings"
)

// IDPlaceholder replaces identifier segments in normalized paths so that
// concrete resource ids compare equal against registered domain templates.
const IDPlaceholder = "{id}"

var (
	numericSegment = regexp.MustCompile(`^[0-9]+$`)
	uuidSegment    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	// A single underscore or dash between alphanumeric runs marks ids like
	// campaign_001 or user-456. A route literal that itself contains a
	// delimiter would be misclassified here; the registered templates simply
	// avoid such names rather than carrying an allowlist.
	delimitedSegment = regexp.MustCompile(`(?i)^[a-z0-9]*[_-][a-z0-9]*$`)
)

// IsIdentifierSegment classifies a single path segment. The three rules are
// mutually exclusive by construction, so evaluation order does not matter.
func IsIdentifierSegment(segment string) bool {
	if segment == "" {
		return false
	}
	return numericSegment.MatchString(segment) ||
		uuidSegment.MatchString(segment) ||
		delimitedSegment.MatchString(segment)
}

// NormalizePath converts a concrete request path into its domain template by
// replacing identifier segments with IDPlaceholder. It is pure and
// idempotent; trailing slashes are discarded and an empty path maps to the
// empty template. Any version prefix must be stripped by the caller first.
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if IsIdentifierSegment(segment) {
			out = append(out, IDPlaceholder)
			continue
		}
		out = append(out, segment)
	}
	if len(out) == 0 {
		return ""
	}
	return "/" + strings.Join(out, "/")
}

// StripAPIPrefix removes the configured version prefix (e.g. /api/v1) from a
// request path before normalization.
func StripAPIPrefix(path, prefix string) string {
	if prefix == "" || prefix == "/" {
		return path
	}
	prefix = "/" + strings.Trim(prefix, "/")
	if path == prefix {
		return ""
	}
	if strings.HasPrefix(path, prefix+"/") {
		return path[len(prefix):]
	}
	return path
}

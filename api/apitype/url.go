package apitype

import "strings"

// NormalizeUrl reduces a URL to the form used for section bindings:
// no protocol, no trailing slash, no leading www., lower case.
// Normalizing an already normalized value is a no-op so stored and
// live URLs can be compared directly.
func NormalizeUrl(url string) string {
	normalized := strings.TrimSpace(url)

	lowered := strings.ToLower(normalized)
	if strings.HasPrefix(lowered, "https://") {
		normalized = normalized[len("https://"):]
	} else if strings.HasPrefix(lowered, "http://") {
		normalized = normalized[len("http://"):]
	}

	normalized = strings.TrimRight(normalized, "/")
	normalized = strings.ToLower(normalized)

	for strings.HasPrefix(normalized, "www.") {
		normalized = normalized[len("www."):]
	}

	return normalized
}

package inputval

import "net/url"

// URL sanitizes and validates a URL. The input is first sanitized as a
// non-empty string, then characters outside the URL character set are
// stripped, and the result must parse as an absolute URL with both a
// scheme and a host.
//
// There is no domain allow-listing: any host passes. Callers that need to
// restrict destinations must check the host themselves.
func URL(raw string) (string, error) {
	clean, err := String(raw, false)
	if err != nil {
		return "", ErrInvalidURL
	}

	clean = urlIllegalRegex.ReplaceAllString(clean, "")

	u, err := url.ParseRequestURI(clean)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return clean, nil
}

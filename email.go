package inputval

import (
	"net/mail"
	"strings"
)

// Email sanitizes and validates an email address. Characters outside the
// email grammar are stripped first, then the sanitized text must parse as
// an address with exactly one '@', a non-empty local part and a domain
// containing at least one dot with no empty labels.
//
// If allowedDomain is non-empty, the part after the '@' must match it
// exactly (case-sensitive, no suffix matching) or the call fails with
// ErrDomainNotAllowed.
//
// On success the sanitized address is returned, not the raw input.
func Email(raw string, allowedDomain string) (string, error) {
	clean := emailIllegalRegex.ReplaceAllString(raw, "")
	if clean == "" {
		return "", ErrInvalidEmail
	}

	local, domain, found := strings.Cut(clean, "@")
	if !found || strings.Contains(domain, "@") {
		return "", ErrInvalidEmail
	}
	if local == "" || domain == "" {
		return "", ErrInvalidEmail
	}

	// Domain must contain at least one dot and no empty labels.
	if !strings.Contains(domain, ".") {
		return "", ErrInvalidEmail
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return "", ErrInvalidEmail
		}
	}

	if _, err := mail.ParseAddress(clean); err != nil {
		return "", ErrInvalidEmail
	}

	if allowedDomain != "" && domain != allowedDomain {
		return "", ErrDomainNotAllowed
	}

	return clean, nil
}

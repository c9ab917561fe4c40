package inputval

import "net"

// IP validates an IPv4 or IPv6 literal: dotted-decimal IPv4 or colon-hex
// IPv6, including the compressed "::" forms. There is no sanitization
// pass: malformed input fails outright, and the original string is
// returned unchanged on success.
func IP(raw string) (string, error) {
	if net.ParseIP(raw) == nil {
		return "", ErrInvalidIP
	}
	return raw, nil
}

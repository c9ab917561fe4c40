package inputval

import "strings"

// MaskEmail hides the local part of an email address for logging and
// display, keeping the first character and the full domain so users can
// still recognize their own address. Input without exactly one '@' is
// returned unchanged.
func MaskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found || strings.Contains(domain, "@") || local == "" {
		return email
	}
	if len(local) == 1 {
		return "*@" + domain
	}
	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}

// MaskPhone hides all but the last four digits of a phone number.
func MaskPhone(phone string) string {
	digits := Digits(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

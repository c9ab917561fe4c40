package inputval

import "regexp"

// Pre-compiled regular expressions shared by the sanitization steps.
var (
	// HTML stripping
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Digit extraction for phone numbers
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Characters outside the email address grammar (RFC 5322 atext plus
	// '@', dots and domain-literal brackets).
	emailIllegalRegex = regexp.MustCompile("[^a-zA-Z0-9.!#$%&'*+=?^_\x60{|}~@\\[\\]-]")

	// Characters outside the URL character set (RFC 3986 unreserved,
	// reserved and percent-encoding characters).
	urlIllegalRegex = regexp.MustCompile(`[^a-zA-Z0-9$_.+!*'(),;/?:@=&%#~\[\]-]`)

	// Characters with no place in a decimal number: everything except
	// digits, signs, the decimal point and comma thousands separators.
	floatIllegalRegex = regexp.MustCompile(`[^0-9+.,-]`)

	// Same for integers: digits and signs only.
	intIllegalRegex = regexp.MustCompile(`[^0-9+-]`)

	// NANP shape: optional country code 1, then a 10-digit number whose
	// area code and exchange code both start with 2-9.
	nanpRegex = regexp.MustCompile(`^1?[2-9]\d{2}[2-9]\d{2}\d{4}$`)
)

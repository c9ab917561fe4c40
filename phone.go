package inputval

// PhoneUS sanitizes and validates a North American (NANP) phone number.
// Validation is US-only: the input is sanitized as a non-empty string,
// every non-digit character is discarded (letters, punctuation and
// whitespace are stripped, not rejected), and the remaining digits must
// form a 10-digit NANP number with an optional leading country code 1.
// Both the area code and the exchange code must start with 2-9.
//
// The returned value is canonical: 11 digits with the leading 1 when
// withCountryCode is true, 10 digits without it otherwise. Re-validating
// a returned value with the same flag yields the same value.
func PhoneUS(raw string, withCountryCode bool) (string, error) {
	clean, err := String(raw, false)
	if err != nil {
		return "", ErrInvalidPhone
	}

	digits := Digits(clean)
	if !nanpRegex.MatchString(digits) {
		return "", ErrInvalidPhone
	}

	if withCountryCode {
		if len(digits) == 10 {
			digits = "1" + digits
		}
		return digits, nil
	}
	if len(digits) == 11 {
		digits = digits[1:]
	}
	return digits, nil
}

// FormatPhoneUS renders a validated NANP number as "(234) 567-8901".
// Input that is not a 10- or 11-digit NANP number is returned unchanged
// to avoid data loss; validate with PhoneUS first.
func FormatPhoneUS(phone string) string {
	digits := Digits(phone)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return phone
	}
	return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:10]
}

package inputval

import (
	"strconv"
	"strings"
)

// Float sanitizes and parses a decimal number from a string or numeric
// scalar. Characters outside the decimal grammar are stripped, keeping
// digits, a single optional leading sign, one decimal point and comma
// thousands separators ("1,234.56" parses as 1234.56). If allowZero is
// false, a parsed value of exactly zero fails with ErrZeroValue.
func Float(v any, allowZero bool) (float64, error) {
	s, ok := stringify(v)
	if !ok {
		return 0, ErrNotANumber
	}

	s = floatIllegalRegex.ReplaceAllString(s, "")
	s = keepLeadingSign(s)
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if !allowZero && f == 0 {
		return 0, ErrZeroValue
	}
	return f, nil
}

// Int sanitizes and parses an integer from a string or numeric scalar.
// Everything except digits and a single optional leading sign is
// stripped before parsing. A value with a fractional part therefore
// loses its decimal point and concatenates the remaining digits
// (7.50 becomes 75); this truncation is intentional, long-standing
// behavior that callers rely on. If allowZero is false, a parsed value
// of zero fails with ErrZeroValue.
func Int(v any, allowZero bool) (int, error) {
	s, ok := stringify(v)
	if !ok {
		return 0, ErrNotANumber
	}

	s = intIllegalRegex.ReplaceAllString(s, "")
	s = keepLeadingSign(s)

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	if !allowZero && n == 0 {
		return 0, ErrZeroValue
	}
	return n, nil
}

// stringify renders a scalar input as its textual form for sanitization.
// Floats use the shortest exact representation, so 7.50 stringifies as
// "7.5". Non-scalar input is rejected.
func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}

// keepLeadingSign drops every '+' or '-' that is not the first character,
// so stray signs left over from stripping cannot break parsing.
func keepLeadingSign(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if (r == '+' || r == '-') && i != 0 {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

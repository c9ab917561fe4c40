package inputval

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// stringSanitizer is the sanitize-only pipeline behind String. Unicode
// normalization runs first so that decomposed sequences cannot smuggle
// characters past the later stripping steps.
var stringSanitizer = Compose(
	norm.NFC.String,
	RemoveNullBytes,
	StripScriptBlocks,
	StripTags,
	RemoveControlChars,
)

// String strips HTML tags, script blocks, null bytes and control
// characters from raw, leaving plain text. If allowEmpty is false and the
// sanitized result is empty, it fails with ErrEmptyString.
//
// There is no grammar beyond emptiness: any plain text survives. The
// function doubles as the sanitize-only pre-step for PhoneUS and URL.
func String(raw string, allowEmpty bool) (string, error) {
	clean := stringSanitizer(raw)
	if !allowEmpty && clean == "" {
		return "", ErrEmptyString
	}
	return clean, nil
}

// RemoveNullBytes removes null bytes, which terminate strings early in
// C-based consumers.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// StripScriptBlocks removes <script> tags together with their content.
func StripScriptBlocks(s string) string {
	return scriptBlockRegex.ReplaceAllString(s, "")
}

// StripTags removes HTML tags, keeping the text between them.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// RemoveControlChars removes control characters, keeping tab, newline and
// carriage return.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Digits keeps only decimal digits.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

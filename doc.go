// Package inputval turns untrusted external input (form fields, query
// parameters, upload metadata) into strictly-typed, safe-to-use values:
// email addresses, US phone numbers, plain strings, URLs, booleans, IP
// addresses, floats and integers.
//
// Every operation follows the same two-step contract: sanitize first
// (strip characters that are structurally unsafe or outside the target
// grammar), then validate the sanitized form against the domain's
// well-formedness rule. Only the sanitized, validated value is ever
// returned. On failure the caller gets a sentinel error and the zero
// value, never partially-cleaned data:
//
//	email, err := inputval.Email(r.FormValue("email"), "")
//	if err != nil {
//	    // reject, re-prompt, or default: the caller decides
//	}
//
// Failures are distinguishable from legitimate zero values (false, 0,
// empty string) because they are signalled out of band through the error
// return. Each sentinel in errors.go can be matched with errors.Is.
//
// The one exception is Bool, which is total: booleans have no invalid
// state, so every input maps to true or false and no error is possible.
//
// All functions are pure and stateless. They perform no I/O, hold no
// shared state and are safe for concurrent use without coordination.
package inputval

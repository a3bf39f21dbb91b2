package htmr

import "errors"

// ErrExpectedHTMLString is returned by both entry adapters when the input is
// not a string. The check runs before any parsing, and both backends return
// this exact error so callers can switch backends without changing error
// handling.
var ErrExpectedHTMLString = errors.New("htmr: expected HTML string")

// checkInput validates the top-level input and extracts the markup string.
// Shared by the standalone and live-document adapters.
func checkInput(input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", ErrExpectedHTMLString
	}
	return s, nil
}

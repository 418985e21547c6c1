package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// MaxNameGraphemes is the longest subscriber name accepted, counted in
// user-perceived characters.
const MaxNameGraphemes = 256

// forbiddenNameChars may not appear anywhere in a subscriber name.
const forbiddenNameChars = `/()"<>\{}%`

// SubscriberName is a display name that passed ParseSubscriberName.
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw and returns it unchanged on success.
// Surrounding whitespace only matters for the emptiness check; the stored
// value is never trimmed.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if !utf8.ValidString(raw) {
		return SubscriberName{}, &ValidationError{Field: "name", Value: raw}
	}
	isEmptyOrWhitespace := strings.TrimSpace(raw) == ""
	isTooLong := uniseg.GraphemeClusterCount(raw) > MaxNameGraphemes
	hasForbiddenChars := strings.ContainsAny(raw, forbiddenNameChars)

	if isEmptyOrWhitespace || isTooLong || hasForbiddenChars {
		return SubscriberName{}, &ValidationError{Field: "name", Value: raw}
	}
	return SubscriberName{value: raw}, nil
}

// String returns the name exactly as submitted.
func (n SubscriberName) String() string { return n.value }

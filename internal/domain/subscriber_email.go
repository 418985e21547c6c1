package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
)

// SubscriberEmail is an address that passed ParseSubscriberEmail.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw against the usual local-part@domain
// grammar and returns it unchanged on success.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if !isValidEmail(raw) {
		return SubscriberEmail{}, &ValidationError{Field: "email", Value: raw}
	}
	return SubscriberEmail{value: raw}, nil
}

func isValidEmail(raw string) bool {
	if raw == "" || !utf8.ValidString(raw) || strings.TrimSpace(raw) != raw {
		return false
	}
	at := strings.LastIndex(raw, "@")
	if at <= 0 || at == len(raw)-1 {
		return false
	}
	return govalidator.IsEmail(raw)
}

// String returns the address exactly as submitted.
func (e SubscriberEmail) String() string { return e.value }

// Domain returns the part after the "@".
func (e SubscriberEmail) Domain() string {
	at := strings.LastIndex(e.value, "@")
	if at < 0 {
		return ""
	}
	return e.value[at+1:]
}

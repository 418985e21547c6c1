package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberEmail_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"whitespace":        "   ",
		"missing at":        "ursuladomain.com",
		"missing local":     "@domain.com",
		"missing domain":    "ursula@",
		"malformed domain":  "ursula@.com",
		"double at":         "ursula@@domain.com",
		"surrounding space": " ursula@domain.com ",
		"display name form": "Ursula <ursula@domain.com>",
		"invalid utf-8":     "ursula\xff@domain.com",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSubscriberEmail(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseSubscriberEmail_ValidEmailIsParsed(t *testing.T) {
	email, err := ParseSubscriberEmail("ursula_le_guin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "ursula_le_guin@gmail.com", email.String())
	assert.Equal(t, "gmail.com", email.Domain())
}

func TestParseSubscriberEmail_ErrorMessage(t *testing.T) {
	_, err := ParseSubscriberEmail("ursuladomain.com")
	require.Error(t, err)
	assert.Equal(t, "ursuladomain.com is not a valid subscriber email.", err.Error())
}

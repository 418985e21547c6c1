package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberName_256GraphemesIsValid(t *testing.T) {
	_, err := ParseSubscriberName(strings.Repeat("ё", 256))
	assert.NoError(t, err)
}

func TestParseSubscriberName_257GraphemesIsRejected(t *testing.T) {
	_, err := ParseSubscriberName(strings.Repeat("ё", 257))
	assert.Error(t, err)
}

func TestParseSubscriberName_CountsGraphemesNotBytes(t *testing.T) {
	// "e" followed by a combining acute accent is one grapheme of two code points.
	name := strings.Repeat("e\u0301", 256)
	_, err := ParseSubscriberName(name)
	assert.NoError(t, err)

	_, err = ParseSubscriberName(name + "e\u0301")
	assert.Error(t, err)
}

func TestParseSubscriberName_WhitespaceOnlyIsRejected(t *testing.T) {
	for _, name := range []string{"", " ", "   ", "\t", "\n \r"} {
		_, err := ParseSubscriberName(name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestParseSubscriberName_ForbiddenCharactersAreRejected(t *testing.T) {
	for _, c := range []string{"/", "(", ")", `"`, "<", ">", `\`, "{", "}", "%"} {
		_, err := ParseSubscriberName(c)
		assert.Error(t, err, "bare %q", c)

		_, err = ParseSubscriberName("Ursula " + c + " le Guin")
		assert.Error(t, err, "embedded %q", c)
	}
}

func TestParseSubscriberName_InvalidUTF8IsRejected(t *testing.T) {
	for _, name := range []string{"\xff\xfe", "Ursula \xc3", "le \xed\xa0\x80 guin"} {
		_, err := ParseSubscriberName(name)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "name %q", name)
	}
}

func TestParseSubscriberName_ValidNameIsParsed(t *testing.T) {
	name, err := ParseSubscriberName("Ursula le Guin")
	require.NoError(t, err)
	assert.Equal(t, "Ursula le Guin", name.String())
}

func TestParseSubscriberName_KeepsSurroundingWhitespace(t *testing.T) {
	name, err := ParseSubscriberName("  Ursula ")
	require.NoError(t, err)
	assert.Equal(t, "  Ursula ", name.String())
}

func TestParseSubscriberName_ErrorCarriesValue(t *testing.T) {
	_, err := ParseSubscriberName("<script>")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "<script>", verr.Value)
	assert.Equal(t, "<script> is not a valid subscriber name.", err.Error())
}

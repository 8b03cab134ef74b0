package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceToAmount(t *testing.T) {
	assert.Equal(t, int64(1200), PriceToAmount("₹1200"))
	assert.Equal(t, int64(1500), PriceToAmount("₹1,500"))
	assert.Equal(t, int64(600), PriceToAmount("₹600.50"))
	assert.Equal(t, int64(0), PriceToAmount("free"))
}

func TestSlotFromNextAvailable(t *testing.T) {
	assert.Equal(t, "4:15 PM", SlotFromNextAvailable("Today, 4:15 PM"))
	assert.Equal(t, "10:00 AM", SlotFromNextAvailable("Tomorrow"))
	assert.Equal(t, "10:00 AM", SlotFromNextAvailable(""))
}

func TestTokenRoundTrip(t *testing.T) {
	SetTokenSecret("test-secret")

	token, err := GenerateToken("p1", "patient")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "p1", claims.UserID)
	assert.Equal(t, "patient", claims.Role)
}

func TestTokensAreUniquePerLogin(t *testing.T) {
	a, err := GenerateToken("p1", "patient")
	require.NoError(t, err)
	b, err := GenerateToken("p1", "patient")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	SetTokenSecret("first")
	token, err := GenerateToken("d1", "doctor")
	require.NoError(t, err)

	SetTokenSecret("second")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeDataURL(t *testing.T) {
	data, mime, err := DecodeDataURL("data:application/pdf;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "application/pdf", mime)

	data, mime, err = DecodeDataURL(" aGVsbG8= ")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Empty(t, mime)

	for _, raw := range []string{"", "data:text/plain,hello", "data:image/png;base64,", "data:image/png;base64", "%%%"} {
		_, _, err := DecodeDataURL(raw)
		assert.ErrorIs(t, err, ErrInvalidDataURL, raw)
	}
}

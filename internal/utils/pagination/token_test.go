package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	// Test with a known date
	testDate := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	token := EncodeCursor(Cursor{CreatedAt: testDate, ID: "imp-1"})

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, testDate.Equal(decoded.CreatedAt), "Date should match after decode")
	assert.Equal(t, "imp-1", decoded.ID)
	assert.NotContains(t, token, "=", "Token must be usable in a query string")

	// Non-UTC instants keep their meaning
	sp := time.FixedZone("BRT", -3*60*60)
	local := time.Date(2024, 11, 12, 21, 0, 0, 0, sp)
	decoded, err = DecodeCursor(EncodeCursor(Cursor{CreatedAt: local, ID: "a|b"}))
	require.NoError(t, err)
	assert.True(t, local.Equal(decoded.CreatedAt))
	assert.Equal(t, "a|b", decoded.ID)
}

func TestDecodeCursorError(t *testing.T) {
	_, err := DecodeCursor("not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeCursor(base64.RawURLEncoding.EncodeToString([]byte("2024-01-01T00:00:00Z")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeCursor(base64.RawURLEncoding.EncodeToString([]byte("notadate|imp-1")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}

func TestNextCursor(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Cursor{{CreatedAt: day, ID: "b"}, {CreatedAt: day, ID: "a"}}
	identity := func(c Cursor) Cursor { return c }

	assert.Nil(t, NextCursor(items, 3, identity), "short page is the last one")
	assert.Nil(t, NextCursor([]Cursor{}, 0, identity))

	next := NextCursor(items, 2, identity)
	require.NotNil(t, next)
	decoded, err := DecodeCursor(*next)
	require.NoError(t, err)
	assert.True(t, day.Equal(decoded.CreatedAt))
	assert.Equal(t, "a", decoded.ID, "ties on created_at are broken by ID")
}

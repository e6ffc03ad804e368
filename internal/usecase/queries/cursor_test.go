//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	id := uuid.New()
	at := time.Date(2024, 6, 1, 10, 30, 0, 123456789, time.UTC)

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, at.Truncate(time.Microsecond), gotAt)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	cases := map[string]string{
		"not base64":    "%%%",
		"wrong version": base64.RawURLEncoding.EncodeToString([]byte("v0:1-" + uuid.NewString())),
		"no separator":  base64.RawURLEncoding.EncodeToString([]byte("v1:12345")),
		"bad time":      base64.RawURLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad id":        base64.RawURLEncoding.EncodeToString([]byte("v1:12345-nope")),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.True(t, errs.Is(err, errs.ErrInvalidInput))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}

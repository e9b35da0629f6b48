package service_test

import (
	"strings"
	"testing"
	"time"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/users/auth/service"
	helper "csms_backend/internals/helpers"
	"csms_backend/internals/testkit"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tokens := testkit.Tokens()
	id := helper.Identity{ID: uuid.New(), Email: "t@csms.test", Role: constants.RoleTeacher}

	raw, exp, err := tokens.Issue(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParseRejects(t *testing.T) {
	tokens := testkit.Tokens()
	uid := uuid.NewString()
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	t.Run("expired", func(t *testing.T) {
		raw := testkit.SignClaims(t, service.Claims{UserID: uid, Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Second))}})
		_, err := tokens.Parse(raw)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing exp", func(t *testing.T) {
		raw := testkit.SignClaims(t, service.Claims{UserID: uid, Role: "admin"})
		_, err := tokens.Parse(raw)
		assert.ErrorIs(t, err, service.ErrTokenMissingExp)
	})

	t.Run("tampered", func(t *testing.T) {
		raw := testkit.SignClaims(t, service.Claims{UserID: uid, Role: "student",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}})
		dot := strings.LastIndex(raw, ".")
		swap := "A"
		if raw[dot+1] == 'A' {
			swap = "B"
		}
		tampered := raw[:dot+1] + swap + raw[dot+2:]
		_, err := tokens.Parse(tampered)
		assert.Error(t, err)
	})

	t.Run("other algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS384, service.Claims{UserID: uid, Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}).SignedString([]byte(testkit.Secret))
		require.NoError(t, err)
		_, err = tokens.Parse(raw)
		assert.Error(t, err)
	})

	t.Run("alg none", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, service.Claims{UserID: uid, Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tokens.Parse(raw)
		assert.Error(t, err)
	})

	t.Run("bad claims", func(t *testing.T) {
		for _, c := range []service.Claims{
			{UserID: "not-a-uuid", Role: "admin", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}},
			{UserID: uid, Role: "janitor", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}},
		} {
			_, err := tokens.Parse(testkit.SignClaims(t, c))
			assert.ErrorIs(t, err, service.ErrTokenClaims)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := service.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, service.CheckPassword(hash, "secret123"))
	assert.False(t, service.CheckPassword(hash, "secret124"))
	assert.False(t, service.CheckPassword("not-a-hash", "secret123"))
}

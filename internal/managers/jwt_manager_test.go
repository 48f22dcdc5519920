package managers

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"expense-tracker/internal/schemas"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return NewJWTManager(privateKey, publicKey, "expense-tracker", 24*time.Hour).(*JWTManager)
}

func testAccount() *schemas.Account {
	return &schemas.Account{
		ID:    uuid.New(),
		Email: "john@example.com",
		Role:  schemas.DefaultRole,
	}
}

func TestGenerateAndValidateJWT(t *testing.T) {
	jm := newTestJWTManager(t)
	account := testAccount()

	token, err := jm.GenerateJWT(jm.GenerateClaims(account))
	require.NoError(t, err)

	claims, err := jm.ValidateJWT(token)
	require.NoError(t, err)

	mapClaims := claims.(jwt.MapClaims)
	assert.Equal(t, "john@example.com", mapClaims["sub"])
	assert.Equal(t, account.ID.String(), mapClaims["uid"])
	assert.Equal(t, "expense-tracker", mapClaims["iss"])
	assert.Equal(t, []interface{}{schemas.DefaultRole}, mapClaims["scopes"])
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	jm := newTestJWTManager(t)
	jm.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := jm.GenerateJWT(jm.GenerateClaims(testAccount()))
	require.NoError(t, err)

	_, err = jm.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateJWTRejectsForeignKey(t *testing.T) {
	jm := newTestJWTManager(t)
	other := newTestJWTManager(t)

	token, err := other.GenerateJWT(other.GenerateClaims(testAccount()))
	require.NoError(t, err)

	_, err = jm.ValidateJWT(token)
	assert.Error(t, err)
}

func TestNewJWTManagerFromFileGeneratesAndReloadsKeyPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt.key")

	first, err := NewJWTManagerFromFile(path, "expense-tracker", time.Hour)
	require.NoError(t, err)
	token, err := first.GenerateJWT(first.GenerateClaims(testAccount()))
	require.NoError(t, err)

	second, err := NewJWTManagerFromFile(path, "expense-tracker", time.Hour)
	require.NoError(t, err)
	_, err = second.ValidateJWT(token)
	assert.NoError(t, err)
}

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jm := newTestJWTManager(t)
	token, err := jm.GenerateJWT(jm.GenerateClaims(testAccount()))
	require.NoError(t, err)

	r := gin.New()
	r.GET("/secured", jm.JWTMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"ValidToken", "Bearer " + token, http.StatusNoContent},
		{"MissingHeader", "", http.StatusUnauthorized},
		{"WrongScheme", "Basic " + token, http.StatusUnauthorized},
		{"GarbageToken", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secured", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

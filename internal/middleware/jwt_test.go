package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/club-passport/internal/utils"
)

const testSecret = "test-secret"

func runJWT(t *testing.T, auth string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, reached
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, reached := runJWT(t, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "No token")
	require.False(t, reached)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	rec, reached := runJWT(t, "Basic abc123")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, reached)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, reached := runJWT(t, "Bearer not-a-token")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid token")
	require.False(t, reached)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 1, "admin", 0)
	require.NoError(t, err)
	rec, reached := runJWT(t, "Bearer "+tok)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, reached)
}

func TestJWTAuthValidTokenSetsIdentity(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 9, "chairman", 0)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(testSecret)(func(c echo.Context) error {
		id, ok := UserID(c)
		require.True(t, ok)
		require.Equal(t, uint64(9), id)
		require.Equal(t, "chairman", Role(c))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

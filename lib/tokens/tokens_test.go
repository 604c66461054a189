package tokens

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func callWithAuthHeader(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenAccountID string
	handler := Middleware(secret)(func(c echo.Context) error {
		seenAccountID = c.Get("AccountID").(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, seenAccountID
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	token, err := GenerateAccessToken(secret, 3600, "alice")
	require.NoError(t, err)

	rec, accountID := callWithAuthHeader(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", accountID)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	rec, _ := callWithAuthHeader(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsTokenSignedWithOtherSecret(t *testing.T) {
	token, err := GenerateAccessToken([]byte("other-secret"), 3600, "alice")
	require.NoError(t, err)

	rec, _ := callWithAuthHeader(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	token, err := GenerateAccessToken(secret, -60, "alice")
	require.NoError(t, err)

	rec, _ := callWithAuthHeader(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"car-rental-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the API and returns the bearer token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := map[string]string{"email": email, "password": password}
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.AccessToken, "login returned no token")
	return resp.AccessToken
}

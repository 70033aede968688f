package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "a@x.com", "pw1")
	token := loginUser(t, router, "a@x.com", "pw1")
	require.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "a@x.com", "pw1")

	resp := postJSON(t, router, "/api/v1/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "pw2",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Contains(t, resp.Body.String(), "duplicate")

	// The first registration is unaffected.
	loginUser(t, router, "a@x.com", "pw1")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	registerUser(t, router, "a@x.com", "pw1")

	wrongPassword := postJSON(t, router, "/api/v1/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	unknownEmail := postJSON(t, router, "/api/v1/auth/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestRegisterNeverEchoesPassword(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	resp := postJSON(t, router, "/api/v1/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotContains(t, resp.Body.String(), "pw1")
	require.NotContains(t, resp.Body.String(), "password")
}

func TestRegisterValidation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	resp := postJSON(t, router, "/api/v1/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "pw1",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = postJSON(t, router, "/api/v1/auth/register", map[string]string{
		"email": "a@x.com",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	resp := getWithToken(t, router, "/api/v1/gallery", "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = getWithToken(t, router, "/api/v1/photos", "garbage-token")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

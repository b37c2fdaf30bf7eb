package auth

import (
	"fmt"
	"net/http"
	"testing"

	"jobportal-backend/internal/store"
	"jobportal-backend/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token for a user by
// simulating a login API call. It takes the testing object, storage, email,
// password and role as parameters.
func GetAccessToken(
	t *testing.T,
	s *store.Storage,
	email string,
	password string,
	role string,
) (string, error) {
	t.Helper()
	handler := NewAuthHandler(s)
	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp["access_token"] == nil {
		return "", fmt.Errorf("login Failed: no access_token in response: %s", rec.Body.String())
	}
	return resp["access_token"].(string), nil
}

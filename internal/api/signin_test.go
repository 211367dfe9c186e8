package api_test

import (
	"net/http"
	"testing"

	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/internal/testutil"
)

func TestSignIn_Success(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	// happy path sign-in returns the session token and user
	token := env.Provider.SignIDToken(t, nil)
	body := `{
		"providerToken": "` + token + `"
	}`
	response := service.SignInResult{}
	result := testutil.PostJSON(env.Router, "/api/signin", body, &response)
	testutil.ExpectStatus(t, http.StatusOK, result)

	if response.Token == "" {
		t.Error("response missing session token")
	}
	if response.User == nil {
		t.Fatal("response missing user")
	}
	if response.User.Email != "alice@example.com" {
		t.Errorf("user email = %s, want alice@example.com", response.User.Email)
	}

	// the returned token verifies as a session for the returned user
	claims, err := env.Verifier.DecodeSession(response.Token, false)
	if err != nil {
		t.Fatalf("returned token failed verification: %v", err)
	}
	if claims.Subject != response.User.ID {
		t.Errorf("token subject = %s, want %s", claims.Subject, response.User.ID)
	}
}

func TestSignIn_InvalidToken(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	// a rejected provider token gets the fixed unauthorized response
	body := `{
		"providerToken": "not-a-token"
	}`
	result := testutil.PostJSON(env.Router, "/api/signin", body, nil)
	testutil.ExpectStatus(t, http.StatusUnauthorized, result)

	if string(result.Body) != `{"error":"unauthorized"}` {
		t.Errorf("unexpected body: %s", string(result.Body))
	}
}

func TestSignIn_InvalidJSON(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	// malformed json fails with 400
	result := testutil.PostJSON(env.Router, "/api/signin", "bad-json", nil)
	testutil.ExpectStatus(t, http.StatusBadRequest, result)
}

func TestSignIn_RejectsGet(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	// the route only accepts POST
	result := testutil.Get(env.Router, "/api/signin", nil)
	testutil.ExpectStatus(t, http.StatusMethodNotAllowed, result)
}

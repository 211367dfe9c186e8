package service_test

import (
	"errors"
	"testing"

	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/internal/testutil"
)

func TestGetUser(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnv(t)

	// setup
	signedIn := env.SignInTestUser(t, "subject-1", "alice@example.com")

	// lookup by the session subject returns the record
	user, err := env.Service.GetUser(signedIn.User.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %s, want alice@example.com", user.Email)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnv(t)

	// unknown id returns ErrUserNotFound
	_, err := env.Service.GetUser("no-such-user")
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

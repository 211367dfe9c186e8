package service

// UserStore handles persistence of user records.
type UserStore interface {
	FindOrCreateUser(providerSubject, email, name, avatarURL string) (*User, error)
	GetUser(id string) (*User, error)
}

// User is the application's view of an account, keyed by the UUID assigned
// at first sign-in.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

package database

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"git.sr.ht/~jakintosh/warrant/internal/service"
)

func (s *SQLiteStore) UserStore() service.UserStore {
	return s
}

/*
FindOrCreateUser returns the user keyed by the provider subject, creating the
row with a fresh UUID on first sign-in. Profile fields from the provider are
refreshed on every call; the id and created_at of an existing row never
change.
*/
func (s *SQLiteStore) FindOrCreateUser(
	providerSubject string,
	email string,
	name string,
	avatarURL string,
) (
	*service.User,
	error,
) {
	_, err := s.db.Exec(`
		INSERT INTO users (id, provider_subject, email, name, avatar_url, created_at)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6)
		ON CONFLICT (provider_subject)
		DO UPDATE SET email=?3, name=?4, avatar_url=?5;`,
		uuid.NewString(),
		providerSubject,
		email,
		name,
		avatarURL,
		time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't upsert into users: %v", err)
	}

	row := s.db.QueryRow(`
		SELECT id, email, name, avatar_url
		FROM users u
		WHERE u.provider_subject=?1;`,
		providerSubject,
	)

	var user service.User
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.AvatarURL); err != nil {
		return nil, fmt.Errorf("couldn't scan user row: %v", err)
	}

	log.Printf("upsert into users: %s\n", user.ID)
	return &user, nil
}

func (s *SQLiteStore) GetUser(id string) (*service.User, error) {
	row := s.db.QueryRow(`
		SELECT id, email, name, avatar_url
		FROM users u
		WHERE u.id=?1;`,
		id,
	)

	var user service.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.AvatarURL)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

package service

import (
	"database/sql"
	"errors"
	"fmt"
)

func (s *Service) GetUser(id string) (*User, error) {
	user, err := s.users.GetUser(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("%w: failed to retrieve user: %v", ErrInternal, err)
	}
	return user, nil
}

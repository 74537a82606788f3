package domain

import "context"

//go:generate mockgen -source=user_repository.go -destination=user_repository_mock.go -package=domain

// UserRepository reads the user document. A missing document yields a
// zero-valued User, not an error; absent integrations are an ordinary state.
type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*User, error)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const userKeyPrefix = "user:"

type userDocument struct {
	ID                   string `json:"id"`
	ExpoPushToken        string `json:"expo_push_token,omitempty"`
	CalendarRefreshToken string `json:"calendar_refresh_token,omitempty"`
}

type userRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) domain.UserRepository {
	return &userRepository{
		client: client,
	}
}

func userKey(userID string) string {
	return userKeyPrefix + userID
}

// GetUser returns a zero-valued user when no document exists; an unlinked
// user is an ordinary state, not an error.
func (r *userRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	data, err := r.client.Get(ctx, userKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &domain.User{ID: userID}, nil
		}
		return nil, err
	}

	var doc userDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidUserData
	}
	return &domain.User{
		ID:                   doc.ID,
		ExpoPushToken:        doc.ExpoPushToken,
		CalendarRefreshToken: doc.CalendarRefreshToken,
	}, nil
}

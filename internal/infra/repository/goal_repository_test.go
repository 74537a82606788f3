package repository

import (
	"context"
	"testing"

	"github.com/raigen-dev/plan-scheduling/internal/testutil"
)

func TestGoalRepositoryListActiveGoals(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewGoalRepository(client)

	t.Run("missing key yields no goals", func(t *testing.T) {
		goals, err := repo.ListActiveGoals(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goals) != 0 {
			t.Errorf("expected no goals, got %+v", goals)
		}
	})

	t.Run("archived goals are filtered out", func(t *testing.T) {
		doc := `[
			{"id":"g1","user_id":"u1","title":"Learn Spanish","priority":3,"effort_estimate_min":90,"status":"active"},
			{"id":"g2","user_id":"u1","title":"Old project","priority":2,"effort_estimate_min":60,"status":"archived"},
			{"id":"g3","user_id":"u1","title":"Paused thing","priority":1,"effort_estimate_min":30,"status":"paused"}
		]`
		if err := client.Set(ctx, "goals:u1", doc, 0).Err(); err != nil {
			t.Fatalf("failed to set up test data: %v", err)
		}

		goals, err := repo.ListActiveGoals(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goals) != 1 || goals[0].ID != "g1" || goals[0].Priority != 3 {
			t.Errorf("active goals: %+v", goals)
		}
	})
}

func TestUserRepositoryGetUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewUserRepository(client)

	t.Run("missing user yields zero-valued user", func(t *testing.T) {
		user, err := repo.GetUser(ctx, "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "ghost" || user.ExpoPushToken != "" || user.CalendarRefreshToken != "" {
			t.Errorf("zero-valued user: %+v", user)
		}
	})

	t.Run("stored user round-trips", func(t *testing.T) {
		doc := `{"id":"u1","expo_push_token":"ExponentPushToken[abc]","calendar_refresh_token":"refresh-1"}`
		if err := client.Set(ctx, "user:u1", doc, 0).Err(); err != nil {
			t.Fatalf("failed to set up test data: %v", err)
		}

		user, err := repo.GetUser(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ExpoPushToken != "ExponentPushToken[abc]" || user.CalendarRefreshToken != "refresh-1" {
			t.Errorf("user: %+v", user)
		}
	})
}

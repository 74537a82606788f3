package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
	"github.com/raigen-dev/plan-scheduling/internal/testutil"
)

func TestPlanRepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPlanRepository(client)

	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	plan := domain.NewPlan("u1", "2025-01-06")
	plan.Blocks = []domain.Block{
		domain.NewBlock("deep work", start, start.Add(time.Hour), "g1", domain.EnergyHigh),
	}
	plan.Rationale = "front-loaded focus time"
	plan.PlanType = domain.PlanTypeFull
	plan.RecomputeAdherence()

	if err := repo.SavePlan(ctx, plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	got, err := repo.GetPlan(ctx, "u1", "2025-01-06")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if got.UserID != "u1" || got.Date != "2025-01-06" || got.PlanType != domain.PlanTypeFull {
		t.Errorf("plan metadata: %+v", got)
	}
	if len(got.Blocks) != 1 || got.Blocks[0].ID != plan.Blocks[0].ID {
		t.Errorf("blocks: %+v", got.Blocks)
	}
	if !got.Blocks[0].Start.Equal(start) {
		t.Errorf("block start: got %v, want %v", got.Blocks[0].Start, start)
	}
	if got.Adherence == nil || got.Adherence.Planned != 1 {
		t.Errorf("adherence: %+v", got.Adherence)
	}
}

func TestPlanRepositoryGetPlanMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPlanRepository(client)

	_, err := repo.GetPlan(ctx, "u1", "2025-01-06")
	if !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestPlanRepositorySaveWithQuota(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewPlanRepository(client)
	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	t.Run("build sees nil on first generation", func(t *testing.T) {
		testutil.Flush(ctx, t, client)

		saved, err := repo.SaveWithQuota(ctx, "u1", "2025-01-06", func(existing *domain.Plan) (*domain.Plan, error) {
			if existing != nil {
				t.Errorf("expected nil existing plan, got %+v", existing)
			}
			p := domain.NewPlan("u1", "2025-01-06")
			p.PlanType = domain.PlanTypeFull
			p.Blocks = []domain.Block{domain.NewBlock("focus", start, start.Add(time.Hour), "", domain.EnergyMedium)}
			return p, nil
		})
		if err != nil {
			t.Fatalf("save with quota: %v", err)
		}
		if saved.PlanType != domain.PlanTypeFull {
			t.Errorf("saved plan: %+v", saved)
		}

		got, err := repo.GetPlan(ctx, "u1", "2025-01-06")
		if err != nil {
			t.Fatalf("get plan after save: %v", err)
		}
		if len(got.Blocks) != 1 {
			t.Errorf("persisted blocks: %+v", got.Blocks)
		}
	})

	t.Run("build sees the stored plan on regeneration", func(t *testing.T) {
		_, err := repo.SaveWithQuota(ctx, "u1", "2025-01-06", func(existing *domain.Plan) (*domain.Plan, error) {
			if existing == nil || len(existing.Blocks) != 1 {
				t.Errorf("expected stored plan, got %+v", existing)
			}
			existing.PlanType = domain.PlanTypeReplan
			existing.ReplanCount++
			return existing, nil
		})
		if err != nil {
			t.Fatalf("save with quota: %v", err)
		}

		got, err := repo.GetPlan(ctx, "u1", "2025-01-06")
		if err != nil {
			t.Fatalf("get plan: %v", err)
		}
		if got.PlanType != domain.PlanTypeReplan || got.ReplanCount != 1 {
			t.Errorf("plan after replan: type=%s count=%d", got.PlanType, got.ReplanCount)
		}
	})

	t.Run("build error aborts without writing", func(t *testing.T) {
		wantErr := errors.New("quota exhausted")
		_, err := repo.SaveWithQuota(ctx, "u1", "2025-01-06", func(existing *domain.Plan) (*domain.Plan, error) {
			return nil, wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected build error, got %v", err)
		}

		got, err := repo.GetPlan(ctx, "u1", "2025-01-06")
		if err != nil {
			t.Fatalf("get plan: %v", err)
		}
		if got.ReplanCount != 1 {
			t.Errorf("aborted transaction mutated the plan: %+v", got)
		}
	})
}

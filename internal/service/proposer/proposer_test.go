package proposer

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

func TestProposeReturnsStarterSetWithoutGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockGoalRepository(ctrl)
	repo.EXPECT().ListActiveGoals(gomock.Any(), "u1").Return(nil, nil)

	tasks, err := New(repo).Propose(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Title != "Review and plan day" || tasks[0].EffortMin != 30 || tasks[0].Energy != domain.EnergyMedium {
		t.Errorf("first default task: %+v", tasks[0])
	}
	if tasks[1].Title != "Process inbox" || tasks[1].EffortMin != 45 || tasks[1].Energy != domain.EnergyLow {
		t.Errorf("second default task: %+v", tasks[1])
	}
}

func TestProposeExpandsGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockGoalRepository(ctrl)
	repo.EXPECT().ListActiveGoals(gomock.Any(), "u1").Return([]domain.Goal{
		{ID: "g1", Title: "Learn Spanish", Priority: 3, EffortEstimateMin: 90},
		{ID: "g2", Title: "Tidy garage", Priority: 1, EffortEstimateMin: 60},
	}, nil)

	tasks, err := New(repo).Propose(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	spanish := tasks[0]
	if spanish.Title != "Learn Spanish" || spanish.GoalID != "g1" || spanish.EffortMin != 90 {
		t.Errorf("goal task: %+v", spanish)
	}
	if spanish.Energy != domain.EnergyHigh || spanish.Urgency != 3 || spanish.Impact != 3 {
		t.Errorf("priority 3 goal should yield high-energy task: %+v", spanish)
	}
	if tasks[1].Energy != domain.EnergyMedium {
		t.Errorf("priority 1 goal should yield medium-energy task: %+v", tasks[1])
	}
}

func TestProposeSplitsLargeGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockGoalRepository(ctrl)
	repo.EXPECT().ListActiveGoals(gomock.Any(), "u1").Return([]domain.Goal{
		{ID: "g1", Title: "Write thesis chapter", Priority: 2, EffortEstimateMin: 150},
	}, nil)

	tasks, err := New(repo).Propose(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2: %+v", len(tasks), tasks)
	}

	if tasks[0].Title != "Write thesis chapter - Part 1" || tasks[0].EffortMin != 75 {
		t.Errorf("first part: %+v", tasks[0])
	}
	if tasks[1].Title != "Write thesis chapter - Part 2" || tasks[1].EffortMin != 75 {
		t.Errorf("second part: %+v", tasks[1])
	}
	if tasks[0].EffortMin+tasks[1].EffortMin != 150 {
		t.Errorf("split parts should preserve total effort")
	}
}

func TestProposeAppliesGoalDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockGoalRepository(ctrl)
	repo.EXPECT().ListActiveGoals(gomock.Any(), "u1").Return([]domain.Goal{
		{ID: "g1", Title: "Vague ambition"},
	}, nil)

	tasks, err := New(repo).Propose(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(tasks), tasks)
	}
	if tasks[0].EffortMin != 120 || tasks[0].Urgency != 2 || tasks[0].Impact != 2 {
		t.Errorf("defaults not applied: %+v", tasks[0])
	}
}

func TestProposeRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockGoalRepository(ctrl)
	repo.EXPECT().ListActiveGoals(gomock.Any(), "u1").Return(nil, errors.New("store down"))

	if _, err := New(repo).Propose(context.Background(), "u1"); err == nil {
		t.Fatal("expected error to propagate")
	}
}

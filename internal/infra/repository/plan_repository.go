package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const (
	planKeyPrefix = "plan:"

	// optimistic-lock retries before giving up on a contended plan document
	maxTxRetries = 5
)

type blockRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	GoalID    string    `json:"goal_id,omitempty"`
	Energy    string    `json:"energy,omitempty"`
	Locked    bool      `json:"locked"`
	Completed bool      `json:"completed"`
}

type adherenceRecord struct {
	Completed int `json:"completed"`
	Planned   int `json:"planned"`
}

type planDocument struct {
	UserID      string           `json:"user_id"`
	Date        string           `json:"date"`
	Blocks      []blockRecord    `json:"blocks"`
	Rationale   string           `json:"rationale,omitempty"`
	PlanType    string           `json:"plan_type,omitempty"`
	ReplanCount int              `json:"replan_count"`
	Adherence   *adherenceRecord `json:"adherence,omitempty"`
}

type planRepository struct {
	client *redis.Client
}

func NewPlanRepository(client *redis.Client) domain.PlanRepository {
	return &planRepository{
		client: client,
	}
}

func planKey(userID, date string) string {
	return planKeyPrefix + userID + "@" + date
}

func (r *planRepository) GetPlan(ctx context.Context, userID, date string) (*domain.Plan, error) {
	data, err := r.client.Get(ctx, planKey(userID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	return decodePlan(data)
}

func (r *planRepository) SavePlan(ctx context.Context, plan *domain.Plan) error {
	if plan == nil {
		return ErrInvalidPlanData
	}

	data, err := json.Marshal(encodePlan(plan))
	if err != nil {
		return ErrInvalidPlanData
	}
	return r.client.Set(ctx, planKey(plan.UserID, plan.Date), data, 0).Err()
}

// SaveWithQuota reads, rebuilds, and writes the plan document under an
// optimistic WATCH lock, so the replan-quota decision inside build cannot
// interleave with a concurrent generation for the same user and date.
func (r *planRepository) SaveWithQuota(ctx context.Context, userID, date string, build func(existing *domain.Plan) (*domain.Plan, error)) (*domain.Plan, error) {
	key := planKey(userID, date)
	var saved *domain.Plan

	txn := func(tx *redis.Tx) error {
		var existing *domain.Plan
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			// first generation for this day
		case err != nil:
			return err
		default:
			existing, err = decodePlan(data)
			if err != nil {
				return err
			}
		}

		next, err := build(existing)
		if err != nil {
			return err
		}
		if next == nil {
			return ErrInvalidPlanData
		}

		payload, err := json.Marshal(encodePlan(next))
		if err != nil {
			return ErrInvalidPlanData
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err == nil {
			saved = next
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return saved, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: plan %s", ErrTxContention, key)
}

func encodePlan(p *domain.Plan) planDocument {
	doc := planDocument{
		UserID:      p.UserID,
		Date:        p.Date,
		Blocks:      make([]blockRecord, 0, len(p.Blocks)),
		Rationale:   p.Rationale,
		PlanType:    p.PlanType.String(),
		ReplanCount: p.ReplanCount,
	}
	for _, b := range p.Blocks {
		doc.Blocks = append(doc.Blocks, blockRecord{
			ID:        b.ID,
			Title:     b.Title,
			Start:     b.Start,
			End:       b.End,
			GoalID:    b.GoalID,
			Energy:    b.Energy.String(),
			Locked:    b.Locked,
			Completed: b.Completed,
		})
	}
	if p.Adherence != nil {
		doc.Adherence = &adherenceRecord{
			Completed: p.Adherence.Completed,
			Planned:   p.Adherence.Planned,
		}
	}
	return doc
}

func decodePlan(data []byte) (*domain.Plan, error) {
	var doc planDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidPlanData
	}

	plan := &domain.Plan{
		UserID:      doc.UserID,
		Date:        doc.Date,
		Blocks:      make([]domain.Block, 0, len(doc.Blocks)),
		Rationale:   doc.Rationale,
		PlanType:    domain.PlanType(doc.PlanType),
		ReplanCount: doc.ReplanCount,
	}
	for _, b := range doc.Blocks {
		plan.Blocks = append(plan.Blocks, domain.Block{
			ID:        b.ID,
			Title:     b.Title,
			Start:     b.Start,
			End:       b.End,
			GoalID:    b.GoalID,
			Energy:    domain.Energy(b.Energy),
			Locked:    b.Locked,
			Completed: b.Completed,
		})
	}
	if doc.Adherence != nil {
		plan.Adherence = &domain.Adherence{
			Completed: doc.Adherence.Completed,
			Planned:   doc.Adherence.Planned,
		}
	}
	return plan, nil
}

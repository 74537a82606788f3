package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
)

const budgetKeyPrefix = "budget:"

type budgetDocument struct {
	SMSUsed       int `json:"sms_used"`
	SMSLimit      int `json:"sms_limit"`
	LLMCents      int `json:"llm_cents"`
	LLMLimitCents int `json:"llm_limit_cents"`
	VoiceMin      int `json:"voice_min"`
	VoiceLimitMin int `json:"voice_limit_min"`
}

type budgetRepository struct {
	client *redis.Client
}

func NewBudgetRepository(client *redis.Client) domain.BudgetRepository {
	return &budgetRepository{
		client: client,
	}
}

func budgetKey(userID, month string) string {
	return budgetKeyPrefix + userID + "@" + month
}

func (r *budgetRepository) GetBudget(ctx context.Context, userID, month string) (*domain.BudgetRecord, error) {
	data, err := r.client.Get(ctx, budgetKey(userID, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			rec := domain.DefaultBudget()
			return &rec, nil
		}
		return nil, err
	}

	var doc budgetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidBudgetData
	}
	return &domain.BudgetRecord{
		SMSUsed:       doc.SMSUsed,
		SMSLimit:      doc.SMSLimit,
		LLMCents:      doc.LLMCents,
		LLMLimitCents: doc.LLMLimitCents,
		VoiceMin:      doc.VoiceMin,
		VoiceLimitMin: doc.VoiceLimitMin,
	}, nil
}

// IncrementBudget applies the delta inside an optimistic WATCH transaction,
// creating the record with default limits on first use. Counters only grow.
func (r *budgetRepository) IncrementBudget(ctx context.Context, userID, month string, delta domain.BudgetDelta) error {
	key := budgetKey(userID, month)

	txn := func(tx *redis.Tx) error {
		doc := budgetDocument{
			SMSLimit:      domain.DefaultSMSLimit,
			LLMLimitCents: domain.DefaultLLMLimitCents,
			VoiceLimitMin: domain.DefaultVoiceLimitMin,
		}

		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(data, &doc); err != nil {
				return ErrInvalidBudgetData
			}
		}

		doc.SMSUsed += delta.SMS
		doc.LLMCents += delta.LLMCents
		doc.VoiceMin += delta.VoiceMin

		payload, err := json.Marshal(doc)
		if err != nil {
			return ErrInvalidBudgetData
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("%w: budget %s", ErrTxContention, key)
}

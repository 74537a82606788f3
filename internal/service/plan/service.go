// Package plan orchestrates one generation request: task proposal, window
// discovery, scoring, packing, quota enforcement, and persistence.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
	"github.com/raigen-dev/plan-scheduling/internal/infra/calendar"
	"github.com/raigen-dev/plan-scheduling/internal/infra/push"
	"github.com/raigen-dev/plan-scheduling/internal/infra/rationale"
	"github.com/raigen-dev/plan-scheduling/internal/observability/metrics"
	"github.com/raigen-dev/plan-scheduling/internal/observability/tracing"
	"github.com/raigen-dev/plan-scheduling/internal/service/budget"
	"github.com/raigen-dev/plan-scheduling/internal/service/freewindow"
	"github.com/raigen-dev/plan-scheduling/internal/service/packer"
	"github.com/raigen-dev/plan-scheduling/internal/service/score"
)

const (
	// flat per-generation estimate charged against the monthly LLM budget
	llmEstimateCents = 5

	// bound on every external call so one slow dependency cannot hang the
	// whole request
	externalCallTimeout = 20 * time.Second

	fallbackRationale = "Plan generated using urgency×impact÷effort and your constraints."
)

// Deps bundles the service's collaborators. Rationale, Notifier, Recorder,
// and Metrics are optional; a nil value degrades to the documented
// fallback instead of failing generation.
type Deps struct {
	Plans     domain.PlanRepository
	Users     domain.UserRepository
	Proposer  TaskProposer
	Calendar  calendar.Source
	Budget    *budget.Gate
	Rationale rationale.Generator
	Notifier  push.Notifier
	Recorder  domain.PlanResultRecorder
	Metrics   *metrics.PlanMetrics

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

type Service struct {
	deps Deps
	now  func() time.Time
}

func New(deps Deps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Service{deps: deps, now: now}
}

// Generate produces and persists the day's plan. A first generation for a
// date is a full plan; any generation against a plan that already has
// blocks is a replan, of which each day allows two. The quota check and
// the plan write happen inside one storage transaction.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*domain.Plan, error) {
	started := s.now()

	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.StartGenerationSpan(ctx, req.UserID, date)
	defer span.End()

	for _, t := range req.Tasks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	for _, w := range req.FreeWindows {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}

	existing, err := s.deps.Plans.GetPlan(ctx, req.UserID, date)
	if err != nil && !errors.Is(err, domain.ErrPlanNotFound) {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	// cheap pre-check; the authoritative check runs inside the save
	// transaction below
	if existing.HasBlocks() && existing.ReplanCount >= domain.MaxReplans {
		s.recordQuotaRejection(ctx)
		return nil, domain.ErrReplanLimitReached
	}

	tasks := req.Tasks
	if len(tasks) == 0 {
		tasks, err = s.deps.Proposer.Propose(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("propose tasks: %w", err)
		}
	}

	windows := req.FreeWindows
	if len(windows) == 0 {
		windows, err = s.discoverWindows(ctx, req.UserID, date)
		if err != nil {
			return nil, err
		}
	}

	prefs := req.Prefs.WithDefaults()
	ranked := score.Rank(tasks)
	committed := existing.CommittedBlocks()

	_, packSpan := tracing.StartPackingSpan(ctx, len(ranked), len(windows))
	blocks := packer.Pack(windows, ranked, prefs, committed)
	packSpan.End()

	if _, err := s.deps.Budget.WithinLimit(ctx, req.UserID, domain.CounterLLM, llmEstimateCents); err != nil {
		// soft limit: an unreadable budget never blocks generation
		slog.WarnContext(ctx, "budget check failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()))
	}

	text := s.rationaleText(ctx, tasks, prefs, blocks)

	saved, err := s.deps.Plans.SaveWithQuota(ctx, req.UserID, date, func(current *domain.Plan) (*domain.Plan, error) {
		p := current
		if p == nil {
			p = domain.NewPlan(req.UserID, date)
		}
		if p.HasBlocks() {
			if p.ReplanCount >= domain.MaxReplans {
				return nil, domain.ErrReplanLimitReached
			}
			p.PlanType = domain.PlanTypeReplan
			p.ReplanCount++
			p.Blocks = append(p.CommittedBlocks(), blocks...)
		} else {
			p.PlanType = domain.PlanTypeFull
			p.Blocks = blocks
		}
		p.Rationale = text
		p.RecomputeAdherence()
		return p, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrReplanLimitReached) {
			s.recordQuotaRejection(ctx)
			return nil, err
		}
		return nil, fmt.Errorf("save plan: %w", err)
	}

	if err := s.deps.Budget.Charge(ctx, req.UserID, domain.BudgetDelta{LLMCents: llmEstimateCents}); err != nil {
		slog.WarnContext(ctx, "failed to record llm spend",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()))
	}

	dropped := len(ranked) - len(blocks)
	s.recordOutcome(ctx, saved, len(tasks), len(blocks), dropped, started)
	s.notify(ctx, req.UserID, len(saved.Blocks))

	tracing.RecordGenerationResult(span, saved.PlanType.String(), len(blocks), dropped, nil)

	slog.InfoContext(ctx, "plan generated",
		slog.String("user_id", req.UserID),
		slog.String("date", date),
		slog.String("plan_type", saved.PlanType.String()),
		slog.Int("replan_count", saved.ReplanCount),
		slog.Int("blocks_placed", len(blocks)),
		slog.Int("tasks_dropped", dropped))

	return saved, nil
}

// Today returns the day's plan, or an empty shell when none exists yet.
func (s *Service) Today(ctx context.Context, userID, date string) (*domain.Plan, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	p, err := s.deps.Plans.GetPlan(ctx, userID, date)
	if errors.Is(err, domain.ErrPlanNotFound) {
		return domain.NewPlan(userID, date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// MarkComplete toggles a block's completed flag, looking it up by id with
// an exact-title fallback, and returns the recomputed adherence counts.
func (s *Service) MarkComplete(ctx context.Context, userID, date, blockRef string, completed bool) (domain.Adherence, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return domain.Adherence{}, err
	}

	p, err := s.deps.Plans.GetPlan(ctx, userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return domain.Adherence{}, err
		}
		return domain.Adherence{}, fmt.Errorf("get plan: %w", err)
	}

	blk := p.FindBlock(blockRef)
	if blk == nil {
		return domain.Adherence{}, domain.ErrBlockNotFound
	}
	blk.Completed = completed
	adherence := p.RecomputeAdherence()

	if err := s.deps.Plans.SavePlan(ctx, p); err != nil {
		return domain.Adherence{}, fmt.Errorf("save plan: %w", err)
	}
	return adherence, nil
}

func (s *Service) resolveDate(raw string) (string, error) {
	if raw == "" {
		return domain.DateKey(s.now()), nil
	}
	return domain.ParseDateKey(raw)
}

func (s *Service) discoverWindows(ctx context.Context, userID, date string) ([]domain.Interval, error) {
	if s.deps.Calendar == nil {
		return nil, domain.ErrCalendarNotLinked
	}

	user, err := s.deps.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.CalendarRefreshToken == "" {
		return nil, domain.ErrCalendarNotLinked
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	dayStart, dayEnd := domain.DayBounds(day)

	cctx, span := tracing.StartExternalAPISpan(ctx, "calendar_freebusy")
	defer span.End()
	cctx, cancel := context.WithTimeout(cctx, externalCallTimeout)
	defer cancel()

	busy, err := s.deps.Calendar.BusyIntervals(cctx, user.CalendarRefreshToken, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list busy intervals: %w", err)
	}
	return freewindow.Build(dayStart, dayEnd, busy), nil
}

func (s *Service) rationaleText(ctx context.Context, tasks []domain.Task, prefs domain.UserPrefs, blocks []domain.Block) string {
	if s.deps.Rationale == nil {
		return fallbackRationale
	}

	rctx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	text, err := s.deps.Rationale.Generate(rctx, tasks, prefs, blocks)
	if err != nil || text == "" {
		slog.WarnContext(ctx, "rationale generation failed, using fallback",
			slog.String("error", errString(err)))
		return fallbackRationale
	}
	return text
}

func (s *Service) recordOutcome(ctx context.Context, p *domain.Plan, tasksIn, blocksPlaced, tasksDropped int, started time.Time) {
	total := 0
	for _, b := range p.Blocks {
		total += b.DurationMinutes()
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordGeneration(ctx, p.PlanType.String(), blocksPlaced, tasksDropped, total)
		s.deps.Metrics.RecordGenerationDuration(ctx, s.now().Sub(started))
	}

	if s.deps.Recorder != nil {
		record := domain.PlanResultRecord{
			RunID:        uuid.NewString(),
			UserID:       p.UserID,
			Date:         p.Date,
			PlanType:     p.PlanType.String(),
			ReplanCount:  p.ReplanCount,
			TasksIn:      tasksIn,
			BlocksPlaced: blocksPlaced,
			TasksDropped: tasksDropped,
			TotalMinutes: total,
			GeneratedAt:  s.now(),
		}
		if err := s.deps.Recorder.RecordGeneration(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record plan result",
				slog.String("error", err.Error()))
		}
	}
}

func (s *Service) notify(ctx context.Context, userID string, blockCount int) {
	if s.deps.Notifier == nil {
		return
	}

	nctx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	if err := s.deps.Notifier.PlanGenerated(nctx, userID, blockCount); err != nil {
		slog.WarnContext(ctx, "plan notification failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
	}
}

func (s *Service) recordQuotaRejection(ctx context.Context) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordQuotaRejection(ctx)
	}
}

func errString(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}

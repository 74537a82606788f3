package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raigen-dev/plan-scheduling/internal/domain"
	"github.com/raigen-dev/plan-scheduling/internal/service/plan"
)

type PlanHandler struct {
	planService *plan.Service
}

func NewPlanHandler(planService *plan.Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

type taskPayload struct {
	Title     string  `json:"title" binding:"required"`
	GoalID    string  `json:"goal_id"`
	EffortMin int     `json:"effort_min"`
	Energy    string  `json:"energy"`
	Urgency   float64 `json:"urgency"`
	Impact    float64 `json:"impact"`
}

type windowPayload struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type hardBlockPayload struct {
	Label string `json:"label"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	Days  []int  `json:"days" binding:"required"`
}

type prefsPayload struct {
	QuietStart string             `json:"quiet_start"`
	QuietEnd   string             `json:"quiet_end"`
	HardBlocks []hardBlockPayload `json:"hard_blocks"`
	MaxDayMin  int                `json:"max_day_min"`
}

type generateRequest struct {
	UserID      string          `json:"user_id" binding:"required"`
	Date        string          `json:"date"`
	Tasks       []taskPayload   `json:"tasks"`
	FreeWindows []windowPayload `json:"free_windows"`
	Prefs       prefsPayload    `json:"prefs"`
}

type completeRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Date      string `json:"date"`
	Block     string `json:"block" binding:"required"`
	Completed *bool  `json:"completed"`
}

func (h *PlanHandler) HandleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	prefs, err := decodePrefs(req.Prefs)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	tasks := make([]domain.Task, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		tasks = append(tasks, domain.Task{
			Title:     t.Title,
			GoalID:    t.GoalID,
			EffortMin: t.EffortMin,
			Energy:    domain.Energy(t.Energy),
			Urgency:   t.Urgency,
			Impact:    t.Impact,
		})
	}

	windows := make([]domain.Interval, 0, len(req.FreeWindows))
	for _, w := range req.FreeWindows {
		windows = append(windows, domain.Interval{Start: w.Start, End: w.End})
	}

	result, err := h.planService.Generate(ctx, plan.GenerateRequest{
		UserID:      req.UserID,
		Date:        req.Date,
		Tasks:       tasks,
		FreeWindows: windows,
		Prefs:       prefs,
	})
	if err != nil {
		slog.WarnContext(ctx, "plan generation failed",
			slog.String("user_id", req.UserID),
			slog.String("error", err.Error()),
		)
		respondError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PlanHandler) HandleToday(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	result, err := h.planService.Today(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PlanHandler) HandleComplete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	adherence, err := h.planService.MarkComplete(c.Request.Context(), req.UserID, req.Date, req.Block, completed)
	if err != nil {
		respondError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, adherence)
}

func decodePrefs(p prefsPayload) (domain.UserPrefs, error) {
	var prefs domain.UserPrefs
	var err error

	if p.QuietStart != "" {
		if prefs.QuietHours.Start, err = domain.ParseTimeOfDay(p.QuietStart); err != nil {
			return domain.UserPrefs{}, err
		}
	}
	if p.QuietEnd != "" {
		if prefs.QuietHours.End, err = domain.ParseTimeOfDay(p.QuietEnd); err != nil {
			return domain.UserPrefs{}, err
		}
	}

	for _, hb := range p.HardBlocks {
		block := domain.HardBlock{Label: hb.Label, Days: hb.Days}
		if block.Start, err = domain.ParseTimeOfDay(hb.Start); err != nil {
			return domain.UserPrefs{}, err
		}
		if block.End, err = domain.ParseTimeOfDay(hb.End); err != nil {
			return domain.UserPrefs{}, err
		}
		prefs.HardBlocks = append(prefs.HardBlocks, block)
	}

	prefs.MaxDayMinutes = p.MaxDayMin
	return prefs, nil
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTask),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTimeOfDay),
		errors.Is(err, domain.ErrCalendarNotLinked):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPlanNotFound),
		errors.Is(err, domain.ErrBlockNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrReplanLimitReached):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":   http.StatusText(status),
		"message": message,
	})
}

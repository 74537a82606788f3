package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raigen-dev/plan-scheduling/internal/service/budget"
)

type BudgetHandler struct {
	gate *budget.Gate
}

func NewBudgetHandler(gate *budget.Gate) *BudgetHandler {
	return &BudgetHandler{
		gate: gate,
	}
}

func (h *BudgetHandler) HandleCurrent(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	record, err := h.gate.Current(c.Request.Context(), userID)
	if err != nil {
		respondError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, record)
}

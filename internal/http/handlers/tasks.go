package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kairo-app/kairo-backend/internal/http/response"
	"github.com/kairo-app/kairo-backend/internal/pkg/ctxutil"
	apperrors "github.com/kairo-app/kairo-backend/internal/pkg/errors"
	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
	"github.com/kairo-app/kairo-backend/internal/planner"
	"github.com/kairo-app/kairo-backend/internal/services"
)

type TasksHandler struct {
	log        *logger.Logger
	dailyTasks services.DailyTaskService
}

func NewTasksHandler(log *logger.Logger, dailyTasks services.DailyTaskService) *TasksHandler {
	return &TasksHandler{
		log:        log.With("Handler", "TasksHandler"),
		dailyTasks: dailyTasks,
	}
}

// GetTodayTasks materializes today's tasks for the goal if needed and
// returns them. Safe to call on every page load.
func (h *TasksHandler) GetTodayTasks(c *gin.Context) {
	userID, goalID, ok := h.userAndParamID(c, "id")
	if !ok {
		return
	}
	rows, err := h.dailyTasks.ListTodayTasks(c.Request.Context(), userID, goalID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tasks": rows})
}

// EnsureTodayTasks is the explicit generation trigger; same semantics as
// GetTodayTasks, kept separate so clients can prefetch without rendering.
func (h *TasksHandler) EnsureTodayTasks(c *gin.Context) {
	userID, goalID, ok := h.userAndParamID(c, "id")
	if !ok {
		return
	}
	if err := h.dailyTasks.EnsureTodayTasks(c.Request.Context(), userID, goalID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// GetPlan returns the catalog-built recurring plan for the goal.
func (h *TasksHandler) GetPlan(c *gin.Context) {
	userID, goalID, ok := h.userAndParamID(c, "id")
	if !ok {
		return
	}
	tasks, err := h.dailyTasks.PlanTasks(c.Request.Context(), userID, goalID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"tasks": tasks})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TasksHandler) UpdateChallengeStatus(c *gin.Context) {
	userID, challengeID, ok := h.userAndParamID(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	updated, err := h.dailyTasks.UpdateStatus(c.Request.Context(), userID, challengeID, req.Status)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"challenge": updated})
}

type pickTaskRequest struct {
	// GoalID switches the pick to the goal's catalog-built plan; the flat
	// category/level/minutes fields drive the legacy library otherwise.
	GoalID   string `json:"goal_id"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Minutes  int    `json:"minutes"`
	History  []struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	} `json:"history"`
}

// PickTask is the synchronous single pick used right after goal creation,
// before the first materialization round-trip.
func (h *TasksHandler) PickTask(c *gin.Context) {
	var req pickTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if req.GoalID != "" {
		rd := ctxutil.GetRequestData(c.Request.Context())
		if rd == nil || rd.UserID == uuid.Nil {
			response.RespondError(c, http.StatusForbidden, "forbidden", fmt.Errorf("missing user context"))
			return
		}
		goalID, err := uuid.Parse(req.GoalID)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
			return
		}
		pick, err := h.dailyTasks.PickFromPlan(c.Request.Context(), rd.UserID, goalID)
		if err != nil {
			h.respondServiceError(c, err)
			return
		}
		response.RespondOK(c, gin.H{"task": pick})
		return
	}

	if req.Category == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("category or goal_id required"))
		return
	}
	history := make([]planner.HistoryEntry, 0, len(req.History))
	for _, entry := range req.History {
		history = append(history, planner.HistoryEntry{Kind: entry.Kind, Text: entry.Text})
	}
	pick := h.dailyTasks.PickTodayTask(c.Request.Context(), req.Category, req.Level, req.Minutes, history)
	response.RespondOK(c, gin.H{"task": pick})
}

func (h *TasksHandler) userAndParamID(c *gin.Context, param string) (uuid.UUID, uuid.UUID, bool) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusForbidden, "forbidden", fmt.Errorf("missing user context"))
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, uuid.Nil, false
	}
	return rd.UserID, id, true
}

func (h *TasksHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		response.RespondError(c, http.StatusConflict, "invalid_transition", err)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	default:
		h.log.Error("Request failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

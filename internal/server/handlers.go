package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/caliper/internal/bank"
	"github.com/abhisek/caliper/internal/store"
	"github.com/abhisek/caliper/internal/turn"
)

// ErrorResponse is the JSON error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handlers contains the HTTP handlers for the assessment API.
type Handlers struct {
	turns    *turn.Service
	grader   turn.Grader
	sessions store.SessionRepo
	events   store.EventRepo
}

// NewHandlers creates handlers for the given turn service and repos.
func NewHandlers(turns *turn.Service, grader turn.Grader, sessions store.SessionRepo, events store.EventRepo) *Handlers {
	return &Handlers{turns: turns, grader: grader, sessions: sessions, events: events}
}

// HandleTurn handles POST /v1/turn.
//
// Runs one turn submission: grades the answer, decides on a probe, and
// when the turn completes, updates ability and selects the next item.
func (h *Handlers) HandleTurn(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleTurn")

	var req turn.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	res, err := h.turns.Turn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "SESSION_NOT_FOUND"})
		case errors.Is(err, bank.ErrUnknownItem):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "UNKNOWN_ITEM"})
		default:
			logger.Error("turn failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "TURN_FAILED"})
		}
		return
	}

	logger.Info("turn processed",
		"session_id", res.SessionID,
		"phase", res.Phase,
		"item_id", req.ItemID,
		"final_label", res.FinalLabel)
	c.JSON(http.StatusOK, res)
}

// judgeRequest is the body for POST /v1/judge.
type judgeRequest struct {
	ItemID string `json:"item_id"`
	Answer string `json:"answer"`
}

// HandleJudge handles POST /v1/judge.
//
// Grades an answer without touching any session. Useful for inspecting
// what the judge would say before wiring it into a turn.
func (h *Handlers) HandleJudge(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleJudge")

	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	it, err := bank.ItemByID(req.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "UNKNOWN_ITEM"})
		return
	}

	m, err := h.grader.Grade(c.Request.Context(), it, bank.FeaturesFor(it.SchemaID), req.Answer)
	if err != nil {
		logger.Error("grading failed", "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error(), Code: "GRADING_FAILED"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// HandleListItems handles GET /v1/items.
func (h *Handlers) HandleListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": bank.Items()})
}

// HandleListSessions handles GET /v1/admin/sessions.
func (h *Handlers) HandleListSessions(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LIST_FAILED"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// HandleSessionTurns handles GET /v1/admin/sessions/:id/turns.
func (h *Handlers) HandleSessionTurns(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.sessions.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "SESSION_NOT_FOUND"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LIST_FAILED"})
		return
	}

	turns, err := h.events.ListTurns(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LIST_FAILED"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"turns": turns})
}

// HandleListLLMRequests handles GET /v1/admin/llm-requests.
func (h *Handlers) HandleListLLMRequests(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit", Code: "INVALID_REQUEST"})
			return
		}
		limit = n
	}

	events, err := h.events.ListLLMRequests(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LIST_FAILED"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": events})
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

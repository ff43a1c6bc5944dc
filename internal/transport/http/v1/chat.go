package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campushq/unidesk/internal/domain"
	"github.com/campushq/unidesk/internal/store"
)

// Chat runs one conversation turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
	}

	resp, err := h.service.ProcessQuery(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process query"})
	}
	return c.JSON(http.StatusOK, resp)
}

// ClearChat deletes a session's transcript and resets it to triage.
// POST /v1/chat/clear
func (h *Handler) ClearChat(c echo.Context) error {
	var req domain.ClearRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.SessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id is required"})
	}

	if err := h.service.ClearSession(c.Request().Context(), req.SessionID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to clear session"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"session_id": req.SessionID,
		"status":     "cleared",
	})
}

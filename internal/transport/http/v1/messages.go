package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushq/unidesk/internal/store"
)

// GetSessionMessages retrieves the full transcript for a session.
// GET /v1/sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")

	messages, err := h.service.SessionMessages(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list messages"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

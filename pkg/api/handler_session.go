package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/services"
)

// createSessionHandler handles POST /api/v1/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	session, err := s.sessions.CreateSession(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	sessions, err := s.sessions.ListSessions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// getSessionHandler handles GET /api/v1/sessions/:id. Returns the session
// row with its messages, todos, and, when a turn is live, the current
// stream snapshot.
func (s *Server) getSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	ctx := c.Request.Context()

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	messages, err := s.messages.ListMessages(ctx, sessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	todos, err := s.todos.List(ctx, sessionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := gin.H{
		"session":  session,
		"messages": messages,
		"todos":    todos,
	}
	if snap, err := s.streams.Get(ctx, sessionID); err == nil && snap.IsStreaming {
		resp["stream"] = snap
	} else if err != nil && !errors.Is(err, services.ErrNotFound) {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id.
func (s *Server) deleteSessionHandler(c *gin.Context) {
	if err := s.sessions.PurgeSessionData(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/models"
)

// sendMessageHandler handles POST /api/v1/sessions/:id/messages: persist
// the user message and flip the session to running atomically, then hand
// the turn to the executor. One in-flight turn per session: a concurrent
// send is rejected with 409 before any session state changes, and again
// at Submit if another send won the race in between.
func (s *Server) sendMessageHandler(c *gin.Context) {
	sessionID := c.Param("id")

	var req models.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if s.executor.Active(sessionID) {
		c.JSON(http.StatusConflict, gin.H{"error": "session already has an active turn"})
		return
	}

	msg, err := s.sessions.PrepareSend(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if err := s.publisher.PublishMessageCreated(c.Request.Context(), sessionID, events.MessageCreatedPayload{
		MessageID: msg.ID,
		Role:      models.RoleUser,
		Content:   msg.Content,
	}); err != nil {
		// The message is durable; the event is best effort.
		_ = err
	}

	if err := s.executor.Submit(sessionID, req.Message, models.TurnOptions{
		Model:           req.Model,
		AgentMode:       req.AgentMode,
		AlphaMode:       req.AlphaMode,
		ReasoningEffort: req.ReasoningEffort,
	}); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message_id": msg.ID, "status": models.StatusRunning})
}

// answerHandler handles POST /api/v1/sessions/:id/answer: the client's
// side of the question/plan rendezvous. Only pending_answer is written,
// so this cannot race the orchestrator's stream writes.
func (s *Server) answerHandler(c *gin.Context) {
	sessionID := c.Param("id")

	var answer models.Answer
	if err := c.ShouldBindJSON(&answer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if answer.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer is required"})
		return
	}

	if err := s.streams.AnswerQuestion(c.Request.Context(), sessionID, answer); err != nil {
		abortWithServiceError(c, err)
		return
	}

	if err := s.publisher.PublishStreamState(c.Request.Context(), sessionID, events.StreamStatePayload{
		Kind: events.StreamKindAnswer,
	}); err != nil {
		_ = err
	}

	c.Status(http.StatusAccepted)
}

// cancelHandler handles POST /api/v1/sessions/:id/cancel. The flag is
// cooperative: the orchestrator's poller and the tool layer observe it
// within a couple of seconds.
func (s *Server) cancelHandler(c *gin.Context) {
	if err := s.sessions.RequestCancel(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

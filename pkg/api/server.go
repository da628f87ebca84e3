// Package api exposes the HTTP surface: session CRUD, the send/answer/
// cancel endpoints that drive turns, health, and the WebSocket
// subscription endpoint.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stratuscode/stratuscode/pkg/database"
	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/services"
)

// TurnSubmitter starts a turn for a prepared session and reports which
// sessions currently have one in flight.
type TurnSubmitter interface {
	Submit(sessionID, userMessage string, opts models.TurnOptions) error
	Active(sessionID string) bool
}

// Server is the HTTP API server.
type Server struct {
	db          *database.Client
	sessions    *services.SessionService
	messages    *services.MessageService
	streams     *services.StreamService
	todos       *services.TodoService
	executor    TurnSubmitter
	connManager *events.ConnectionManager
	publisher   *events.EventPublisher

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	sessions *services.SessionService,
	messages *services.MessageService,
	streams *services.StreamService,
	todos *services.TodoService,
	executor TurnSubmitter,
	connManager *events.ConnectionManager,
	publisher *events.EventPublisher,
) *Server {
	return &Server{
		db:          db,
		sessions:    sessions,
		messages:    messages,
		streams:     streams,
		todos:       todos,
		executor:    executor,
		connManager: connManager,
		publisher:   publisher,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)

		v1.POST("/sessions", s.createSessionHandler)
		v1.GET("/sessions", s.listSessionsHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.DELETE("/sessions/:id", s.deleteSessionHandler)

		v1.POST("/sessions/:id/messages", s.sendMessageHandler)
		v1.POST("/sessions/:id/answer", s.answerHandler)
		v1.POST("/sessions/:id/cancel", s.cancelHandler)
	}

	r.GET("/ws", s.wsHandler)
	return r
}

// Start begins serving on addr, blocking until the server closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

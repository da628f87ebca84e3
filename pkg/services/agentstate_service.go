package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/stratuscode/stratuscode/ent"
	"github.com/stratuscode/stratuscode/ent/agentstate"
	"github.com/stratuscode/stratuscode/pkg/models"
)

// AgentStateService manages the single agent-state row per session: the
// LLM-visible history and mode carried between turns.
type AgentStateService struct {
	client *ent.Client
}

// NewAgentStateService creates a new AgentStateService
func NewAgentStateService(client *ent.Client) *AgentStateService {
	return &AgentStateService{client: client}
}

// Load returns the decoded agent state, or an empty build-mode state when
// the session has not completed a turn yet.
func (s *AgentStateService) Load(ctx context.Context, sessionID string) (*models.AgentStateData, error) {
	row, err := s.client.AgentState.Query().
		Where(agentstate.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &models.AgentStateData{AgentMode: models.AgentBuild}, nil
		}
		return nil, fmt.Errorf("failed to load agent state: %w", err)
	}

	var messages []models.ConversationMessage
	if row.SageMessages != "" {
		if err := json.Unmarshal([]byte(row.SageMessages), &messages); err != nil {
			return nil, fmt.Errorf("corrupt sage_messages: %w", err)
		}
	}
	return &models.AgentStateData{
		Messages:     messages,
		Summary:      row.Summary,
		PlanFilePath: row.PlanFilePath,
		AgentMode:    string(row.AgentMode),
	}, nil
}

// Save upserts the agent state at end of turn.
func (s *AgentStateService) Save(ctx context.Context, sessionID string, data *models.AgentStateData) error {
	raw, err := json.Marshal(data.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal sage messages: %w", err)
	}
	mode := data.AgentMode
	if mode == "" {
		mode = models.AgentBuild
	}

	n, err := s.client.AgentState.Update().
		Where(agentstate.SessionIDEQ(sessionID)).
		SetSageMessages(string(raw)).
		SetSummary(data.Summary).
		SetPlanFilePath(data.PlanFilePath).
		SetAgentMode(agentstate.AgentMode(mode)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update agent state: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.AgentState.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetSageMessages(string(raw)).
		SetSummary(data.Summary).
		SetPlanFilePath(data.PlanFilePath).
		SetAgentMode(agentstate.AgentMode(mode)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create agent state: %w", err)
	}
	return nil
}

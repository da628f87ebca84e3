// Package models defines plain request/response and domain structs shared
// across services, the orchestrator, and the API layer.
package models

import "encoding/json"

// Part kinds recorded in message parts and streaming-state parts.
const (
	PartText          = "text"
	PartReasoning     = "reasoning"
	PartToolCall      = "tool_call"
	PartSubagentStart = "subagent_start"
	PartSubagentEnd   = "subagent_end"
)

// Tool call status values.
const (
	ToolCallRunning   = "running"
	ToolCallCompleted = "completed"
)

// ToolCallRecord is one entry of a streaming state's ordered tool-call list.
type ToolCallRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Args   string `json:"args"`
	Result string `json:"result,omitempty"`
	Status string `json:"status"`
}

// Part is one element of a message's ordered parts array. Exactly one of
// the payload fields is meaningful, selected by Type.
type Part struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ToolCall *ToolCallRecord `json:"tool_call,omitempty"`
	Agent    string          `json:"agent,omitempty"`
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Type: PartText, Text: text}
}

// ReasoningPart builds a reasoning part.
func ReasoningPart(text string) Part {
	return Part{Type: PartReasoning, Text: text}
}

// ToolCallPart builds a tool_call part.
func ToolCallPart(tc ToolCallRecord) Part {
	return Part{Type: PartToolCall, ToolCall: &tc}
}

// PartsToMaps converts parts to the generic shape stored on the Message row.
func PartsToMaps(parts []Part) []map[string]interface{} {
	raw, err := json.Marshal(parts)
	if err != nil {
		return nil
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

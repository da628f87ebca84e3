package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/tools"
	inferencev1 "github.com/stratuscode/stratuscode/proto"
)

// maxIterations bounds the stream→tools→stream loop of one turn.
const maxIterations = 50

// GRPCEngine implements Engine by streaming from the inference sidecar
// and executing tool calls locally between iterations.
type GRPCEngine struct {
	conn   *grpc.ClientConn
	client inferencev1.InferenceServiceClient
	logger *slog.Logger
}

// NewGRPCEngine connects to the inference sidecar.
func NewGRPCEngine(addr string) (*GRPCEngine, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to inference service at %s: %w", addr, err)
	}
	return &GRPCEngine{
		conn:   conn,
		client: inferencev1.NewInferenceServiceClient(conn),
		logger: slog.With("component", "inference_engine"),
	}, nil
}

// Close releases the gRPC connection.
func (e *GRPCEngine) Close() error {
	return e.conn.Close()
}

// iterationOutput is what one model stream produced.
type iterationOutput struct {
	content   string
	toolCalls []models.ToolCall
	summary   string
	usage     models.TokenUsage
}

// ProcessTurn runs the full tool loop: stream the model, run any tool
// calls through the runner, feed results back, repeat until the model
// answers without tools.
func (e *GRPCEngine) ProcessTurn(ctx context.Context, input TurnInput, runner *tools.Runner, tc *tools.Context, cb Callbacks) (*TurnResult, error) {
	messages := append([]models.ConversationMessage(nil), input.Messages...)
	summary := input.Summary
	var usage models.TokenUsage
	newSummary := ""

	for iteration := 0; iteration < maxIterations; iteration++ {
		out, err := e.streamOnce(ctx, input, messages, summary, cb)
		if err != nil {
			return nil, err
		}

		usage.InputTokens += out.usage.InputTokens
		usage.OutputTokens += out.usage.OutputTokens
		if out.summary != "" {
			summary = out.summary
			newSummary = out.summary
		}

		messages = append(messages, models.ConversationMessage{
			Role:      models.RoleAssistant,
			Content:   out.content,
			ToolCalls: out.toolCalls,
		})

		if len(out.toolCalls) == 0 {
			return &TurnResult{
				Content:    out.content,
				Messages:   messages,
				NewSummary: newSummary,
				Usage:      usage,
			}, nil
		}

		for _, call := range out.toolCalls {
			if cb.OnToolCall != nil {
				if err := cb.OnToolCall(call); err != nil {
					return nil, err
				}
			}
			result, err := runner.Execute(ctx, call.Name, call.Arguments, tc)
			if err != nil {
				return nil, err
			}
			if cb.OnToolResult != nil {
				if err := cb.OnToolResult(call, result); err != nil {
					return nil, err
				}
			}
			messages = append(messages, models.ConversationMessage{
				Role:       models.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
	}

	return nil, fmt.Errorf("turn did not converge within %d iterations", maxIterations)
}

// streamOnce performs one Generate call and drains its stream.
func (e *GRPCEngine) streamOnce(ctx context.Context, input TurnInput, messages []models.ConversationMessage, summary string, cb Callbacks) (*iterationOutput, error) {
	stream, err := e.client.Generate(ctx, &inferencev1.GenerateRequest{
		SessionId:       input.SessionID,
		SystemPrompt:    input.SystemPrompt,
		Messages:        toProtoMessages(messages),
		Tools:           toProtoTools(input.Tools),
		Provider:        toProtoProvider(input.Provider),
		Summary:         summary,
		ContextWindow:   int32(input.ContextWindow),
		ReasoningEffort: input.ReasoningEffort,
	})
	if err != nil {
		return nil, fmt.Errorf("generate call failed: %w", err)
	}

	out := &iterationOutput{}
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("stream receive failed: %w", err)
		}

		switch c := resp.Content.(type) {
		case *inferencev1.GenerateResponse_Text:
			out.content += c.Text.Content
			if cb.OnToken != nil {
				cb.OnToken(c.Text.Content)
			}
		case *inferencev1.GenerateResponse_Thinking:
			if cb.OnReasoning != nil {
				cb.OnReasoning(c.Thinking.Content)
			}
		case *inferencev1.GenerateResponse_ToolCall:
			out.toolCalls = append(out.toolCalls, models.ToolCall{
				ID:        c.ToolCall.CallId,
				Name:      c.ToolCall.Name,
				Arguments: c.ToolCall.Arguments,
			})
		case *inferencev1.GenerateResponse_Summary:
			out.summary = c.Summary.Summary
		case *inferencev1.GenerateResponse_Usage:
			out.usage.InputTokens += int(c.Usage.InputTokens)
			out.usage.OutputTokens += int(c.Usage.OutputTokens)
		case *inferencev1.GenerateResponse_Error:
			err := fmt.Errorf("provider error [%s]: %s", c.Error.Code, c.Error.Message)
			if cb.OnError != nil {
				cb.OnError(err)
			}
			if !c.Error.Retryable {
				return nil, err
			}
			e.logger.Warn("Retryable provider error mid-stream", "code", c.Error.Code, "message", c.Error.Message)
		}
	}
}

func toProtoMessages(msgs []models.ConversationMessage) []*inferencev1.ConversationMessage {
	out := make([]*inferencev1.ConversationMessage, len(msgs))
	for i, m := range msgs {
		pm := &inferencev1.ConversationMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			pm.ToolCalls = append(pm.ToolCalls, &inferencev1.ToolCall{
				Id:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		out[i] = pm
	}
	return out
}

func toProtoTools(defs []tools.Definition) []*inferencev1.ToolDefinition {
	if len(defs) == 0 {
		return nil
	}
	out := make([]*inferencev1.ToolDefinition, len(defs))
	for i, d := range defs {
		out[i] = &inferencev1.ToolDefinition{
			Name:             d.Name,
			Description:      d.Description,
			ParametersSchema: d.ParametersSchema,
		}
	}
	return out
}

func toProtoProvider(p ProviderConfig) *inferencev1.ProviderConfig {
	return &inferencev1.ProviderConfig{
		Type:    p.Type,
		Model:   p.Model,
		ApiKey:  p.APIKey,
		BaseUrl: p.BaseURL,
		Headers: p.Headers,
	}
}

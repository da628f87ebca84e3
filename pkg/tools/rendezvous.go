package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/services"
)

// answerPollInterval paces the pending-answer poll while a question is
// outstanding.
const answerPollInterval = time.Second

// planExitApprove is the option string that flips the session into build
// mode.
const planExitApprove = "Approve & Start Building"

// awaitAnswer posts a question on the live stream and blocks until a
// client answers, the user cancels, or the rendezvous timeout fires. The
// question is cleared on every exit path.
func awaitAnswer(ctx context.Context, tc *Context, q models.Question) (string, error) {
	if tc.Streams == nil {
		return "", fmt.Errorf("stream store unavailable")
	}
	if err := tc.Streams.SetQuestion(ctx, tc.SessionID, q); err != nil {
		return "", fmt.Errorf("failed to post question: %w", err)
	}
	if tc.Notifier != nil {
		tc.Notifier.QuestionPosted(ctx, tc.SessionID, q)
	}

	clear := func() {
		clearCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tc.Streams.ClearQuestion(clearCtx, tc.SessionID); err != nil {
			tc.log().Warn("Failed to clear pending question", "session_id", tc.SessionID, "error", err)
		}
		if tc.Notifier != nil {
			tc.Notifier.QuestionCleared(clearCtx, tc.SessionID)
		}
	}

	ticker := time.NewTicker(answerPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			clear()
			return "", ctx.Err()
		case <-ticker.C:
		}

		if tc.cancelRequested(ctx) {
			clear()
			return "", ErrCancelled
		}

		raw, err := tc.Streams.PendingAnswer(ctx, tc.SessionID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				clear()
				return "", fmt.Errorf("live stream disappeared while waiting for an answer")
			}
			tc.log().Warn("Pending answer poll failed", "session_id", tc.SessionID, "error", err)
			continue
		}
		if raw != "" {
			clear()
			var a models.Answer
			if err := json.Unmarshal([]byte(raw), &a); err == nil && a.Answer != "" {
				return a.Answer, nil
			}
			return raw, nil
		}
	}
}

type questionArgs struct {
	Question string   `json:"question" jsonschema:"description=The question to put to the user"`
	Summary  string   `json:"summary,omitempty" jsonschema:"description=Short context shown alongside the question"`
	Options  []string `json:"options,omitempty" jsonschema:"description=Suggested answers the client may render as buttons"`
}

func newQuestionTool() (*Tool, error) {
	t, err := newTool("question",
		"Ask the user a question and wait for their answer. Blocks until answered or the turn is cancelled.",
		&questionArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a questionArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if strings.TrimSpace(a.Question) == "" {
				return nil, fmt.Errorf("question must not be empty")
			}

			answer, err := awaitAnswer(ctx, tc, models.Question{
				Type:     models.QuestionTypeUser,
				Question: a.Question,
				Summary:  a.Summary,
				Options:  a.Options,
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{"answer": answer}, nil
		})
	if err != nil {
		return nil, err
	}
	t.Timeout = rendezvousTimeout
	return t, nil
}

type planExitArgs struct {
	Summary string `json:"summary" jsonschema:"description=Summary of the plan the user is asked to approve"`
}

func newPlanExitTool() (*Tool, error) {
	t, err := newTool("plan_exit",
		"Present the finished plan for approval. On approval the session switches to build mode; otherwise the user's feedback is returned. Requires a todo list.",
		&planExitArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a planExitArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if tc.Todos != nil {
				count, err := tc.Todos.Count(ctx, tc.SessionID)
				if err != nil {
					return nil, err
				}
				if count == 0 {
					return nil, fmt.Errorf("write the implementation todos with todowrite before exiting plan mode")
				}
			}

			answer, err := awaitAnswer(ctx, tc, models.Question{
				Type:     models.QuestionTypePlanExit,
				Question: "The plan is ready. Approve it to start building, or request changes.",
				Summary:  a.Summary,
				Options:  []string{planExitApprove, "Request Changes"},
			})
			if err != nil {
				return nil, err
			}

			if answer == planExitApprove {
				return map[string]any{"approved": true, "modeSwitch": models.AgentBuild}, nil
			}
			return map[string]any{"approved": false, "feedback": answer}, nil
		})
	if err != nil {
		return nil, err
	}
	t.Timeout = rendezvousTimeout
	return t, nil
}

type planEnterArgs struct{}

func newPlanEnterTool() (*Tool, error) {
	return newTool("plan_enter",
		"Switch the session into plan mode. Subsequent writes are restricted to the plan file.",
		&planEnterArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			return map[string]any{"entered": true, "mode": models.AgentPlan}, nil
		})
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stratuscode/stratuscode/pkg/sandbox"
)

// confirmationRequired is returned as a normal tool result so the model
// can ask the user and call again with confirmed=true.
func confirmationRequired(action string) map[string]any {
	return map[string]any{
		"error":             fmt.Sprintf("%s requires explicit confirmation. Ask the user, then call again with confirmed=true.", action),
		"needsConfirmation": true,
	}
}

type gitCommitArgs struct {
	Message   string `json:"message" jsonschema:"description=Commit message"`
	Confirmed bool   `json:"confirmed,omitempty" jsonschema:"description=Must be true once the user has approved the commit"`
}

func newGitCommitTool() (*Tool, error) {
	return newTool("git_commit",
		"Stage all changes and commit them on the session branch. Requires confirmation unless alpha mode is enabled.",
		&gitCommitArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a gitCommitArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if strings.TrimSpace(a.Message) == "" {
				return nil, fmt.Errorf("message must not be empty")
			}
			if !a.Confirmed && !tc.AlphaMode {
				return confirmationRequired("git_commit"), nil
			}

			script := fmt.Sprintf("git add -A && git commit -m %s", shellQuoteArg(a.Message))
			res, err := shellExec(ctx, tc, script)
			if err != nil {
				return nil, err
			}
			if res.ExitCode != 0 {
				return nil, fmt.Errorf("commit failed (exit %d): %s", res.ExitCode, strings.TrimSpace(res.Stderr+res.Stdout))
			}
			return res.Stdout, nil
		})
}

type gitPushArgs struct {
	Confirmed bool `json:"confirmed,omitempty" jsonschema:"description=Must be true once the user has approved the push"`
}

func newGitPushTool() (*Tool, error) {
	return newTool("git_push",
		"Push the session branch to origin, setting the upstream. Requires confirmation unless alpha mode is enabled.",
		&gitPushArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a gitPushArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if !a.Confirmed && !tc.AlphaMode {
				return confirmationRequired("git_push"), nil
			}
			if tc.Sandbox == nil {
				return nil, fmt.Errorf("no sandbox attached to this session")
			}

			branch := sandbox.SessionBranch(tc.Sandbox.Info())
			res, err := shellExec(ctx, tc, fmt.Sprintf("git push -u origin %s", shellQuoteArg(branch)))
			if err != nil {
				return nil, err
			}
			if res.ExitCode != 0 {
				return nil, fmt.Errorf("push failed (exit %d): %s", res.ExitCode, strings.TrimSpace(res.Stderr))
			}
			return fmt.Sprintf("Pushed %s to origin.", branch), nil
		})
}

type prCreateArgs struct {
	Title     string `json:"title" jsonschema:"description=Pull request title"`
	Body      string `json:"body,omitempty" jsonschema:"description=Pull request description"`
	Confirmed bool   `json:"confirmed,omitempty" jsonschema:"description=Must be true once the user has approved opening the pull request"`
}

func newPRCreateTool() (*Tool, error) {
	return newTool("pr_create",
		"Open a pull request from the session branch against the base branch. Requires confirmation unless alpha mode is enabled.",
		&prCreateArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a prCreateArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if strings.TrimSpace(a.Title) == "" {
				return nil, fmt.Errorf("title must not be empty")
			}
			if !a.Confirmed && !tc.AlphaMode {
				return confirmationRequired("pr_create"), nil
			}
			if tc.Sandbox == nil {
				return nil, fmt.Errorf("no sandbox attached to this session")
			}

			info := tc.Sandbox.Info()
			script := fmt.Sprintf("GH_TOKEN=%s gh pr create --title %s --body %s --base %s --head %s",
				shellQuoteArg(tc.GitHubToken),
				shellQuoteArg(a.Title), shellQuoteArg(a.Body),
				shellQuoteArg(info.Branch), shellQuoteArg(sandbox.SessionBranch(info)))
			res, err := shellExec(ctx, tc, script)
			if err != nil {
				return nil, err
			}
			if res.ExitCode != 0 {
				return nil, fmt.Errorf("pr create failed (exit %d): %s", res.ExitCode, strings.TrimSpace(res.Stderr))
			}
			// gh prints the PR URL on success.
			return strings.TrimSpace(res.Stdout), nil
		})
}

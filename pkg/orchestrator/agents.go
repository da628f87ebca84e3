package orchestrator

import (
	"fmt"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/sandbox"
)

// AgentDefinition is one operating mode's persona and rules.
type AgentDefinition struct {
	Name   string
	Prompt string
}

var buildAgent = AgentDefinition{
	Name: models.AgentBuild,
	Prompt: `You are StratusCode, a software engineering agent working inside a cloned
git repository. You read, write and run code to complete the user's task.

Rules:
- Make changes directly with the editing tools; verify with bash.
- Keep the todo list current with todowrite as you work.
- Never commit, push or open a pull request without confirmation.
- Prefer small, reviewable changes over sweeping rewrites.`,
}

var planAgent = AgentDefinition{
	Name: models.AgentPlan,
	Prompt: `You are StratusCode in planning mode. Investigate the repository and
produce an implementation plan, but do not modify any source file.

Rules:
- Explore with read, grep, glob, ls and bash (read-only commands).
- Write the plan to the plan file; it is the only file you may edit.
- Record the implementation steps with todowrite.
- When the plan is complete, call plan_exit to ask for approval.`,
}

// agentFor resolves the definition for a mode, defaulting to build.
func agentFor(mode string) AgentDefinition {
	if mode == models.AgentPlan {
		return planAgent
	}
	return buildAgent
}

// planModeReminder is appended to the user's message while in plan mode.
const planModeReminder = "\n\n[Reminder: you are in plan mode. Do not modify source files; update the plan file and call plan_exit when ready.]"

// buildSwitchReminder is appended on the first build-mode turn after an
// approved plan.
const buildSwitchReminder = "\n\n[The plan was approved. You are now in build mode: implement the plan, working through the todo list.]"

// planFilePath is where a session's plan lives inside the sandbox.
func planFilePath(sessionID string) string {
	return fmt.Sprintf("%s/.stratuscode/plans/%s.md", sandbox.WorkDir, sessionID)
}

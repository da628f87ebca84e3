package orchestrator

import (
	"fmt"
	"strings"

	"github.com/stratuscode/stratuscode/pkg/sandbox"
	"github.com/stratuscode/stratuscode/pkg/tools"
)

// buildSystemPrompt assembles the turn's system prompt: agent persona,
// tool inventory, working directory, repository identity, and the
// permission posture.
func buildSystemPrompt(agent AgentDefinition, defs []tools.Definition, info sandbox.SessionInfo, alphaMode bool) string {
	var b strings.Builder

	b.WriteString(agent.Prompt)
	b.WriteString("\n\n## Tools\n")
	for _, d := range defs {
		fmt.Fprintf(&b, "- %s: %s\n", d.Name, d.Description)
	}

	fmt.Fprintf(&b, "\nThe repository is cloned at %s; all relative paths resolve there.\n", sandbox.WorkDir)

	b.WriteString("\n<repository>\n")
	fmt.Fprintf(&b, "owner: %s\n", info.Owner)
	fmt.Fprintf(&b, "repo: %s\n", info.Repo)
	fmt.Fprintf(&b, "base_branch: %s\n", info.Branch)
	fmt.Fprintf(&b, "working_branch: %s\n", sandbox.SessionBranch(info))
	fmt.Fprintf(&b, "remote: https://github.com/%s/%s.git\n", info.Owner, info.Repo)
	b.WriteString("</repository>\n")

	if alphaMode {
		b.WriteString("\n<alpha_mode>\nAlpha mode is enabled: git_commit, git_push and pr_create run without per-call confirmation.\n</alpha_mode>\n")
	} else {
		b.WriteString("\n<permissions>\ngit_commit, git_push and pr_create require the user's confirmation. Call them without confirmed=true first, relay the confirmation request, and only set confirmed=true after the user agrees.\n</permissions>\n")
	}

	return b.String()
}

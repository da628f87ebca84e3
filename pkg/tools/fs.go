package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/stratuscode/stratuscode/pkg/sandbox"
)

const (
	readDefaultLimit = 2000
	heredocDelimiter = "STRATUS_EOF"
)

// shellExec runs a shell script inside the session sandbox through the
// handle's gone-recovery wrapper.
func shellExec(ctx context.Context, tc *Context, script string) (*sandbox.CommandResult, error) {
	if tc.Sandbox == nil {
		return nil, fmt.Errorf("no sandbox attached to this session")
	}
	return tc.Sandbox.SafeExec(ctx, func(ctx context.Context, sb *sandbox.Sandbox) (*sandbox.CommandResult, error) {
		return sb.Shell(ctx, script)
	})
}

// resolvePath anchors relative paths at the repository root.
func resolvePath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return path.Join(sandbox.WorkDir, p)
}

// checkPlanModeWrite rejects writes outside the plan file while in plan
// mode.
func checkPlanModeWrite(tc *Context, target string) error {
	if tc.AgentMode != "plan" {
		return nil
	}
	if tc.PlanFilePath != "" && resolvePath(target) == tc.PlanFilePath {
		return nil
	}
	return fmt.Errorf("plan mode only permits writing the plan file %s; use plan_exit to start building", tc.PlanFilePath)
}

type bashArgs struct {
	Command string `json:"command" jsonschema:"description=The shell command to run from the repository root"`
}

func newBashTool() (*Tool, error) {
	t, err := newTool("bash",
		"Run a shell command in the repository working directory. Returns stdout, stderr and the exit code.",
		&bashArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a bashArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if strings.TrimSpace(a.Command) == "" {
				return nil, fmt.Errorf("command must not be empty")
			}
			res, err := shellExec(ctx, tc, a.Command)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"stdout":    res.Stdout,
				"stderr":    res.Stderr,
				"exit_code": res.ExitCode,
			}, nil
		})
	if err != nil {
		return nil, err
	}
	t.Timeout = 5 * time.Minute
	return t, nil
}

type readArgs struct {
	Path   string `json:"path" jsonschema:"description=File path, absolute or relative to the repository root"`
	Offset int    `json:"offset,omitempty" jsonschema:"description=1-indexed line to start reading from"`
	Limit  int    `json:"limit,omitempty" jsonschema:"description=Maximum number of lines to return (default 2000)"`
}

func newReadTool() (*Tool, error) {
	return newTool("read",
		"Read a file from the repository. Output is numbered like cat -n. Use offset and limit for large files.",
		&readArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a readArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			target := resolvePath(a.Path)
			res, err := shellExec(ctx, tc, fmt.Sprintf("cat %s", shellQuoteArg(target)))
			if err != nil {
				return nil, err
			}
			if res.ExitCode != 0 {
				return nil, fmt.Errorf("failed to read %s: %s", a.Path, strings.TrimSpace(res.Stderr))
			}
			return numberLines(res.Stdout, a.Offset, a.Limit), nil
		})
}

// numberLines renders a 1-indexed numbered window over the file content.
func numberLines(content string, offset, limit int) string {
	lines := strings.Split(content, "\n")
	// A trailing newline yields one phantom empty element.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	start := offset
	if start < 1 {
		start = 1
	}
	if start > len(lines) {
		return fmt.Sprintf("(file has %d lines; offset %d is past the end)", len(lines), start)
	}
	if limit <= 0 {
		limit = readDefaultLimit
	}
	end := start - 1 + limit
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start - 1; i < end; i++ {
		fmt.Fprintf(&b, "%6d\t%s\n", i+1, lines[i])
	}
	if end < len(lines) {
		fmt.Fprintf(&b, "... (%d more lines, use offset=%d to continue)\n", len(lines)-end, end+1)
	}
	return b.String()
}

type writeArgs struct {
	Path    string `json:"path" jsonschema:"description=File path, absolute or relative to the repository root"`
	Content string `json:"content" jsonschema:"description=Full file content to write"`
}

func newWriteTool() (*Tool, error) {
	return newTool("write_to_file",
		"Create or overwrite a file with the given content. Parent directories are created as needed.",
		&writeArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a writeArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if err := checkPlanModeWrite(tc, a.Path); err != nil {
				return nil, err
			}
			target := resolvePath(a.Path)
			body := strings.TrimSuffix(a.Content, "\n")
			delim := heredocFor(body)
			script := fmt.Sprintf("mkdir -p %s && cat > %s << '%s'\n%s\n%s",
				shellQuoteArg(path.Dir(target)), shellQuoteArg(target),
				delim, body, delim)
			res, err := shellExec(ctx, tc, script)
			if err != nil {
				return nil, err
			}
			if res.ExitCode != 0 {
				return nil, fmt.Errorf("failed to write %s: %s", a.Path, strings.TrimSpace(res.Stderr))
			}
			return fmt.Sprintf("Wrote %d bytes to %s", len(a.Content), a.Path), nil
		})
}

type lsArgs struct {
	Path string `json:"path,omitempty" jsonschema:"description=Directory to list (defaults to the repository root)"`
}

func newLsTool() (*Tool, error) {
	return newTool("ls",
		"List a directory in the repository.",
		&lsArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a lsArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			target := sandbox.WorkDir
			if a.Path != "" {
				target = resolvePath(a.Path)
			}
			res, err := shellExec(ctx, tc, fmt.Sprintf("ls -la %s", shellQuoteArg(target)))
			if err != nil {
				return nil, err
			}
			if res.ExitCode != 0 {
				return nil, fmt.Errorf("failed to list %s: %s", target, strings.TrimSpace(res.Stderr))
			}
			return res.Stdout, nil
		})
}

// shellQuoteArg single-quotes a string for safe shell interpolation.
func shellQuoteArg(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// heredocFor picks a heredoc delimiter that does not occur as a full
// line of the content, so arbitrary file bodies survive the write.
func heredocFor(content string) string {
	delim := heredocDelimiter
	for i := 1; containsLine(content, delim); i++ {
		delim = fmt.Sprintf("%s_%d", heredocDelimiter, i)
	}
	return delim
}

func containsLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if l == line {
			return true
		}
	}
	return false
}

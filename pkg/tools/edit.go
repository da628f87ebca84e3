package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type editArgs struct {
	Path       string `json:"path" jsonschema:"description=File path, absolute or relative to the repository root"`
	OldString  string `json:"old_string" jsonschema:"description=Exact text to replace; must be unique in the file unless replace_all"`
	NewString  string `json:"new_string" jsonschema:"description=Replacement text"`
	ReplaceAll bool   `json:"replace_all,omitempty" jsonschema:"description=Replace every occurrence instead of requiring uniqueness"`
}

type multiEditArgs struct {
	Path  string     `json:"path" jsonschema:"description=File path, absolute or relative to the repository root"`
	Edits []editSpec `json:"edits" jsonschema:"description=Edits applied in order; the file is written only if every edit succeeds"`
}

type editSpec struct {
	OldString  string `json:"old_string" jsonschema:"description=Exact text to replace"`
	NewString  string `json:"new_string" jsonschema:"description=Replacement text"`
	ReplaceAll bool   `json:"replace_all,omitempty" jsonschema:"description=Replace every occurrence"`
}

// applyEdit performs one substring replacement with uniqueness checks.
func applyEdit(content, oldString, newString string, replaceAll bool) (string, error) {
	if oldString == newString {
		return "", fmt.Errorf("old_string and new_string are identical")
	}
	if oldString == "" {
		return "", fmt.Errorf("old_string must not be empty")
	}

	count := strings.Count(content, oldString)
	if count == 0 {
		return "", fmt.Errorf("old_string not found in file")
	}
	if count > 1 && !replaceAll {
		return "", fmt.Errorf("old_string appears %d times; make it unique or set replace_all", count)
	}

	if replaceAll {
		return strings.ReplaceAll(content, oldString, newString), nil
	}
	return strings.Replace(content, oldString, newString, 1), nil
}

// readFileContent fetches raw file content from the sandbox.
func readFileContent(ctx context.Context, tc *Context, target string) (string, error) {
	res, err := shellExec(ctx, tc, fmt.Sprintf("cat %s", shellQuoteArg(target)))
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("failed to read %s: %s", target, strings.TrimSpace(res.Stderr))
	}
	return res.Stdout, nil
}

// writeFileContent writes content back through a quoted heredoc.
func writeFileContent(ctx context.Context, tc *Context, target, content string) error {
	body := strings.TrimSuffix(content, "\n")
	delim := heredocFor(body)
	script := fmt.Sprintf("cat > %s << '%s'\n%s\n%s",
		shellQuoteArg(target), delim, body, delim)
	res, err := shellExec(ctx, tc, script)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("failed to write %s: %s", target, strings.TrimSpace(res.Stderr))
	}
	return nil
}

func newEditTool() (*Tool, error) {
	return newTool("edit",
		"Replace an exact substring in a file. The old text must match exactly and be unique unless replace_all is set.",
		&editArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a editArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if err := checkPlanModeWrite(tc, a.Path); err != nil {
				return nil, err
			}
			target := resolvePath(a.Path)
			content, err := readFileContent(ctx, tc, target)
			if err != nil {
				return nil, err
			}
			updated, err := applyEdit(content, a.OldString, a.NewString, a.ReplaceAll)
			if err != nil {
				return nil, fmt.Errorf("edit of %s rejected: %w", a.Path, err)
			}
			if err := writeFileContent(ctx, tc, target, updated); err != nil {
				return nil, err
			}
			return fmt.Sprintf("Edited %s", a.Path), nil
		})
}

func newMultiEditTool() (*Tool, error) {
	return newTool("multi_edit",
		"Apply several substring replacements to one file atomically: if any edit fails, nothing is written.",
		&multiEditArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a multiEditArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if len(a.Edits) == 0 {
				return nil, fmt.Errorf("edits must not be empty")
			}
			if err := checkPlanModeWrite(tc, a.Path); err != nil {
				return nil, err
			}
			target := resolvePath(a.Path)
			content, err := readFileContent(ctx, tc, target)
			if err != nil {
				return nil, err
			}
			updated := content
			for i, e := range a.Edits {
				updated, err = applyEdit(updated, e.OldString, e.NewString, e.ReplaceAll)
				if err != nil {
					return nil, fmt.Errorf("edit %d of %s rejected, no changes applied: %w", i+1, a.Path, err)
				}
			}
			if err := writeFileContent(ctx, tc, target, updated); err != nil {
				return nil, err
			}
			return fmt.Sprintf("Applied %d edits to %s", len(a.Edits), a.Path), nil
		})
}

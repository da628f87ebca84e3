package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const globMaxResults = 100

// Directories never worth searching.
var searchExcludes = []string{"node_modules", ".git", "dist", "build"}

type grepArgs struct {
	Pattern      string   `json:"pattern" jsonschema:"description=Regular expression to search for"`
	Path         string   `json:"path,omitempty" jsonschema:"description=Directory to search (defaults to the repository root)"`
	MatchPerLine bool     `json:"match_per_line,omitempty" jsonschema:"description=Show matching lines with line numbers and context instead of just file names"`
	Globs        []string `json:"globs,omitempty" jsonschema:"description=Filename globs to include; prefix with ! to exclude"`
}

func newGrepTool() (*Tool, error) {
	return newTool("grep",
		"Search file contents with a regular expression. By default lists matching files; set match_per_line for line-level matches with context.",
		&grepArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a grepArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if a.Pattern == "" {
				return nil, fmt.Errorf("pattern must not be empty")
			}

			dir := resolvePath(a.Path)
			if a.Path == "" {
				dir = "."
			}

			flags := []string{"-r"}
			if a.MatchPerLine {
				flags = append(flags, "-n", "-C", "2")
			} else {
				flags = append(flags, "-l")
			}
			for _, g := range a.Globs {
				if rest, excluded := strings.CutPrefix(g, "!"); excluded {
					flags = append(flags, fmt.Sprintf("--exclude=%s", shellQuoteArg(rest)))
				} else {
					flags = append(flags, fmt.Sprintf("--include=%s", shellQuoteArg(g)))
				}
			}
			for _, d := range searchExcludes {
				flags = append(flags, fmt.Sprintf("--exclude-dir=%s", d))
			}

			script := fmt.Sprintf("grep %s -E %s %s",
				strings.Join(flags, " "), shellQuoteArg(a.Pattern), shellQuoteArg(dir))
			res, err := shellExec(ctx, tc, script)
			if err != nil {
				return nil, err
			}
			// Exit 1 means no matches, anything above is a real failure.
			if res.ExitCode > 1 {
				return nil, fmt.Errorf("grep failed: %s", strings.TrimSpace(res.Stderr))
			}
			if strings.TrimSpace(res.Stdout) == "" {
				return "No matches found.", nil
			}
			return res.Stdout, nil
		})
}

type globArgs struct {
	Pattern string `json:"pattern" jsonschema:"description=Filename glob, e.g. *.go or src/**/*.ts"`
	Path    string `json:"path,omitempty" jsonschema:"description=Directory to search (defaults to the repository root)"`
}

func newGlobTool() (*Tool, error) {
	return newTool("glob",
		"Find files by name pattern. Returns at most 100 paths; node_modules, .git, dist and build are skipped.",
		&globArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a globArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if a.Pattern == "" {
				return nil, fmt.Errorf("pattern must not be empty")
			}

			dir := resolvePath(a.Path)
			if a.Path == "" {
				dir = "."
			}

			// find matches on the basename; ** patterns fall back to the
			// last path element.
			name := a.Pattern
			if idx := strings.LastIndex(name, "/"); idx >= 0 {
				name = name[idx+1:]
			}

			var excludes []string
			for _, d := range searchExcludes {
				excludes = append(excludes, fmt.Sprintf("-not -path '*/%s/*'", d))
			}
			script := fmt.Sprintf("find %s -type f -name %s %s | head -%d",
				shellQuoteArg(dir), shellQuoteArg(name), strings.Join(excludes, " "), globMaxResults)

			res, err := shellExec(ctx, tc, script)
			if err != nil {
				return nil, err
			}
			if res.ExitCode != 0 {
				return nil, fmt.Errorf("find failed: %s", strings.TrimSpace(res.Stderr))
			}
			if strings.TrimSpace(res.Stdout) == "" {
				return "No files matched.", nil
			}
			return res.Stdout, nil
		})
}

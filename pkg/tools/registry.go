package tools

import (
	"fmt"
	"sort"
)

// Registry maps tool names to tools.
type Registry struct {
	tools map[string]*Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// register adds a tool, failing on duplicate names.
func (r *Registry) register(t *Tool) error {
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("duplicate tool name %q", t.Name)
	}
	r.tools[t.Name] = t
	return nil
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions returns all tool definitions, sorted by name for a stable
// system prompt.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, Definition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.SchemaJSON(),
		})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// BuildRegistry assembles the full tool set for a turn.
func BuildRegistry() (*Registry, error) {
	r := NewRegistry()

	builders := []func() (*Tool, error){
		newBashTool,
		newReadTool,
		newWriteTool,
		newEditTool,
		newMultiEditTool,
		newGrepTool,
		newGlobTool,
		newLsTool,
		newWebSearchTool,
		newWebFetchTool,
		newGitCommitTool,
		newGitPushTool,
		newPRCreateTool,
		newTodoReadTool,
		newTodoWriteTool,
		newQuestionTool,
		newPlanExitTool,
		newPlanEnterTool,
	}
	for _, build := range builders {
		t, err := build()
		if err != nil {
			return nil, err
		}
		if err := r.register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

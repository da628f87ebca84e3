// Package tools implements the tool dispatch layer: a registry of named
// tools with JSON-schema parameter contracts, and the execution pipeline
// (validate → timeout race → stringify/truncate → retry) the inference
// engine drives.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	// DefaultTimeout bounds a single tool execution attempt.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxResultSize caps the stringified result handed back to the
	// model.
	DefaultMaxResultSize = 100 * 1024

	// rendezvousTimeout applies to tools that block on a client answer.
	rendezvousTimeout = 24 * time.Hour
)

// ExecuteFunc runs a tool against already-validated raw JSON arguments.
type ExecuteFunc func(ctx context.Context, args json.RawMessage, tc *Context) (any, error)

// Tool is one registered tool.
type Tool struct {
	Name          string
	Description   string
	Timeout       time.Duration
	MaxResultSize int

	schemaJSON string
	compiled   *santhosh.Schema
	run        ExecuteFunc
}

// SchemaJSON returns the tool's parameter schema as a JSON string.
func (t *Tool) SchemaJSON() string {
	return t.schemaJSON
}

// newTool builds a Tool whose parameter schema is reflected from the args
// struct and compiled for validation.
func newTool(name, description string, argsType any, run ExecuteFunc) (*Tool, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(argsType)
	schema.Version = ""
	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema for tool %s: %w", name, err)
	}

	compiler := santhosh.NewCompiler()
	compiler.Draft = santhosh.Draft2020
	if err := compiler.AddResource(name+".json", bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource for tool %s: %w", name, err)
	}
	compiled, err := compiler.Compile(name + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema for tool %s: %w", name, err)
	}

	return &Tool{
		Name:          name,
		Description:   description,
		Timeout:       DefaultTimeout,
		MaxResultSize: DefaultMaxResultSize,
		schemaJSON:    string(schemaBytes),
		compiled:      compiled,
		run:           run,
	}, nil
}

// validate checks raw arguments against the compiled schema.
func (t *Tool) validate(argsJSON string) error {
	var v any
	if err := json.Unmarshal([]byte(argsJSON), &v); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if err := t.compiled.Validate(v); err != nil {
		return err
	}
	return nil
}

// Definition is the shape handed to the inference engine.
type Definition struct {
	Name             string
	Description      string
	ParametersSchema string
}

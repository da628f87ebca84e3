// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stratuscode/stratuscode/ent/session"
	"github.com/stratuscode/stratuscode/ent/streamingstate"
)

// StreamingStateCreate is the builder for creating a StreamingState entity.
type StreamingStateCreate struct {
	config
	mutation *StreamingStateMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *StreamingStateCreate) SetSessionID(v string) *StreamingStateCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *StreamingStateCreate) SetContent(v string) *StreamingStateCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillableContent(v *string) *StreamingStateCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *StreamingStateCreate) SetReasoning(v string) *StreamingStateCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillableReasoning(v *string) *StreamingStateCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *StreamingStateCreate) SetToolCalls(v string) *StreamingStateCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetNillableToolCalls sets the "tool_calls" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillableToolCalls(v *string) *StreamingStateCreate {
	if v != nil {
		_c.SetToolCalls(*v)
	}
	return _c
}

// SetParts sets the "parts" field.
func (_c *StreamingStateCreate) SetParts(v string) *StreamingStateCreate {
	_c.mutation.SetParts(v)
	return _c
}

// SetNillableParts sets the "parts" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillableParts(v *string) *StreamingStateCreate {
	if v != nil {
		_c.SetParts(*v)
	}
	return _c
}

// SetPendingQuestion sets the "pending_question" field.
func (_c *StreamingStateCreate) SetPendingQuestion(v string) *StreamingStateCreate {
	_c.mutation.SetPendingQuestion(v)
	return _c
}

// SetNillablePendingQuestion sets the "pending_question" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillablePendingQuestion(v *string) *StreamingStateCreate {
	if v != nil {
		_c.SetPendingQuestion(*v)
	}
	return _c
}

// SetPendingAnswer sets the "pending_answer" field.
func (_c *StreamingStateCreate) SetPendingAnswer(v string) *StreamingStateCreate {
	_c.mutation.SetPendingAnswer(v)
	return _c
}

// SetNillablePendingAnswer sets the "pending_answer" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillablePendingAnswer(v *string) *StreamingStateCreate {
	if v != nil {
		_c.SetPendingAnswer(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *StreamingStateCreate) SetStage(v string) *StreamingStateCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillableStage(v *string) *StreamingStateCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetIsStreaming sets the "is_streaming" field.
func (_c *StreamingStateCreate) SetIsStreaming(v bool) *StreamingStateCreate {
	_c.mutation.SetIsStreaming(v)
	return _c
}

// SetNillableIsStreaming sets the "is_streaming" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillableIsStreaming(v *bool) *StreamingStateCreate {
	if v != nil {
		_c.SetIsStreaming(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StreamingStateCreate) SetUpdatedAt(v time.Time) *StreamingStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StreamingStateCreate) SetNillableUpdatedAt(v *time.Time) *StreamingStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StreamingStateCreate) SetID(v string) *StreamingStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *StreamingStateCreate) SetSession(v *Session) *StreamingStateCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the StreamingStateMutation object of the builder.
func (_c *StreamingStateCreate) Mutation() *StreamingStateMutation {
	return _c.mutation
}

// Save creates the StreamingState in the database.
func (_c *StreamingStateCreate) Save(ctx context.Context) (*StreamingState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreamingStateCreate) SaveX(ctx context.Context) *StreamingState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamingStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamingStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StreamingStateCreate) defaults() {
	if _, ok := _c.mutation.Content(); !ok {
		v := streamingstate.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := streamingstate.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
	if _, ok := _c.mutation.ToolCalls(); !ok {
		v := streamingstate.DefaultToolCalls
		_c.mutation.SetToolCalls(v)
	}
	if _, ok := _c.mutation.Parts(); !ok {
		v := streamingstate.DefaultParts
		_c.mutation.SetParts(v)
	}
	if _, ok := _c.mutation.IsStreaming(); !ok {
		v := streamingstate.DefaultIsStreaming
		_c.mutation.SetIsStreaming(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := streamingstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreamingStateCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StreamingState.session_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "StreamingState.content"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "StreamingState.reasoning"`)}
	}
	if _, ok := _c.mutation.ToolCalls(); !ok {
		return &ValidationError{Name: "tool_calls", err: errors.New(`ent: missing required field "StreamingState.tool_calls"`)}
	}
	if _, ok := _c.mutation.Parts(); !ok {
		return &ValidationError{Name: "parts", err: errors.New(`ent: missing required field "StreamingState.parts"`)}
	}
	if _, ok := _c.mutation.IsStreaming(); !ok {
		return &ValidationError{Name: "is_streaming", err: errors.New(`ent: missing required field "StreamingState.is_streaming"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StreamingState.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "StreamingState.session"`)}
	}
	return nil
}

func (_c *StreamingStateCreate) sqlSave(ctx context.Context) (*StreamingState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StreamingState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StreamingStateCreate) createSpec() (*StreamingState, *sqlgraph.CreateSpec) {
	var (
		_node = &StreamingState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streamingstate.Table, sqlgraph.NewFieldSpec(streamingstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(streamingstate.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(streamingstate.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(streamingstate.FieldToolCalls, field.TypeString, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.Parts(); ok {
		_spec.SetField(streamingstate.FieldParts, field.TypeString, value)
		_node.Parts = value
	}
	if value, ok := _c.mutation.PendingQuestion(); ok {
		_spec.SetField(streamingstate.FieldPendingQuestion, field.TypeString, value)
		_node.PendingQuestion = &value
	}
	if value, ok := _c.mutation.PendingAnswer(); ok {
		_spec.SetField(streamingstate.FieldPendingAnswer, field.TypeString, value)
		_node.PendingAnswer = &value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(streamingstate.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.IsStreaming(); ok {
		_spec.SetField(streamingstate.FieldIsStreaming, field.TypeBool, value)
		_node.IsStreaming = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(streamingstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   streamingstate.SessionTable,
			Columns: []string{streamingstate.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StreamingStateCreateBulk is the builder for creating many StreamingState entities in bulk.
type StreamingStateCreateBulk struct {
	config
	err      error
	builders []*StreamingStateCreate
}

// Save creates the StreamingState entities in the database.
func (_c *StreamingStateCreateBulk) Save(ctx context.Context) ([]*StreamingState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StreamingState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreamingStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StreamingStateCreateBulk) SaveX(ctx context.Context) []*StreamingState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamingStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamingStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

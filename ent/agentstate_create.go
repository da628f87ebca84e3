// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stratuscode/stratuscode/ent/agentstate"
	"github.com/stratuscode/stratuscode/ent/session"
)

// AgentStateCreate is the builder for creating a AgentState entity.
type AgentStateCreate struct {
	config
	mutation *AgentStateMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentStateCreate) SetSessionID(v string) *AgentStateCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSageMessages sets the "sage_messages" field.
func (_c *AgentStateCreate) SetSageMessages(v string) *AgentStateCreate {
	_c.mutation.SetSageMessages(v)
	return _c
}

// SetNillableSageMessages sets the "sage_messages" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableSageMessages(v *string) *AgentStateCreate {
	if v != nil {
		_c.SetSageMessages(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AgentStateCreate) SetSummary(v string) *AgentStateCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableSummary(v *string) *AgentStateCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetPlanFilePath sets the "plan_file_path" field.
func (_c *AgentStateCreate) SetPlanFilePath(v string) *AgentStateCreate {
	_c.mutation.SetPlanFilePath(v)
	return _c
}

// SetNillablePlanFilePath sets the "plan_file_path" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillablePlanFilePath(v *string) *AgentStateCreate {
	if v != nil {
		_c.SetPlanFilePath(*v)
	}
	return _c
}

// SetAgentMode sets the "agent_mode" field.
func (_c *AgentStateCreate) SetAgentMode(v agentstate.AgentMode) *AgentStateCreate {
	_c.mutation.SetAgentMode(v)
	return _c
}

// SetNillableAgentMode sets the "agent_mode" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableAgentMode(v *agentstate.AgentMode) *AgentStateCreate {
	if v != nil {
		_c.SetAgentMode(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentStateCreate) SetUpdatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableUpdatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStateCreate) SetID(v string) *AgentStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *AgentStateCreate) SetSession(v *Session) *AgentStateCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgentStateMutation object of the builder.
func (_c *AgentStateCreate) Mutation() *AgentStateMutation {
	return _c.mutation
}

// Save creates the AgentState in the database.
func (_c *AgentStateCreate) Save(ctx context.Context) (*AgentState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStateCreate) SaveX(ctx context.Context) *AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStateCreate) defaults() {
	if _, ok := _c.mutation.SageMessages(); !ok {
		v := agentstate.DefaultSageMessages
		_c.mutation.SetSageMessages(v)
	}
	if _, ok := _c.mutation.AgentMode(); !ok {
		v := agentstate.DefaultAgentMode
		_c.mutation.SetAgentMode(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStateCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentState.session_id"`)}
	}
	if _, ok := _c.mutation.SageMessages(); !ok {
		return &ValidationError{Name: "sage_messages", err: errors.New(`ent: missing required field "AgentState.sage_messages"`)}
	}
	if _, ok := _c.mutation.AgentMode(); !ok {
		return &ValidationError{Name: "agent_mode", err: errors.New(`ent: missing required field "AgentState.agent_mode"`)}
	}
	if v, ok := _c.mutation.AgentMode(); ok {
		if err := agentstate.AgentModeValidator(v); err != nil {
			return &ValidationError{Name: "agent_mode", err: fmt.Errorf(`ent: validator failed for field "AgentState.agent_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentState.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentState.session"`)}
	}
	return nil
}

func (_c *AgentStateCreate) sqlSave(ctx context.Context) (*AgentState, error) {
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
			return nil, fmt.Errorf("unexpected AgentState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStateCreate) createSpec() (*AgentState, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstate.Table, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SageMessages(); ok {
		_spec.SetField(agentstate.FieldSageMessages, field.TypeString, value)
		_node.SageMessages = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(agentstate.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.PlanFilePath(); ok {
		_spec.SetField(agentstate.FieldPlanFilePath, field.TypeString, value)
		_node.PlanFilePath = value
	}
	if value, ok := _c.mutation.AgentMode(); ok {
		_spec.SetField(agentstate.FieldAgentMode, field.TypeEnum, value)
		_node.AgentMode = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   agentstate.SessionTable,
			Columns: []string{agentstate.SessionColumn},
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

// AgentStateCreateBulk is the builder for creating many AgentState entities in bulk.
type AgentStateCreateBulk struct {
	config
	err      error
	builders []*AgentStateCreate
}

// Save creates the AgentState entities in the database.
func (_c *AgentStateCreateBulk) Save(ctx context.Context) ([]*AgentState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStateMutation)
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
func (_c *AgentStateCreateBulk) SaveX(ctx context.Context) []*AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

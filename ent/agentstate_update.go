// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stratuscode/stratuscode/ent/agentstate"
	"github.com/stratuscode/stratuscode/ent/predicate"
	"github.com/stratuscode/stratuscode/ent/session"
)

// AgentStateUpdate is the builder for updating AgentState entities.
type AgentStateUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStateMutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdate) Where(ps ...predicate.AgentState) *AgentStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentStateUpdate) SetSessionID(v string) *AgentStateUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableSessionID(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSageMessages sets the "sage_messages" field.
func (_u *AgentStateUpdate) SetSageMessages(v string) *AgentStateUpdate {
	_u.mutation.SetSageMessages(v)
	return _u
}

// SetNillableSageMessages sets the "sage_messages" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableSageMessages(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetSageMessages(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AgentStateUpdate) SetSummary(v string) *AgentStateUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableSummary(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AgentStateUpdate) ClearSummary() *AgentStateUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetPlanFilePath sets the "plan_file_path" field.
func (_u *AgentStateUpdate) SetPlanFilePath(v string) *AgentStateUpdate {
	_u.mutation.SetPlanFilePath(v)
	return _u
}

// SetNillablePlanFilePath sets the "plan_file_path" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillablePlanFilePath(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetPlanFilePath(*v)
	}
	return _u
}

// ClearPlanFilePath clears the value of the "plan_file_path" field.
func (_u *AgentStateUpdate) ClearPlanFilePath() *AgentStateUpdate {
	_u.mutation.ClearPlanFilePath()
	return _u
}

// SetAgentMode sets the "agent_mode" field.
func (_u *AgentStateUpdate) SetAgentMode(v agentstate.AgentMode) *AgentStateUpdate {
	_u.mutation.SetAgentMode(v)
	return _u
}

// SetNillableAgentMode sets the "agent_mode" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableAgentMode(v *agentstate.AgentMode) *AgentStateUpdate {
	if v != nil {
		_u.SetAgentMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdate) SetUpdatedAt(v time.Time) *AgentStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *AgentStateUpdate) SetSession(v *Session) *AgentStateUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdate) Mutation() *AgentStateMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *AgentStateUpdate) ClearSession() *AgentStateUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdate) check() error {
	if v, ok := _u.mutation.AgentMode(); ok {
		if err := agentstate.AgentModeValidator(v); err != nil {
			return &ValidationError{Name: "agent_mode", err: fmt.Errorf(`ent: validator failed for field "AgentState.agent_mode": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentState.session"`)
	}
	return nil
}

func (_u *AgentStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SageMessages(); ok {
		_spec.SetField(agentstate.FieldSageMessages, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(agentstate.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(agentstate.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.PlanFilePath(); ok {
		_spec.SetField(agentstate.FieldPlanFilePath, field.TypeString, value)
	}
	if _u.mutation.PlanFilePathCleared() {
		_spec.ClearField(agentstate.FieldPlanFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.AgentMode(); ok {
		_spec.SetField(agentstate.FieldAgentMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStateUpdateOne is the builder for updating a single AgentState entity.
type AgentStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStateMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AgentStateUpdateOne) SetSessionID(v string) *AgentStateUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableSessionID(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSageMessages sets the "sage_messages" field.
func (_u *AgentStateUpdateOne) SetSageMessages(v string) *AgentStateUpdateOne {
	_u.mutation.SetSageMessages(v)
	return _u
}

// SetNillableSageMessages sets the "sage_messages" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableSageMessages(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetSageMessages(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *AgentStateUpdateOne) SetSummary(v string) *AgentStateUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableSummary(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *AgentStateUpdateOne) ClearSummary() *AgentStateUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetPlanFilePath sets the "plan_file_path" field.
func (_u *AgentStateUpdateOne) SetPlanFilePath(v string) *AgentStateUpdateOne {
	_u.mutation.SetPlanFilePath(v)
	return _u
}

// SetNillablePlanFilePath sets the "plan_file_path" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillablePlanFilePath(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetPlanFilePath(*v)
	}
	return _u
}

// ClearPlanFilePath clears the value of the "plan_file_path" field.
func (_u *AgentStateUpdateOne) ClearPlanFilePath() *AgentStateUpdateOne {
	_u.mutation.ClearPlanFilePath()
	return _u
}

// SetAgentMode sets the "agent_mode" field.
func (_u *AgentStateUpdateOne) SetAgentMode(v agentstate.AgentMode) *AgentStateUpdateOne {
	_u.mutation.SetAgentMode(v)
	return _u
}

// SetNillableAgentMode sets the "agent_mode" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableAgentMode(v *agentstate.AgentMode) *AgentStateUpdateOne {
	if v != nil {
		_u.SetAgentMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdateOne) SetUpdatedAt(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *AgentStateUpdateOne) SetSession(v *Session) *AgentStateUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdateOne) Mutation() *AgentStateMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *AgentStateUpdateOne) ClearSession() *AgentStateUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdateOne) Where(ps ...predicate.AgentState) *AgentStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStateUpdateOne) Select(field string, fields ...string) *AgentStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentState entity.
func (_u *AgentStateUpdateOne) Save(ctx context.Context) (*AgentState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdateOne) SaveX(ctx context.Context) *AgentState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdateOne) check() error {
	if v, ok := _u.mutation.AgentMode(); ok {
		if err := agentstate.AgentModeValidator(v); err != nil {
			return &ValidationError{Name: "agent_mode", err: fmt.Errorf(`ent: validator failed for field "AgentState.agent_mode": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentState.session"`)
	}
	return nil
}

func (_u *AgentStateUpdateOne) sqlSave(ctx context.Context) (_node *AgentState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstate.FieldID)
		for _, f := range fields {
			if !agentstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SageMessages(); ok {
		_spec.SetField(agentstate.FieldSageMessages, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(agentstate.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(agentstate.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.PlanFilePath(); ok {
		_spec.SetField(agentstate.FieldPlanFilePath, field.TypeString, value)
	}
	if _u.mutation.PlanFilePathCleared() {
		_spec.ClearField(agentstate.FieldPlanFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.AgentMode(); ok {
		_spec.SetField(agentstate.FieldAgentMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/stratuscode/stratuscode/ent/predicate"
	"github.com/stratuscode/stratuscode/ent/session"
	"github.com/stratuscode/stratuscode/ent/streamingstate"
)

// StreamingStateUpdate is the builder for updating StreamingState entities.
type StreamingStateUpdate struct {
	config
	hooks    []Hook
	mutation *StreamingStateMutation
}

// Where appends a list predicates to the StreamingStateUpdate builder.
func (_u *StreamingStateUpdate) Where(ps ...predicate.StreamingState) *StreamingStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StreamingStateUpdate) SetSessionID(v string) *StreamingStateUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableSessionID(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StreamingStateUpdate) SetContent(v string) *StreamingStateUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableContent(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *StreamingStateUpdate) SetReasoning(v string) *StreamingStateUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableReasoning(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *StreamingStateUpdate) SetToolCalls(v string) *StreamingStateUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// SetNillableToolCalls sets the "tool_calls" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableToolCalls(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetToolCalls(*v)
	}
	return _u
}

// SetParts sets the "parts" field.
func (_u *StreamingStateUpdate) SetParts(v string) *StreamingStateUpdate {
	_u.mutation.SetParts(v)
	return _u
}

// SetNillableParts sets the "parts" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableParts(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetParts(*v)
	}
	return _u
}

// SetPendingQuestion sets the "pending_question" field.
func (_u *StreamingStateUpdate) SetPendingQuestion(v string) *StreamingStateUpdate {
	_u.mutation.SetPendingQuestion(v)
	return _u
}

// SetNillablePendingQuestion sets the "pending_question" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillablePendingQuestion(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetPendingQuestion(*v)
	}
	return _u
}

// ClearPendingQuestion clears the value of the "pending_question" field.
func (_u *StreamingStateUpdate) ClearPendingQuestion() *StreamingStateUpdate {
	_u.mutation.ClearPendingQuestion()
	return _u
}

// SetPendingAnswer sets the "pending_answer" field.
func (_u *StreamingStateUpdate) SetPendingAnswer(v string) *StreamingStateUpdate {
	_u.mutation.SetPendingAnswer(v)
	return _u
}

// SetNillablePendingAnswer sets the "pending_answer" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillablePendingAnswer(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetPendingAnswer(*v)
	}
	return _u
}

// ClearPendingAnswer clears the value of the "pending_answer" field.
func (_u *StreamingStateUpdate) ClearPendingAnswer() *StreamingStateUpdate {
	_u.mutation.ClearPendingAnswer()
	return _u
}

// SetStage sets the "stage" field.
func (_u *StreamingStateUpdate) SetStage(v string) *StreamingStateUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableStage(v *string) *StreamingStateUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *StreamingStateUpdate) ClearStage() *StreamingStateUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetIsStreaming sets the "is_streaming" field.
func (_u *StreamingStateUpdate) SetIsStreaming(v bool) *StreamingStateUpdate {
	_u.mutation.SetIsStreaming(v)
	return _u
}

// SetNillableIsStreaming sets the "is_streaming" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableIsStreaming(v *bool) *StreamingStateUpdate {
	if v != nil {
		_u.SetIsStreaming(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StreamingStateUpdate) SetUpdatedAt(v time.Time) *StreamingStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StreamingStateUpdate) SetNillableUpdatedAt(v *time.Time) *StreamingStateUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *StreamingStateUpdate) SetSession(v *Session) *StreamingStateUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the StreamingStateMutation object of the builder.
func (_u *StreamingStateUpdate) Mutation() *StreamingStateMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *StreamingStateUpdate) ClearSession() *StreamingStateUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreamingStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamingStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreamingStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamingStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreamingStateUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StreamingState.session"`)
	}
	return nil
}

func (_u *StreamingStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streamingstate.Table, streamingstate.Columns, sqlgraph.NewFieldSpec(streamingstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(streamingstate.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(streamingstate.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(streamingstate.FieldToolCalls, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parts(); ok {
		_spec.SetField(streamingstate.FieldParts, field.TypeString, value)
	}
	if value, ok := _u.mutation.PendingQuestion(); ok {
		_spec.SetField(streamingstate.FieldPendingQuestion, field.TypeString, value)
	}
	if _u.mutation.PendingQuestionCleared() {
		_spec.ClearField(streamingstate.FieldPendingQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.PendingAnswer(); ok {
		_spec.SetField(streamingstate.FieldPendingAnswer, field.TypeString, value)
	}
	if _u.mutation.PendingAnswerCleared() {
		_spec.ClearField(streamingstate.FieldPendingAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(streamingstate.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(streamingstate.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.IsStreaming(); ok {
		_spec.SetField(streamingstate.FieldIsStreaming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(streamingstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamingstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreamingStateUpdateOne is the builder for updating a single StreamingState entity.
type StreamingStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreamingStateMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StreamingStateUpdateOne) SetSessionID(v string) *StreamingStateUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableSessionID(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StreamingStateUpdateOne) SetContent(v string) *StreamingStateUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableContent(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *StreamingStateUpdateOne) SetReasoning(v string) *StreamingStateUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableReasoning(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *StreamingStateUpdateOne) SetToolCalls(v string) *StreamingStateUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// SetNillableToolCalls sets the "tool_calls" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableToolCalls(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetToolCalls(*v)
	}
	return _u
}

// SetParts sets the "parts" field.
func (_u *StreamingStateUpdateOne) SetParts(v string) *StreamingStateUpdateOne {
	_u.mutation.SetParts(v)
	return _u
}

// SetNillableParts sets the "parts" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableParts(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetParts(*v)
	}
	return _u
}

// SetPendingQuestion sets the "pending_question" field.
func (_u *StreamingStateUpdateOne) SetPendingQuestion(v string) *StreamingStateUpdateOne {
	_u.mutation.SetPendingQuestion(v)
	return _u
}

// SetNillablePendingQuestion sets the "pending_question" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillablePendingQuestion(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetPendingQuestion(*v)
	}
	return _u
}

// ClearPendingQuestion clears the value of the "pending_question" field.
func (_u *StreamingStateUpdateOne) ClearPendingQuestion() *StreamingStateUpdateOne {
	_u.mutation.ClearPendingQuestion()
	return _u
}

// SetPendingAnswer sets the "pending_answer" field.
func (_u *StreamingStateUpdateOne) SetPendingAnswer(v string) *StreamingStateUpdateOne {
	_u.mutation.SetPendingAnswer(v)
	return _u
}

// SetNillablePendingAnswer sets the "pending_answer" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillablePendingAnswer(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetPendingAnswer(*v)
	}
	return _u
}

// ClearPendingAnswer clears the value of the "pending_answer" field.
func (_u *StreamingStateUpdateOne) ClearPendingAnswer() *StreamingStateUpdateOne {
	_u.mutation.ClearPendingAnswer()
	return _u
}

// SetStage sets the "stage" field.
func (_u *StreamingStateUpdateOne) SetStage(v string) *StreamingStateUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableStage(v *string) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *StreamingStateUpdateOne) ClearStage() *StreamingStateUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetIsStreaming sets the "is_streaming" field.
func (_u *StreamingStateUpdateOne) SetIsStreaming(v bool) *StreamingStateUpdateOne {
	_u.mutation.SetIsStreaming(v)
	return _u
}

// SetNillableIsStreaming sets the "is_streaming" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableIsStreaming(v *bool) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetIsStreaming(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StreamingStateUpdateOne) SetUpdatedAt(v time.Time) *StreamingStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StreamingStateUpdateOne) SetNillableUpdatedAt(v *time.Time) *StreamingStateUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *StreamingStateUpdateOne) SetSession(v *Session) *StreamingStateUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the StreamingStateMutation object of the builder.
func (_u *StreamingStateUpdateOne) Mutation() *StreamingStateMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *StreamingStateUpdateOne) ClearSession() *StreamingStateUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the StreamingStateUpdate builder.
func (_u *StreamingStateUpdateOne) Where(ps ...predicate.StreamingState) *StreamingStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreamingStateUpdateOne) Select(field string, fields ...string) *StreamingStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StreamingState entity.
func (_u *StreamingStateUpdateOne) Save(ctx context.Context) (*StreamingState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamingStateUpdateOne) SaveX(ctx context.Context) *StreamingState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreamingStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamingStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreamingStateUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StreamingState.session"`)
	}
	return nil
}

func (_u *StreamingStateUpdateOne) sqlSave(ctx context.Context) (_node *StreamingState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streamingstate.Table, streamingstate.Columns, sqlgraph.NewFieldSpec(streamingstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StreamingState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streamingstate.FieldID)
		for _, f := range fields {
			if !streamingstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streamingstate.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(streamingstate.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(streamingstate.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(streamingstate.FieldToolCalls, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parts(); ok {
		_spec.SetField(streamingstate.FieldParts, field.TypeString, value)
	}
	if value, ok := _u.mutation.PendingQuestion(); ok {
		_spec.SetField(streamingstate.FieldPendingQuestion, field.TypeString, value)
	}
	if _u.mutation.PendingQuestionCleared() {
		_spec.ClearField(streamingstate.FieldPendingQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.PendingAnswer(); ok {
		_spec.SetField(streamingstate.FieldPendingAnswer, field.TypeString, value)
	}
	if _u.mutation.PendingAnswerCleared() {
		_spec.ClearField(streamingstate.FieldPendingAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(streamingstate.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(streamingstate.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.IsStreaming(); ok {
		_spec.SetField(streamingstate.FieldIsStreaming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(streamingstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StreamingState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamingstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

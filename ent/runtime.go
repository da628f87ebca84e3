// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stratuscode/stratuscode/ent/agentstate"
	"github.com/stratuscode/stratuscode/ent/event"
	"github.com/stratuscode/stratuscode/ent/message"
	"github.com/stratuscode/stratuscode/ent/schema"
	"github.com/stratuscode/stratuscode/ent/session"
	"github.com/stratuscode/stratuscode/ent/streamingstate"
	"github.com/stratuscode/stratuscode/ent/todo"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentstateFields := schema.AgentState{}.Fields()
	_ = agentstateFields
	// agentstateDescSageMessages is the schema descriptor for sage_messages field.
	agentstateDescSageMessages := agentstateFields[2].Descriptor()
	// agentstate.DefaultSageMessages holds the default value on creation for the sage_messages field.
	agentstate.DefaultSageMessages = agentstateDescSageMessages.Default.(string)
	// agentstateDescUpdatedAt is the schema descriptor for updated_at field.
	agentstateDescUpdatedAt := agentstateFields[6].Descriptor()
	// agentstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentstate.DefaultUpdatedAt = agentstateDescUpdatedAt.Default.(func() time.Time)
	// agentstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentstate.UpdateDefaultUpdatedAt = agentstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescTitleGenerated is the schema descriptor for title_generated field.
	sessionDescTitleGenerated := sessionFields[12].Descriptor()
	// session.DefaultTitleGenerated holds the default value on creation for the title_generated field.
	session.DefaultTitleGenerated = sessionDescTitleGenerated.Default.(bool)
	// sessionDescCancelRequested is the schema descriptor for cancel_requested field.
	sessionDescCancelRequested := sessionFields[14].Descriptor()
	// session.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	session.DefaultCancelRequested = sessionDescCancelRequested.Default.(bool)
	// sessionDescHasChanges is the schema descriptor for has_changes field.
	sessionDescHasChanges := sessionFields[15].Descriptor()
	// session.DefaultHasChanges holds the default value on creation for the has_changes field.
	session.DefaultHasChanges = sessionDescHasChanges.Default.(bool)
	// sessionDescInputTokens is the schema descriptor for input_tokens field.
	sessionDescInputTokens := sessionFields[17].Descriptor()
	// session.DefaultInputTokens holds the default value on creation for the input_tokens field.
	session.DefaultInputTokens = sessionDescInputTokens.Default.(int)
	// sessionDescOutputTokens is the schema descriptor for output_tokens field.
	sessionDescOutputTokens := sessionFields[18].Descriptor()
	// session.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	session.DefaultOutputTokens = sessionDescOutputTokens.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[19].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[20].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	streamingstateFields := schema.StreamingState{}.Fields()
	_ = streamingstateFields
	// streamingstateDescContent is the schema descriptor for content field.
	streamingstateDescContent := streamingstateFields[2].Descriptor()
	// streamingstate.DefaultContent holds the default value on creation for the content field.
	streamingstate.DefaultContent = streamingstateDescContent.Default.(string)
	// streamingstateDescReasoning is the schema descriptor for reasoning field.
	streamingstateDescReasoning := streamingstateFields[3].Descriptor()
	// streamingstate.DefaultReasoning holds the default value on creation for the reasoning field.
	streamingstate.DefaultReasoning = streamingstateDescReasoning.Default.(string)
	// streamingstateDescToolCalls is the schema descriptor for tool_calls field.
	streamingstateDescToolCalls := streamingstateFields[4].Descriptor()
	// streamingstate.DefaultToolCalls holds the default value on creation for the tool_calls field.
	streamingstate.DefaultToolCalls = streamingstateDescToolCalls.Default.(string)
	// streamingstateDescParts is the schema descriptor for parts field.
	streamingstateDescParts := streamingstateFields[5].Descriptor()
	// streamingstate.DefaultParts holds the default value on creation for the parts field.
	streamingstate.DefaultParts = streamingstateDescParts.Default.(string)
	// streamingstateDescIsStreaming is the schema descriptor for is_streaming field.
	streamingstateDescIsStreaming := streamingstateFields[9].Descriptor()
	// streamingstate.DefaultIsStreaming holds the default value on creation for the is_streaming field.
	streamingstate.DefaultIsStreaming = streamingstateDescIsStreaming.Default.(bool)
	// streamingstateDescUpdatedAt is the schema descriptor for updated_at field.
	streamingstateDescUpdatedAt := streamingstateFields[10].Descriptor()
	// streamingstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	streamingstate.DefaultUpdatedAt = streamingstateDescUpdatedAt.Default.(func() time.Time)
	todoFields := schema.Todo{}.Fields()
	_ = todoFields
	// todoDescCreatedAt is the schema descriptor for created_at field.
	todoDescCreatedAt := todoFields[6].Descriptor()
	// todo.DefaultCreatedAt holds the default value on creation for the created_at field.
	todo.DefaultCreatedAt = todoDescCreatedAt.Default.(func() time.Time)
}

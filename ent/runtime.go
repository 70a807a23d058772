// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/smehta/examiner/ent/evaluationevent"
	"github.com/smehta/examiner/ent/llmrequestevent"
	"github.com/smehta/examiner/ent/overrideevent"
	"github.com/smehta/examiner/ent/schema"
	"github.com/smehta/examiner/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evaluationeventMixin := schema.EvaluationEvent{}.Mixin()
	evaluationeventMixinFields0 := evaluationeventMixin[0].Fields()
	_ = evaluationeventMixinFields0
	evaluationeventFields := schema.EvaluationEvent{}.Fields()
	_ = evaluationeventFields
	// evaluationeventDescTimestamp is the schema descriptor for timestamp field.
	evaluationeventDescTimestamp := evaluationeventMixinFields0[1].Descriptor()
	// evaluationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evaluationevent.DefaultTimestamp = evaluationeventDescTimestamp.Default.(func() time.Time)
	// evaluationeventDescRollNumber is the schema descriptor for roll_number field.
	evaluationeventDescRollNumber := evaluationeventFields[0].Descriptor()
	// evaluationevent.RollNumberValidator is a validator for the "roll_number" field. It is called by the builders before save.
	evaluationevent.RollNumberValidator = evaluationeventDescRollNumber.Validators[0].(func(string) error)
	// evaluationeventDescCourseCode is the schema descriptor for course_code field.
	evaluationeventDescCourseCode := evaluationeventFields[1].Descriptor()
	// evaluationevent.CourseCodeValidator is a validator for the "course_code" field. It is called by the builders before save.
	evaluationevent.CourseCodeValidator = evaluationeventDescCourseCode.Validators[0].(func(string) error)
	// evaluationeventDescQuestionNumber is the schema descriptor for question_number field.
	evaluationeventDescQuestionNumber := evaluationeventFields[2].Descriptor()
	// evaluationevent.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	evaluationevent.QuestionNumberValidator = evaluationeventDescQuestionNumber.Validators[0].(func(string) error)
	// evaluationeventDescQuestionType is the schema descriptor for question_type field.
	evaluationeventDescQuestionType := evaluationeventFields[3].Descriptor()
	// evaluationevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	evaluationevent.QuestionTypeValidator = evaluationeventDescQuestionType.Validators[0].(func(string) error)
	// evaluationeventDescModel is the schema descriptor for model field.
	evaluationeventDescModel := evaluationeventFields[11].Descriptor()
	// evaluationevent.DefaultModel holds the default value on creation for the model field.
	evaluationevent.DefaultModel = evaluationeventDescModel.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	overrideeventMixin := schema.OverrideEvent{}.Mixin()
	overrideeventMixinFields0 := overrideeventMixin[0].Fields()
	_ = overrideeventMixinFields0
	overrideeventFields := schema.OverrideEvent{}.Fields()
	_ = overrideeventFields
	// overrideeventDescTimestamp is the schema descriptor for timestamp field.
	overrideeventDescTimestamp := overrideeventMixinFields0[1].Descriptor()
	// overrideevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	overrideevent.DefaultTimestamp = overrideeventDescTimestamp.Default.(func() time.Time)
	// overrideeventDescRollNumber is the schema descriptor for roll_number field.
	overrideeventDescRollNumber := overrideeventFields[0].Descriptor()
	// overrideevent.RollNumberValidator is a validator for the "roll_number" field. It is called by the builders before save.
	overrideevent.RollNumberValidator = overrideeventDescRollNumber.Validators[0].(func(string) error)
	// overrideeventDescCourseCode is the schema descriptor for course_code field.
	overrideeventDescCourseCode := overrideeventFields[1].Descriptor()
	// overrideevent.CourseCodeValidator is a validator for the "course_code" field. It is called by the builders before save.
	overrideevent.CourseCodeValidator = overrideeventDescCourseCode.Validators[0].(func(string) error)
	// overrideeventDescQuestionNumber is the schema descriptor for question_number field.
	overrideeventDescQuestionNumber := overrideeventFields[2].Descriptor()
	// overrideevent.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	overrideevent.QuestionNumberValidator = overrideeventDescQuestionNumber.Validators[0].(func(string) error)
	// overrideeventDescQuestionType is the schema descriptor for question_type field.
	overrideeventDescQuestionType := overrideeventFields[3].Descriptor()
	// overrideevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	overrideevent.QuestionTypeValidator = overrideeventDescQuestionType.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/capturedesk/capturedesk/db/ent/schema"
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/gen/ent/processeditem"
	"github.com/capturedesk/capturedesk/gen/ent/session"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	captureinputFields := schema.CaptureInput{}.Fields()
	_ = captureinputFields
	// captureinputDescCreatedAt is the schema descriptor for created_at field.
	captureinputDescCreatedAt := captureinputFields[1].Descriptor()
	// captureinput.DefaultCreatedAt holds the default value on creation for the created_at field.
	captureinput.DefaultCreatedAt = captureinputDescCreatedAt.Default.(func() time.Time)
	// captureinputDescInputType is the schema descriptor for input_type field.
	captureinputDescInputType := captureinputFields[7].Descriptor()
	// captureinput.InputTypeValidator is a validator for the "input_type" field. It is called by the builders before save.
	captureinput.InputTypeValidator = func() func(string) error {
		validators := captureinputDescInputType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(input_type string) error {
			for _, fn := range fns {
				if err := fn(input_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// captureinputDescID is the schema descriptor for id field.
	captureinputDescID := captureinputFields[0].Descriptor()
	// captureinput.DefaultID holds the default value on creation for the id field.
	captureinput.DefaultID = captureinputDescID.Default.(func() uuid.UUID)
	processeditemFields := schema.ProcessedItem{}.Fields()
	_ = processeditemFields
	// processeditemDescStatus is the schema descriptor for status field.
	processeditemDescStatus := processeditemFields[11].Descriptor()
	// processeditem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processeditem.StatusValidator = func() func(string) error {
		validators := processeditemDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processeditemDescCreatedAt is the schema descriptor for created_at field.
	processeditemDescCreatedAt := processeditemFields[12].Descriptor()
	// processeditem.DefaultCreatedAt holds the default value on creation for the created_at field.
	processeditem.DefaultCreatedAt = processeditemDescCreatedAt.Default.(func() time.Time)
	// processeditemDescUpdatedAt is the schema descriptor for updated_at field.
	processeditemDescUpdatedAt := processeditemFields[13].Descriptor()
	// processeditem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processeditem.DefaultUpdatedAt = processeditemDescUpdatedAt.Default.(func() time.Time)
	// processeditem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processeditem.UpdateDefaultUpdatedAt = processeditemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// processeditemDescFailureCount is the schema descriptor for failure_count field.
	processeditemDescFailureCount := processeditemFields[15].Descriptor()
	// processeditem.DefaultFailureCount holds the default value on creation for the failure_count field.
	processeditem.DefaultFailureCount = processeditemDescFailureCount.Default.(int)
	// processeditem.FailureCountValidator is a validator for the "failure_count" field. It is called by the builders before save.
	processeditem.FailureCountValidator = processeditemDescFailureCount.Validators[0].(func(int) error)
	// processeditemDescPrice is the schema descriptor for price field.
	processeditemDescPrice := processeditemFields[24].Descriptor()
	// processeditem.DefaultPrice holds the default value on creation for the price field.
	processeditem.DefaultPrice = processeditemDescPrice.Default.(float64)
	// processeditemDescRating is the schema descriptor for rating field.
	processeditemDescRating := processeditemFields[25].Descriptor()
	// processeditem.DefaultRating holds the default value on creation for the rating field.
	processeditem.DefaultRating = processeditemDescRating.Default.(float64)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[3].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[4].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
}

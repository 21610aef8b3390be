// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/capturedesk/capturedesk/gen/ent/predicate"
	"github.com/capturedesk/capturedesk/gen/ent/processeditem"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/google/uuid"
)

// ProcessedItemUpdate is the builder for updating ProcessedItem entities.
type ProcessedItemUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedItemMutation
}

// Where appends a list predicates to the ProcessedItemUpdate builder.
func (_u *ProcessedItemUpdate) Where(ps ...predicate.ProcessedItem) *ProcessedItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *ProcessedItemUpdate) SetURL(v string) *ProcessedItemUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableURL(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ProcessedItemUpdate) ClearURL() *ProcessedItemUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProcessedItemUpdate) SetTitle(v string) *ProcessedItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableTitle(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ProcessedItemUpdate) ClearTitle() *ProcessedItemUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ProcessedItemUpdate) SetSummary(v string) *ProcessedItemUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableSummary(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ProcessedItemUpdate) ClearSummary() *ProcessedItemUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *ProcessedItemUpdate) SetEntityType(v string) *ProcessedItemUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableEntityType(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *ProcessedItemUpdate) ClearEntityType() *ProcessedItemUpdate {
	_u.mutation.ClearEntityType()
	return _u
}

// SetModality sets the "modality" field.
func (_u *ProcessedItemUpdate) SetModality(v string) *ProcessedItemUpdate {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableModality(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// ClearModality clears the value of the "modality" field.
func (_u *ProcessedItemUpdate) ClearModality() *ProcessedItemUpdate {
	_u.mutation.ClearModality()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ProcessedItemUpdate) SetTags(v []string) *ProcessedItemUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ProcessedItemUpdate) AppendTags(v []string) *ProcessedItemUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ProcessedItemUpdate) ClearTags() *ProcessedItemUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *ProcessedItemUpdate) SetCategories(v []string) *ProcessedItemUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *ProcessedItemUpdate) AppendCategories(v []string) *ProcessedItemUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *ProcessedItemUpdate) ClearCategories() *ProcessedItemUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetPurposes sets the "purposes" field.
func (_u *ProcessedItemUpdate) SetPurposes(v []string) *ProcessedItemUpdate {
	_u.mutation.SetPurposes(v)
	return _u
}

// AppendPurposes appends value to the "purposes" field.
func (_u *ProcessedItemUpdate) AppendPurposes(v []string) *ProcessedItemUpdate {
	_u.mutation.AppendPurposes(v)
	return _u
}

// ClearPurposes clears the value of the "purposes" field.
func (_u *ProcessedItemUpdate) ClearPurposes() *ProcessedItemUpdate {
	_u.mutation.ClearPurposes()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ProcessedItemUpdate) SetQuestions(v []string) *ProcessedItemUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ProcessedItemUpdate) AppendQuestions(v []string) *ProcessedItemUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *ProcessedItemUpdate) ClearQuestions() *ProcessedItemUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// SetStatements sets the "statements" field.
func (_u *ProcessedItemUpdate) SetStatements(v []entity.Statement) *ProcessedItemUpdate {
	_u.mutation.SetStatements(v)
	return _u
}

// AppendStatements appends value to the "statements" field.
func (_u *ProcessedItemUpdate) AppendStatements(v []entity.Statement) *ProcessedItemUpdate {
	_u.mutation.AppendStatements(v)
	return _u
}

// ClearStatements clears the value of the "statements" field.
func (_u *ProcessedItemUpdate) ClearStatements() *ProcessedItemUpdate {
	_u.mutation.ClearStatements()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessedItemUpdate) SetStatus(v string) *ProcessedItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableStatus(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessedItemUpdate) SetUpdatedAt(v time.Time) *ProcessedItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastProcessed sets the "last_processed" field.
func (_u *ProcessedItemUpdate) SetLastProcessed(v time.Time) *ProcessedItemUpdate {
	_u.mutation.SetLastProcessed(v)
	return _u
}

// SetNillableLastProcessed sets the "last_processed" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableLastProcessed(v *time.Time) *ProcessedItemUpdate {
	if v != nil {
		_u.SetLastProcessed(*v)
	}
	return _u
}

// ClearLastProcessed clears the value of the "last_processed" field.
func (_u *ProcessedItemUpdate) ClearLastProcessed() *ProcessedItemUpdate {
	_u.mutation.ClearLastProcessed()
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ProcessedItemUpdate) SetFailureCount(v int) *ProcessedItemUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableFailureCount(v *int) *ProcessedItemUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ProcessedItemUpdate) AddFailureCount(v int) *ProcessedItemUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetProcessingLog sets the "processing_log" field.
func (_u *ProcessedItemUpdate) SetProcessingLog(v []entity.LogEntry) *ProcessedItemUpdate {
	_u.mutation.SetProcessingLog(v)
	return _u
}

// AppendProcessingLog appends value to the "processing_log" field.
func (_u *ProcessedItemUpdate) AppendProcessingLog(v []entity.LogEntry) *ProcessedItemUpdate {
	_u.mutation.AppendProcessingLog(v)
	return _u
}

// ClearProcessingLog clears the value of the "processing_log" field.
func (_u *ProcessedItemUpdate) ClearProcessingLog() *ProcessedItemUpdate {
	_u.mutation.ClearProcessingLog()
	return _u
}

// SetWeather sets the "weather" field.
func (_u *ProcessedItemUpdate) SetWeather(v *entity.WeatherContext) *ProcessedItemUpdate {
	_u.mutation.SetWeather(v)
	return _u
}

// ClearWeather clears the value of the "weather" field.
func (_u *ProcessedItemUpdate) ClearWeather() *ProcessedItemUpdate {
	_u.mutation.ClearWeather()
	return _u
}

// SetActivity sets the "activity" field.
func (_u *ProcessedItemUpdate) SetActivity(v *entity.ActivityContext) *ProcessedItemUpdate {
	_u.mutation.SetActivity(v)
	return _u
}

// ClearActivity clears the value of the "activity" field.
func (_u *ProcessedItemUpdate) ClearActivity() *ProcessedItemUpdate {
	_u.mutation.ClearActivity()
	return _u
}

// SetPlace sets the "place" field.
func (_u *ProcessedItemUpdate) SetPlace(v *entity.PlaceContext) *ProcessedItemUpdate {
	_u.mutation.SetPlace(v)
	return _u
}

// ClearPlace clears the value of the "place" field.
func (_u *ProcessedItemUpdate) ClearPlace() *ProcessedItemUpdate {
	_u.mutation.ClearPlace()
	return _u
}

// SetWeb sets the "web" field.
func (_u *ProcessedItemUpdate) SetWeb(v *entity.WebContext) *ProcessedItemUpdate {
	_u.mutation.SetWeb(v)
	return _u
}

// ClearWeb clears the value of the "web" field.
func (_u *ProcessedItemUpdate) ClearWeb() *ProcessedItemUpdate {
	_u.mutation.ClearWeb()
	return _u
}

// SetDocument sets the "document" field.
func (_u *ProcessedItemUpdate) SetDocument(v *entity.DocumentContext) *ProcessedItemUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// ClearDocument clears the value of the "document" field.
func (_u *ProcessedItemUpdate) ClearDocument() *ProcessedItemUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// SetQrCode sets the "qr_code" field.
func (_u *ProcessedItemUpdate) SetQrCode(v *entity.QRCodeContext) *ProcessedItemUpdate {
	_u.mutation.SetQrCode(v)
	return _u
}

// ClearQrCode clears the value of the "qr_code" field.
func (_u *ProcessedItemUpdate) ClearQrCode() *ProcessedItemUpdate {
	_u.mutation.ClearQrCode()
	return _u
}

// SetCoverImagePath sets the "cover_image_path" field.
func (_u *ProcessedItemUpdate) SetCoverImagePath(v string) *ProcessedItemUpdate {
	_u.mutation.SetCoverImagePath(v)
	return _u
}

// SetNillableCoverImagePath sets the "cover_image_path" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableCoverImagePath(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetCoverImagePath(*v)
	}
	return _u
}

// ClearCoverImagePath clears the value of the "cover_image_path" field.
func (_u *ProcessedItemUpdate) ClearCoverImagePath() *ProcessedItemUpdate {
	_u.mutation.ClearCoverImagePath()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProcessedItemUpdate) SetPrice(v float64) *ProcessedItemUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillablePrice(v *float64) *ProcessedItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProcessedItemUpdate) AddPrice(v float64) *ProcessedItemUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *ProcessedItemUpdate) SetRating(v float64) *ProcessedItemUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableRating(v *float64) *ProcessedItemUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ProcessedItemUpdate) AddRating(v float64) *ProcessedItemUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProcessedItemUpdate) SetSessionID(v string) *ProcessedItemUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableSessionID(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ProcessedItemUpdate) ClearSessionID() *ProcessedItemUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ProcessedItemUpdate) SetParentID(v uuid.UUID) *ProcessedItemUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableParentID(v *uuid.UUID) *ProcessedItemUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ProcessedItemUpdate) ClearParentID() *ProcessedItemUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetMasterCaptureID sets the "master_capture_id" field.
func (_u *ProcessedItemUpdate) SetMasterCaptureID(v string) *ProcessedItemUpdate {
	_u.mutation.SetMasterCaptureID(v)
	return _u
}

// SetNillableMasterCaptureID sets the "master_capture_id" field if the given value is not nil.
func (_u *ProcessedItemUpdate) SetNillableMasterCaptureID(v *string) *ProcessedItemUpdate {
	if v != nil {
		_u.SetMasterCaptureID(*v)
	}
	return _u
}

// ClearMasterCaptureID clears the value of the "master_capture_id" field.
func (_u *ProcessedItemUpdate) ClearMasterCaptureID() *ProcessedItemUpdate {
	_u.mutation.ClearMasterCaptureID()
	return _u
}

// Mutation returns the ProcessedItemMutation object of the builder.
func (_u *ProcessedItemUpdate) Mutation() *ProcessedItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessedItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processeditem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processeditem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := processeditem.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedItem.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processeditem.Table, processeditem.Columns, sqlgraph.NewFieldSpec(processeditem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(processeditem.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(processeditem.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(processeditem.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(processeditem.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(processeditem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(processeditem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(processeditem.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(processeditem.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(processeditem.FieldModality, field.TypeString, value)
	}
	if _u.mutation.ModalityCleared() {
		_spec.ClearField(processeditem.FieldModality, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(processeditem.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(processeditem.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(processeditem.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(processeditem.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Purposes(); ok {
		_spec.SetField(processeditem.FieldPurposes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPurposes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldPurposes, value)
		})
	}
	if _u.mutation.PurposesCleared() {
		_spec.ClearField(processeditem.FieldPurposes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(processeditem.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(processeditem.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Statements(); ok {
		_spec.SetField(processeditem.FieldStatements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldStatements, value)
		})
	}
	if _u.mutation.StatementsCleared() {
		_spec.ClearField(processeditem.FieldStatements, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processeditem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processeditem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastProcessed(); ok {
		_spec.SetField(processeditem.FieldLastProcessed, field.TypeTime, value)
	}
	if _u.mutation.LastProcessedCleared() {
		_spec.ClearField(processeditem.FieldLastProcessed, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(processeditem.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(processeditem.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingLog(); ok {
		_spec.SetField(processeditem.FieldProcessingLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldProcessingLog, value)
		})
	}
	if _u.mutation.ProcessingLogCleared() {
		_spec.ClearField(processeditem.FieldProcessingLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weather(); ok {
		_spec.SetField(processeditem.FieldWeather, field.TypeJSON, value)
	}
	if _u.mutation.WeatherCleared() {
		_spec.ClearField(processeditem.FieldWeather, field.TypeJSON)
	}
	if value, ok := _u.mutation.Activity(); ok {
		_spec.SetField(processeditem.FieldActivity, field.TypeJSON, value)
	}
	if _u.mutation.ActivityCleared() {
		_spec.ClearField(processeditem.FieldActivity, field.TypeJSON)
	}
	if value, ok := _u.mutation.Place(); ok {
		_spec.SetField(processeditem.FieldPlace, field.TypeJSON, value)
	}
	if _u.mutation.PlaceCleared() {
		_spec.ClearField(processeditem.FieldPlace, field.TypeJSON)
	}
	if value, ok := _u.mutation.Web(); ok {
		_spec.SetField(processeditem.FieldWeb, field.TypeJSON, value)
	}
	if _u.mutation.WebCleared() {
		_spec.ClearField(processeditem.FieldWeb, field.TypeJSON)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(processeditem.FieldDocument, field.TypeJSON, value)
	}
	if _u.mutation.DocumentCleared() {
		_spec.ClearField(processeditem.FieldDocument, field.TypeJSON)
	}
	if value, ok := _u.mutation.QrCode(); ok {
		_spec.SetField(processeditem.FieldQrCode, field.TypeJSON, value)
	}
	if _u.mutation.QrCodeCleared() {
		_spec.ClearField(processeditem.FieldQrCode, field.TypeJSON)
	}
	if value, ok := _u.mutation.CoverImagePath(); ok {
		_spec.SetField(processeditem.FieldCoverImagePath, field.TypeString, value)
	}
	if _u.mutation.CoverImagePathCleared() {
		_spec.ClearField(processeditem.FieldCoverImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(processeditem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(processeditem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(processeditem.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(processeditem.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(processeditem.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(processeditem.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(processeditem.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(processeditem.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MasterCaptureID(); ok {
		_spec.SetField(processeditem.FieldMasterCaptureID, field.TypeString, value)
	}
	if _u.mutation.MasterCaptureIDCleared() {
		_spec.ClearField(processeditem.FieldMasterCaptureID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processeditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedItemUpdateOne is the builder for updating a single ProcessedItem entity.
type ProcessedItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedItemMutation
}

// SetURL sets the "url" field.
func (_u *ProcessedItemUpdateOne) SetURL(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableURL(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ProcessedItemUpdateOne) ClearURL() *ProcessedItemUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProcessedItemUpdateOne) SetTitle(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableTitle(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ProcessedItemUpdateOne) ClearTitle() *ProcessedItemUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ProcessedItemUpdateOne) SetSummary(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableSummary(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ProcessedItemUpdateOne) ClearSummary() *ProcessedItemUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *ProcessedItemUpdateOne) SetEntityType(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableEntityType(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *ProcessedItemUpdateOne) ClearEntityType() *ProcessedItemUpdateOne {
	_u.mutation.ClearEntityType()
	return _u
}

// SetModality sets the "modality" field.
func (_u *ProcessedItemUpdateOne) SetModality(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableModality(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// ClearModality clears the value of the "modality" field.
func (_u *ProcessedItemUpdateOne) ClearModality() *ProcessedItemUpdateOne {
	_u.mutation.ClearModality()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ProcessedItemUpdateOne) SetTags(v []string) *ProcessedItemUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ProcessedItemUpdateOne) AppendTags(v []string) *ProcessedItemUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ProcessedItemUpdateOne) ClearTags() *ProcessedItemUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *ProcessedItemUpdateOne) SetCategories(v []string) *ProcessedItemUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *ProcessedItemUpdateOne) AppendCategories(v []string) *ProcessedItemUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *ProcessedItemUpdateOne) ClearCategories() *ProcessedItemUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetPurposes sets the "purposes" field.
func (_u *ProcessedItemUpdateOne) SetPurposes(v []string) *ProcessedItemUpdateOne {
	_u.mutation.SetPurposes(v)
	return _u
}

// AppendPurposes appends value to the "purposes" field.
func (_u *ProcessedItemUpdateOne) AppendPurposes(v []string) *ProcessedItemUpdateOne {
	_u.mutation.AppendPurposes(v)
	return _u
}

// ClearPurposes clears the value of the "purposes" field.
func (_u *ProcessedItemUpdateOne) ClearPurposes() *ProcessedItemUpdateOne {
	_u.mutation.ClearPurposes()
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ProcessedItemUpdateOne) SetQuestions(v []string) *ProcessedItemUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ProcessedItemUpdateOne) AppendQuestions(v []string) *ProcessedItemUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *ProcessedItemUpdateOne) ClearQuestions() *ProcessedItemUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// SetStatements sets the "statements" field.
func (_u *ProcessedItemUpdateOne) SetStatements(v []entity.Statement) *ProcessedItemUpdateOne {
	_u.mutation.SetStatements(v)
	return _u
}

// AppendStatements appends value to the "statements" field.
func (_u *ProcessedItemUpdateOne) AppendStatements(v []entity.Statement) *ProcessedItemUpdateOne {
	_u.mutation.AppendStatements(v)
	return _u
}

// ClearStatements clears the value of the "statements" field.
func (_u *ProcessedItemUpdateOne) ClearStatements() *ProcessedItemUpdateOne {
	_u.mutation.ClearStatements()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessedItemUpdateOne) SetStatus(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableStatus(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessedItemUpdateOne) SetUpdatedAt(v time.Time) *ProcessedItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastProcessed sets the "last_processed" field.
func (_u *ProcessedItemUpdateOne) SetLastProcessed(v time.Time) *ProcessedItemUpdateOne {
	_u.mutation.SetLastProcessed(v)
	return _u
}

// SetNillableLastProcessed sets the "last_processed" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableLastProcessed(v *time.Time) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetLastProcessed(*v)
	}
	return _u
}

// ClearLastProcessed clears the value of the "last_processed" field.
func (_u *ProcessedItemUpdateOne) ClearLastProcessed() *ProcessedItemUpdateOne {
	_u.mutation.ClearLastProcessed()
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *ProcessedItemUpdateOne) SetFailureCount(v int) *ProcessedItemUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableFailureCount(v *int) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *ProcessedItemUpdateOne) AddFailureCount(v int) *ProcessedItemUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetProcessingLog sets the "processing_log" field.
func (_u *ProcessedItemUpdateOne) SetProcessingLog(v []entity.LogEntry) *ProcessedItemUpdateOne {
	_u.mutation.SetProcessingLog(v)
	return _u
}

// AppendProcessingLog appends value to the "processing_log" field.
func (_u *ProcessedItemUpdateOne) AppendProcessingLog(v []entity.LogEntry) *ProcessedItemUpdateOne {
	_u.mutation.AppendProcessingLog(v)
	return _u
}

// ClearProcessingLog clears the value of the "processing_log" field.
func (_u *ProcessedItemUpdateOne) ClearProcessingLog() *ProcessedItemUpdateOne {
	_u.mutation.ClearProcessingLog()
	return _u
}

// SetWeather sets the "weather" field.
func (_u *ProcessedItemUpdateOne) SetWeather(v *entity.WeatherContext) *ProcessedItemUpdateOne {
	_u.mutation.SetWeather(v)
	return _u
}

// ClearWeather clears the value of the "weather" field.
func (_u *ProcessedItemUpdateOne) ClearWeather() *ProcessedItemUpdateOne {
	_u.mutation.ClearWeather()
	return _u
}

// SetActivity sets the "activity" field.
func (_u *ProcessedItemUpdateOne) SetActivity(v *entity.ActivityContext) *ProcessedItemUpdateOne {
	_u.mutation.SetActivity(v)
	return _u
}

// ClearActivity clears the value of the "activity" field.
func (_u *ProcessedItemUpdateOne) ClearActivity() *ProcessedItemUpdateOne {
	_u.mutation.ClearActivity()
	return _u
}

// SetPlace sets the "place" field.
func (_u *ProcessedItemUpdateOne) SetPlace(v *entity.PlaceContext) *ProcessedItemUpdateOne {
	_u.mutation.SetPlace(v)
	return _u
}

// ClearPlace clears the value of the "place" field.
func (_u *ProcessedItemUpdateOne) ClearPlace() *ProcessedItemUpdateOne {
	_u.mutation.ClearPlace()
	return _u
}

// SetWeb sets the "web" field.
func (_u *ProcessedItemUpdateOne) SetWeb(v *entity.WebContext) *ProcessedItemUpdateOne {
	_u.mutation.SetWeb(v)
	return _u
}

// ClearWeb clears the value of the "web" field.
func (_u *ProcessedItemUpdateOne) ClearWeb() *ProcessedItemUpdateOne {
	_u.mutation.ClearWeb()
	return _u
}

// SetDocument sets the "document" field.
func (_u *ProcessedItemUpdateOne) SetDocument(v *entity.DocumentContext) *ProcessedItemUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// ClearDocument clears the value of the "document" field.
func (_u *ProcessedItemUpdateOne) ClearDocument() *ProcessedItemUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// SetQrCode sets the "qr_code" field.
func (_u *ProcessedItemUpdateOne) SetQrCode(v *entity.QRCodeContext) *ProcessedItemUpdateOne {
	_u.mutation.SetQrCode(v)
	return _u
}

// ClearQrCode clears the value of the "qr_code" field.
func (_u *ProcessedItemUpdateOne) ClearQrCode() *ProcessedItemUpdateOne {
	_u.mutation.ClearQrCode()
	return _u
}

// SetCoverImagePath sets the "cover_image_path" field.
func (_u *ProcessedItemUpdateOne) SetCoverImagePath(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetCoverImagePath(v)
	return _u
}

// SetNillableCoverImagePath sets the "cover_image_path" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableCoverImagePath(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetCoverImagePath(*v)
	}
	return _u
}

// ClearCoverImagePath clears the value of the "cover_image_path" field.
func (_u *ProcessedItemUpdateOne) ClearCoverImagePath() *ProcessedItemUpdateOne {
	_u.mutation.ClearCoverImagePath()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProcessedItemUpdateOne) SetPrice(v float64) *ProcessedItemUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillablePrice(v *float64) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProcessedItemUpdateOne) AddPrice(v float64) *ProcessedItemUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *ProcessedItemUpdateOne) SetRating(v float64) *ProcessedItemUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableRating(v *float64) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ProcessedItemUpdateOne) AddRating(v float64) *ProcessedItemUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProcessedItemUpdateOne) SetSessionID(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableSessionID(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ProcessedItemUpdateOne) ClearSessionID() *ProcessedItemUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ProcessedItemUpdateOne) SetParentID(v uuid.UUID) *ProcessedItemUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableParentID(v *uuid.UUID) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ProcessedItemUpdateOne) ClearParentID() *ProcessedItemUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetMasterCaptureID sets the "master_capture_id" field.
func (_u *ProcessedItemUpdateOne) SetMasterCaptureID(v string) *ProcessedItemUpdateOne {
	_u.mutation.SetMasterCaptureID(v)
	return _u
}

// SetNillableMasterCaptureID sets the "master_capture_id" field if the given value is not nil.
func (_u *ProcessedItemUpdateOne) SetNillableMasterCaptureID(v *string) *ProcessedItemUpdateOne {
	if v != nil {
		_u.SetMasterCaptureID(*v)
	}
	return _u
}

// ClearMasterCaptureID clears the value of the "master_capture_id" field.
func (_u *ProcessedItemUpdateOne) ClearMasterCaptureID() *ProcessedItemUpdateOne {
	_u.mutation.ClearMasterCaptureID()
	return _u
}

// Mutation returns the ProcessedItemMutation object of the builder.
func (_u *ProcessedItemUpdateOne) Mutation() *ProcessedItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessedItemUpdate builder.
func (_u *ProcessedItemUpdateOne) Where(ps ...predicate.ProcessedItem) *ProcessedItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedItemUpdateOne) Select(field string, fields ...string) *ProcessedItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedItem entity.
func (_u *ProcessedItemUpdateOne) Save(ctx context.Context) (*ProcessedItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedItemUpdateOne) SaveX(ctx context.Context) *ProcessedItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessedItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processeditem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processeditem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := processeditem.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedItem.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedItemUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processeditem.Table, processeditem.Columns, sqlgraph.NewFieldSpec(processeditem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processeditem.FieldID)
		for _, f := range fields {
			if !processeditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processeditem.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(processeditem.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(processeditem.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(processeditem.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(processeditem.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(processeditem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(processeditem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(processeditem.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(processeditem.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(processeditem.FieldModality, field.TypeString, value)
	}
	if _u.mutation.ModalityCleared() {
		_spec.ClearField(processeditem.FieldModality, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(processeditem.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(processeditem.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(processeditem.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(processeditem.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Purposes(); ok {
		_spec.SetField(processeditem.FieldPurposes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPurposes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldPurposes, value)
		})
	}
	if _u.mutation.PurposesCleared() {
		_spec.ClearField(processeditem.FieldPurposes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(processeditem.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(processeditem.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Statements(); ok {
		_spec.SetField(processeditem.FieldStatements, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatements(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldStatements, value)
		})
	}
	if _u.mutation.StatementsCleared() {
		_spec.ClearField(processeditem.FieldStatements, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processeditem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processeditem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastProcessed(); ok {
		_spec.SetField(processeditem.FieldLastProcessed, field.TypeTime, value)
	}
	if _u.mutation.LastProcessedCleared() {
		_spec.ClearField(processeditem.FieldLastProcessed, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(processeditem.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(processeditem.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingLog(); ok {
		_spec.SetField(processeditem.FieldProcessingLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProcessingLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processeditem.FieldProcessingLog, value)
		})
	}
	if _u.mutation.ProcessingLogCleared() {
		_spec.ClearField(processeditem.FieldProcessingLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weather(); ok {
		_spec.SetField(processeditem.FieldWeather, field.TypeJSON, value)
	}
	if _u.mutation.WeatherCleared() {
		_spec.ClearField(processeditem.FieldWeather, field.TypeJSON)
	}
	if value, ok := _u.mutation.Activity(); ok {
		_spec.SetField(processeditem.FieldActivity, field.TypeJSON, value)
	}
	if _u.mutation.ActivityCleared() {
		_spec.ClearField(processeditem.FieldActivity, field.TypeJSON)
	}
	if value, ok := _u.mutation.Place(); ok {
		_spec.SetField(processeditem.FieldPlace, field.TypeJSON, value)
	}
	if _u.mutation.PlaceCleared() {
		_spec.ClearField(processeditem.FieldPlace, field.TypeJSON)
	}
	if value, ok := _u.mutation.Web(); ok {
		_spec.SetField(processeditem.FieldWeb, field.TypeJSON, value)
	}
	if _u.mutation.WebCleared() {
		_spec.ClearField(processeditem.FieldWeb, field.TypeJSON)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(processeditem.FieldDocument, field.TypeJSON, value)
	}
	if _u.mutation.DocumentCleared() {
		_spec.ClearField(processeditem.FieldDocument, field.TypeJSON)
	}
	if value, ok := _u.mutation.QrCode(); ok {
		_spec.SetField(processeditem.FieldQrCode, field.TypeJSON, value)
	}
	if _u.mutation.QrCodeCleared() {
		_spec.ClearField(processeditem.FieldQrCode, field.TypeJSON)
	}
	if value, ok := _u.mutation.CoverImagePath(); ok {
		_spec.SetField(processeditem.FieldCoverImagePath, field.TypeString, value)
	}
	if _u.mutation.CoverImagePathCleared() {
		_spec.ClearField(processeditem.FieldCoverImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(processeditem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(processeditem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(processeditem.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(processeditem.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(processeditem.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(processeditem.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(processeditem.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(processeditem.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.MasterCaptureID(); ok {
		_spec.SetField(processeditem.FieldMasterCaptureID, field.TypeString, value)
	}
	if _u.mutation.MasterCaptureIDCleared() {
		_spec.ClearField(processeditem.FieldMasterCaptureID, field.TypeString)
	}
	_node = &ProcessedItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processeditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

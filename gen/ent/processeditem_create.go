// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/capturedesk/capturedesk/gen/ent/processeditem"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/google/uuid"
)

// ProcessedItemCreate is the builder for creating a ProcessedItem entity.
type ProcessedItemCreate struct {
	config
	mutation *ProcessedItemMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *ProcessedItemCreate) SetURL(v string) *ProcessedItemCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableURL(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProcessedItemCreate) SetTitle(v string) *ProcessedItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableTitle(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ProcessedItemCreate) SetSummary(v string) *ProcessedItemCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableSummary(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *ProcessedItemCreate) SetEntityType(v string) *ProcessedItemCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableEntityType(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetEntityType(*v)
	}
	return _c
}

// SetModality sets the "modality" field.
func (_c *ProcessedItemCreate) SetModality(v string) *ProcessedItemCreate {
	_c.mutation.SetModality(v)
	return _c
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableModality(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetModality(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ProcessedItemCreate) SetTags(v []string) *ProcessedItemCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetCategories sets the "categories" field.
func (_c *ProcessedItemCreate) SetCategories(v []string) *ProcessedItemCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetPurposes sets the "purposes" field.
func (_c *ProcessedItemCreate) SetPurposes(v []string) *ProcessedItemCreate {
	_c.mutation.SetPurposes(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *ProcessedItemCreate) SetQuestions(v []string) *ProcessedItemCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetStatements sets the "statements" field.
func (_c *ProcessedItemCreate) SetStatements(v []entity.Statement) *ProcessedItemCreate {
	_c.mutation.SetStatements(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessedItemCreate) SetStatus(v string) *ProcessedItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessedItemCreate) SetCreatedAt(v time.Time) *ProcessedItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableCreatedAt(v *time.Time) *ProcessedItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProcessedItemCreate) SetUpdatedAt(v time.Time) *ProcessedItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableUpdatedAt(v *time.Time) *ProcessedItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLastProcessed sets the "last_processed" field.
func (_c *ProcessedItemCreate) SetLastProcessed(v time.Time) *ProcessedItemCreate {
	_c.mutation.SetLastProcessed(v)
	return _c
}

// SetNillableLastProcessed sets the "last_processed" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableLastProcessed(v *time.Time) *ProcessedItemCreate {
	if v != nil {
		_c.SetLastProcessed(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *ProcessedItemCreate) SetFailureCount(v int) *ProcessedItemCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableFailureCount(v *int) *ProcessedItemCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetProcessingLog sets the "processing_log" field.
func (_c *ProcessedItemCreate) SetProcessingLog(v []entity.LogEntry) *ProcessedItemCreate {
	_c.mutation.SetProcessingLog(v)
	return _c
}

// SetWeather sets the "weather" field.
func (_c *ProcessedItemCreate) SetWeather(v *entity.WeatherContext) *ProcessedItemCreate {
	_c.mutation.SetWeather(v)
	return _c
}

// SetActivity sets the "activity" field.
func (_c *ProcessedItemCreate) SetActivity(v *entity.ActivityContext) *ProcessedItemCreate {
	_c.mutation.SetActivity(v)
	return _c
}

// SetPlace sets the "place" field.
func (_c *ProcessedItemCreate) SetPlace(v *entity.PlaceContext) *ProcessedItemCreate {
	_c.mutation.SetPlace(v)
	return _c
}

// SetWeb sets the "web" field.
func (_c *ProcessedItemCreate) SetWeb(v *entity.WebContext) *ProcessedItemCreate {
	_c.mutation.SetWeb(v)
	return _c
}

// SetDocument sets the "document" field.
func (_c *ProcessedItemCreate) SetDocument(v *entity.DocumentContext) *ProcessedItemCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetQrCode sets the "qr_code" field.
func (_c *ProcessedItemCreate) SetQrCode(v *entity.QRCodeContext) *ProcessedItemCreate {
	_c.mutation.SetQrCode(v)
	return _c
}

// SetCoverImagePath sets the "cover_image_path" field.
func (_c *ProcessedItemCreate) SetCoverImagePath(v string) *ProcessedItemCreate {
	_c.mutation.SetCoverImagePath(v)
	return _c
}

// SetNillableCoverImagePath sets the "cover_image_path" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableCoverImagePath(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetCoverImagePath(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ProcessedItemCreate) SetPrice(v float64) *ProcessedItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillablePrice(v *float64) *ProcessedItemCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *ProcessedItemCreate) SetRating(v float64) *ProcessedItemCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableRating(v *float64) *ProcessedItemCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ProcessedItemCreate) SetSessionID(v string) *ProcessedItemCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableSessionID(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *ProcessedItemCreate) SetParentID(v uuid.UUID) *ProcessedItemCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableParentID(v *uuid.UUID) *ProcessedItemCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetMasterCaptureID sets the "master_capture_id" field.
func (_c *ProcessedItemCreate) SetMasterCaptureID(v string) *ProcessedItemCreate {
	_c.mutation.SetMasterCaptureID(v)
	return _c
}

// SetNillableMasterCaptureID sets the "master_capture_id" field if the given value is not nil.
func (_c *ProcessedItemCreate) SetNillableMasterCaptureID(v *string) *ProcessedItemCreate {
	if v != nil {
		_c.SetMasterCaptureID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedItemCreate) SetID(v uuid.UUID) *ProcessedItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessedItemMutation object of the builder.
func (_c *ProcessedItemCreate) Mutation() *ProcessedItemMutation {
	return _c.mutation
}

// Save creates the ProcessedItem in the database.
func (_c *ProcessedItemCreate) Save(ctx context.Context) (*ProcessedItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedItemCreate) SaveX(ctx context.Context) *ProcessedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processeditem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := processeditem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := processeditem.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := processeditem.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := processeditem.DefaultRating
		_c.mutation.SetRating(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedItemCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessedItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processeditem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessedItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProcessedItem.updated_at"`)}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "ProcessedItem.failure_count"`)}
	}
	if v, ok := _c.mutation.FailureCount(); ok {
		if err := processeditem.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`ent: validator failed for field "ProcessedItem.failure_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "ProcessedItem.price"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "ProcessedItem.rating"`)}
	}
	return nil
}

func (_c *ProcessedItemCreate) sqlSave(ctx context.Context) (*ProcessedItem, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessedItemCreate) createSpec() (*ProcessedItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processeditem.Table, sqlgraph.NewFieldSpec(processeditem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(processeditem.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(processeditem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(processeditem.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(processeditem.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.Modality(); ok {
		_spec.SetField(processeditem.FieldModality, field.TypeString, value)
		_node.Modality = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(processeditem.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(processeditem.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.Purposes(); ok {
		_spec.SetField(processeditem.FieldPurposes, field.TypeJSON, value)
		_node.Purposes = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(processeditem.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Statements(); ok {
		_spec.SetField(processeditem.FieldStatements, field.TypeJSON, value)
		_node.Statements = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processeditem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processeditem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(processeditem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LastProcessed(); ok {
		_spec.SetField(processeditem.FieldLastProcessed, field.TypeTime, value)
		_node.LastProcessed = &value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(processeditem.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.ProcessingLog(); ok {
		_spec.SetField(processeditem.FieldProcessingLog, field.TypeJSON, value)
		_node.ProcessingLog = value
	}
	if value, ok := _c.mutation.Weather(); ok {
		_spec.SetField(processeditem.FieldWeather, field.TypeJSON, value)
		_node.Weather = value
	}
	if value, ok := _c.mutation.Activity(); ok {
		_spec.SetField(processeditem.FieldActivity, field.TypeJSON, value)
		_node.Activity = value
	}
	if value, ok := _c.mutation.Place(); ok {
		_spec.SetField(processeditem.FieldPlace, field.TypeJSON, value)
		_node.Place = value
	}
	if value, ok := _c.mutation.Web(); ok {
		_spec.SetField(processeditem.FieldWeb, field.TypeJSON, value)
		_node.Web = value
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(processeditem.FieldDocument, field.TypeJSON, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.QrCode(); ok {
		_spec.SetField(processeditem.FieldQrCode, field.TypeJSON, value)
		_node.QrCode = value
	}
	if value, ok := _c.mutation.CoverImagePath(); ok {
		_spec.SetField(processeditem.FieldCoverImagePath, field.TypeString, value)
		_node.CoverImagePath = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(processeditem.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(processeditem.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(processeditem.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(processeditem.FieldParentID, field.TypeUUID, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.MasterCaptureID(); ok {
		_spec.SetField(processeditem.FieldMasterCaptureID, field.TypeString, value)
		_node.MasterCaptureID = value
	}
	return _node, _spec
}

// ProcessedItemCreateBulk is the builder for creating many ProcessedItem entities in bulk.
type ProcessedItemCreateBulk struct {
	config
	err      error
	builders []*ProcessedItemCreate
}

// Save creates the ProcessedItem entities in the database.
func (_c *ProcessedItemCreateBulk) Save(ctx context.Context) ([]*ProcessedItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedItemMutation)
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
func (_c *ProcessedItemCreateBulk) SaveX(ctx context.Context) []*ProcessedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package captureinput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/capturedesk/capturedesk/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldCreatedAt, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldURL, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldText, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldSource, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldPayload, v))
}

// PayloadPath applies equality check predicate on the "payload_path" field. It's identical to PayloadPathEQ.
func PayloadPath(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldPayloadPath, v))
}

// InputType applies equality check predicate on the "input_type" field. It's identical to InputTypeEQ.
func InputType(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldInputType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldCreatedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContainsFold(FieldURL, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasSuffix(FieldText, v))
}

// TextIsNil applies the IsNil predicate on the "text" field.
func TextIsNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIsNull(FieldText))
}

// TextNotNil applies the NotNil predicate on the "text" field.
func TextNotNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotNull(FieldText))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContainsFold(FieldText, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContainsFold(FieldSource, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldPayload, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotNull(FieldPayload))
}

// PayloadPathEQ applies the EQ predicate on the "payload_path" field.
func PayloadPathEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldPayloadPath, v))
}

// PayloadPathNEQ applies the NEQ predicate on the "payload_path" field.
func PayloadPathNEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldPayloadPath, v))
}

// PayloadPathIn applies the In predicate on the "payload_path" field.
func PayloadPathIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldPayloadPath, vs...))
}

// PayloadPathNotIn applies the NotIn predicate on the "payload_path" field.
func PayloadPathNotIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldPayloadPath, vs...))
}

// PayloadPathGT applies the GT predicate on the "payload_path" field.
func PayloadPathGT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldPayloadPath, v))
}

// PayloadPathGTE applies the GTE predicate on the "payload_path" field.
func PayloadPathGTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldPayloadPath, v))
}

// PayloadPathLT applies the LT predicate on the "payload_path" field.
func PayloadPathLT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldPayloadPath, v))
}

// PayloadPathLTE applies the LTE predicate on the "payload_path" field.
func PayloadPathLTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldPayloadPath, v))
}

// PayloadPathContains applies the Contains predicate on the "payload_path" field.
func PayloadPathContains(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContains(FieldPayloadPath, v))
}

// PayloadPathHasPrefix applies the HasPrefix predicate on the "payload_path" field.
func PayloadPathHasPrefix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasPrefix(FieldPayloadPath, v))
}

// PayloadPathHasSuffix applies the HasSuffix predicate on the "payload_path" field.
func PayloadPathHasSuffix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasSuffix(FieldPayloadPath, v))
}

// PayloadPathIsNil applies the IsNil predicate on the "payload_path" field.
func PayloadPathIsNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIsNull(FieldPayloadPath))
}

// PayloadPathNotNil applies the NotNil predicate on the "payload_path" field.
func PayloadPathNotNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotNull(FieldPayloadPath))
}

// PayloadPathEqualFold applies the EqualFold predicate on the "payload_path" field.
func PayloadPathEqualFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEqualFold(FieldPayloadPath, v))
}

// PayloadPathContainsFold applies the ContainsFold predicate on the "payload_path" field.
func PayloadPathContainsFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContainsFold(FieldPayloadPath, v))
}

// InputTypeEQ applies the EQ predicate on the "input_type" field.
func InputTypeEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEQ(FieldInputType, v))
}

// InputTypeNEQ applies the NEQ predicate on the "input_type" field.
func InputTypeNEQ(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNEQ(FieldInputType, v))
}

// InputTypeIn applies the In predicate on the "input_type" field.
func InputTypeIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIn(FieldInputType, vs...))
}

// InputTypeNotIn applies the NotIn predicate on the "input_type" field.
func InputTypeNotIn(vs ...string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotIn(FieldInputType, vs...))
}

// InputTypeGT applies the GT predicate on the "input_type" field.
func InputTypeGT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGT(FieldInputType, v))
}

// InputTypeGTE applies the GTE predicate on the "input_type" field.
func InputTypeGTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldGTE(FieldInputType, v))
}

// InputTypeLT applies the LT predicate on the "input_type" field.
func InputTypeLT(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLT(FieldInputType, v))
}

// InputTypeLTE applies the LTE predicate on the "input_type" field.
func InputTypeLTE(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldLTE(FieldInputType, v))
}

// InputTypeContains applies the Contains predicate on the "input_type" field.
func InputTypeContains(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContains(FieldInputType, v))
}

// InputTypeHasPrefix applies the HasPrefix predicate on the "input_type" field.
func InputTypeHasPrefix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasPrefix(FieldInputType, v))
}

// InputTypeHasSuffix applies the HasSuffix predicate on the "input_type" field.
func InputTypeHasSuffix(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldHasSuffix(FieldInputType, v))
}

// InputTypeEqualFold applies the EqualFold predicate on the "input_type" field.
func InputTypeEqualFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldEqualFold(FieldInputType, v))
}

// InputTypeContainsFold applies the ContainsFold predicate on the "input_type" field.
func InputTypeContainsFold(v string) predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldContainsFold(FieldInputType, v))
}

// DescriptorIsNil applies the IsNil predicate on the "descriptor" field.
func DescriptorIsNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldIsNull(FieldDescriptor))
}

// DescriptorNotNil applies the NotNil predicate on the "descriptor" field.
func DescriptorNotNil() predicate.CaptureInput {
	return predicate.CaptureInput(sql.FieldNotNull(FieldDescriptor))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaptureInput) predicate.CaptureInput {
	return predicate.CaptureInput(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaptureInput) predicate.CaptureInput {
	return predicate.CaptureInput(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaptureInput) predicate.CaptureInput {
	return predicate.CaptureInput(sql.NotPredicates(p))
}

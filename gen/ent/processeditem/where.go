// Code generated by ent, DO NOT EDIT.

package processeditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/capturedesk/capturedesk/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldSummary, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldEntityType, v))
}

// Modality applies equality check predicate on the "modality" field. It's identical to ModalityEQ.
func Modality(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldModality, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastProcessed applies equality check predicate on the "last_processed" field. It's identical to LastProcessedEQ.
func LastProcessed(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldLastProcessed, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldFailureCount, v))
}

// CoverImagePath applies equality check predicate on the "cover_image_path" field. It's identical to CoverImagePathEQ.
func CoverImagePath(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldCoverImagePath, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldPrice, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldRating, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldSessionID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldParentID, v))
}

// MasterCaptureID applies equality check predicate on the "master_capture_id" field. It's identical to MasterCaptureIDEQ.
func MasterCaptureID(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldMasterCaptureID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldSummary, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeIsNil applies the IsNil predicate on the "entity_type" field.
func EntityTypeIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldEntityType))
}

// EntityTypeNotNil applies the NotNil predicate on the "entity_type" field.
func EntityTypeNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldEntityType))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldEntityType, v))
}

// ModalityEQ applies the EQ predicate on the "modality" field.
func ModalityEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldModality, v))
}

// ModalityNEQ applies the NEQ predicate on the "modality" field.
func ModalityNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldModality, v))
}

// ModalityIn applies the In predicate on the "modality" field.
func ModalityIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldModality, vs...))
}

// ModalityNotIn applies the NotIn predicate on the "modality" field.
func ModalityNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldModality, vs...))
}

// ModalityGT applies the GT predicate on the "modality" field.
func ModalityGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldModality, v))
}

// ModalityGTE applies the GTE predicate on the "modality" field.
func ModalityGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldModality, v))
}

// ModalityLT applies the LT predicate on the "modality" field.
func ModalityLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldModality, v))
}

// ModalityLTE applies the LTE predicate on the "modality" field.
func ModalityLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldModality, v))
}

// ModalityContains applies the Contains predicate on the "modality" field.
func ModalityContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldModality, v))
}

// ModalityHasPrefix applies the HasPrefix predicate on the "modality" field.
func ModalityHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldModality, v))
}

// ModalityHasSuffix applies the HasSuffix predicate on the "modality" field.
func ModalityHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldModality, v))
}

// ModalityIsNil applies the IsNil predicate on the "modality" field.
func ModalityIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldModality))
}

// ModalityNotNil applies the NotNil predicate on the "modality" field.
func ModalityNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldModality))
}

// ModalityEqualFold applies the EqualFold predicate on the "modality" field.
func ModalityEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldModality, v))
}

// ModalityContainsFold applies the ContainsFold predicate on the "modality" field.
func ModalityContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldModality, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldTags))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldCategories))
}

// PurposesIsNil applies the IsNil predicate on the "purposes" field.
func PurposesIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldPurposes))
}

// PurposesNotNil applies the NotNil predicate on the "purposes" field.
func PurposesNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldPurposes))
}

// QuestionsIsNil applies the IsNil predicate on the "questions" field.
func QuestionsIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldQuestions))
}

// QuestionsNotNil applies the NotNil predicate on the "questions" field.
func QuestionsNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldQuestions))
}

// StatementsIsNil applies the IsNil predicate on the "statements" field.
func StatementsIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldStatements))
}

// StatementsNotNil applies the NotNil predicate on the "statements" field.
func StatementsNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldStatements))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// LastProcessedEQ applies the EQ predicate on the "last_processed" field.
func LastProcessedEQ(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldLastProcessed, v))
}

// LastProcessedNEQ applies the NEQ predicate on the "last_processed" field.
func LastProcessedNEQ(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldLastProcessed, v))
}

// LastProcessedIn applies the In predicate on the "last_processed" field.
func LastProcessedIn(vs ...time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldLastProcessed, vs...))
}

// LastProcessedNotIn applies the NotIn predicate on the "last_processed" field.
func LastProcessedNotIn(vs ...time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldLastProcessed, vs...))
}

// LastProcessedGT applies the GT predicate on the "last_processed" field.
func LastProcessedGT(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldLastProcessed, v))
}

// LastProcessedGTE applies the GTE predicate on the "last_processed" field.
func LastProcessedGTE(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldLastProcessed, v))
}

// LastProcessedLT applies the LT predicate on the "last_processed" field.
func LastProcessedLT(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldLastProcessed, v))
}

// LastProcessedLTE applies the LTE predicate on the "last_processed" field.
func LastProcessedLTE(v time.Time) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldLastProcessed, v))
}

// LastProcessedIsNil applies the IsNil predicate on the "last_processed" field.
func LastProcessedIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldLastProcessed))
}

// LastProcessedNotNil applies the NotNil predicate on the "last_processed" field.
func LastProcessedNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldLastProcessed))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldFailureCount, v))
}

// ProcessingLogIsNil applies the IsNil predicate on the "processing_log" field.
func ProcessingLogIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldProcessingLog))
}

// ProcessingLogNotNil applies the NotNil predicate on the "processing_log" field.
func ProcessingLogNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldProcessingLog))
}

// WeatherIsNil applies the IsNil predicate on the "weather" field.
func WeatherIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldWeather))
}

// WeatherNotNil applies the NotNil predicate on the "weather" field.
func WeatherNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldWeather))
}

// ActivityIsNil applies the IsNil predicate on the "activity" field.
func ActivityIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldActivity))
}

// ActivityNotNil applies the NotNil predicate on the "activity" field.
func ActivityNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldActivity))
}

// PlaceIsNil applies the IsNil predicate on the "place" field.
func PlaceIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldPlace))
}

// PlaceNotNil applies the NotNil predicate on the "place" field.
func PlaceNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldPlace))
}

// WebIsNil applies the IsNil predicate on the "web" field.
func WebIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldWeb))
}

// WebNotNil applies the NotNil predicate on the "web" field.
func WebNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldWeb))
}

// DocumentIsNil applies the IsNil predicate on the "document" field.
func DocumentIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldDocument))
}

// DocumentNotNil applies the NotNil predicate on the "document" field.
func DocumentNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldDocument))
}

// QrCodeIsNil applies the IsNil predicate on the "qr_code" field.
func QrCodeIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldQrCode))
}

// QrCodeNotNil applies the NotNil predicate on the "qr_code" field.
func QrCodeNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldQrCode))
}

// CoverImagePathEQ applies the EQ predicate on the "cover_image_path" field.
func CoverImagePathEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldCoverImagePath, v))
}

// CoverImagePathNEQ applies the NEQ predicate on the "cover_image_path" field.
func CoverImagePathNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldCoverImagePath, v))
}

// CoverImagePathIn applies the In predicate on the "cover_image_path" field.
func CoverImagePathIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldCoverImagePath, vs...))
}

// CoverImagePathNotIn applies the NotIn predicate on the "cover_image_path" field.
func CoverImagePathNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldCoverImagePath, vs...))
}

// CoverImagePathGT applies the GT predicate on the "cover_image_path" field.
func CoverImagePathGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldCoverImagePath, v))
}

// CoverImagePathGTE applies the GTE predicate on the "cover_image_path" field.
func CoverImagePathGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldCoverImagePath, v))
}

// CoverImagePathLT applies the LT predicate on the "cover_image_path" field.
func CoverImagePathLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldCoverImagePath, v))
}

// CoverImagePathLTE applies the LTE predicate on the "cover_image_path" field.
func CoverImagePathLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldCoverImagePath, v))
}

// CoverImagePathContains applies the Contains predicate on the "cover_image_path" field.
func CoverImagePathContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldCoverImagePath, v))
}

// CoverImagePathHasPrefix applies the HasPrefix predicate on the "cover_image_path" field.
func CoverImagePathHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldCoverImagePath, v))
}

// CoverImagePathHasSuffix applies the HasSuffix predicate on the "cover_image_path" field.
func CoverImagePathHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldCoverImagePath, v))
}

// CoverImagePathIsNil applies the IsNil predicate on the "cover_image_path" field.
func CoverImagePathIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldCoverImagePath))
}

// CoverImagePathNotNil applies the NotNil predicate on the "cover_image_path" field.
func CoverImagePathNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldCoverImagePath))
}

// CoverImagePathEqualFold applies the EqualFold predicate on the "cover_image_path" field.
func CoverImagePathEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldCoverImagePath, v))
}

// CoverImagePathContainsFold applies the ContainsFold predicate on the "cover_image_path" field.
func CoverImagePathContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldCoverImagePath, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldPrice, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldRating, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldSessionID, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v uuid.UUID) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldParentID))
}

// MasterCaptureIDEQ applies the EQ predicate on the "master_capture_id" field.
func MasterCaptureIDEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEQ(FieldMasterCaptureID, v))
}

// MasterCaptureIDNEQ applies the NEQ predicate on the "master_capture_id" field.
func MasterCaptureIDNEQ(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNEQ(FieldMasterCaptureID, v))
}

// MasterCaptureIDIn applies the In predicate on the "master_capture_id" field.
func MasterCaptureIDIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIn(FieldMasterCaptureID, vs...))
}

// MasterCaptureIDNotIn applies the NotIn predicate on the "master_capture_id" field.
func MasterCaptureIDNotIn(vs ...string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotIn(FieldMasterCaptureID, vs...))
}

// MasterCaptureIDGT applies the GT predicate on the "master_capture_id" field.
func MasterCaptureIDGT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGT(FieldMasterCaptureID, v))
}

// MasterCaptureIDGTE applies the GTE predicate on the "master_capture_id" field.
func MasterCaptureIDGTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldGTE(FieldMasterCaptureID, v))
}

// MasterCaptureIDLT applies the LT predicate on the "master_capture_id" field.
func MasterCaptureIDLT(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLT(FieldMasterCaptureID, v))
}

// MasterCaptureIDLTE applies the LTE predicate on the "master_capture_id" field.
func MasterCaptureIDLTE(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldLTE(FieldMasterCaptureID, v))
}

// MasterCaptureIDContains applies the Contains predicate on the "master_capture_id" field.
func MasterCaptureIDContains(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContains(FieldMasterCaptureID, v))
}

// MasterCaptureIDHasPrefix applies the HasPrefix predicate on the "master_capture_id" field.
func MasterCaptureIDHasPrefix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasPrefix(FieldMasterCaptureID, v))
}

// MasterCaptureIDHasSuffix applies the HasSuffix predicate on the "master_capture_id" field.
func MasterCaptureIDHasSuffix(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldHasSuffix(FieldMasterCaptureID, v))
}

// MasterCaptureIDIsNil applies the IsNil predicate on the "master_capture_id" field.
func MasterCaptureIDIsNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldIsNull(FieldMasterCaptureID))
}

// MasterCaptureIDNotNil applies the NotNil predicate on the "master_capture_id" field.
func MasterCaptureIDNotNil() predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldNotNull(FieldMasterCaptureID))
}

// MasterCaptureIDEqualFold applies the EqualFold predicate on the "master_capture_id" field.
func MasterCaptureIDEqualFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldEqualFold(FieldMasterCaptureID, v))
}

// MasterCaptureIDContainsFold applies the ContainsFold predicate on the "master_capture_id" field.
func MasterCaptureIDContainsFold(v string) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.FieldContainsFold(FieldMasterCaptureID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessedItem) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessedItem) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessedItem) predicate.ProcessedItem {
	return predicate.ProcessedItem(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package note

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/workbenchlabs/workbench/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Note {
	return predicate.Note(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Note {
	return predicate.Note(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Note {
	return predicate.Note(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Note {
	return predicate.Note(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldWorkspaceID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldTitle, v))
}

// ContentMd applies equality check predicate on the "content_md" field. It's identical to ContentMdEQ.
func ContentMd(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldContentMd, v))
}

// TranscriptText applies equality check predicate on the "transcript_text" field. It's identical to TranscriptTextEQ.
func TranscriptText(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldTranscriptText, v))
}

// SummaryText applies equality check predicate on the "summary_text" field. It's identical to SummaryTextEQ.
func SummaryText(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldSummaryText, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v int) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Note {
	return predicate.Note(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Note {
	return predicate.Note(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Note {
	return predicate.Note(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Note {
	return predicate.Note(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Note {
	return predicate.Note(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Note {
	return predicate.Note(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Note {
	return predicate.Note(sql.FieldContainsFold(FieldTitle, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldSource, vs...))
}

// ContentMdEQ applies the EQ predicate on the "content_md" field.
func ContentMdEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldContentMd, v))
}

// ContentMdNEQ applies the NEQ predicate on the "content_md" field.
func ContentMdNEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldContentMd, v))
}

// ContentMdIn applies the In predicate on the "content_md" field.
func ContentMdIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldContentMd, vs...))
}

// ContentMdNotIn applies the NotIn predicate on the "content_md" field.
func ContentMdNotIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldContentMd, vs...))
}

// ContentMdGT applies the GT predicate on the "content_md" field.
func ContentMdGT(v string) predicate.Note {
	return predicate.Note(sql.FieldGT(FieldContentMd, v))
}

// ContentMdGTE applies the GTE predicate on the "content_md" field.
func ContentMdGTE(v string) predicate.Note {
	return predicate.Note(sql.FieldGTE(FieldContentMd, v))
}

// ContentMdLT applies the LT predicate on the "content_md" field.
func ContentMdLT(v string) predicate.Note {
	return predicate.Note(sql.FieldLT(FieldContentMd, v))
}

// ContentMdLTE applies the LTE predicate on the "content_md" field.
func ContentMdLTE(v string) predicate.Note {
	return predicate.Note(sql.FieldLTE(FieldContentMd, v))
}

// ContentMdContains applies the Contains predicate on the "content_md" field.
func ContentMdContains(v string) predicate.Note {
	return predicate.Note(sql.FieldContains(FieldContentMd, v))
}

// ContentMdHasPrefix applies the HasPrefix predicate on the "content_md" field.
func ContentMdHasPrefix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasPrefix(FieldContentMd, v))
}

// ContentMdHasSuffix applies the HasSuffix predicate on the "content_md" field.
func ContentMdHasSuffix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasSuffix(FieldContentMd, v))
}

// ContentMdIsNil applies the IsNil predicate on the "content_md" field.
func ContentMdIsNil() predicate.Note {
	return predicate.Note(sql.FieldIsNull(FieldContentMd))
}

// ContentMdNotNil applies the NotNil predicate on the "content_md" field.
func ContentMdNotNil() predicate.Note {
	return predicate.Note(sql.FieldNotNull(FieldContentMd))
}

// ContentMdEqualFold applies the EqualFold predicate on the "content_md" field.
func ContentMdEqualFold(v string) predicate.Note {
	return predicate.Note(sql.FieldEqualFold(FieldContentMd, v))
}

// ContentMdContainsFold applies the ContainsFold predicate on the "content_md" field.
func ContentMdContainsFold(v string) predicate.Note {
	return predicate.Note(sql.FieldContainsFold(FieldContentMd, v))
}

// TranscriptTextEQ applies the EQ predicate on the "transcript_text" field.
func TranscriptTextEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldTranscriptText, v))
}

// TranscriptTextNEQ applies the NEQ predicate on the "transcript_text" field.
func TranscriptTextNEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldTranscriptText, v))
}

// TranscriptTextIn applies the In predicate on the "transcript_text" field.
func TranscriptTextIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldTranscriptText, vs...))
}

// TranscriptTextNotIn applies the NotIn predicate on the "transcript_text" field.
func TranscriptTextNotIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldTranscriptText, vs...))
}

// TranscriptTextGT applies the GT predicate on the "transcript_text" field.
func TranscriptTextGT(v string) predicate.Note {
	return predicate.Note(sql.FieldGT(FieldTranscriptText, v))
}

// TranscriptTextGTE applies the GTE predicate on the "transcript_text" field.
func TranscriptTextGTE(v string) predicate.Note {
	return predicate.Note(sql.FieldGTE(FieldTranscriptText, v))
}

// TranscriptTextLT applies the LT predicate on the "transcript_text" field.
func TranscriptTextLT(v string) predicate.Note {
	return predicate.Note(sql.FieldLT(FieldTranscriptText, v))
}

// TranscriptTextLTE applies the LTE predicate on the "transcript_text" field.
func TranscriptTextLTE(v string) predicate.Note {
	return predicate.Note(sql.FieldLTE(FieldTranscriptText, v))
}

// TranscriptTextContains applies the Contains predicate on the "transcript_text" field.
func TranscriptTextContains(v string) predicate.Note {
	return predicate.Note(sql.FieldContains(FieldTranscriptText, v))
}

// TranscriptTextHasPrefix applies the HasPrefix predicate on the "transcript_text" field.
func TranscriptTextHasPrefix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasPrefix(FieldTranscriptText, v))
}

// TranscriptTextHasSuffix applies the HasSuffix predicate on the "transcript_text" field.
func TranscriptTextHasSuffix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasSuffix(FieldTranscriptText, v))
}

// TranscriptTextIsNil applies the IsNil predicate on the "transcript_text" field.
func TranscriptTextIsNil() predicate.Note {
	return predicate.Note(sql.FieldIsNull(FieldTranscriptText))
}

// TranscriptTextNotNil applies the NotNil predicate on the "transcript_text" field.
func TranscriptTextNotNil() predicate.Note {
	return predicate.Note(sql.FieldNotNull(FieldTranscriptText))
}

// TranscriptTextEqualFold applies the EqualFold predicate on the "transcript_text" field.
func TranscriptTextEqualFold(v string) predicate.Note {
	return predicate.Note(sql.FieldEqualFold(FieldTranscriptText, v))
}

// TranscriptTextContainsFold applies the ContainsFold predicate on the "transcript_text" field.
func TranscriptTextContainsFold(v string) predicate.Note {
	return predicate.Note(sql.FieldContainsFold(FieldTranscriptText, v))
}

// SummaryTextEQ applies the EQ predicate on the "summary_text" field.
func SummaryTextEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldSummaryText, v))
}

// SummaryTextNEQ applies the NEQ predicate on the "summary_text" field.
func SummaryTextNEQ(v string) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldSummaryText, v))
}

// SummaryTextIn applies the In predicate on the "summary_text" field.
func SummaryTextIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldSummaryText, vs...))
}

// SummaryTextNotIn applies the NotIn predicate on the "summary_text" field.
func SummaryTextNotIn(vs ...string) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldSummaryText, vs...))
}

// SummaryTextGT applies the GT predicate on the "summary_text" field.
func SummaryTextGT(v string) predicate.Note {
	return predicate.Note(sql.FieldGT(FieldSummaryText, v))
}

// SummaryTextGTE applies the GTE predicate on the "summary_text" field.
func SummaryTextGTE(v string) predicate.Note {
	return predicate.Note(sql.FieldGTE(FieldSummaryText, v))
}

// SummaryTextLT applies the LT predicate on the "summary_text" field.
func SummaryTextLT(v string) predicate.Note {
	return predicate.Note(sql.FieldLT(FieldSummaryText, v))
}

// SummaryTextLTE applies the LTE predicate on the "summary_text" field.
func SummaryTextLTE(v string) predicate.Note {
	return predicate.Note(sql.FieldLTE(FieldSummaryText, v))
}

// SummaryTextContains applies the Contains predicate on the "summary_text" field.
func SummaryTextContains(v string) predicate.Note {
	return predicate.Note(sql.FieldContains(FieldSummaryText, v))
}

// SummaryTextHasPrefix applies the HasPrefix predicate on the "summary_text" field.
func SummaryTextHasPrefix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasPrefix(FieldSummaryText, v))
}

// SummaryTextHasSuffix applies the HasSuffix predicate on the "summary_text" field.
func SummaryTextHasSuffix(v string) predicate.Note {
	return predicate.Note(sql.FieldHasSuffix(FieldSummaryText, v))
}

// SummaryTextIsNil applies the IsNil predicate on the "summary_text" field.
func SummaryTextIsNil() predicate.Note {
	return predicate.Note(sql.FieldIsNull(FieldSummaryText))
}

// SummaryTextNotNil applies the NotNil predicate on the "summary_text" field.
func SummaryTextNotNil() predicate.Note {
	return predicate.Note(sql.FieldNotNull(FieldSummaryText))
}

// SummaryTextEqualFold applies the EqualFold predicate on the "summary_text" field.
func SummaryTextEqualFold(v string) predicate.Note {
	return predicate.Note(sql.FieldEqualFold(FieldSummaryText, v))
}

// SummaryTextContainsFold applies the ContainsFold predicate on the "summary_text" field.
func SummaryTextContainsFold(v string) predicate.Note {
	return predicate.Note(sql.FieldContainsFold(FieldSummaryText, v))
}

// EntitiesIsNil applies the IsNil predicate on the "entities" field.
func EntitiesIsNil() predicate.Note {
	return predicate.Note(sql.FieldIsNull(FieldEntities))
}

// EntitiesNotNil applies the NotNil predicate on the "entities" field.
func EntitiesNotNil() predicate.Note {
	return predicate.Note(sql.FieldNotNull(FieldEntities))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v int) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v int) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...int) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...int) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Note {
	return predicate.Note(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Note {
	return predicate.Note(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Note {
	return predicate.Note(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.Note {
	return predicate.Note(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.Note {
	return predicate.Note(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreator applies the HasEdge predicate on the "creator" edge.
func HasCreator() predicate.Note {
	return predicate.Note(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, CreatorTable, CreatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreatorWith applies the HasEdge predicate on the "creator" edge with a given conditions (other predicates).
func HasCreatorWith(preds ...predicate.User) predicate.Note {
	return predicate.Note(func(s *sql.Selector) {
		step := newCreatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Note) predicate.Note {
	return predicate.Note(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Note) predicate.Note {
	return predicate.Note(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Note) predicate.Note {
	return predicate.Note(sql.NotPredicates(p))
}

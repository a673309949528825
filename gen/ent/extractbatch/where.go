// Code generated by ent, DO NOT EDIT.

package extractbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fiscaldata/nf-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldSource, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldStatus, v))
}

// TotalFiles applies equality check predicate on the "total_files" field. It's identical to TotalFilesEQ.
func TotalFiles(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldTotalFiles, v))
}

// Succeeded applies equality check predicate on the "succeeded" field. It's identical to SucceededEQ.
func Succeeded(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldSucceeded, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldFailed, v))
}

// Cancelled applies equality check predicate on the "cancelled" field. It's identical to CancelledEQ.
func Cancelled(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldCancelled, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldFinishedAt, v))
}

// ReportPath applies equality check predicate on the "report_path" field. It's identical to ReportPathEQ.
func ReportPath(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldReportPath, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldContainsFold(FieldSource, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldContainsFold(FieldStatus, v))
}

// TotalFilesEQ applies the EQ predicate on the "total_files" field.
func TotalFilesEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldTotalFiles, v))
}

// TotalFilesNEQ applies the NEQ predicate on the "total_files" field.
func TotalFilesNEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldTotalFiles, v))
}

// TotalFilesIn applies the In predicate on the "total_files" field.
func TotalFilesIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldTotalFiles, vs...))
}

// TotalFilesNotIn applies the NotIn predicate on the "total_files" field.
func TotalFilesNotIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldTotalFiles, vs...))
}

// TotalFilesGT applies the GT predicate on the "total_files" field.
func TotalFilesGT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldTotalFiles, v))
}

// TotalFilesGTE applies the GTE predicate on the "total_files" field.
func TotalFilesGTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldTotalFiles, v))
}

// TotalFilesLT applies the LT predicate on the "total_files" field.
func TotalFilesLT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldTotalFiles, v))
}

// TotalFilesLTE applies the LTE predicate on the "total_files" field.
func TotalFilesLTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldTotalFiles, v))
}

// SucceededEQ applies the EQ predicate on the "succeeded" field.
func SucceededEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldSucceeded, v))
}

// SucceededNEQ applies the NEQ predicate on the "succeeded" field.
func SucceededNEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldSucceeded, v))
}

// SucceededIn applies the In predicate on the "succeeded" field.
func SucceededIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldSucceeded, vs...))
}

// SucceededNotIn applies the NotIn predicate on the "succeeded" field.
func SucceededNotIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldSucceeded, vs...))
}

// SucceededGT applies the GT predicate on the "succeeded" field.
func SucceededGT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldSucceeded, v))
}

// SucceededGTE applies the GTE predicate on the "succeeded" field.
func SucceededGTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldSucceeded, v))
}

// SucceededLT applies the LT predicate on the "succeeded" field.
func SucceededLT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldSucceeded, v))
}

// SucceededLTE applies the LTE predicate on the "succeeded" field.
func SucceededLTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldSucceeded, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldFailed, v))
}

// CancelledEQ applies the EQ predicate on the "cancelled" field.
func CancelledEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldCancelled, v))
}

// CancelledNEQ applies the NEQ predicate on the "cancelled" field.
func CancelledNEQ(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldCancelled, v))
}

// CancelledIn applies the In predicate on the "cancelled" field.
func CancelledIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldCancelled, vs...))
}

// CancelledNotIn applies the NotIn predicate on the "cancelled" field.
func CancelledNotIn(vs ...int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldCancelled, vs...))
}

// CancelledGT applies the GT predicate on the "cancelled" field.
func CancelledGT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldCancelled, v))
}

// CancelledGTE applies the GTE predicate on the "cancelled" field.
func CancelledGTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldCancelled, v))
}

// CancelledLT applies the LT predicate on the "cancelled" field.
func CancelledLT(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldCancelled, v))
}

// CancelledLTE applies the LTE predicate on the "cancelled" field.
func CancelledLTE(v int) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldCancelled, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotNull(FieldFinishedAt))
}

// ReportPathEQ applies the EQ predicate on the "report_path" field.
func ReportPathEQ(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEQ(FieldReportPath, v))
}

// ReportPathNEQ applies the NEQ predicate on the "report_path" field.
func ReportPathNEQ(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNEQ(FieldReportPath, v))
}

// ReportPathIn applies the In predicate on the "report_path" field.
func ReportPathIn(vs ...string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIn(FieldReportPath, vs...))
}

// ReportPathNotIn applies the NotIn predicate on the "report_path" field.
func ReportPathNotIn(vs ...string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotIn(FieldReportPath, vs...))
}

// ReportPathGT applies the GT predicate on the "report_path" field.
func ReportPathGT(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGT(FieldReportPath, v))
}

// ReportPathGTE applies the GTE predicate on the "report_path" field.
func ReportPathGTE(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldGTE(FieldReportPath, v))
}

// ReportPathLT applies the LT predicate on the "report_path" field.
func ReportPathLT(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLT(FieldReportPath, v))
}

// ReportPathLTE applies the LTE predicate on the "report_path" field.
func ReportPathLTE(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldLTE(FieldReportPath, v))
}

// ReportPathContains applies the Contains predicate on the "report_path" field.
func ReportPathContains(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldContains(FieldReportPath, v))
}

// ReportPathHasPrefix applies the HasPrefix predicate on the "report_path" field.
func ReportPathHasPrefix(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldHasPrefix(FieldReportPath, v))
}

// ReportPathHasSuffix applies the HasSuffix predicate on the "report_path" field.
func ReportPathHasSuffix(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldHasSuffix(FieldReportPath, v))
}

// ReportPathIsNil applies the IsNil predicate on the "report_path" field.
func ReportPathIsNil() predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldIsNull(FieldReportPath))
}

// ReportPathNotNil applies the NotNil predicate on the "report_path" field.
func ReportPathNotNil() predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldNotNull(FieldReportPath))
}

// ReportPathEqualFold applies the EqualFold predicate on the "report_path" field.
func ReportPathEqualFold(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldEqualFold(FieldReportPath, v))
}

// ReportPathContainsFold applies the ContainsFold predicate on the "report_path" field.
func ReportPathContainsFold(v string) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.FieldContainsFold(FieldReportPath, v))
}

// HasRecords applies the HasEdge predicate on the "records" edge.
func HasRecords() predicate.ExtractBatch {
	return predicate.ExtractBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordsWith applies the HasEdge predicate on the "records" edge with a given conditions (other predicates).
func HasRecordsWith(preds ...predicate.FiscalRecord) predicate.ExtractBatch {
	return predicate.ExtractBatch(func(s *sql.Selector) {
		step := newRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractBatch) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractBatch) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractBatch) predicate.ExtractBatch {
	return predicate.ExtractBatch(sql.NotPredicates(p))
}

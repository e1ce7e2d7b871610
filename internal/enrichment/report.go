package enrichment

import (
	"fmt"
	"time"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

// ReportKind is the severity of a pass report
type ReportKind string

const (
	ReportKindSuccess ReportKind = "success"
	ReportKindWarning ReportKind = "warning"
)

const reportTitle = "Enrichment finished"

// SourceResult is the outcome of one (product, source) call
type SourceResult struct {
	Source   domain.Source  `json:"source"`
	Tier     domain.Tier    `json:"tier"`
	Outcome  domain.Outcome `json:"outcome"`
	Error    string         `json:"error,omitempty"`
	Duration time.Duration  `json:"duration"`
}

// ProductOutcome is the outcome of one product in a pass
type ProductOutcome struct {
	ProductID       int64              `json:"product_id"`
	Status          domain.AuditStatus `json:"status"`
	Sources         []SourceResult     `json:"sources,omitempty"`
	ImagesAdded     int                `json:"images_added"`
	AttributesError string             `json:"attributes_error,omitempty"`
	Error           string             `json:"error,omitempty"`
}

// Succeeded reports whether at least one source contributed
func (o ProductOutcome) Succeeded() bool {
	for _, s := range o.Sources {
		if s.Outcome == domain.OutcomeSuccess {
			return true
		}
	}
	return false
}

// Report is the count-based summary of a pass
type Report struct {
	RunID      string           `json:"run_id"`
	Pass       domain.Pass      `json:"pass"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Kind       ReportKind       `json:"kind"`
	Processed  int              `json:"processed"`
	Succeeded  int              `json:"succeeded"`
	Failed     int              `json:"failed"`
	Skipped    int              `json:"skipped"`
	Products   []ProductOutcome `json:"products"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}

// newReport tallies outcomes; products are counted even when the batch was aborted
func newReport(runID string, pass domain.Pass, outcomes []ProductOutcome, startedAt, finishedAt time.Time) *Report {
	r := &Report{
		RunID:      runID,
		Pass:       pass,
		Title:      reportTitle,
		Products:   outcomes,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}

	for _, o := range outcomes {
		r.Processed++
		switch {
		case o.Status == domain.AuditStatusSkipped:
			r.Skipped++
		case o.Succeeded():
			r.Succeeded++
		default:
			r.Failed++
		}
	}

	r.Message = fmt.Sprintf("Processed %d products. Succeeded: %d | Failed: %d", r.Processed, r.Succeeded, r.Failed)
	if r.Skipped > 0 {
		r.Message += fmt.Sprintf(" | Skipped: %d", r.Skipped)
	}

	r.Kind = ReportKindWarning
	if r.Succeeded > 0 {
		r.Kind = ReportKindSuccess
	}

	return r
}

// MergeReports combines the reports of consecutive batches of one pass into a single report
func MergeReports(runID string, pass domain.Pass, reports ...*Report) *Report {
	var outcomes []ProductOutcome
	var startedAt, finishedAt time.Time
	for _, r := range reports {
		if r == nil {
			continue
		}
		outcomes = append(outcomes, r.Products...)
		if startedAt.IsZero() || (!r.StartedAt.IsZero() && r.StartedAt.Before(startedAt)) {
			startedAt = r.StartedAt
		}
		if r.FinishedAt.After(finishedAt) {
			finishedAt = r.FinishedAt
		}
	}
	return newReport(runID, pass, outcomes, startedAt, finishedAt)
}

// Package stats holds the aggregation helpers behind the dashboards: pure
// functions over already-fetched records, recomputed per request and never
// persisted.
package stats

import (
	"math"

	"github.com/shopspring/decimal"

	"lollyshoppe/internal/model"
)

// InvoiceTotal sums invoice amounts. With no statuses given every invoice
// counts; otherwise only invoices in one of the given statuses do.
func InvoiceTotal(invoices []model.Invoice, statuses ...model.InvoiceStatus) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if len(statuses) > 0 && !statusIn(inv.Status, statuses) {
			continue
		}
		total = total.Add(inv.Amount)
	}
	return total
}

// MilestoneProgress reports completed count, total count, and the completion
// percentage rounded to the nearest integer. Zero milestones is 0%.
func MilestoneProgress(milestones []model.Milestone) (completed, total, percent int) {
	total = len(milestones)
	for _, m := range milestones {
		if m.Completed() {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	percent = int(math.Round(float64(completed) / float64(total) * 100))
	return completed, total, percent
}

// ProjectStatusCounts tallies projects per status.
func ProjectStatusCounts(projects []model.Project) map[model.ProjectStatus]int {
	counts := make(map[model.ProjectStatus]int)
	for _, p := range projects {
		counts[p.Status]++
	}
	return counts
}

// NextMilestone returns the first incomplete milestone by display order, or
// nil when everything is done.
func NextMilestone(milestones []model.Milestone) *model.Milestone {
	for i := range milestones {
		if !milestones[i].Completed() {
			return &milestones[i]
		}
	}
	return nil
}

func statusIn(status model.InvoiceStatus, statuses []model.InvoiceStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

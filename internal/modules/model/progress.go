package model

import (
	"math"
	"time"
)

// ProgressFromTasks computes the canonical completion percentage for a task
// list. Cancelled tasks are excluded from the denominator, so cancelling a
// task never lowers the percentage on its own; a list that is empty or fully
// cancelled reports 0, never 100.
func ProgressFromTasks(tasks []ClientProjectTask) int {
	actionable := 0
	done := 0
	for _, t := range tasks {
		if t.Status == TaskCancelled {
			continue
		}
		actionable++
		if t.Status == TaskDone {
			done++
		}
	}
	if actionable == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(actionable) * 100))
}

// EffectiveProgress is the progress value every consumer should display:
// derived from tasks when any exist, otherwise the stored field.
func EffectiveProgress(p ClientProject) int {
	if len(p.Tasks) > 0 {
		return ProgressFromTasks(p.Tasks)
	}
	return p.Progress
}

// DaysRemaining returns the whole days between now and the project end date,
// negative when overdue. The second return is false when no end date is set
// or it cannot be parsed.
func DaysRemaining(p ClientProject, now time.Time) (int, bool) {
	end, ok := parseDate(p.EndDate)
	if !ok {
		return 0, false
	}
	return int(math.Ceil(end.Sub(now).Hours() / 24)), true
}

// DeriveDelivery computes the deadline-aware status and health pair for a
// client project. Unlike the stored Status/Health override fields, the
// derived pair is always internally consistent. With no parseable end date
// the stored status is passed through, since nothing can be inferred from an
// open-ended engagement.
func DeriveDelivery(p ClientProject, now time.Time) (DeliveryStatus, Health) {
	days, ok := DaysRemaining(p, now)
	if !ok {
		return p.Status, healthFor(p.Status)
	}

	status := StatusOnTrack
	switch {
	case EffectiveProgress(p) >= 95:
		status = StatusOnTrack
	case days < 0:
		status = StatusBehind
	case days <= 3:
		status = StatusAtRisk
	}
	return status, healthFor(status)
}

func healthFor(s DeliveryStatus) Health {
	switch s {
	case StatusBehind:
		return HealthRed
	case StatusAtRisk:
		return HealthAmber
	default:
		return HealthGreen
	}
}

// Dates in the dataset are either plain dates or full RFC 3339 timestamps,
// depending on which admin form wrote them.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

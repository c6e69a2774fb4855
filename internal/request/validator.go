package request

import (
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
)

const dateFormat = "2006-01-02"

// Evaluate checks a set of candidate dates against the staff member's
// current records. It is pure: callers may re-run it on every edit.
//
// The baseline per date is the true scheduled window: an official row's own
// times, the shadow underneath a pending request, or OFF when nothing is
// scheduled. A proposal identical to its baseline carries no information and
// blocks submission, as does an inverted window or a date not strictly after
// today.
func Evaluate(today time.Time, dates []time.Time, proposals map[string]Proposal, existing map[string]shift.Shift) Evaluation {
	eval := Evaluation{CanSubmit: len(dates) > 0}

	todayKey := today.Format(dateFormat)
	for _, d := range dates {
		key := d.Format(dateFormat)
		check := DateCheck{Date: key, Past: key <= todayKey}

		row, found := existing[key]
		check.BaselineStart, check.BaselineEnd = baseline(row, found)
		check.NewRequest = !found || (!row.IsOfficialPreExist && row.Status != shift.StatusOfficial)

		check.Start, check.End = effective(proposals, key, check.BaselineStart, check.BaselineEnd)
		check.Redundant = check.Start == check.BaselineStart && check.End == check.BaselineEnd
		check.TimeInverted = shift.Inverted(check.Start, check.End)

		if check.Redundant || check.TimeInverted || check.Past {
			eval.CanSubmit = false
		}
		eval.Checks = append(eval.Checks, check)
	}

	return eval
}

func baseline(row shift.Shift, found bool) (string, string) {
	if !found {
		return shift.TimeOff, shift.TimeOff
	}
	switch row.Status {
	case shift.StatusOfficial:
		return row.StartTime, row.EndTime
	case shift.StatusRequested:
		if row.HPStartTime != nil && row.HPEndTime != nil {
			return *row.HPStartTime, *row.HPEndTime
		}
		return shift.TimeOff, shift.TimeOff
	default:
		// an absent row still reflects what was scheduled
		return row.StartTime, row.EndTime
	}
}

func effective(proposals map[string]Proposal, key, baseStart, baseEnd string) (string, string) {
	p, ok := proposals[key]
	if !ok {
		return baseStart, baseEnd
	}

	start, end := p.Start, p.End
	if start == "" {
		start = fallback(baseStart, shift.DefaultStartTime)
	}
	if end == "" {
		end = fallback(baseEnd, shift.DefaultEndTime)
	}
	if shift.IsOff(start) || shift.IsOff(end) {
		return shift.TimeOff, shift.TimeOff
	}
	return shift.PadTime(start), shift.PadTime(end)
}

func fallback(base, def string) string {
	if shift.IsOff(base) {
		return def
	}
	return base
}

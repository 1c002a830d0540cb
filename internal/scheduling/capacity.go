// Package scheduling computes speaking-session capacity for exam time
// windows. Everything here is pure arithmetic over the window records; the
// service layer supplies the data and persists nothing from the results.
package scheduling

import (
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeWindow is one bookable range on one date. Start and end times are the
// strings staff typed into the exam form, either 24-hour ("14:00") or
// 12-hour ("02:00 PM").
type TimeWindow struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Capacity is the derived result for one window. It is recomputed on demand
// and never stored.
type Capacity struct {
	SessionsPerInstructor int `json:"sessionsPerInstructor"`
	TotalCapacity         int `json:"totalCapacity"`
	TotalMinutes          int `json:"totalMinutes"`
	Utilization           int `json:"utilization"`
}

// OverlapWarning flags two windows on the same date whose ranges intersect.
// Overlapping windows double-count instructor capacity in the summation;
// callers surface this as a warning without changing the arithmetic.
type OverlapWarning struct {
	Date     string `json:"date"`
	FirstID  string `json:"firstId"`
	SecondID string `json:"secondId"`
}

// parseClock converts a time string to minutes since midnight. The second
// return is false when the string is not a recognizable clock time.
func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	meridiem := ""
	if fields := strings.Fields(s); len(fields) == 2 {
		switch strings.ToUpper(fields[1]) {
		case "AM", "PM":
			meridiem = strings.ToUpper(fields[1])
			s = fields[0]
		default:
			return 0, false
		}
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, false
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minute, true
}

// windowSpan returns the window length in minutes. An end at or before the
// start is treated as crossing midnight.
func windowSpan(start, end int) int {
	if end > start {
		return end - start
	}
	return (minutesPerDay - start) + end
}

// SessionsInWindow computes how many fixed-length sessions fit in one window
// for the given instructor count. Degenerate input (unparseable times,
// non-positive duration) yields the zero Capacity rather than an error so a
// half-filled exam form keeps working.
func SessionsInWindow(w TimeWindow, sessionMinutes, instructors int) Capacity {
	start, okStart := parseClock(w.StartTime)
	end, okEnd := parseClock(w.EndTime)
	if !okStart || !okEnd || sessionMinutes <= 0 {
		return Capacity{}
	}

	span := windowSpan(start, end)
	perInstructor := span / sessionMinutes

	utilization := 0
	if span > 0 {
		utilization = int(math.Round(100 * float64(perInstructor*sessionMinutes) / float64(span)))
	}

	return Capacity{
		SessionsPerInstructor: perInstructor,
		TotalCapacity:         perInstructor * instructors,
		TotalMinutes:          span,
		Utilization:           utilization,
	}
}

// TotalCapacity sums session capacity across windows. Duration and
// instructor count are exam-level settings, held fixed for every window.
// Windows are independent; overlap detection is OverlapWarnings' job.
func TotalCapacity(windows []TimeWindow, sessionMinutes, instructors int) int {
	total := 0
	for _, w := range windows {
		total += SessionsInWindow(w, sessionMinutes, instructors).TotalCapacity
	}
	return total
}

// OverlapWarnings reports every pair of same-date windows whose time ranges
// intersect. Midnight-crossing windows extend past the date boundary for the
// comparison. Unparseable windows are skipped, consistent with the zeroed
// capacity they produce.
func OverlapWarnings(windows []TimeWindow) []OverlapWarning {
	type span struct {
		w          TimeWindow
		start, end int
	}

	byDate := make(map[string][]span)
	for _, w := range windows {
		start, okStart := parseClock(w.StartTime)
		end, okEnd := parseClock(w.EndTime)
		if !okStart || !okEnd {
			continue
		}
		byDate[w.Date] = append(byDate[w.Date], span{w: w, start: start, end: start + windowSpan(start, end)})
	}

	var warnings []OverlapWarning
	for date, spans := range byDate {
		for i := 0; i < len(spans); i++ {
			for j := i + 1; j < len(spans); j++ {
				if spans[i].start < spans[j].end && spans[j].start < spans[i].end {
					warnings = append(warnings, OverlapWarning{
						Date:     date,
						FirstID:  spans[i].w.ID,
						SecondID: spans[j].w.ID,
					})
				}
			}
		}
	}
	return warnings
}

package service

import (
	"log/slog"
	"sort"
	"time"

	"github.com/aficat/makan365/internal/model"
)

const dayFormat = "2006-01-02"

// AggregateStreaks recomputes StreakState from the full log collection.
// Entries are bucketed by local calendar day; a day qualifies when at least
// one of its entries is grade A. The current streak requires a qualifying
// entry on asOf's own date (there is no grace period) and extends backwards
// through consecutive qualifying days. The longest streak is the longest
// run of consecutive qualifying days anywhere in history. Entries with
// timestamps that do not parse are dropped from bucketing (and logged); they
// still count toward TotalLogs.
func AggregateStreaks(logs []model.LogEntry, asOf time.Time) model.StreakState {
	state := model.StreakState{TotalLogs: len(logs)}

	byDay := bucketByDay(logs)
	if len(byDay) == 0 {
		return state
	}
	state.TotalDays = len(byDay)

	qualifying := map[string]bool{}
	for day, entries := range byDay {
		for _, e := range entries {
			if e.NutriGrade == model.GradeA {
				qualifying[day] = true
				break
			}
		}
	}
	state.TotalGradeA = len(qualifying)

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	// Current streak: the walk starts at the most recent day, which must be
	// asOf's date and must qualify, then continues while each prior day is
	// exactly one calendar day earlier and also qualifies.
	today := asOf.Format(dayFormat)
	if days[0] == today && qualifying[today] {
		state.CurrentStreak = 1
		prev, _ := time.ParseInLocation(dayFormat, days[0], time.Local)
		for _, day := range days[1:] {
			if !qualifying[day] {
				break
			}
			d, _ := time.ParseInLocation(dayFormat, day, time.Local)
			if !d.AddDate(0, 0, 1).Equal(prev) {
				break
			}
			state.CurrentStreak++
			prev = d
		}
	}

	state.LongestStreak = longestQualifyingRun(qualifying)
	return state
}

// longestQualifyingRun finds the longest run of calendar-consecutive
// qualifying days across the whole history.
func longestQualifyingRun(qualifying map[string]bool) int {
	if len(qualifying) == 0 {
		return 0
	}
	days := make([]string, 0, len(qualifying))
	for day := range qualifying {
		days = append(days, day)
	}
	sort.Strings(days)

	longest, run := 1, 1
	prev, _ := time.ParseInLocation(dayFormat, days[0], time.Local)
	for _, day := range days[1:] {
		d, _ := time.ParseInLocation(dayFormat, day, time.Local)
		if prev.AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}
	return longest
}

// RecentActivity summarizes the n days ending at asOf, oldest first. Days
// with no entries are included with zero counts.
func RecentActivity(logs []model.LogEntry, asOf time.Time, n int) []model.DayActivity {
	byDay := bucketByDay(logs)
	out := make([]model.DayActivity, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := asOf.AddDate(0, 0, -i)
		day := d.Format(dayFormat)
		activity := model.DayActivity{Date: day, DayName: d.Format("Mon")}
		for _, e := range byDay[day] {
			activity.TotalLogs++
			if e.NutriGrade == model.GradeA {
				activity.GradeACount++
			}
		}
		out = append(out, activity)
	}
	return out
}

func bucketByDay(logs []model.LogEntry) map[string][]model.LogEntry {
	byDay := map[string][]model.LogEntry{}
	for _, e := range logs {
		t, err := e.Time()
		if err != nil {
			slog.Warn("dropping log entry with malformed timestamp from aggregation", "id", e.ID, "timestamp", e.Timestamp)
			continue
		}
		day := t.Local().Format(dayFormat)
		byDay[day] = append(byDay[day], e)
	}
	return byDay
}

package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

func TestNewLogEntryPopulatesEverything(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 15, 12, 30, 0, 0, time.Local)
	n := &model.Nutrition{Calories: 90, Sugar: 2, SaturatedFat: 1, Sodium: 100}
	e := service.NewLogEntry(n, "label.jpg", "Calories 90", at)

	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if e.Timestamp != at.Format(time.RFC3339) {
		t.Fatalf("expected RFC 3339 timestamp, got %q", e.Timestamp)
	}
	if e.NutriGrade != model.GradeA || e.Nutrition.NutriGrade != model.GradeA {
		t.Fatalf("expected grade cached on entry and record, got %s / %s", e.NutriGrade, e.Nutrition.NutriGrade)
	}
	if e.Image != "label.jpg" || e.ExtractedText != "Calories 90" {
		t.Fatalf("unexpected capture fields: %+v", e)
	}

	other := service.NewLogEntry(n, "", "", at)
	if other.ID == e.ID {
		t.Fatalf("expected unique ids per entry")
	}
	if other.ID < e.ID {
		t.Fatalf("expected creation-ordered ids, got %s before %s", e.ID, other.ID)
	}
}

func TestSortedLogsNewestFirst(t *testing.T) {
	t.Parallel()

	logs := []model.LogEntry{
		entryOn(asOf, -2, model.GradeA),
		entryOn(asOf, 0, model.GradeB),
		{ID: "broken", Timestamp: "garbage"},
		entryOn(asOf, -1, model.GradeC),
	}
	sorted := service.SortedLogs(logs)
	if len(sorted) != 4 {
		t.Fatalf("expected all entries kept, got %d", len(sorted))
	}
	if sorted[0].NutriGrade != model.GradeB || sorted[1].NutriGrade != model.GradeC || sorted[2].NutriGrade != model.GradeA {
		t.Fatalf("unexpected order: %+v", sorted)
	}
	if sorted[3].ID != "broken" {
		t.Fatalf("expected malformed timestamp to sort last, got %+v", sorted[3])
	}
	if logs[0].NutriGrade != model.GradeA {
		t.Fatalf("input slice must not be reordered")
	}
}

func TestFindLogByID(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	st := store.New(sqldb)

	e := entryOn(asOf, 0, model.GradeA)
	if err := st.Append(e); err != nil {
		t.Fatalf("append: %v", err)
	}

	found, err := service.FindLog(st, e.ID)
	if err != nil {
		t.Fatalf("find log: %v", err)
	}
	if found.ID != e.ID {
		t.Fatalf("expected %s, got %s", e.ID, found.ID)
	}

	if _, err := service.FindLog(st, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/aficat/makan365/internal/db"
	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "makan365.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

// entryOn builds a graded entry timestamped at noon local time on the given
// day offset from asOf. Offset 0 is asOf's own date.
func entryOn(asOf time.Time, dayOffset int, grade model.Grade) model.LogEntry {
	d := asOf.AddDate(0, 0, dayOffset)
	at := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
	n := nutritionForGrade(grade)
	e := service.NewLogEntry(n, "", "", at)
	return e
}

// nutritionForGrade returns a record that grades to the requested value.
func nutritionForGrade(grade model.Grade) *model.Nutrition {
	switch grade {
	case model.GradeA:
		return &model.Nutrition{Calories: 90, Sugar: 2, SaturatedFat: 1, Sodium: 100}
	case model.GradeB:
		return &model.Nutrition{Calories: 350, Sugar: 2, SaturatedFat: 3, Sodium: 250}
	case model.GradeC:
		return &model.Nutrition{Calories: 450, Sugar: 8, SaturatedFat: 8, Sodium: 250}
	case model.GradeD:
		return &model.Nutrition{Calories: 600, Sugar: 20, SaturatedFat: 10, Sodium: 500}
	default:
		return nil
	}
}

package service

import (
	"sort"
	"time"

	"github.com/rs/xid"

	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/store"
)

// NewLogEntry builds a fully-populated entry for the save flow: id, RFC 3339
// timestamp, and the denormalized grade cached on both the entry and the
// nutrient record.
func NewLogEntry(n *model.Nutrition, image, extractedText string, at time.Time) model.LogEntry {
	grade := GradeNutrition(n)
	if n != nil {
		n.NutriGrade = grade
	}
	return model.LogEntry{
		ID:            xid.New().String(),
		Timestamp:     at.Format(time.RFC3339),
		Image:         image,
		ExtractedText: extractedText,
		Nutrition:     n,
		NutriGrade:    grade,
	}
}

// SortedLogs returns the collection newest first. Entries with malformed
// timestamps sort last; order within them is kept stable.
func SortedLogs(logs []model.LogEntry) []model.LogEntry {
	out := make([]model.LogEntry, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		ti, erri := out[i].Time()
		tj, errj := out[j].Time()
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return ti.After(tj)
	})
	return out
}

// FindLog looks an entry up by id.
func FindLog(st store.LogStore, id string) (model.LogEntry, error) {
	logs, err := st.List()
	if err != nil {
		return model.LogEntry{}, err
	}
	for _, e := range logs {
		if e.ID == id {
			return e, nil
		}
	}
	return model.LogEntry{}, store.ErrNotFound
}

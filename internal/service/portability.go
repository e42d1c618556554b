package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/xid"

	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/store"
)

// ExportLogs writes the whole collection as indented JSON, in the exact
// persisted shape, so an export can be re-imported or inspected by hand.
func ExportLogs(st store.LogStore, w io.Writer) (int, error) {
	logs, err := st.List()
	if err != nil {
		return 0, err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(logs); err != nil {
		return 0, fmt.Errorf("encode export json: %w", err)
	}
	return len(logs), nil
}

// ImportLogs reads a JSON array of entries. Missing ids are regenerated and
// missing or stale grades recomputed; nutrient fields absent from the input
// default to zero via decoding. In merge mode entries whose id is already
// present are skipped; otherwise the collection is replaced wholesale.
// Returns the number of entries written.
func ImportLogs(st store.LogStore, r io.Reader, merge bool) (int, error) {
	var incoming []model.LogEntry
	if err := json.NewDecoder(r).Decode(&incoming); err != nil {
		return 0, fmt.Errorf("decode import json: %w", err)
	}

	for i := range incoming {
		if incoming[i].ID == "" {
			incoming[i].ID = xid.New().String()
		}
		if incoming[i].Timestamp == "" {
			incoming[i].Timestamp = time.Now().Format(time.RFC3339)
		}
		grade := GradeNutrition(incoming[i].Nutrition)
		incoming[i].NutriGrade = grade
		if incoming[i].Nutrition != nil {
			incoming[i].Nutrition.NutriGrade = grade
		}
	}

	if !merge {
		if err := dropDuplicateIDs(&incoming); err != nil {
			return 0, err
		}
		if err := st.Replace(incoming); err != nil {
			return 0, err
		}
		return len(incoming), nil
	}

	existing, err := st.List()
	if err != nil {
		return 0, err
	}
	present := map[string]bool{}
	for _, e := range existing {
		present[e.ID] = true
	}
	added := 0
	for _, e := range incoming {
		if present[e.ID] {
			continue
		}
		present[e.ID] = true
		existing = append(existing, e)
		added++
	}
	if err := st.Replace(existing); err != nil {
		return 0, err
	}
	return added, nil
}

func dropDuplicateIDs(entries *[]model.LogEntry) error {
	seen := map[string]bool{}
	kept := (*entries)[:0]
	for _, e := range *entries {
		if seen[e.ID] {
			return fmt.Errorf("import contains duplicate entry id %s", e.ID)
		}
		seen[e.ID] = true
		kept = append(kept, e)
	}
	*entries = kept
	return nil
}

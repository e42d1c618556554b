package makan365

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testLabel = "Calories: 90 kcal, Sugar: 2g, Saturated fat: 1g, Sodium: 100mg, Protein: 5g"

func extractEntryID(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Logged entry ") {
			fields := strings.Fields(line)
			return fields[len(fields)-1]
		}
	}
	t.Fatalf("no logged entry id in output:\n%s", out)
	return ""
}

func TestScanLogShowDeleteFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")

	out, err := runCLI(t, "--db", db, "scan", "--text", testLabel, "--name", "Test Snack")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "Nutri-Grade: A") {
		t.Fatalf("expected grade A for the low-everything label, got:\n%s", out)
	}
	id := extractEntryID(t, out)

	out, err = runCLI(t, "--db", db, "log", "list", "--limit", "50", "--grade", "")
	if err != nil {
		t.Fatalf("log list: %v", err)
	}
	if !strings.Contains(out, id) || !strings.Contains(out, "Test Snack") {
		t.Fatalf("expected listed entry, got:\n%s", out)
	}

	out, err = runCLI(t, "--db", db, "log", "show", id)
	if err != nil {
		t.Fatalf("log show: %v", err)
	}
	if !strings.Contains(out, "Calories: 90 kcal") {
		t.Fatalf("expected parsed calories in show output, got:\n%s", out)
	}

	if _, err := runCLI(t, "--db", db, "log", "delete", id); err == nil {
		t.Fatalf("expected delete without --yes to refuse")
	}
	if _, err := runCLI(t, "--db", db, "log", "delete", id, "--yes"); err != nil {
		t.Fatalf("log delete: %v", err)
	}
	out, err = runCLI(t, "--db", db, "log", "list", "--limit", "50", "--grade", "")
	if err != nil {
		t.Fatalf("log list after delete: %v", err)
	}
	if strings.Contains(out, id) {
		t.Fatalf("expected entry gone after delete, got:\n%s", out)
	}
}

func TestScanRequiresImageOrText(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")
	if _, err := runCLI(t, "--db", db, "scan", "--text", "", "--image", ""); err == nil {
		t.Fatalf("expected scan without input to fail")
	}
}

func TestScanNoSaveLeavesLogEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")

	out, err := runCLI(t, "--db", db, "scan", "--text", testLabel, "--no-save")
	if err != nil {
		t.Fatalf("scan dry run: %v", err)
	}
	if !strings.Contains(out, "Dry run, nothing saved.") {
		t.Fatalf("expected dry-run notice, got:\n%s", out)
	}

	out, err = runCLI(t, "--db", db, "streaks")
	if err != nil {
		t.Fatalf("streaks: %v", err)
	}
	if !strings.Contains(out, "Total logs: 0") {
		t.Fatalf("expected empty log after dry run, got:\n%s", out)
	}
	// reset for later runs sharing the flag variable
	scanNoSave = false
}

func TestStreaksAndBadgesAfterGradeAToday(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")

	if _, err := runCLI(t, "--db", db, "scan", "--text", testLabel); err != nil {
		t.Fatalf("scan: %v", err)
	}
	out, err := runCLI(t, "--db", db, "streaks")
	if err != nil {
		t.Fatalf("streaks: %v", err)
	}
	if !strings.Contains(out, "Current streak: 1 day(s)") {
		t.Fatalf("expected a 1-day streak, got:\n%s", out)
	}
	if !strings.Contains(out, "Weekly goal: 1/7 days (in progress)") {
		t.Fatalf("expected weekly goal progress, got:\n%s", out)
	}

	out, err = runCLI(t, "--db", db, "badges")
	if err != nil {
		t.Fatalf("badges: %v", err)
	}
	if !strings.Contains(out, "No badges yet") {
		t.Fatalf("expected no badges after one log, got:\n%s", out)
	}
}

func TestHealthy365SyncFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")

	out, err := runCLI(t, "--db", db, "scan", "--text", testLabel)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	id := extractEntryID(t, out)

	out, err = runCLI(t, "--db", db, "healthy365", "sync", id)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !strings.Contains(out, "Points earned: 10 (Nutri-Grade A)") {
		t.Fatalf("expected 10 points for grade A, got:\n%s", out)
	}

	if _, err := runCLI(t, "--db", db, "healthy365", "sync", "missing"); err == nil {
		t.Fatalf("expected sync of unknown entry to fail")
	}

	out, err = runCLI(t, "--db", db, "healthy365", "challenges")
	if err != nil {
		t.Fatalf("challenges: %v", err)
	}
	if !strings.Contains(out, "Nutri-Grade A Week") {
		t.Fatalf("expected challenge listing, got:\n%s", out)
	}
}

func TestExportImportFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")
	file := filepath.Join(t.TempDir(), "logs.json")

	if _, err := runCLI(t, "--db", db, "scan", "--text", testLabel); err != nil {
		t.Fatalf("scan: %v", err)
	}
	out, err := runCLI(t, "--db", db, "export", "--out", file)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 1 entries") {
		t.Fatalf("unexpected export output:\n%s", out)
	}

	db2 := filepath.Join(t.TempDir(), "other.db")
	out, err = runCLI(t, "--db", db2, "import", "--in", file)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Imported 1 entries") {
		t.Fatalf("unexpected import output:\n%s", out)
	}

	out, err = runCLI(t, "--db", db2, "streaks")
	if err != nil {
		t.Fatalf("streaks on imported db: %v", err)
	}
	if !strings.Contains(out, "Total logs: 1") {
		t.Fatalf("expected imported entry to count, got:\n%s", out)
	}
}

func TestConfigCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")

	if _, err := runCLI(t, "--db", db, "config", "set", "vision_api_key", "k123"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	out, err := runCLI(t, "--db", db, "config", "get", "vision_api_key")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if !strings.Contains(out, "k123") {
		t.Fatalf("expected stored value, got:\n%s", out)
	}
	if _, err := runCLI(t, "--db", db, "config", "get", "never_set"); err == nil {
		t.Fatalf("expected get of unset key to fail")
	}
	out, err = runCLI(t, "--db", db, "config", "list")
	if err != nil {
		t.Fatalf("config list: %v", err)
	}
	if !strings.Contains(out, "vision_api_key=k123") {
		t.Fatalf("expected key in listing, got:\n%s", out)
	}
}

func TestDoctorCleanAndFix(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")

	if _, err := runCLI(t, "--db", db, "scan", "--text", testLabel); err != nil {
		t.Fatalf("scan: %v", err)
	}
	out, err := runCLI(t, "--db", db, "doctor")
	if err != nil {
		t.Fatalf("doctor on clean collection: %v", err)
	}
	if !strings.Contains(out, "Duplicate ids: 0") {
		t.Fatalf("unexpected doctor output:\n%s", out)
	}
}

func TestShowAndListEntryWithoutNutritionRecord(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")
	file := filepath.Join(t.TempDir(), "logs.json")

	payload := `[{"id":"bare1","timestamp":"2026-08-27T10:00:00Z","nutrition":null}]`
	if err := os.WriteFile(file, []byte(payload), 0o644); err != nil {
		t.Fatalf("write import file: %v", err)
	}
	if _, err := runCLI(t, "--db", db, "import", "--in", file); err != nil {
		t.Fatalf("import: %v", err)
	}

	out, err := runCLI(t, "--db", db, "log", "show", "bare1")
	if err != nil {
		t.Fatalf("log show without nutrition record: %v", err)
	}
	if !strings.Contains(out, "Nutri-Grade: Unknown") {
		t.Fatalf("expected Unknown grade in show output, got:\n%s", out)
	}
	if !strings.Contains(out, "No nutrition information available") {
		t.Fatalf("expected Unknown-grade guidance, got:\n%s", out)
	}

	out, err = runCLI(t, "--db", db, "log", "list", "--limit", "50", "--grade", "")
	if err != nil {
		t.Fatalf("log list without nutrition record: %v", err)
	}
	if !strings.Contains(out, "bare1") {
		t.Fatalf("expected bare entry listed, got:\n%s", out)
	}

	out, err = runCLI(t, "--db", db, "log", "list", "--limit", "50", "--grade", "unknown")
	if err != nil {
		t.Fatalf("log list grade filter: %v", err)
	}
	if !strings.Contains(out, "bare1") {
		t.Fatalf("expected unknown-grade filter to match the bare entry, got:\n%s", out)
	}
}

func TestVenuesAndSimilarCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "makan365.db")

	out, err := runCLI(t, "--db", db, "venues", "--radius", "10", "--type", "supermarket")
	if err != nil {
		t.Fatalf("venues: %v", err)
	}
	if !strings.Contains(out, "FairPrice Finest") {
		t.Fatalf("expected supermarket venue, got:\n%s", out)
	}

	out, err = runCLI(t, "--db", db, "similar", "--calories", "200", "--protein", "30", "--carbs", "15", "--fat", "5", "--sodium", "400", "--sugar", "1")
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if !strings.Contains(out, "Fish Soup") {
		t.Fatalf("expected fish soup as the closest match, got:\n%s", out)
	}

	out, err = runCLI(t, "--db", db, "recommend")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(out, "balanced") {
		t.Fatalf("expected balanced-history message on an empty log, got:\n%s", out)
	}
}

package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/zenscreen/internal/store"
)

func testApps() []store.AppRecord {
	return []store.AppRecord{
		{ID: "instagram", Name: "Instagram", Category: "Social", UsageMinutes: 87, DailyLimit: 60, Opens: 23, Notifications: 45},
		{ID: "chrome", Name: "Chrome", Category: "Productivity", UsageMinutes: 55, Opens: 30, Notifications: 5},
	}
}

func testRecords() []store.SleepRecord {
	end := time.Date(2025, 6, 9, 7, 0, 0, 0, time.UTC)
	return []store.SleepRecord{
		{ID: "s1", StartTime: end.Add(-8 * time.Hour), EndTime: end, DurationMinutes: 480, AutoDetected: true, QualityRating: 4},
		{ID: "s2", StartTime: end.Add(-5 * time.Hour), EndTime: end, DurationMinutes: 300},
	}
}

// ============================================================
// JSON export
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := ToJSON(testApps(), testRecords(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if out.ExportedAt == "" {
		t.Fatal("exported_at missing")
	}
	if len(out.Usage) != 2 {
		t.Fatalf("expected 2 usage rows, got %d", len(out.Usage))
	}
	if out.Usage[0].AppID != "instagram" || out.Usage[0].UsageMinutes != 87 {
		t.Fatalf("unexpected usage row: %+v", out.Usage[0])
	}
	if len(out.Sleep) != 2 {
		t.Fatalf("expected 2 sleep rows, got %d", len(out.Sleep))
	}
	if out.Sleep[0].Quality != "excellent" || !out.Sleep[0].AutoDetected {
		t.Fatalf("unexpected sleep row: %+v", out.Sleep[0])
	}
	if out.Sleep[1].Quality != "poor" || out.Sleep[1].QualityRating != 0 {
		t.Fatalf("unexpected sleep row: %+v", out.Sleep[1])
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := ToJSON(nil, nil, path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
}

func TestToJSONBadPath(t *testing.T) {
	if err := ToJSON(testApps(), nil, "/nonexistent/dir/export.json"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

// ============================================================
// CSV export
// ============================================================

func TestUsageToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.csv")
	if err := UsageToCSV(testApps(), path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 { // header + 2 apps
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "App" || rows[0][2] != "Minutes" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Instagram" || rows[1][3] != "60" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
	// Apps without a limit leave the column empty
	if rows[2][3] != "" {
		t.Fatalf("chrome limit should be empty, got %q", rows[2][3])
	}
}

func TestSleepToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sleep.csv")
	if err := SleepToCSV(testRecords(), path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][3] != "yes" || rows[1][4] != "excellent" || rows[1][5] != "4" {
		t.Fatalf("unexpected auto row: %v", rows[1])
	}
	if rows[2][3] != "" || rows[2][5] != "" {
		t.Fatalf("manual unrated row should have empty flags: %v", rows[2])
	}
	if !strings.Contains(rows[1][2], "8h") {
		t.Fatalf("duration not formatted: %q", rows[1][2])
	}
}

func TestCSVBadPath(t *testing.T) {
	if err := UsageToCSV(testApps(), "/nonexistent/dir/usage.csv"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if err := SleepToCSV(testRecords(), "/nonexistent/dir/sleep.csv"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

// ============================================================
// Formatting
// ============================================================

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0h 00m"},
		{59, "0h 59m"},
		{60, "1h 00m"},
		{480, "8h 00m"},
		{485, "8h 05m"},
	}
	for _, tt := range tests {
		if got := formatMinutes(tt.minutes); got != tt.want {
			t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/zenscreen/internal/sleepdetect"
	"github.com/sadopc/zenscreen/internal/store"
)

// UsageToCSV writes the per-app usage table.
func UsageToCSV(apps []store.AppRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"App", "Category", "Minutes", "Limit", "Opens", "Notifications"}); err != nil {
		return err
	}

	for _, a := range apps {
		limit := ""
		if a.DailyLimit > 0 {
			limit = fmt.Sprintf("%d", a.DailyLimit)
		}
		row := []string{
			a.Name,
			a.Category,
			fmt.Sprintf("%d", a.UsageMinutes),
			limit,
			fmt.Sprintf("%d", a.Opens),
			fmt.Sprintf("%d", a.Notifications),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// SleepToCSV writes the sleep log.
func SleepToCSV(records []store.SleepRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Start", "End", "Duration", "Auto", "Quality", "Rating"}); err != nil {
		return err
	}

	for _, r := range records {
		auto := ""
		if r.AutoDetected {
			auto = "yes"
		}
		rating := ""
		if r.QualityRating > 0 {
			rating = fmt.Sprintf("%d", r.QualityRating)
		}
		row := []string{
			r.StartTime.Local().Format(time.RFC3339),
			r.EndTime.Local().Format(time.RFC3339),
			formatMinutes(r.DurationMinutes),
			auto,
			sleepdetect.Quality(r.DurationMinutes),
			rating,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

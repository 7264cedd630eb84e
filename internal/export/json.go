package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/zenscreen/internal/sleepdetect"
	"github.com/sadopc/zenscreen/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Usage      []jsonUsage `json:"usage,omitempty"`
	Sleep      []jsonSleep `json:"sleep,omitempty"`
}

type jsonUsage struct {
	AppID         string `json:"app_id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	UsageMinutes  int    `json:"usage_minutes"`
	DailyLimit    int    `json:"daily_limit,omitempty"`
	Opens         int    `json:"opens"`
	Notifications int    `json:"notifications"`
}

type jsonSleep struct {
	ID              string `json:"id"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
	Duration        string `json:"duration"`
	AutoDetected    bool   `json:"auto_detected"`
	Quality         string `json:"quality"`
	QualityRating   int    `json:"quality_rating,omitempty"`
}

// ToJSON writes today's usage and the sleep log to one JSON document.
func ToJSON(apps []store.AppRecord, records []store.SleepRecord, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, a := range apps {
		export.Usage = append(export.Usage, jsonUsage{
			AppID:         a.ID,
			Name:          a.Name,
			Category:      a.Category,
			UsageMinutes:  a.UsageMinutes,
			DailyLimit:    a.DailyLimit,
			Opens:         a.Opens,
			Notifications: a.Notifications,
		})
	}

	for _, r := range records {
		export.Sleep = append(export.Sleep, jsonSleep{
			ID:              r.ID,
			Start:           r.StartTime.Local().Format(time.RFC3339),
			End:             r.EndTime.Local().Format(time.RFC3339),
			DurationMinutes: r.DurationMinutes,
			Duration:        formatMinutes(r.DurationMinutes),
			AutoDetected:    r.AutoDetected,
			Quality:         sleepdetect.Quality(r.DurationMinutes),
			QualityRating:   r.QualityRating,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

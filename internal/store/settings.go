package store

// DefaultSettings are the compiled-in settings used when the stored
// document is missing or unreadable.
func DefaultSettings() UserSettings {
	return UserSettings{
		WarningMessage:       "You have reached your daily limit for this app. Take a break and breathe.",
		DailyGoalMinutes:     120,
		FocusReminderEnabled: true,
		SleepTracking:        true,
		Bedtime:              "22:00",
		WakeTime:             "07:00",
		BlueLightEnabled:     true,
		BlueLightIntensity:   50,
		BlueLightAuto:        true,
	}
}

// GetSettings returns the stored settings, falling back to defaults on
// absence or malformed payload.
func (s *Store) GetSettings() (UserSettings, error) {
	settings := DefaultSettings()
	if _, err := s.get(KeySettings, &settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings UserSettings) error {
	return s.set(KeySettings, settings)
}

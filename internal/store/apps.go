package store

import "fmt"

// GetApps returns the tracked app catalog, seeding the compiled-in
// catalog when nothing is stored yet.
func (s *Store) GetApps() ([]AppRecord, error) {
	var apps []AppRecord
	ok, err := s.get(KeyApps, &apps)
	if err != nil {
		return SeedApps(), err
	}
	if !ok || len(apps) == 0 {
		return SeedApps(), nil
	}
	return apps, nil
}

func (s *Store) SaveApps(apps []AppRecord) error {
	return s.set(KeyApps, apps)
}

// UpdateApp applies fn to the app with the given id and persists the
// catalog. Unknown ids are an error; no partial mutation is applied.
func (s *Store) UpdateApp(appID string, fn func(*AppRecord)) error {
	apps, err := s.GetApps()
	if err != nil {
		return err
	}
	for i := range apps {
		if apps[i].ID == appID {
			fn(&apps[i])
			return s.SaveApps(apps)
		}
	}
	return fmt.Errorf("update app: unknown app %q", appID)
}

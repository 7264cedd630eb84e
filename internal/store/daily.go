package store

// Daily-tagged entities. Each is stored as a {date, payload} envelope;
// reading with a different tag yields the default value, never the stale
// payload.

func getDaily[T any](s *Store, key, today string, def T) (T, error) {
	var env dated[T]
	ok, err := s.get(key, &env)
	if err != nil {
		return def, err
	}
	if !ok || env.Date != today {
		return def, nil
	}
	return env.Payload, nil
}

func setDaily[T any](s *Store, key, today string, payload T) error {
	return s.set(key, dated[T]{Date: today, Payload: payload})
}

// GetDailyBonus returns bonus minutes earned on the given day.
func (s *Store) GetDailyBonus(today string) (int, error) {
	return getDaily(s, KeyDailyBonus, today, 0)
}

func (s *Store) SetDailyBonus(today string, minutes int) error {
	return setDaily(s, KeyDailyBonus, today, minutes)
}

// GetUsedPuzzleIDs returns puzzle ids already solved on the given day.
func (s *Store) GetUsedPuzzleIDs(today string) ([]string, error) {
	return getDaily(s, KeyUsedPuzzleIDs, today, []string(nil))
}

func (s *Store) SetUsedPuzzleIDs(today string, ids []string) error {
	return setDaily(s, KeyUsedPuzzleIDs, today, ids)
}

// GetPuzzleTiers returns the day's puzzle extension chain. The default is
// supplied by the caller so the store stays free of puzzle policy.
func (s *Store) GetPuzzleTiers(today string, def []PuzzleExtension) ([]PuzzleExtension, error) {
	return getDaily(s, KeyPuzzleTiers, today, def)
}

func (s *Store) SetPuzzleTiers(today string, tiers []PuzzleExtension) error {
	return setDaily(s, KeyPuzzleTiers, today, tiers)
}

// GetUsageToday returns the per-app minutes-used map for the given day.
func (s *Store) GetUsageToday(today string) (map[string]int, error) {
	return getDaily(s, KeyUsageToday, today, map[string]int(nil))
}

func (s *Store) SetUsageToday(today string, usage map[string]int) error {
	return setDaily(s, KeyUsageToday, today, usage)
}

// LastResetDate returns the date tag of the most recent daily reset,
// empty if no reset has ever run.
func (s *Store) LastResetDate() (string, error) {
	var tag string
	if _, err := s.get(KeyLastResetDate, &tag); err != nil {
		return "", err
	}
	return tag, nil
}

func (s *Store) SetLastResetDate(tag string) error {
	return s.set(KeyLastResetDate, tag)
}

// ResetDaily removes every daily-tagged key in one pass.
func (s *Store) ResetDaily() error {
	return s.remove(DailyKeys...)
}

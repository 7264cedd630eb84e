package store

import "fmt"

// GetSleepRecords returns all sleep records, oldest first.
func (s *Store) GetSleepRecords() ([]SleepRecord, error) {
	var records []SleepRecord
	if _, err := s.get(KeySleepRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AppendSleepRecord appends one record to the log. Records are otherwise
// immutable; use RateSleepRecord to attach a quality rating.
func (s *Store) AppendSleepRecord(record SleepRecord) error {
	records, err := s.GetSleepRecords()
	if err != nil {
		return err
	}
	records = append(records, record)
	return s.set(KeySleepRecords, records)
}

// RateSleepRecord attaches a 1-5 quality rating to an existing record.
func (s *Store) RateSleepRecord(id string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rate sleep: rating %d out of range", rating)
	}
	records, err := s.GetSleepRecords()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == id {
			records[i].QualityRating = rating
			return s.set(KeySleepRecords, records)
		}
	}
	return fmt.Errorf("rate sleep: unknown record %q", id)
}

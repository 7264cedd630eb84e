package store

// ActiveFocusSession returns the persisted active session, nil if none.
func (s *Store) ActiveFocusSession() (*FocusSession, error) {
	var session FocusSession
	ok, err := s.get(KeyActiveFocus, &session)
	if err != nil || !ok {
		return nil, err
	}
	return &session, nil
}

func (s *Store) SetActiveFocusSession(session *FocusSession) error {
	return s.set(KeyActiveFocus, session)
}

func (s *Store) ClearActiveFocusSession() error {
	return s.remove(KeyActiveFocus)
}

// GetFocusSessions returns the session history, oldest first.
func (s *Store) GetFocusSessions() ([]FocusSession, error) {
	var sessions []FocusSession
	if _, err := s.get(KeyFocusSessions, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SaveFocusSession upserts one session record into the history by id.
func (s *Store) SaveFocusSession(session FocusSession) error {
	sessions, err := s.GetFocusSessions()
	if err != nil {
		return err
	}
	replaced := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, session)
	}
	return s.set(KeyFocusSessions, sessions)
}

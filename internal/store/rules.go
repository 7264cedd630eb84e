package store

// GetBlockRules returns all block rules, empty on absence.
func (s *Store) GetBlockRules() ([]BlockRule, error) {
	var rules []BlockRule
	if _, err := s.get(KeyBlockRules, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// SetBlockRule upserts the rule for its app id, keeping the at most one
// rule per app invariant.
func (s *Store) SetBlockRule(rule BlockRule) error {
	rules, err := s.GetBlockRules()
	if err != nil {
		return err
	}
	replaced := false
	for i := range rules {
		if rules[i].AppID == rule.AppID {
			rules[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		rules = append(rules, rule)
	}
	return s.set(KeyBlockRules, rules)
}

func (s *Store) RemoveBlockRule(appID string) error {
	rules, err := s.GetBlockRules()
	if err != nil {
		return err
	}
	kept := rules[:0]
	for _, r := range rules {
		if r.AppID != appID {
			kept = append(kept, r)
		}
	}
	return s.set(KeyBlockRules, kept)
}

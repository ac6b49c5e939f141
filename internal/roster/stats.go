package roster

// Summary holds derived statistics for one roster. It is computed on demand
// and never stored.
type Summary struct {
	TotalPlayers int            `json:"total_players"`
	Positions    map[string]int `json:"positions,omitempty"`
	TotalCaps    int            `json:"total_caps"`
	TotalGoals   int            `json:"total_goals"`
	AverageAge   *float64       `json:"average_age,omitempty"`
	TopScorer    *Player        `json:"top_scorer,omitempty"`
	MostCapped   *Player        `json:"most_capped,omitempty"`
}

// Stats computes summary statistics for a roster. Missing ages are excluded
// from the average; top scorer and most capped break ties by document order,
// first occurrence winning.
func Stats(r *Roster) *Summary {
	s := &Summary{
		TotalPlayers: len(r.Players),
		Positions:    make(map[string]int),
	}

	ageSum := 0
	ageCount := 0

	for _, p := range r.Players {
		if p.Position != "" {
			s.Positions[p.Position]++
		}
		if p.Caps != nil {
			s.TotalCaps += *p.Caps
		}
		if p.Goals != nil {
			s.TotalGoals += *p.Goals
		}
		if p.Age != nil {
			ageSum += *p.Age
			ageCount++
		}

		if p.Goals != nil && (s.TopScorer == nil || *p.Goals > *s.TopScorer.Goals) {
			s.TopScorer = p
		}
		if p.Caps != nil && (s.MostCapped == nil || *p.Caps > *s.MostCapped.Caps) {
			s.MostCapped = p
		}
	}

	if ageCount > 0 {
		avg := float64(ageSum) / float64(ageCount)
		s.AverageAge = &avg
	}

	return s
}

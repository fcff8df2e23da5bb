package quiz

// Summary is the post-hoc tally over a completed test.
type Summary struct {
	Total   int     `json:"total"`
	Correct int     `json:"correct"`
	Score   float64 `json:"score"`
}

// Score counts the entries whose stored response matches the stored
// correct answer. Unanswered entries count as wrong.
func Score(details []Detail) Summary {
	s := Summary{Total: len(details)}
	for _, d := range details {
		if d.Response != nil && d.Response.Correct() {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Score = float64(s.Correct) / float64(s.Total)
	}
	return s
}

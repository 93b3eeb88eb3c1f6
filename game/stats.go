package game

import (
	"time"
)

// Stats summarizes a finished or interrupted session
type Stats struct {
	Level     int // Level the session ended on
	Completed int
	Refreshes int
	Moves     int
	Bumps     int
	Total     time.Duration
	Best      time.Duration
	Average   time.Duration
}

// Stats computes the summary from recorded level times
func (s *Session) Stats() Stats {
	st := Stats{
		Level:     s.level,
		Completed: len(s.levelTimes),
		Refreshes: s.refreshes,
		Moves:     s.moves,
		Bumps:     s.bumps,
	}
	for i, d := range s.levelTimes {
		st.Total += d
		if i == 0 || d < st.Best {
			st.Best = d
		}
	}
	if st.Completed > 0 {
		st.Average = st.Total / time.Duration(st.Completed)
	}
	return st
}

package progress

// Dashboard is the display-ready aggregation of the learner's progress.
type Dashboard struct {
	Level     int
	XP        int
	Completed int
	ByKind    map[Kind]int
	Recent    []Entry // last 10, most recent first
}

// Dashboard combines the ledger snapshot and XP breakdown into one
// read-only structure for the progress screen. It never mutates the
// ledger.
func (l *Ledger) Dashboard() Dashboard {
	recent := l.log
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	// Reverse into most-recent-first order for display.
	out := make([]Entry, len(recent))
	for i, e := range recent {
		out[len(recent)-1-i] = e
	}

	return Dashboard{
		Level:     l.level,
		XP:        l.xp,
		Completed: len(l.log),
		ByKind:    l.XPBreakdown(),
		Recent:    out,
	}
}

// NextLevelXP returns the cumulative XP required to reach the next level.
func (l *Ledger) NextLevelXP() int {
	return l.level * XPPerLevel
}

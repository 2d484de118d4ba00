package progress

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// XPPerLevel is the XP step between levels: level L requires cumulative
// XP >= L * XPPerLevel.
const XPPerLevel = 50

// Entry is one line of the activity log.
type Entry struct {
	ID   string
	Kind Kind
	XP   int
	At   time.Time
}

// Display formats the entry the way the activity feed shows it.
func (e Entry) Display() string {
	return fmt.Sprintf("%s +%d XP", e.Kind, e.XP)
}

// LevelUp signals that an award pushed the learner past one or more
// level thresholds.
type LevelUp struct {
	From int
	To   int
}

// Ledger is the process-wide record of one learner's XP, level, and
// activity log. It is created once per run and mutated only by Award;
// XP and level never decrease.
type Ledger struct {
	xp    int
	level int
	log   []Entry
}

// NewLedger creates an empty ledger at level 1 with 0 XP.
func NewLedger() *Ledger {
	return &Ledger{level: 1}
}

// Award adds the fixed XP for kind, appends an activity entry, and
// returns a LevelUp when the new total crosses one or more thresholds.
// A single large award can jump several levels, so the threshold check
// loops rather than incrementing once.
func (l *Ledger) Award(kind Kind) *LevelUp {
	gain := kind.XP()
	l.xp += gain
	l.log = append(l.log, Entry{
		ID:   uuid.New().String(),
		Kind: kind,
		XP:   gain,
		At:   time.Now(),
	})

	from := l.level
	for l.xp >= l.level*XPPerLevel {
		l.level++
	}
	if l.level > from {
		return &LevelUp{From: from, To: l.level}
	}
	return nil
}

// XP returns the total XP earned.
func (l *Ledger) XP() int {
	return l.xp
}

// Level returns the current level (always >= 1).
func (l *Ledger) Level() int {
	return l.level
}

// Completed returns the number of activity log entries.
func (l *Ledger) Completed() int {
	return len(l.log)
}

// Snapshot is a read-only view for the sidebar/header.
type Snapshot struct {
	Level  int
	XP     int
	Recent []Entry // last 5, most recent last
}

// Snapshot returns the current level, XP, and the last five activity
// entries in chronological order.
func (l *Ledger) Snapshot() Snapshot {
	recent := l.log
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	out := make([]Entry, len(recent))
	copy(out, recent)
	return Snapshot{Level: l.level, XP: l.xp, Recent: out}
}

// XPBreakdown re-derives total XP per kind from the full activity log.
// Each entry contributes the configured XP value for its kind, not a
// number parsed back out of display text, so the breakdown stays
// consistent with the XP table even if formatting changes.
func (l *Ledger) XPBreakdown() map[Kind]int {
	out := make(map[Kind]int)
	for _, e := range l.log {
		out[e.Kind] += e.Kind.XP()
	}
	return out
}

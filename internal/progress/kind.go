package progress

// Kind identifies a challenge type. It is a closed enumeration: XP lookup
// and activity aggregation key off the Kind value, never off a display
// string.
type Kind int

const (
	KindFlashcards Kind = iota
	KindMCQ
	KindFillBlank
	KindMatch
	KindTimed
	KindScenario
)

// AllKinds returns every challenge kind in display order.
func AllKinds() []Kind {
	return []Kind{
		KindFlashcards,
		KindMCQ,
		KindFillBlank,
		KindMatch,
		KindTimed,
		KindScenario,
	}
}

// xpTable is the fixed XP value awarded per completed challenge of each kind.
var xpTable = map[Kind]int{
	KindFlashcards: 5,
	KindMCQ:        10,
	KindFillBlank:  10,
	KindMatch:      12,
	KindTimed:      15,
	KindScenario:   15,
}

// XP returns the configured XP value for the kind.
func (k Kind) XP() int {
	return xpTable[k]
}

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindFlashcards:
		return "Flashcards"
	case KindMCQ:
		return "MCQ Quiz"
	case KindFillBlank:
		return "Fill in the Blank"
	case KindMatch:
		return "Match the Answers"
	case KindTimed:
		return "Timed Question"
	case KindScenario:
		return "Scenario"
	default:
		return "Unknown"
	}
}

// Package session carries the learner's in-memory state for one run of
// the app: who they are, what chapter they are on, their XP ledger, and
// their per-chapter chat logs. Nothing here persists across restarts.
package session

import (
	"math/rand/v2"

	"github.com/sravani919/studyhall/internal/catalog"
	"github.com/sravani919/studyhall/internal/llm"
	"github.com/sravani919/studyhall/internal/progress"
	"github.com/sravani919/studyhall/internal/tutor"
)

// State is the shared session passed to every screen.
type State struct {
	Catalog *catalog.Catalog
	Ledger  *progress.Ledger
	Tutor   *tutor.Service
	RNG     *rand.Rand

	// Usage is the LLM usage recorder for this run; nil when no
	// provider is configured.
	Usage *llm.MemoryUsageRecorder

	name    string
	chapter string
	chats   map[string]*tutor.ChatLog
}

// New creates a session over the loaded catalog. rng seeds every
// challenge shuffle; tests pass a pinned source.
func New(cat *catalog.Catalog, tut *tutor.Service, rng *rand.Rand) *State {
	return &State{
		Catalog: cat,
		Ledger:  progress.NewLedger(),
		Tutor:   tut,
		RNG:     rng,
		chats:   make(map[string]*tutor.ChatLog),
	}
}

// Name returns the learner's name ("" until set).
func (s *State) Name() string { return s.name }

// SetName records the learner's name.
func (s *State) SetName(name string) { s.name = name }

// Chapter returns the selected chapter key ("" until picked).
func (s *State) Chapter() string { return s.chapter }

// SetChapter selects a chapter.
func (s *State) SetChapter(key string) { s.chapter = key }

// ChatLog returns the chapter's chat log, creating it on first use.
// Each chapter keeps its own history and archives.
func (s *State) ChatLog(chapterKey string) *tutor.ChatLog {
	log, ok := s.chats[chapterKey]
	if !ok {
		log = tutor.NewChatLog()
		s.chats[chapterKey] = log
	}
	return log
}

// Package leaderboard holds the scores of a single round.
package leaderboard

import (
	"sort"
	"time"

	"github.com/KirkDiggler/strike/internal/models"
)

// Store keeps one round's scores in ranking order.
//
// A Store is not safe for concurrent use; the round service serializes
// access to it.
type Store struct {
	byID   map[string]*models.Participant
	ranked []*models.Participant
	seq    int64
}

// New creates an empty store
func New() *Store {
	return &Store{
		byID:   make(map[string]*models.Participant),
		ranked: []*models.Participant{},
	}
}

// Insert records a score for a participant. It returns false if the
// participant already has a score in this store, leaving the store untouched.
//
// The returned rank is the participant's position at the moment of
// insertion. It is advisory: later, higher scores push it down.
func (s *Store) Insert(participantID, displayName string, score int, at time.Time) (bool, int) {
	if _, ok := s.byID[participantID]; ok {
		return false, 0
	}

	s.seq++
	participant := &models.Participant{
		ID:          participantID,
		Name:        displayName,
		Score:       score,
		Seq:         s.seq,
		SubmittedAt: at,
	}

	// Everyone already stored with an equal score arrived earlier and stays ahead
	idx := sort.Search(len(s.ranked), func(i int) bool {
		return s.ranked[i].Score < score
	})
	s.ranked = append(s.ranked, nil)
	copy(s.ranked[idx+1:], s.ranked[idx:])
	s.ranked[idx] = participant
	s.byID[participantID] = participant

	return true, idx + 1
}

// RankedEntries returns every entry, best first
func (s *Store) RankedEntries() []*models.RankedEntry {
	entries := make([]*models.RankedEntry, 0, len(s.ranked))
	for i, p := range s.ranked {
		copied := *p
		entries = append(entries, &models.RankedEntry{
			Rank:        i + 1,
			Participant: &copied,
		})
	}
	return entries
}

// TopN returns up to n participants, best first
func (s *Store) TopN(n int) []*models.Participant {
	if n <= 0 {
		return []*models.Participant{}
	}
	n = min(n, len(s.ranked))

	top := make([]*models.Participant, 0, n)
	for _, p := range s.ranked[:n] {
		copied := *p
		top = append(top, &copied)
	}
	return top
}

// Participants returns every participant in submission order
func (s *Store) Participants() []*models.Participant {
	out := make([]*models.Participant, 0, len(s.ranked))
	for _, p := range s.ranked {
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Seq < out[j].Seq
	})
	return out
}

// Get returns the participant's entry and current rank
func (s *Store) Get(participantID string) (*models.RankedEntry, bool) {
	p, ok := s.byID[participantID]
	if !ok {
		return nil, false
	}

	// The score narrows the search to the block of equal scores; seq orders inside it
	start := sort.Search(len(s.ranked), func(i int) bool {
		return s.ranked[i].Score <= p.Score
	})
	for i := start; i < len(s.ranked); i++ {
		if s.ranked[i] == p {
			copied := *p
			return &models.RankedEntry{Rank: i + 1, Participant: &copied}, true
		}
	}
	return nil, false
}

// Has reports whether the participant already has a score
func (s *Store) Has(participantID string) bool {
	_, ok := s.byID[participantID]
	return ok
}

// IsEmpty reports whether nobody has a score yet
func (s *Store) IsEmpty() bool {
	return len(s.ranked) == 0
}

// Len returns the number of participants
func (s *Store) Len() int {
	return len(s.ranked)
}

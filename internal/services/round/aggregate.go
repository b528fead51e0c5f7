package round

import (
	"sort"

	"github.com/KirkDiggler/strike/internal/models"
)

// aggregate tracks each player's best score across the retained history.
// It is updated per archived round and only partially rebuilt on eviction.
type aggregate struct {
	standings map[string]*models.Standing
}

func newAggregate() *aggregate {
	return &aggregate{
		standings: make(map[string]*models.Standing),
	}
}

// restoreAggregate rebuilds an aggregate from persisted standings
func restoreAggregate(standings []*models.Standing) *aggregate {
	a := newAggregate()
	for _, st := range standings {
		if st == nil || st.PlayerID == "" {
			continue
		}
		copied := *st
		a.standings[st.PlayerID] = &copied
	}
	return a
}

// rebuildAggregate derives an aggregate from scratch
func rebuildAggregate(history []*models.ArchivedRound) *aggregate {
	a := newAggregate()
	for _, round := range history {
		a.add(round)
	}
	return a
}

// add folds an archived round into the standings. Rounds must arrive oldest first.
func (a *aggregate) add(round *models.ArchivedRound) {
	a.merge(round, nil)
}

func (a *aggregate) merge(round *models.ArchivedRound, only map[string]bool) {
	for _, entry := range round.Entries {
		if only != nil && !only[entry.ID] {
			continue
		}

		st, ok := a.standings[entry.ID]
		if !ok {
			a.standings[entry.ID] = &models.Standing{
				PlayerID:   entry.ID,
				PlayerName: entry.Name,
				BestScore:  entry.Score,
				RoundID:    round.ID,
				AchievedAt: entry.SubmittedAt,
				LastSeenAt: entry.SubmittedAt,
			}
			continue
		}

		st.PlayerName = entry.Name
		st.LastSeenAt = entry.SubmittedAt

		// An equal score later on does not replace the earlier achievement
		if entry.Score > st.BestScore {
			st.BestScore = entry.Score
			st.RoundID = round.ID
			st.AchievedAt = entry.SubmittedAt
		}
	}
}

// evict drops rounds that left the history. Only players whose best
// came from an evicted round are recomputed from the remaining rounds.
func (a *aggregate) evict(evicted, remaining []*models.ArchivedRound) {
	gone := make(map[string]bool, len(evicted))
	for _, round := range evicted {
		gone[round.ID] = true
	}

	affected := make(map[string]bool)
	for id, st := range a.standings {
		if gone[st.RoundID] {
			affected[id] = true
			delete(a.standings, id)
		}
	}
	if len(affected) == 0 {
		return
	}

	for _, round := range remaining {
		a.merge(round, affected)
	}
}

// get returns a player's ranked standing
func (a *aggregate) get(playerID string) *models.RankedStanding {
	if _, ok := a.standings[playerID]; !ok {
		return nil
	}
	for _, ranked := range a.ranked() {
		if ranked.PlayerID == playerID {
			return ranked
		}
	}
	return nil
}

// ranked returns copies of all standings, best first
func (a *aggregate) ranked() []*models.RankedStanding {
	list := a.list()
	out := make([]*models.RankedStanding, 0, len(list))
	for i, st := range list {
		out = append(out, &models.RankedStanding{Rank: i + 1, Standing: st})
	}
	return out
}

// list returns copies of all standings in ranking order
func (a *aggregate) list() []*models.Standing {
	list := make([]*models.Standing, 0, len(a.standings))
	for _, st := range a.standings {
		copied := *st
		list = append(list, &copied)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].BestScore != list[j].BestScore {
			return list[i].BestScore > list[j].BestScore
		}
		if !list[i].AchievedAt.Equal(list[j].AchievedAt) {
			return list[i].AchievedAt.Before(list[j].AchievedAt)
		}
		return list[i].PlayerID < list[j].PlayerID
	})
	return list
}

func (a *aggregate) len() int {
	return len(a.standings)
}

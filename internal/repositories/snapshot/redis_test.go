package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/strike/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Namespace:   "guild-1",
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

// fixtureSnapshot builds a snapshot with one timed and one open-ended round
func fixtureSnapshot(now time.Time) *models.Snapshot {
	deadline := now.Add(-time.Hour)
	first := &models.ArchivedRound{
		ID:       "round-1",
		OpenedAt: now.Add(-2 * time.Hour),
		Deadline: &deadline,
		ClosedAt: deadline,
		Reason:   models.CloseReasonDeadline,
		Entries: []*models.RankedEntry{
			{Rank: 1, Participant: &models.Participant{ID: "C", Name: "Carol", Score: 40, Seq: 3, SubmittedAt: now.Add(-90 * time.Minute)}},
			{Rank: 2, Participant: &models.Participant{ID: "A", Name: "Alice", Score: 12, Seq: 1, SubmittedAt: now.Add(-100 * time.Minute)}},
		},
	}
	second := &models.ArchivedRound{
		ID:       "round-2",
		OpenedAt: now.Add(-30 * time.Minute),
		ClosedAt: now,
		Reason:   models.CloseReasonManual,
		Entries: []*models.RankedEntry{
			{Rank: 1, Participant: &models.Participant{ID: "A", Name: "Alicia", Score: 60, Seq: 1, SubmittedAt: now.Add(-10 * time.Minute)}},
		},
	}

	return &models.Snapshot{
		Version: models.SnapshotVersion,
		TakenAt: now,
		History: []*models.ArchivedRound{first, second},
		Standings: []*models.Standing{
			{PlayerID: "A", PlayerName: "Alicia", BestScore: 60, RoundID: "round-2", AchievedAt: now.Add(-10 * time.Minute), LastSeenAt: now.Add(-10 * time.Minute)},
			{PlayerID: "C", PlayerName: "Carol", BestScore: 40, RoundID: "round-1", AchievedAt: now.Add(-90 * time.Minute), LastSeenAt: now.Add(-90 * time.Minute)},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadSnapshot() {
	snapshot := fixtureSnapshot(s.testNow)

	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: snapshot,
	})
	s.Require().NoError(err)

	loaded, err := s.repo.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	s.Require().NoError(err)
	s.Equal(snapshot, loaded)

	s.True(s.mr.Exists("snapshot:guild-1"))
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesPreviousSnapshot() {
	first := fixtureSnapshot(s.testNow)
	s.Require().NoError(s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{Snapshot: first}))

	second := fixtureSnapshot(s.testNow.Add(time.Hour))
	second.History = second.History[1:]
	s.Require().NoError(s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{Snapshot: second}))

	loaded, err := s.repo.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	s.Require().NoError(err)
	s.Len(loaded.History, 1)
	s.Equal(s.testNow.Add(time.Hour), loaded.TakenAt)
}

func (s *RedisRepositoryTestSuite) TestLoadMissingSnapshot() {
	_, err := s.repo.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	s.ErrorIs(err, ErrSnapshotNotFound)
}

func (s *RedisRepositoryTestSuite) TestNamespacesAreIsolated() {
	other, err := NewRedis(&Config{RedisClient: s.client, Namespace: "guild-2"})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: fixtureSnapshot(s.testNow),
	}))

	_, err = other.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	s.ErrorIs(err, ErrSnapshotNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveRejectsNilSnapshot() {
	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestCorruptSnapshot() {
	s.Require().NoError(s.mr.Set("snapshot:guild-1", "{not json"))

	_, err := s.repo.LoadSnapshot(context.Background(), &LoadSnapshotInput{})
	var persistenceErr *PersistenceError
	s.Require().True(errors.As(err, &persistenceErr))
	s.Equal("unmarshal", persistenceErr.Op)
}

func (s *RedisRepositoryTestSuite) TestServerDown() {
	s.mr.Close()

	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: fixtureSnapshot(s.testNow),
	})
	var persistenceErr *PersistenceError
	s.Require().True(errors.As(err, &persistenceErr))
	s.Equal("save", persistenceErr.Op)
	s.NotNil(errors.Unwrap(err))
}

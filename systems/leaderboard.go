package systems

import (
	"context"
	"time"

	"github.com/automoto/littlevampire/leaderboard"
	"github.com/automoto/littlevampire/log"
	"github.com/yohamta/donburi/ecs"
)

const leaderboardTimeout = 2 * time.Second

var runRepository leaderboard.Repository = leaderboard.NewMemoryRepository()

// SetLeaderboard swaps the run store. Passing nil restores the in-memory one.
func SetLeaderboard(repo leaderboard.Repository) {
	if repo == nil {
		repo = leaderboard.NewMemoryRepository()
	}
	runRepository = repo
}

// OpenLeaderboard installs the run store for path and returns it so the
// caller can close it. An empty path, or a database that cannot be opened,
// keeps runs in memory.
func OpenLeaderboard(path string) leaderboard.Repository {
	repo := leaderboard.NewMemoryRepository()
	if path != "" {
		ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
		defer cancel()

		if sqlRepo, err := leaderboard.NewSQLiteRepository(ctx, path); err != nil {
			log.Warn("could not open %s, keeping scores in memory: %v", path, err)
		} else {
			log.Info("recording runs to %s", path)
			repo = sqlRepo
		}
	}
	SetLeaderboard(repo)
	return repo
}

// RecordRun saves the finished run once. Storage errors are logged and
// otherwise ignored; losing a leaderboard row must not end the game.
func RecordRun(e *ecs.ECS) {
	state := GetGameState(e)
	score := GetScore(e)
	if state == nil || score == nil || state.Recorded {
		return
	}
	state.Recorded = true

	ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
	defer cancel()

	run := leaderboard.Run{
		ID:       state.RunID,
		Score:    score.Value,
		Waves:    score.Wave,
		Ticks:    state.Ticks,
		PlayedAt: time.Now(),
	}
	if err := runRepository.SaveRun(ctx, run); err != nil {
		log.ForRun(run.ID).Warn("could not record run: %v", err)
		return
	}
	log.ForRun(run.ID).Debug("recorded run")
}

// TopRuns returns the best n runs, or nil if the store fails.
func TopRuns(n int) []leaderboard.Run {
	ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
	defer cancel()

	runs, err := runRepository.TopRuns(ctx, n)
	if err != nil {
		log.Warn("could not read leaderboard: %v", err)
		return nil
	}
	return runs
}

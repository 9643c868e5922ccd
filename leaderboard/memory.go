package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps runs for the lifetime of the process.
type MemoryRepository struct {
	mu   sync.Mutex
	runs map[string]Run
}

func NewMemoryRepository() Repository {
	return &MemoryRepository{
		runs: make(map[string]Run),
	}
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) SaveRun(ctx context.Context, run Run) error {
	if err := validate(run); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID.String()] = run
	return nil
}

func (r *MemoryRepository) TopRuns(ctx context.Context, n int) ([]Run, error) {
	if n <= 0 {
		return nil, nil
	}

	r.mu.Lock()
	runs := make([]Run, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, run)
	}
	r.mu.Unlock()

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Score != runs[j].Score {
			return runs[i].Score > runs[j].Score
		}
		return runs[i].PlayedAt.Before(runs[j].PlayedAt)
	})
	if len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

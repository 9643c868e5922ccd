package leaderboard

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run is one finished game.
type Run struct {
	ID       uuid.UUID
	Score    int
	Waves    int
	Ticks    int
	PlayedAt time.Time
}

type Repository interface {
	Close(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	// TopRuns returns up to n runs, best score first. Ties go to the earlier run.
	TopRuns(ctx context.Context, n int) ([]Run, error)
}

type ErrInvalidRun struct {
	Reason string
}

func (e *ErrInvalidRun) Error() string {
	return "invalid run: " + e.Reason
}

func IsInvalidRun(err error) bool {
	_, ok := err.(*ErrInvalidRun)
	return ok
}

func validate(run Run) error {
	if run.ID == uuid.Nil {
		return &ErrInvalidRun{Reason: "missing id"}
	}
	if run.Score < 0 {
		return &ErrInvalidRun{Reason: "negative score"}
	}
	return nil
}

package commands

import (
	"context"
	"log/slog"
	"time"
)

// PostingExpirySweeper periodically closes open postings whose expiresAt has
// passed, rejecting their pending offers.
type PostingExpirySweeper struct {
	postings PostingCommands
	interval time.Duration
	batch    int
}

func NewPostingExpirySweeper(postings PostingCommands, interval time.Duration, batch int) *PostingExpirySweeper {
	if batch < 1 {
		batch = 1
	}
	return &PostingExpirySweeper{postings: postings, interval: interval, batch: batch}
}

// Run sweeps until ctx is canceled.
func (s *PostingExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("posting expiry sweep failed", slog.Int("expired", n), slog.Any("error", err))
			} else if n > 0 {
				slog.Info("expired postings", slog.Int("count", n))
			}
		}
	}
}

// SweepOnce drains every due posting in batches and returns how many expired.
func (s *PostingExpirySweeper) SweepOnce(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := s.postings.ExpireDuePostings(ctx, s.batch)
		total += n
		if err != nil {
			return total, err
		}
		if n < s.batch {
			return total, nil
		}
	}
}

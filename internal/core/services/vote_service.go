package services

import (
	"context"
	"sync"
	"time"

	"github.com/pulsepoll/api/internal/core/domain"
	"github.com/pulsepoll/api/internal/core/ports"
	"github.com/pulsepoll/api/pkg/metrics"
)

type voteService struct {
	repo ports.PollRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewVoteService(repo ports.PollRepository) ports.VoteService {
	return &voteService{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// pollLock returns the mutex guarding the read-modify-write sequence
// for one poll. Two concurrent votes on the same poll must serialize
// here, otherwise one increment is lost between GetByID and Replace.
func (s *voteService) pollLock(pollID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[pollID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[pollID] = lock
	}
	return lock
}

func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Poll, error) {
	if len(input.OptionIDs) == 0 {
		return nil, domain.ErrNoOptionsSelected
	}

	lock := s.pollLock(input.PollID)
	lock.Lock()
	defer lock.Unlock()

	poll, err := s.repo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	if poll.Status != domain.PollStatusActive {
		return nil, domain.ErrPollNotActive
	}

	// Reject the whole submission if any single id is foreign; partial
	// application is not permitted.
	for _, id := range input.OptionIDs {
		if !poll.HasOption(id) {
			return nil, domain.ErrInvalidOptionIDs
		}
	}

	if !poll.AllowMultiple && len(input.OptionIDs) > 1 {
		return nil, domain.ErrMultipleNotAllowed
	}

	selected := make(map[string]bool, len(input.OptionIDs))
	for _, id := range input.OptionIDs {
		selected[id] = true
	}

	for i := range poll.Options {
		if selected[poll.Options[i].ID] {
			poll.Options[i].Votes++
		}
	}
	poll.RecomputeTotal()
	poll.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, poll.ID, poll); err != nil {
		return nil, err
	}

	metrics.VotesCast.Add(float64(len(selected)))
	return poll, nil
}

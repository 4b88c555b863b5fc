package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pulsepoll/api/internal/core/domain"
	"github.com/pulsepoll/api/internal/core/ports"
)

// pollRepository keeps all poll records in a process-local map. Nothing
// survives a restart. Reads hand out deep copies so callers can never
// mutate stored state without going through Replace.
type pollRepository struct {
	mu    sync.RWMutex
	polls map[string]*domain.Poll
}

func NewPollRepository() ports.PollRepository {
	return &pollRepository{
		polls: make(map[string]*domain.Poll),
	}
}

func (r *pollRepository) Insert(_ context.Context, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls[poll.ID] = poll.Clone()
	return nil
}

func (r *pollRepository) GetByID(_ context.Context, id string) (*domain.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	poll, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return poll.Clone(), nil
}

// Replace overwrites the record wholesale. A missing id is an error: a
// stale id reaching this point means a caller skipped GetByID, and
// pretending the write succeeded would mask that bug.
func (r *pollRepository) Replace(_ context.Context, id string, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[id]; !ok {
		return domain.ErrPollNotFound
	}
	r.polls[id] = poll.Clone()
	return nil
}

// GetAll returns every poll sorted by creation time, newest first. The
// sort runs on every call so the result always reflects the latest
// writes.
func (r *pollRepository) GetAll(_ context.Context) ([]*domain.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	polls := make([]*domain.Poll, 0, len(r.polls))
	for _, poll := range r.polls {
		polls = append(polls, poll.Clone())
	}

	sort.SliceStable(polls, func(i, j int) bool {
		return polls[i].CreatedAt.After(polls[j].CreatedAt)
	})
	return polls, nil
}

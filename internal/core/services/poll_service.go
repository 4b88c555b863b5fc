package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pulsepoll/api/internal/core/domain"
	"github.com/pulsepoll/api/internal/core/ports"
	"github.com/pulsepoll/api/pkg/metrics"
)

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" || len(input.Options) == 0 {
		return nil, domain.ErrMissingFields
	}

	var texts []string
	for _, optText := range input.Options {
		if strings.TrimSpace(optText) == "" {
			continue
		}
		texts = append(texts, optText)
	}
	if len(texts) < 2 {
		return nil, domain.ErrTooFewOptions
	}

	now := time.Now()
	poll := &domain.Poll{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Status:        domain.PollStatusActive,
		AllowMultiple: input.AllowMultiple,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, text := range texts {
		poll.Options = append(poll.Options, domain.PollOption{
			ID:    uuid.NewString(),
			Text:  text,
			Votes: 0,
		})
	}
	poll.RecomputeTotal()

	if err := s.repo.Insert(ctx, poll); err != nil {
		return nil, err
	}

	metrics.PollsCreated.Inc()
	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pollService) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	return s.repo.GetAll(ctx)
}

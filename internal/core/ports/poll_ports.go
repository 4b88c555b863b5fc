package ports

import (
	"context"

	"github.com/pulsepoll/api/internal/core/domain"
)

type PollRepository interface {
	Insert(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id string) (*domain.Poll, error)
	Replace(ctx context.Context, id string, poll *domain.Poll) error
	GetAll(ctx context.Context) ([]*domain.Poll, error)
}

type CreatePollInput struct {
	Title         string
	Description   string
	Options       []string
	Category      string
	AllowMultiple bool
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	GetPoll(ctx context.Context, id string) (*domain.Poll, error)
	ListPolls(ctx context.Context) ([]*domain.Poll, error)
}

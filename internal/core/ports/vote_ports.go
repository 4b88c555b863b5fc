package ports

import (
	"context"

	"github.com/pulsepoll/api/internal/core/domain"
)

type VoteInput struct {
	PollID    string
	OptionIDs []string
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Poll, error)
}

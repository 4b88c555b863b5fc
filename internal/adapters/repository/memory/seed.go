package memory

import (
	"context"
	"time"

	"github.com/pulsepoll/api/internal/core/domain"
	"github.com/pulsepoll/api/internal/core/ports"
)

// Seed installs the two demonstration polls present at cold start.
// Their ids are fixed ("1" and "2") so the demo client can link to
// them; everything else goes through the normal create path.
func Seed(ctx context.Context, repo ports.PollRepository) error {
	now := time.Now()

	languages := &domain.Poll{
		ID:          "1",
		Title:       "What is your favorite programming language?",
		Description: "Help us understand the most popular programming languages among developers.",
		Options: []domain.PollOption{
			{ID: "1a", Text: "JavaScript", Votes: 45},
			{ID: "1b", Text: "Python", Votes: 38},
			{ID: "1c", Text: "TypeScript", Votes: 32},
			{ID: "1d", Text: "Java", Votes: 28},
			{ID: "1e", Text: "Go", Votes: 15},
		},
		Category:      "technology",
		Status:        domain.PollStatusActive,
		AllowMultiple: false,
		CreatedAt:     now.Add(-24 * time.Hour),
		UpdatedAt:     now,
	}
	languages.RecomputeTotal()

	features := &domain.Poll{
		ID:          "2",
		Title:       "Which features should we prioritize?",
		Description: "Vote for the features you would like to see implemented first in our next release.",
		Options: []domain.PollOption{
			{ID: "2a", Text: "Dark mode", Votes: 67},
			{ID: "2b", Text: "Mobile app", Votes: 54},
			{ID: "2c", Text: "API integration", Votes: 43},
			{ID: "2d", Text: "Advanced analytics", Votes: 39},
		},
		Category:      "general",
		Status:        domain.PollStatusActive,
		AllowMultiple: true,
		CreatedAt:     now.Add(-48 * time.Hour),
		UpdatedAt:     now,
	}
	features.RecomputeTotal()

	for _, poll := range []*domain.Poll{languages, features} {
		if err := repo.Insert(ctx, poll); err != nil {
			return err
		}
	}
	return nil
}

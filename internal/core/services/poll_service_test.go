package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsepoll/api/internal/adapters/repository/memory"
	"github.com/pulsepoll/api/internal/core/domain"
	"github.com/pulsepoll/api/internal/core/ports"
)

func validCreateInput() ports.CreatePollInput {
	return ports.CreatePollInput{
		Title:       "Favorite color?",
		Description: "Pick the color you like best.",
		Options:     []string{"Red", "Blue"},
		Category:    "general",
	}
}

func TestCreatePoll(t *testing.T) {
	svc := NewPollService(memory.NewPollRepository())

	poll, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, poll.ID)
	assert.Equal(t, domain.PollStatusActive, poll.Status)
	assert.Equal(t, 0, poll.TotalVotes)
	assert.Equal(t, poll.CreatedAt, poll.UpdatedAt)
	require.Len(t, poll.Options, 2)
	for _, opt := range poll.Options {
		assert.NotEmpty(t, opt.ID)
		assert.Equal(t, 0, opt.Votes)
	}
	assert.Equal(t, "Red", poll.Options[0].Text)
	assert.Equal(t, "Blue", poll.Options[1].Text)
}

func TestCreatePollMissingFields(t *testing.T) {
	svc := NewPollService(memory.NewPollRepository())
	ctx := context.Background()

	for name, mutate := range map[string]func(*ports.CreatePollInput){
		"no title":       func(in *ports.CreatePollInput) { in.Title = "" },
		"no description": func(in *ports.CreatePollInput) { in.Description = "" },
		"no category":    func(in *ports.CreatePollInput) { in.Category = "" },
		"no options":     func(in *ports.CreatePollInput) { in.Options = nil },
	} {
		t.Run(name, func(t *testing.T) {
			input := validCreateInput()
			mutate(&input)

			_, err := svc.Create(ctx, input)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
		})
	}
}

func TestCreatePollRequiresTwoOptions(t *testing.T) {
	svc := NewPollService(memory.NewPollRepository())
	ctx := context.Background()

	input := validCreateInput()
	input.Options = []string{"Only one"}
	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, domain.ErrTooFewOptions)

	// Blank entries are trimmed before the length check.
	input.Options = []string{"Real", "  ", ""}
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, domain.ErrTooFewOptions)

	input.Options = []string{"Red", "Blue"}
	_, err = svc.Create(ctx, input)
	assert.NoError(t, err)
}

func TestCreatePollIsNotIdempotent(t *testing.T) {
	repo := memory.NewPollRepository()
	svc := NewPollService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	polls, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, polls, 2)
}

func TestListPollsNewestFirst(t *testing.T) {
	svc := NewPollService(memory.NewPollRepository())
	ctx := context.Background()

	inputA := validCreateInput()
	inputA.Title = "Poll A"
	a, err := svc.Create(ctx, inputA)
	require.NoError(t, err)

	inputB := validCreateInput()
	inputB.Title = "Poll B"
	b, err := svc.Create(ctx, inputB)
	require.NoError(t, err)

	polls, err := svc.ListPolls(ctx)
	require.NoError(t, err)
	require.Len(t, polls, 2)

	// B was created after A, so B comes first.
	assert.Equal(t, b.ID, polls[0].ID)
	assert.Equal(t, a.ID, polls[1].ID)
}

func TestGetPollNotFound(t *testing.T) {
	svc := NewPollService(memory.NewPollRepository())

	_, err := svc.GetPoll(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	handler "github.com/pulsepoll/api/internal/adapters/handler/http"
	"github.com/pulsepoll/api/internal/adapters/repository/memory"
	"github.com/pulsepoll/api/internal/core/ports"
	"github.com/pulsepoll/api/internal/core/services"
)

type TestApp struct {
	Repo   ports.PollRepository
	Server *httptest.Server
	Client *http.Client
}

// setupTestApp wires the full stack (store, services, router) the same
// way cmd/server does and serves it from an in-process test server.
func setupTestApp(t *testing.T, seed bool) *TestApp {
	t.Helper()

	repo := memory.NewPollRepository()
	if seed {
		require.NoError(t, memory.Seed(context.Background(), repo))
	}

	h := handler.NewHandler(
		handler.NewPollHandler(services.NewPollService(repo)),
		handler.NewVoteHandler(services.NewVoteService(repo)),
		handler.Options{
			AllowedOrigins:  []string{"*"},
			RefreshInterval: 4 * time.Second,
		},
	)

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return &TestApp{
		Repo:   repo,
		Server: server,
		Client: server.Client(),
	}
}

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Options carries the boundary-level knobs the router needs: which
// browser origins may call the API and the re-fetch cadence advertised
// to clients.
type Options struct {
	AllowedOrigins  []string
	RefreshInterval time.Duration
}

type clientConfigResponse struct {
	RefreshIntervalSeconds int `json:"refreshIntervalSeconds"`
}

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		// The live-results illusion is client-driven: browsers poll on
		// this cadence instead of holding a push channel.
		r.Get("/config", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, clientConfigResponse{
				RefreshIntervalSeconds: int(opts.RefreshInterval.Seconds()),
			})
		})

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", pollHandler.ListPolls)
			r.Post("/", pollHandler.CreatePoll)
			r.Get("/{id}", pollHandler.GetPoll)
			r.Post("/{id}/vote", voteHandler.VoteOnPoll)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

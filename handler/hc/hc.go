package hc

import (
	"context"
	"lending/handler/render"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Check dependency probe, a non nil error marks the service unhealthy
type Check func(ctx context.Context) error

// Handle handle hc request
func Handle(ver string, checks map[string]Check) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, checks))
	return r
}

func handle(version string, checks map[string]Check) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(b).Truncate(time.Millisecond)

		failed := render.H{}
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				failed[name] = err.Error()
			}
		}

		resp := render.H{
			"uptime":  uptime.String(),
			"version": version,
		}

		if len(failed) > 0 {
			resp["failed"] = failed
			render.Status(w, http.StatusServiceUnavailable, resp)
			return
		}

		render.JSON(w, resp)
	}
}

package rest

import (
	"lending/core"
	"lending/handler/param"
	"lending/handler/render"
	"lending/handler/views"
	"net/http"
)

// response ledger events after an id
func eventsHandler(events core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			From  uint64 `json:"from"`
			Limit int    `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > 500 {
			limit = 500
		}

		list, e := events.List(ctx, params.From, limit)
		if e != nil {
			render.Error(w, e)
			return
		}

		render.JSON(w, views.Events(list))
	}
}

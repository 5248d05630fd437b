package rest

import (
	"lending/core"
	"lending/handler/param"
	"lending/handler/render"
	"lending/handler/views"
	"net/http"
)

// the caller is the liquidator
func liquidateHandler(ledgerz core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			TraceID string `json:"trace_id" valid:"uuid"`
			Owner   string `json:"owner" valid:"required"`
			Amount  string `json:"amount" valid:"numeric"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := parseAmount(params.Amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		r = withTrace(r, params.TraceID)
		result, err := ledgerz.Liquidate(r.Context(), ownerOf(r), params.Owner, amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

// undercollateralized borrowers as of the last monitor scan
func liquidatableHandler(ratios core.IRatioStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshots, err := ratios.ListLiquidatable(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.Positions(snapshots))
	}
}

package rest

import (
	"lending/core"
	"lending/handler/param"
	"lending/handler/render"
	"lending/handler/views"
	"net/http"
)

// amount 0 or empty borrows the maximum the collateral allows
func borrowHandler(ledgerz core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params assetAmount
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
		result, err := ledgerz.Borrow(r.Context(), params.AssetID, ownerOf(r), amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.BorrowResult(result))
	}
}

func repayHandler(ledgerz core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			TraceID string `json:"trace_id" valid:"uuid"`
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
		remaining, err := ledgerz.Repay(r.Context(), ownerOf(r), amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"remaining": remaining})
	}
}

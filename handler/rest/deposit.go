package rest

import (
	"lending/core"
	"lending/handler/param"
	"lending/handler/render"
	"net/http"
)

type assetAmount struct {
	TraceID string `json:"trace_id" valid:"uuid"`
	AssetID string `json:"asset_id" valid:"required"`
	Amount  string `json:"amount" valid:"numeric"`
}

func depositHandler(ledgerz core.ILedgerService) http.HandlerFunc {
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
		event, err := ledgerz.Deposit(r.Context(), params.AssetID, ownerOf(r), amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, event)
	}
}

// amount 0 or empty withdraws the full principal
func withdrawHandler(ledgerz core.ILedgerService) http.HandlerFunc {
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
		payout, err := ledgerz.Withdraw(r.Context(), params.AssetID, ownerOf(r), amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"payout": payout})
	}
}

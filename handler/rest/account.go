package rest

import (
	"lending/core"
	"lending/handler/param"
	"lending/handler/render"
	"lending/handler/views"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

type ownerQuery struct {
	Owner string `json:"owner" valid:"required"`
}

func balanceHandler(ledgerz core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params ownerQuery
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		assetID := chi.URLParam(r, "asset")
		balance, err := ledgerz.BalanceOf(r.Context(), assetID, params.Owner)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"owner":    params.Owner,
			"asset_id": assetID,
			"balance":  balance,
		})
	}
}

func ratioHandler(ledgerz core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params ownerQuery
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		assetID := chi.URLParam(r, "asset")
		ratio, err := ledgerz.CollateralRatioOf(ctx, assetID, params.Owner)
		if err != nil {
			render.Error(w, err)
			return
		}

		liquidatable, err := ledgerz.IsLiquidatable(ctx, params.Owner)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.Ratio{
			Owner:        params.Owner,
			AssetID:      assetID,
			Ratio:        ratio,
			RatioPercent: views.RatioPercent(ratio),
			Liquidatable: liquidatable,
		})
	}
}

func positionHandler(accountz core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "owner")
		if owner == "" {
			render.Error(w, twirp.RequiredArgumentError("owner"))
			return
		}

		snapshot, err := accountz.Snapshot(r.Context(), owner)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.Positions([]*core.RatioSnapshot{snapshot})[0])
	}
}

package rest

import (
	"errors"
	"lending/core"
	"lending/handler/render"
	"lending/handler/request"
	"lending/pkg/number"
	"lending/service/ledger"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// OwnerHeader header carrying the calling account id
const OwnerHeader = "X-Owner-ID"

// Handle handle rest api request
func Handle(
	ledgerz core.ILedgerService,
	accountz core.IAccountService,
	ratios core.IRatioStore,
	events core.IEventStore,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/balances/{asset}", balanceHandler(ledgerz))
	router.Get("/ratios/{asset}", ratioHandler(ledgerz))
	router.Get("/positions/{owner}", positionHandler(accountz))
	router.Get("/events", eventsHandler(events))
	router.Get("/liquidatable", liquidatableHandler(ratios))

	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/deposits", depositHandler(ledgerz))
		r.Post("/withdrawals", withdrawHandler(ledgerz))
		r.Post("/borrows", borrowHandler(ledgerz))
		r.Post("/repays", repayHandler(ledgerz))
		r.Post("/liquidations", liquidateHandler(ledgerz))
	})

	return router
}

// authenticate takes the caller from the owner header, verifying it is out of scope here
func authenticate(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		owner := r.Header.Get(OwnerHeader)
		if owner == "" {
			render.Error(w, twirp.NewError(twirp.Unauthenticated, "missing "+OwnerHeader))
			return
		}

		ctx := request.NewContext(r.Context()).WithOwner(owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// ownerOf the authenticated caller
func ownerOf(r *http.Request) string {
	owner, _ := request.NewContext(r.Context()).GetOwner()
	return owner
}

// withTrace scope the ledger operation to a client supplied trace id
func withTrace(r *http.Request, traceID string) *http.Request {
	if traceID == "" {
		return r
	}

	return r.WithContext(ledger.WithTraceID(r.Context(), traceID))
}

func parseAmount(s string) (number.Amount, error) {
	a, err := number.ParseAmount(s)
	if err != nil {
		return number.Zero, twirp.InvalidArgumentError("amount", err.Error())
	}

	return a, nil
}

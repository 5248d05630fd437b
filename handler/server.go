package handler

import (
	"lending/core"
	"lending/handler/render"
	"lending/handler/rest"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	ledger   core.ILedgerService
	accounts core.IAccountService
	ratios   core.IRatioStore
	events   core.IEventStore
}

// New new server function
func New(
	ledger core.ILedgerService,
	accounts core.IAccountService,
	ratios core.IRatioStore,
	events core.IEventStore,
) Server {
	return Server{
		ledger:   ledger,
		accounts: accounts,
		ratios:   ratios,
		events:   events,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, twirp.NotFoundError("not found"))
	})

	r.Mount("/", rest.Handle(s.ledger, s.accounts, s.ratios, s.events))
	return r
}

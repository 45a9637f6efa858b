package rest

import (
	"errors"
	"net/http"

	"mint/core"
	"mint/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(faucetSrv core.IFaucetService, issuerSrv core.IIssuerService, rawtxSrv core.IRawTransactionService) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/faucet/balance", balanceHandler(faucetSrv))
	router.Post("/faucet", dispenseHandler(faucetSrv))
	router.Post("/issuer", issueHandler(issuerSrv))
	router.Post("/utils/opreturn", opreturnHandler(rawtxSrv))
	router.Post("/utils/test", testHandler(rawtxSrv))
	router.Post("/utils/broadcast", broadcastHandler(rawtxSrv))

	return router
}

package rest

import (
	"errors"
	"net/http"

	"mint/core"
	"mint/handler/param"
	"mint/handler/render"
)

func balanceHandler(faucetSrv core.IFaucetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		balance, err := faucetSrv.Balance(ctx)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"balance": balance})
	}
}

func dispenseHandler(faucetSrv core.IFaucetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Address string `json:"address"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.Address == "" {
			render.BadRequest(w, errors.New("missing address"))
			return
		}

		result, err := faucetSrv.Dispense(ctx, params.Address)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

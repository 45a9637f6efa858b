package rest

import (
	"errors"
	"net/http"

	"mint/core"
	"mint/handler/param"
	"mint/handler/render"
)

func opreturnHandler(rawtxSrv core.IRawTransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Text string `json:"text"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := rawtxSrv.Embed(ctx, params.Text)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func testHandler(rawtxSrv core.IRawTransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tx, err := txParam(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		acceptance, err := rawtxSrv.TestAccept(ctx, tx)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, acceptance)
	}
}

func broadcastHandler(rawtxSrv core.IRawTransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tx, err := txParam(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := rawtxSrv.BroadcastIfValid(ctx, tx)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func txParam(r *http.Request) (string, error) {
	var params struct {
		Tx string `json:"tx"`
	}

	if err := param.Binding(r, &params); err != nil {
		return "", err
	}

	if params.Tx == "" {
		return "", errors.New("missing tx")
	}

	return params.Tx, nil
}

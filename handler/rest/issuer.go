package rest

import (
	"net/http"

	"mint/core"
	"mint/handler/param"
	"mint/handler/render"

	"github.com/spf13/cast"
)

// issuance form fields arrive as strings from query or form encoding, the
// way the original web form submits them; coercion failures are client
// errors, detected before the pipeline runs
type issuanceForm struct {
	AssetAmount  string `json:"asset_amount"`
	AssetAddress string `json:"asset_address"`
	TokenAmount  string `json:"token_amount"`
	TokenAddress string `json:"token_address"`
	IssuerPubkey string `json:"pubkey"`
	Name         string `json:"name"`
	Ticker       string `json:"ticker"`
	Precision    string `json:"precision"`
	Domain       string `json:"domain"`
}

func (f issuanceForm) request() (*core.IssuanceRequest, error) {
	assetAmount, err := cast.ToInt64E(f.AssetAmount)
	if err != nil {
		return nil, err
	}

	tokenAmount, err := cast.ToInt64E(f.TokenAmount)
	if err != nil {
		return nil, err
	}

	precision, err := cast.ToUint8E(f.Precision)
	if err != nil {
		return nil, err
	}

	return &core.IssuanceRequest{
		AssetAmount:  assetAmount,
		AssetAddress: f.AssetAddress,
		TokenAmount:  tokenAmount,
		TokenAddress: f.TokenAddress,
		IssuerPubkey: f.IssuerPubkey,
		Name:         f.Name,
		Ticker:       f.Ticker,
		Precision:    precision,
		Domain:       f.Domain,
	}, nil
}

func issueHandler(issuerSrv core.IIssuerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var form issuanceForm
		if err := param.Binding(r, &form); err != nil {
			render.BadRequest(w, err)
			return
		}

		req, err := form.request()
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := issuerSrv.IssueAsset(ctx, req)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

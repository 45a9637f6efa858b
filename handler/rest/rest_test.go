package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mint/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFaucet struct {
	core.IFaucetService
	result *core.DispenseResult
}

func (m *mockFaucet) Dispense(ctx context.Context, address string) (*core.DispenseResult, error) {
	return m.result, nil
}

func (m *mockFaucet) Balance(ctx context.Context) (decimal.Decimal, error) {
	return decimal.New(5, 0), nil
}

type mockIssuer struct {
	core.IIssuerService
	req    *core.IssuanceRequest
	result *core.IssuanceResult
	err    error
}

func (m *mockIssuer) IssueAsset(ctx context.Context, req *core.IssuanceRequest) (*core.IssuanceResult, error) {
	m.req = req
	return m.result, m.err
}

type mockRawtx struct {
	core.IRawTransactionService
}

func (m *mockRawtx) TestAccept(ctx context.Context, txHex string) (*core.MempoolAcceptance, error) {
	return &core.MempoolAcceptance{Allowed: true}, nil
}

func postForm(t *testing.T, handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestDispenseEndpoint(t *testing.T) {
	faucetSrv := &mockFaucet{result: &core.DispenseResult{Address: "addr-1", Valid: true, Txid: "txid-1"}}
	handler := Handle(faucetSrv, &mockIssuer{}, &mockRawtx{})

	w := postForm(t, handler, "/faucet", url.Values{"address": {"addr-1"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "txid-1")

	w = postForm(t, handler, "/faucet", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBalanceEndpoint(t *testing.T) {
	handler := Handle(&mockFaucet{}, &mockIssuer{}, &mockRawtx{})

	r := httptest.NewRequest(http.MethodGet, "/faucet/balance", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "balance")
}

func TestIssueEndpointCoercion(t *testing.T) {
	issuerSrv := &mockIssuer{result: &core.IssuanceResult{AssetID: "asset-id-1"}}
	handler := Handle(&mockFaucet{}, issuerSrv, &mockRawtx{})

	form := url.Values{
		"asset_amount":  {"100000000"},
		"asset_address": {"addr-asset"},
		"token_amount":  {"0"},
		"token_address": {"addr-token"},
		"pubkey":        {"02ab"},
		"name":          {"Foo"},
		"ticker":        {"FOO"},
		"precision":     {"8"},
		"domain":        {"foo.com"},
	}

	w := postForm(t, handler, "/issuer", form)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, issuerSrv.req)
	assert.Equal(t, int64(100000000), issuerSrv.req.AssetAmount)
	assert.Equal(t, uint8(8), issuerSrv.req.Precision)

	// non-numeric amounts never reach the pipeline
	form.Set("asset_amount", "lots")
	w = postForm(t, handler, "/issuer", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueEndpointFailureStatus(t *testing.T) {
	issuerSrv := &mockIssuer{err: core.NewFailure(core.ErrFundingFailed, core.StageFunded, assert.AnError)}
	handler := Handle(&mockFaucet{}, issuerSrv, &mockRawtx{})

	form := url.Values{
		"asset_amount": {"1"}, "token_amount": {"0"}, "precision": {"0"},
	}

	w := postForm(t, handler, "/issuer", form)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestUtilsTestEndpoint(t *testing.T) {
	handler := Handle(&mockFaucet{}, &mockIssuer{}, &mockRawtx{})

	w := postForm(t, handler, "/utils/test", url.Values{"tx": {"ab01"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)

	w = postForm(t, handler, "/utils/test", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package node

import (
	"context"
	"encoding/json"
	"fmt"

	"mint/core"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/uuid"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

type nodeService struct {
	client *resty.Client
}

// New new node service targeting the configured endpoint. The connection
// descriptor is validated once here and shared read-only afterwards.
func New(cfg core.Node) (core.INodeService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(cfg.Endpoint()).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.CallTimeout())

	return &nodeService{client: client}, nil
}

type rpcRequest struct {
	Version string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call one blocking rpc round trip. The node reports protocol errors in
// the body regardless of http status, so the body is decoded first and the
// status only matters when decoding fails.
func (s *nodeService) call(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	log := logger.FromContext(ctx).WithField("rpc", method)

	if params == nil {
		params = []interface{}{}
	}

	r, err := s.client.R().
		SetContext(ctx).
		SetBody(rpcRequest{
			Version: "1.0",
			ID:      uuid.New(),
			Method:  method,
			Params:  params,
		}).
		Post("")
	if err != nil {
		log.WithError(err).Errorln("rpc transport failed")
		return &core.RemoteError{Method: method, Message: err.Error()}
	}

	var resp rpcResponse
	if err := json.Unmarshal(r.Body(), &resp); err != nil {
		return &core.RemoteError{
			Method:  method,
			Message: fmt.Sprintf("malformed response (%s): %v", r.Status(), err),
		}
	}

	if resp.Error != nil {
		log.Debugln("rpc error:", resp.Error.Message)
		return &core.RemoteError{
			Method:  method,
			Code:    resp.Error.Code,
			Message: resp.Error.Message,
		}
	}

	if result != nil {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return &core.RemoteError{
				Method:  method,
				Message: fmt.Sprintf("unexpected result shape: %v", err),
			}
		}
	}

	return nil
}

func (s *nodeService) Unlock(ctx context.Context, passphrase string, timeout int64) error {
	return s.call(ctx, nil, "walletpassphrase", passphrase, timeout)
}

func (s *nodeService) Balance(ctx context.Context, asset string) (decimal.Decimal, error) {
	var balances map[string]decimal.Decimal
	if err := s.call(ctx, &balances, "getbalance"); err != nil {
		return decimal.Zero, err
	}

	return balances[asset], nil
}

func (s *nodeService) ValidateAddress(ctx context.Context, address string) (*core.AddressInfo, error) {
	var info core.AddressInfo
	if err := s.call(ctx, &info, "validateaddress", address); err != nil {
		return nil, err
	}

	return &info, nil
}

func (s *nodeService) SendToAddress(ctx context.Context, address string, amount decimal.Decimal) (string, error) {
	var txid string
	if err := s.call(ctx, &txid, "sendtoaddress", address, amount); err != nil {
		return "", err
	}

	return txid, nil
}

func (s *nodeService) CreateRawTransaction(ctx context.Context, data string) (string, error) {
	outputs := []map[string]interface{}{{"data": data}}

	var txHex string
	if err := s.call(ctx, &txHex, "createrawtransaction", []interface{}{}, outputs); err != nil {
		return "", err
	}

	return txHex, nil
}

func (s *nodeService) FundRawTransaction(ctx context.Context, txHex string, feeRate decimal.Decimal) (*core.FundedTransaction, error) {
	params := []interface{}{txHex}
	if feeRate.IsPositive() {
		params = append(params, map[string]interface{}{"feeRate": feeRate})
	}

	var funded core.FundedTransaction
	if err := s.call(ctx, &funded, "fundrawtransaction", params...); err != nil {
		return nil, err
	}

	return &funded, nil
}

func (s *nodeService) RawIssueAsset(ctx context.Context, txHex string, issuance *core.RawIssuance) (*core.IssuedTransaction, error) {
	var issued []core.IssuedTransaction
	if err := s.call(ctx, &issued, "rawissueasset", txHex, []*core.RawIssuance{issuance}); err != nil {
		return nil, err
	}

	if len(issued) == 0 {
		return nil, &core.RemoteError{Method: "rawissueasset", Message: "empty issuance result"}
	}

	return &issued[0], nil
}

func (s *nodeService) BlindRawTransaction(ctx context.Context, txHex string) (string, error) {
	// ignoreblindfail off: a blinding error must abort the pipeline, not
	// slip through as a partially blinded transaction. Issuances stay
	// unblinded, matching the issuance's blind:false.
	var blinded string
	if err := s.call(ctx, &blinded, "blindrawtransaction", txHex, false, []interface{}{}, false); err != nil {
		return "", err
	}

	return blinded, nil
}

func (s *nodeService) SignRawTransactionWithWallet(ctx context.Context, txHex string) (*core.SignedTransaction, error) {
	var signed core.SignedTransaction
	if err := s.call(ctx, &signed, "signrawtransactionwithwallet", txHex); err != nil {
		return nil, err
	}

	return &signed, nil
}

func (s *nodeService) DecodeRawTransaction(ctx context.Context, txHex string) (*core.DecodedTransaction, error) {
	var decoded core.DecodedTransaction
	if err := s.call(ctx, &decoded, "decoderawtransaction", txHex); err != nil {
		return nil, err
	}

	return &decoded, nil
}

func (s *nodeService) TestMempoolAccept(ctx context.Context, txHex string) (*core.MempoolAcceptance, error) {
	var results []core.MempoolAcceptance
	if err := s.call(ctx, &results, "testmempoolaccept", []string{txHex}); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, &core.RemoteError{Method: "testmempoolaccept", Message: "empty acceptance result"}
	}

	return &results[0], nil
}

func (s *nodeService) SendRawTransaction(ctx context.Context, txHex string) (string, error) {
	var txid string
	if err := s.call(ctx, &txid, "sendrawtransaction", txHex); err != nil {
		return "", err
	}

	return txid, nil
}

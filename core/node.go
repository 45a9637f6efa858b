package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// AddressInfo validateaddress response
type AddressInfo struct {
	IsValid bool   `json:"isvalid"`
	Address string `json:"address"`
}

// FundedTransaction fundrawtransaction response
type FundedTransaction struct {
	Hex       string          `json:"hex"`
	Fee       decimal.Decimal `json:"fee"`
	ChangePos int             `json:"changepos"`
}

// RawIssuance rawissueasset request entry. ContractHash carries the
// reversed commitment; Blind stays false, blinding happens as its own
// pipeline stage.
type RawIssuance struct {
	AssetAmount  decimal.Decimal `json:"asset_amount"`
	AssetAddress string          `json:"asset_address"`
	TokenAmount  decimal.Decimal `json:"token_amount"`
	TokenAddress string          `json:"token_address"`
	Blind        bool            `json:"blind"`
	ContractHash string          `json:"contract_hash"`
}

// IssuedTransaction rawissueasset response entry
type IssuedTransaction struct {
	Hex   string `json:"hex"`
	Vin   int    `json:"vin"`
	Asset string `json:"asset"`
	Token string `json:"token"`
}

// SignedTransaction signrawtransactionwithwallet response
type SignedTransaction struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

// IssuanceInfo issuance field of a decoded transaction input
type IssuanceInfo struct {
	Asset string `json:"asset"`
	Token string `json:"token"`
}

// DecodedInput decoded transaction input
type DecodedInput struct {
	Txid     string        `json:"txid"`
	Issuance *IssuanceInfo `json:"issuance,omitempty"`
}

// DecodedTransaction decoderawtransaction response, reduced to the fields
// the pipeline reads
type DecodedTransaction struct {
	Txid string         `json:"txid"`
	Vin  []DecodedInput `json:"vin"`
}

// MempoolAcceptance testmempoolaccept response entry
type MempoolAcceptance struct {
	Txid         string `json:"txid"`
	Allowed      bool   `json:"allowed"`
	RejectReason string `json:"reject-reason"`
}

// INodeService remote ledger client. One typed method per rpc used, all
// blocking and bounded by the configured call timeout. Calls mutate remote
// wallet state unless noted otherwise and are not idempotent. Protocol and
// transport errors surface as *RemoteError; no retries at this layer.
type INodeService interface {
	// Unlock walletpassphrase with a fixed unlock window, issued once at
	// process start when a passphrase is configured
	Unlock(ctx context.Context, passphrase string, timeout int64) error
	// Balance getbalance of the named asset, read-only
	Balance(ctx context.Context, asset string) (decimal.Decimal, error)
	// ValidateAddress read-only address check
	ValidateAddress(ctx context.Context, address string) (*AddressInfo, error)
	// SendToAddress spends wallet funds, returns the txid
	SendToAddress(ctx context.Context, address string, amount decimal.Decimal) (string, error)
	// CreateRawTransaction empty template with a single data output
	CreateRawTransaction(ctx context.Context, data string) (string, error)
	// FundRawTransaction attach funding at the given fee rate; a zero fee
	// rate leaves the choice to the node
	FundRawTransaction(ctx context.Context, txHex string, feeRate decimal.Decimal) (*FundedTransaction, error)
	// RawIssueAsset attach an issuance to the funded transaction
	RawIssueAsset(ctx context.Context, txHex string, issuance *RawIssuance) (*IssuedTransaction, error)
	// BlindRawTransaction blind amounts and assets; blinding errors are
	// surfaced, never ignored
	BlindRawTransaction(ctx context.Context, txHex string) (string, error)
	// SignRawTransactionWithWallet sign with ambient wallet keys
	SignRawTransactionWithWallet(ctx context.Context, txHex string) (*SignedTransaction, error)
	// DecodeRawTransaction read-only decode
	DecodeRawTransaction(ctx context.Context, txHex string) (*DecodedTransaction, error)
	// TestMempoolAccept read-only acceptance check, the gate before broadcast
	TestMempoolAccept(ctx context.Context, txHex string) (*MempoolAcceptance, error)
	// SendRawTransaction irreversible broadcast, returns the txid
	SendRawTransaction(ctx context.Context, txHex string) (string, error)
}

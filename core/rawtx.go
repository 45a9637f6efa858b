package core

import "context"

// RawTransactionResult outcome of an embed or broadcast attempt. A failed
// mempool test leaves Txid empty with Allowed false; that is a normal
// negative result, not an error.
type RawTransactionResult struct {
	Txid         string `json:"txid,omitempty"`
	Allowed      bool   `json:"allowed"`
	RejectReason string `json:"reject_reason,omitempty"`
}

// IRawTransactionService standalone validate/broadcast tail of the pipeline
type IRawTransactionService interface {
	// Embed build, fund, blind and sign a transaction carrying the data in
	// an OP_RETURN output, then test-and-broadcast
	Embed(ctx context.Context, data string) (*RawTransactionResult, error)
	// TestAccept read-only acceptance check
	TestAccept(ctx context.Context, txHex string) (*MempoolAcceptance, error)
	// BroadcastIfValid test first, broadcast only on acceptance
	BroadcastIfValid(ctx context.Context, txHex string) (*RawTransactionResult, error)
}

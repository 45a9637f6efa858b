package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// DispenseResult outcome of one faucet dispense. An invalid address is an
// expected end-user outcome, not an error: Valid is false and no funds moved.
type DispenseResult struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
	Txid    string          `json:"txid,omitempty"`
	Valid   bool            `json:"valid"`
}

// IFaucetService dispense service interface
type IFaucetService interface {
	// Dispense validate the address, then send the fixed amount with
	// exactly one state-mutating call
	Dispense(ctx context.Context, address string) (*DispenseResult, error)
	// Balance remaining faucet balance
	Balance(ctx context.Context) (decimal.Decimal, error)
}

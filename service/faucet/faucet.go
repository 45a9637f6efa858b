package faucet

import (
	"context"

	"mint/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// BalanceAsset faucet balance is tracked in the chain's native asset
const BalanceAsset = "bitcoin"

type faucetService struct {
	node   core.INodeService
	amount decimal.Decimal

	// validated caches positive validateaddress answers; validity of an
	// address never changes, and the check is read-only
	validated gcache.Cache
}

// New new faucet service dispensing a fixed amount per request
func New(node core.INodeService, amount decimal.Decimal) core.IFaucetService {
	return &faucetService{
		node:      node,
		amount:    amount,
		validated: gcache.New(2048).LRU().Build(),
	}
}

// Dispense validate the address, then send the fixed amount. An invalid
// address short-circuits with Valid false before any state-mutating call.
func (s *faucetService) Dispense(ctx context.Context, address string) (*core.DispenseResult, error) {
	log := logger.FromContext(ctx).WithField("service", "faucet")

	result := &core.DispenseResult{
		Address: address,
		Amount:  s.amount,
	}

	valid, err := s.validAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if !valid {
		log.Debugln("rejected invalid address", address)
		return result, nil
	}

	result.Valid = true

	txid, err := s.node.SendToAddress(ctx, address, s.amount)
	if err != nil {
		return nil, err
	}

	result.Txid = txid
	log.Infoln("sent", s.amount, "to", address, "in", txid)

	return result, nil
}

// Balance remaining faucet balance
func (s *faucetService) Balance(ctx context.Context) (decimal.Decimal, error) {
	return s.node.Balance(ctx, BalanceAsset)
}

func (s *faucetService) validAddress(ctx context.Context, address string) (bool, error) {
	if _, err := s.validated.Get(address); err == nil {
		return true, nil
	}

	info, err := s.node.ValidateAddress(ctx, address)
	if err != nil {
		return false, err
	}

	if info.IsValid {
		_ = s.validated.Set(address, struct{}{})
	}

	return info.IsValid, nil
}

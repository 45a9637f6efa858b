package rawtx

import (
	"context"
	"encoding/hex"
	"errors"

	"mint/core"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type rawtxService struct {
	node core.INodeService
}

// New new raw transaction utility service
func New(node core.INodeService) core.IRawTransactionService {
	return &rawtxService{node: node}
}

// Embed build, fund, blind and sign a transaction carrying data in an
// OP_RETURN output, then run it through the same test-then-broadcast gate
// as the issuance pipeline. Funding is left at the node's default fee rate.
func (s *rawtxService) Embed(ctx context.Context, data string) (*core.RawTransactionResult, error) {
	if data == "" {
		return nil, core.NewFailure(core.ErrInvalidInput, core.StageCreated, errors.New("empty data"))
	}

	// the node expects the data output as hex; plain text is encoded as-is
	if !govalidator.IsHexadecimal(data) || len(data)%2 != 0 {
		data = hex.EncodeToString([]byte(data))
	}

	base, err := s.node.CreateRawTransaction(ctx, data)
	if err != nil {
		return nil, core.NewFailure(core.ErrRemote, core.StageCreated, err)
	}

	funded, err := s.node.FundRawTransaction(ctx, base, decimal.Zero)
	if err != nil {
		return nil, core.NewFailure(core.ErrFundingFailed, core.StageFunded, err)
	}

	blinded, err := s.node.BlindRawTransaction(ctx, funded.Hex)
	if err != nil {
		return nil, core.NewFailure(core.ErrBlindingFailed, core.StageBlinded, err)
	}

	signed, err := s.node.SignRawTransactionWithWallet(ctx, blinded)
	if err != nil {
		return nil, core.NewFailure(core.ErrSigningFailed, core.StageSigned, err)
	}

	if !signed.Complete {
		return nil, core.NewFailure(core.ErrSigningFailed, core.StageSigned, errors.New("wallet could not complete the signature"))
	}

	return s.BroadcastIfValid(ctx, signed.Hex)
}

// TestAccept read-only mempool acceptance check, no mutation
func (s *rawtxService) TestAccept(ctx context.Context, txHex string) (*core.MempoolAcceptance, error) {
	if err := validTxHex(txHex); err != nil {
		return nil, err
	}

	return s.node.TestMempoolAccept(ctx, txHex)
}

// BroadcastIfValid test first, broadcast only on acceptance. A rejection
// is a normal negative result: Allowed false, no txid, nil error.
func (s *rawtxService) BroadcastIfValid(ctx context.Context, txHex string) (*core.RawTransactionResult, error) {
	log := logger.FromContext(ctx).WithField("service", "rawtx")

	if err := validTxHex(txHex); err != nil {
		return nil, err
	}

	acceptance, err := s.node.TestMempoolAccept(ctx, txHex)
	if err != nil {
		return nil, core.NewFailure(core.ErrRemote, core.StageTested, err)
	}

	result := &core.RawTransactionResult{
		Allowed:      acceptance.Allowed,
		RejectReason: acceptance.RejectReason,
	}

	if !acceptance.Allowed {
		log.Debugln("broadcast skipped:", acceptance.RejectReason)
		return result, nil
	}

	txid, err := s.node.SendRawTransaction(ctx, txHex)
	if err != nil {
		return nil, core.NewFailure(core.ErrBroadcastFailed, core.StageBroadcast, err)
	}

	result.Txid = txid
	log.Infoln("broadcast", txid)

	return result, nil
}

func validTxHex(txHex string) error {
	if txHex == "" || !govalidator.IsHexadecimal(txHex) || len(txHex)%2 != 0 {
		return core.NewFailure(core.ErrInvalidInput, core.StageTested, errors.New("malformed transaction hex"))
	}

	return nil
}

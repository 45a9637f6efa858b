package issuer

import (
	"context"
	"errors"

	"mint/core"
	"mint/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

var (
	// FeeRate fixed funding fee rate, caller independent
	FeeRate = decimal.New(3, -5)

	// issuance transactions start from an empty template carrying a
	// zero-value data output
	placeholderData = "00"
)

type issuerService struct {
	node      core.INodeService
	committer core.IContractService

	// wallet serializes create through sign. Funding and signing spend
	// shared wallet outputs; two concurrent runs would otherwise race for
	// the same coins and fail each other mid-pipeline.
	wallet *semaphore.Weighted
}

// New new issuer service
func New(node core.INodeService, committer core.IContractService) core.IIssuerService {
	return &issuerService{
		node:      node,
		committer: committer,
		wallet:    semaphore.NewWeighted(1),
	}
}

// IssueAsset run the issuance pipeline: create, fund, commit, issue,
// blind, sign, decode, test, broadcast. Stages run strictly in order and
// the first failure aborts the rest; nothing is rolled back, the ledger
// offers no undo. A failed mempool test is a normal terminal outcome, not
// an error: the result keeps the contract and asset id with no txid.
func (s *issuerService) IssueAsset(ctx context.Context, req *core.IssuanceRequest) (*core.IssuanceResult, error) {
	log := logger.FromContext(ctx).WithField("service", "issuer")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	assetAmount, err := number.Scale(req.AssetAmount, req.Precision)
	if err != nil {
		return nil, core.NewFailure(core.ErrInvalidInput, core.StageCreated, err)
	}

	tokenAmount, err := number.Scale(req.TokenAmount, req.Precision)
	if err != nil {
		return nil, core.NewFailure(core.ErrInvalidInput, core.StageCreated, err)
	}

	contract := req.Contract()
	result := &core.IssuanceResult{Contract: contract}

	signed, err := s.buildSigned(ctx, contract, assetAmount, req.AssetAddress, tokenAmount, req.TokenAddress)
	if err != nil {
		return nil, err
	}

	// the asset id is derivable from the signed transaction alone, so it
	// is kept even when the mempool test rejects; registries want it
	// regardless of broadcast outcome
	decoded, err := s.node.DecodeRawTransaction(ctx, signed)
	if err != nil {
		return nil, core.NewFailure(core.ErrRemote, core.StageSigned, err)
	}

	if len(decoded.Vin) == 0 || decoded.Vin[0].Issuance == nil {
		return nil, core.NewFailure(core.ErrRemote, core.StageSigned, errors.New("signed transaction carries no issuance"))
	}

	result.AssetID = decoded.Vin[0].Issuance.Asset
	result.Stage = core.StageSigned

	acceptance, err := s.node.TestMempoolAccept(ctx, signed)
	if err != nil {
		return nil, core.NewFailure(core.ErrRemote, core.StageTested, err)
	}

	result.Stage = core.StageTested
	if !acceptance.Allowed {
		result.RejectReason = acceptance.RejectReason
		log.WithField("asset", result.AssetID).Infoln("issuance rejected by mempool test:", acceptance.RejectReason)
		return result, nil
	}

	txid, err := s.node.SendRawTransaction(ctx, signed)
	if err != nil {
		return nil, core.NewFailure(core.ErrBroadcastFailed, core.StageBroadcast, err)
	}

	result.Txid = txid
	result.Stage = core.StageBroadcast
	log.WithField("asset", result.AssetID).Infoln("issued in", txid)

	return result, nil
}

// buildSigned stages 1 through 6, holding the wallet lock for the whole
// span so no concurrent run can spend the outputs funding this one.
func (s *issuerService) buildSigned(ctx context.Context, contract *core.AssetContract, assetAmount decimal.Decimal, assetAddress string, tokenAmount decimal.Decimal, tokenAddress string) (string, error) {
	log := logger.FromContext(ctx).WithField("service", "issuer")

	if err := s.wallet.Acquire(ctx, 1); err != nil {
		return "", core.NewFailure(core.ErrRemote, core.StageCreated, err)
	}
	defer s.wallet.Release(1)

	base, err := s.node.CreateRawTransaction(ctx, placeholderData)
	if err != nil {
		return "", core.NewFailure(core.ErrRemote, core.StageCreated, err)
	}

	funded, err := s.node.FundRawTransaction(ctx, base, FeeRate)
	if err != nil {
		return "", core.NewFailure(core.ErrFundingFailed, core.StageFunded, err)
	}

	log.Debugln("funded, fee", funded.Fee)

	commitment, err := s.committer.Commit(contract)
	if err != nil {
		return "", core.NewFailure(core.ErrInvalidInput, core.StageFunded, err)
	}

	issued, err := s.node.RawIssueAsset(ctx, funded.Hex, &core.RawIssuance{
		AssetAmount:  assetAmount,
		AssetAddress: assetAddress,
		TokenAmount:  tokenAmount,
		TokenAddress: tokenAddress,
		Blind:        false,
		ContractHash: commitment.Reversed,
	})
	if err != nil {
		return "", core.NewFailure(core.ErrIssuanceFailed, core.StageIssued, err)
	}

	blinded, err := s.node.BlindRawTransaction(ctx, issued.Hex)
	if err != nil {
		return "", core.NewFailure(core.ErrBlindingFailed, core.StageBlinded, err)
	}

	signed, err := s.node.SignRawTransactionWithWallet(ctx, blinded)
	if err != nil {
		return "", core.NewFailure(core.ErrSigningFailed, core.StageSigned, err)
	}

	if !signed.Complete {
		return "", core.NewFailure(core.ErrSigningFailed, core.StageSigned, errors.New("wallet could not complete the signature"))
	}

	return signed.Hex, nil
}

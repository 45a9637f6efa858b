package core

import (
	"context"

	"github.com/asaskevich/govalidator"
)

// PipelineStage int
type PipelineStage int

const (
	// StageCreated empty template created
	StageCreated PipelineStage = iota
	// StageFunded funding inputs attached
	StageFunded
	// StageIssued issuance attached
	StageIssued
	// StageBlinded amounts blinded
	StageBlinded
	// StageSigned signed with wallet keys
	StageSigned
	// StageTested mempool acceptance checked
	StageTested
	// StageBroadcast submitted to the network
	StageBroadcast
)

var stageNames = map[PipelineStage]string{
	StageCreated:   "create",
	StageFunded:    "fund",
	StageIssued:    "issue",
	StageBlinded:   "blind",
	StageSigned:    "sign",
	StageTested:    "test",
	StageBroadcast: "broadcast",
}

func (s PipelineStage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}

	return "unknown"
}

// IssuanceRequest parameters of one asset issuance. Amounts arrive as
// integers in the smallest displayed unit and are rescaled to ledger
// fixed-point units before hitting the node.
type IssuanceRequest struct {
	AssetAmount  int64  `json:"asset_amount" valid:"required"`
	AssetAddress string `json:"asset_address" valid:"required"`
	TokenAmount  int64  `json:"token_amount"`
	TokenAddress string `json:"token_address" valid:"required"`
	IssuerPubkey string `json:"pubkey" valid:"hexadecimal,required"`
	Name         string `json:"name" valid:"required"`
	Ticker       string `json:"ticker" valid:"required"`
	Precision    uint8  `json:"precision"`
	Domain       string `json:"domain" valid:"dns,required"`
}

// Validate reject malformed requests before any remote call is made
func (r *IssuanceRequest) Validate() error {
	if r.Precision > 8 {
		return NewFailure(ErrInvalidInput, StageCreated, errInvalidPrecision)
	}

	if r.AssetAmount <= 0 {
		return NewFailure(ErrInvalidInput, StageCreated, errInvalidAmount)
	}

	if r.TokenAmount < 0 {
		return NewFailure(ErrInvalidInput, StageCreated, errInvalidAmount)
	}

	if _, err := govalidator.ValidateStruct(r); err != nil {
		return NewFailure(ErrInvalidInput, StageCreated, err)
	}

	return nil
}

// Contract asset contract as it will be committed
func (r *IssuanceRequest) Contract() *AssetContract {
	return &AssetContract{
		Name:         r.Name,
		Ticker:       r.Ticker,
		Precision:    r.Precision,
		IssuerPubkey: r.IssuerPubkey,
		Domain:       r.Domain,
		Version:      0,
	}
}

// IssuanceResult outcome of one pipeline run. AssetID is known as soon as
// the signed transaction decodes; Txid only after a successful broadcast.
// Stage records how far the run got, so a mempool rejection
// (Stage == StageTested, empty Txid) stays distinguishable from both a
// broadcast and a never-tested abort.
type IssuanceResult struct {
	Contract     *AssetContract `json:"contract"`
	AssetID      string         `json:"asset_id,omitempty"`
	Txid         string         `json:"txid,omitempty"`
	Stage        PipelineStage  `json:"-"`
	RejectReason string         `json:"reject_reason,omitempty"`
}

// Broadcast whether the issuance reached the network
func (r *IssuanceResult) Broadcast() bool {
	return r.Txid != ""
}

// IIssuerService issuance pipeline interface
type IIssuerService interface {
	IssueAsset(ctx context.Context, req *IssuanceRequest) (*IssuanceResult, error)
}

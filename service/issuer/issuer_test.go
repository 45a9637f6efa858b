package issuer

import (
	"context"
	"errors"
	"testing"

	"mint/core"
	"mint/service/contract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNode struct {
	core.INodeService

	calls []string

	createErr error
	fundErr   error
	issueErr  error
	blindErr  error
	signErr   error
	sendErr   error

	incomplete bool
	allowed    bool
	reject     string

	issuance *core.RawIssuance
}

func (m *mockNode) CreateRawTransaction(ctx context.Context, data string) (string, error) {
	m.calls = append(m.calls, "create")
	if m.createErr != nil {
		return "", m.createErr
	}
	return "base-hex", nil
}

func (m *mockNode) FundRawTransaction(ctx context.Context, txHex string, feeRate decimal.Decimal) (*core.FundedTransaction, error) {
	m.calls = append(m.calls, "fund")
	if m.fundErr != nil {
		return nil, m.fundErr
	}
	return &core.FundedTransaction{Hex: "funded-hex", Fee: feeRate}, nil
}

func (m *mockNode) RawIssueAsset(ctx context.Context, txHex string, issuance *core.RawIssuance) (*core.IssuedTransaction, error) {
	m.calls = append(m.calls, "issue")
	m.issuance = issuance
	if m.issueErr != nil {
		return nil, m.issueErr
	}
	return &core.IssuedTransaction{Hex: "issued-hex"}, nil
}

func (m *mockNode) BlindRawTransaction(ctx context.Context, txHex string) (string, error) {
	m.calls = append(m.calls, "blind")
	if m.blindErr != nil {
		return "", m.blindErr
	}
	if txHex != "issued-hex" {
		return "", errors.New("blind called with an unissued transaction")
	}
	return "blinded-hex", nil
}

func (m *mockNode) SignRawTransactionWithWallet(ctx context.Context, txHex string) (*core.SignedTransaction, error) {
	m.calls = append(m.calls, "sign")
	if m.signErr != nil {
		return nil, m.signErr
	}
	return &core.SignedTransaction{Hex: "signed-hex", Complete: !m.incomplete}, nil
}

func (m *mockNode) DecodeRawTransaction(ctx context.Context, txHex string) (*core.DecodedTransaction, error) {
	m.calls = append(m.calls, "decode")
	return &core.DecodedTransaction{
		Txid: "txid-1",
		Vin: []core.DecodedInput{
			{Issuance: &core.IssuanceInfo{Asset: "asset-id-1"}},
		},
	}, nil
}

func (m *mockNode) TestMempoolAccept(ctx context.Context, txHex string) (*core.MempoolAcceptance, error) {
	m.calls = append(m.calls, "test")
	return &core.MempoolAcceptance{Allowed: m.allowed, RejectReason: m.reject}, nil
}

func (m *mockNode) SendRawTransaction(ctx context.Context, txHex string) (string, error) {
	m.calls = append(m.calls, "send")
	if m.sendErr != nil {
		return "", m.sendErr
	}
	return "txid-1", nil
}

func testRequest() *core.IssuanceRequest {
	return &core.IssuanceRequest{
		AssetAmount:  100000000,
		AssetAddress: "addr-asset",
		TokenAmount:  100000000,
		TokenAddress: "addr-token",
		IssuerPubkey: "02ab8bb8fccf8a431e675dbc4d1884a6a6d2ab2a7b3c621209ec6d1f2e74b4e26a",
		Name:         "Foo",
		Ticker:       "FOO",
		Precision:    8,
		Domain:       "foo.com",
	}
}

func TestIssueAssetHappyPath(t *testing.T) {
	node := &mockNode{allowed: true}
	s := New(node, contract.New())

	result, err := s.IssueAsset(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"create", "fund", "issue", "blind", "sign", "decode", "test", "send"}, node.calls)
	assert.Equal(t, "asset-id-1", result.AssetID)
	assert.Equal(t, "txid-1", result.Txid)
	assert.Equal(t, core.StageBroadcast, result.Stage)
	assert.True(t, result.Broadcast())

	// amounts are rescaled to ledger units and the reversed commitment
	// rides along as the contract hash
	require.NotNil(t, node.issuance)
	assert.Equal(t, "100000000", node.issuance.AssetAmount.String())
	assert.Equal(t, "100000000", node.issuance.TokenAmount.String())
	assert.False(t, node.issuance.Blind)

	commitment, err := contract.New().Commit(testRequest().Contract())
	require.NoError(t, err)
	assert.Equal(t, commitment.Reversed, node.issuance.ContractHash)
}

func TestIssueAssetScalesAmounts(t *testing.T) {
	node := &mockNode{allowed: true}
	s := New(node, contract.New())

	req := testRequest()
	req.Precision = 0

	_, err := s.IssueAsset(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, node.issuance)
	assert.Equal(t, "1", node.issuance.AssetAmount.String())
}

func TestIssueAssetRejectedByMempool(t *testing.T) {
	node := &mockNode{allowed: false, reject: "min relay fee not met"}
	s := New(node, contract.New())

	result, err := s.IssueAsset(context.Background(), testRequest())
	require.NoError(t, err)

	assert.NotContains(t, node.calls, "send")
	assert.Equal(t, "asset-id-1", result.AssetID)
	assert.Empty(t, result.Txid)
	assert.Equal(t, core.StageTested, result.Stage)
	assert.Equal(t, "min relay fee not met", result.RejectReason)
}

func TestIssueAssetCreateFailsFast(t *testing.T) {
	node := &mockNode{createErr: errors.New("connection refused")}
	s := New(node, contract.New())

	_, err := s.IssueAsset(context.Background(), testRequest())
	require.Error(t, err)

	var failure *core.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, core.ErrRemote, failure.Code)
	assert.Equal(t, []string{"create"}, node.calls)
}

func TestIssueAssetFundingFailed(t *testing.T) {
	node := &mockNode{fundErr: errors.New("insufficient funds")}
	s := New(node, contract.New())

	_, err := s.IssueAsset(context.Background(), testRequest())
	require.Error(t, err)

	var failure *core.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, core.ErrFundingFailed, failure.Code)
	assert.Equal(t, []string{"create", "fund"}, node.calls)
}

func TestIssueAssetBlindingFailed(t *testing.T) {
	node := &mockNode{blindErr: errors.New("unable to blind")}
	s := New(node, contract.New())

	_, err := s.IssueAsset(context.Background(), testRequest())
	require.Error(t, err)

	var failure *core.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, core.ErrBlindingFailed, failure.Code)
	assert.Equal(t, []string{"create", "fund", "issue", "blind"}, node.calls)
}

func TestIssueAssetIncompleteSignature(t *testing.T) {
	node := &mockNode{incomplete: true}
	s := New(node, contract.New())

	_, err := s.IssueAsset(context.Background(), testRequest())
	require.Error(t, err)

	var failure *core.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, core.ErrSigningFailed, failure.Code)
}

func TestIssueAssetBroadcastFailed(t *testing.T) {
	node := &mockNode{allowed: true, sendErr: errors.New("node gone")}
	s := New(node, contract.New())

	_, err := s.IssueAsset(context.Background(), testRequest())
	require.Error(t, err)

	var failure *core.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, core.ErrBroadcastFailed, failure.Code)
}

func TestIssueAssetInvalidInputNoRemoteCalls(t *testing.T) {
	node := &mockNode{}
	s := New(node, contract.New())

	for _, req := range []*core.IssuanceRequest{
		func() *core.IssuanceRequest { r := testRequest(); r.Precision = 9; return r }(),
		func() *core.IssuanceRequest { r := testRequest(); r.AssetAmount = 0; return r }(),
		func() *core.IssuanceRequest { r := testRequest(); r.Name = ""; return r }(),
		func() *core.IssuanceRequest { r := testRequest(); r.IssuerPubkey = "zz"; return r }(),
	} {
		_, err := s.IssueAsset(context.Background(), req)
		require.Error(t, err)

		var failure *core.Failure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, core.ErrInvalidInput, failure.Code)
	}

	assert.Empty(t, node.calls)
}

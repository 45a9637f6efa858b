package rawtx

import (
	"context"
	"encoding/hex"
	"testing"

	"mint/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNode struct {
	core.INodeService

	allowed bool
	reject  string

	createData string
	testCalls  int
	sendCalls  int
}

func (m *mockNode) CreateRawTransaction(ctx context.Context, data string) (string, error) {
	m.createData = data
	return "base-hex", nil
}

func (m *mockNode) FundRawTransaction(ctx context.Context, txHex string, feeRate decimal.Decimal) (*core.FundedTransaction, error) {
	return &core.FundedTransaction{Hex: "funded-hex"}, nil
}

func (m *mockNode) BlindRawTransaction(ctx context.Context, txHex string) (string, error) {
	return "blinded-hex", nil
}

func (m *mockNode) SignRawTransactionWithWallet(ctx context.Context, txHex string) (*core.SignedTransaction, error) {
	return &core.SignedTransaction{Hex: "ab01", Complete: true}, nil
}

func (m *mockNode) TestMempoolAccept(ctx context.Context, txHex string) (*core.MempoolAcceptance, error) {
	m.testCalls++
	return &core.MempoolAcceptance{Allowed: m.allowed, RejectReason: m.reject}, nil
}

func (m *mockNode) SendRawTransaction(ctx context.Context, txHex string) (string, error) {
	m.sendCalls++
	return "txid-1", nil
}

func TestBroadcastIfValid(t *testing.T) {
	node := &mockNode{allowed: true}
	s := New(node)

	result, err := s.BroadcastIfValid(context.Background(), "ab01")
	require.NoError(t, err)

	assert.True(t, result.Allowed)
	assert.Equal(t, "txid-1", result.Txid)
	assert.Equal(t, 1, node.sendCalls)
}

func TestBroadcastIfValidRejected(t *testing.T) {
	node := &mockNode{allowed: false, reject: "txn-mempool-conflict"}
	s := New(node)

	result, err := s.BroadcastIfValid(context.Background(), "ab01")
	require.NoError(t, err)

	// a rejection is a normal negative result and never reaches broadcast
	assert.False(t, result.Allowed)
	assert.Empty(t, result.Txid)
	assert.Equal(t, "txn-mempool-conflict", result.RejectReason)
	assert.Zero(t, node.sendCalls)
}

func TestBroadcastIfValidMalformedHex(t *testing.T) {
	node := &mockNode{}
	s := New(node)

	_, err := s.BroadcastIfValid(context.Background(), "zz")
	require.Error(t, err)

	var failure *core.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, core.ErrInvalidInput, failure.Code)
	assert.Zero(t, node.testCalls)
}

func TestEmbedEncodesPlainText(t *testing.T) {
	node := &mockNode{allowed: true}
	s := New(node)

	result, err := s.Embed(context.Background(), "hello world")
	require.NoError(t, err)

	assert.Equal(t, hex.EncodeToString([]byte("hello world")), node.createData)
	assert.Equal(t, "txid-1", result.Txid)
}

func TestEmbedKeepsHexData(t *testing.T) {
	node := &mockNode{allowed: true}
	s := New(node)

	_, err := s.Embed(context.Background(), "deadbeef")
	require.NoError(t, err)

	assert.Equal(t, "deadbeef", node.createData)
}

func TestEmbedRejectedNotBroadcast(t *testing.T) {
	node := &mockNode{allowed: false, reject: "scriptpubkey"}
	s := New(node)

	result, err := s.Embed(context.Background(), "deadbeef")
	require.NoError(t, err)

	assert.False(t, result.Allowed)
	assert.Empty(t, result.Txid)
	assert.Zero(t, node.sendCalls)
}

package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNodeEndpoint(t *testing.T) {
	n := Node{Host: "localhost", Port: 18884, Username: "u", Password: "p"}
	assert.Equal(t, "http://localhost:18884", n.Endpoint())

	n.Wallet = "main"
	assert.Equal(t, "http://localhost:18884/wallet/main", n.Endpoint())
}

func TestNodeValidate(t *testing.T) {
	n := Node{Host: "localhost", Port: 18884, Username: "u", Password: "p"}
	assert.NoError(t, n.Validate())

	assert.Error(t, Node{Port: 18884, Username: "u", Password: "p"}.Validate())
	assert.Error(t, Node{Host: "localhost", Port: 0, Username: "u", Password: "p"}.Validate())
	assert.Error(t, Node{Host: "localhost", Port: 18884}.Validate())
}

func TestNodeCallTimeout(t *testing.T) {
	assert.Equal(t, 10*time.Second, Node{}.CallTimeout())
	assert.Equal(t, 30*time.Second, Node{Timeout: 30}.CallTimeout())
}

func TestFaucetDispenseAmount(t *testing.T) {
	assert.Equal(t, "0.001", Faucet{}.DispenseAmount().String())
	assert.Equal(t, "0.5", Faucet{Amount: decimal.New(5, -1)}.DispenseAmount().String())
}

package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Config mint config
type Config struct {
	API    API    `json:"api"`
	Node   Node   `json:"node"`
	Faucet Faucet `json:"faucet"`
}

// API api server config
type API struct {
	Port int `json:"port"`
}

// Node elements node connection config, read once at startup and
// shared read-only across all requests
type Node struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Passphrase string `json:"passphrase"`
	Wallet     string `json:"wallet"`
	// Timeout bounds every rpc call, in seconds. Zero falls back to 10.
	Timeout int64 `json:"timeout"`
}

// Validate check the connection descriptor once at startup
func (n Node) Validate() error {
	if n.Host == "" {
		return fmt.Errorf("node: host is required")
	}

	if n.Port <= 0 || n.Port > 65535 {
		return fmt.Errorf("node: invalid port %d", n.Port)
	}

	if n.Username == "" || n.Password == "" {
		return fmt.Errorf("node: rpc credentials are required")
	}

	return nil
}

// Endpoint rpc endpoint url. With a wallet name set, calls target the
// wallet-scoped endpoint instead of the node-level one.
func (n Node) Endpoint() string {
	url := fmt.Sprintf("http://%s:%d", n.Host, n.Port)
	if n.Wallet != "" {
		url = url + "/wallet/" + n.Wallet
	}

	return url
}

// CallTimeout per call timeout
func (n Node) CallTimeout() time.Duration {
	if n.Timeout <= 0 {
		return 10 * time.Second
	}

	return time.Duration(n.Timeout) * time.Second
}

// Faucet faucet config
type Faucet struct {
	Amount decimal.Decimal `json:"amount"`
}

// DispenseAmount faucet amount per dispense, default 0.001
func (f Faucet) DispenseAmount() decimal.Decimal {
	if f.Amount.IsPositive() {
		return f.Amount
	}

	return decimal.New(1, -3)
}

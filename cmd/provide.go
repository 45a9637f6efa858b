package cmd

import (
	"context"

	"mint/core"
	"mint/service/contract"
	"mint/service/faucet"
	"mint/service/issuer"
	"mint/service/node"
	"mint/service/rawtx"

	"github.com/sirupsen/logrus"
)

// walletpassphrase unlock window, in seconds
const unlockWindow = 60

func provideConfig() *core.Config {
	return &cfg
}

// provideNodeService build the node client and, when a passphrase is
// configured, unlock the wallet before anything else runs. An unlock
// failure is fatal, never swallowed.
func provideNodeService(ctx context.Context) core.INodeService {
	nodeSrv, err := node.New(cfg.Node)
	if err != nil {
		panic(err)
	}

	if cfg.Node.Passphrase != "" {
		if err := nodeSrv.Unlock(ctx, cfg.Node.Passphrase, unlockWindow); err != nil {
			logrus.WithError(err).Fatalln("wallet unlock failed")
		}
	}

	return nodeSrv
}

func provideContractService() core.IContractService {
	return contract.New()
}

func provideIssuerService(nodeSrv core.INodeService) core.IIssuerService {
	return issuer.New(nodeSrv, provideContractService())
}

func provideFaucetService(nodeSrv core.INodeService) core.IFaucetService {
	return faucet.New(nodeSrv, cfg.Faucet.DispenseAmount())
}

func provideRawTransactionService(nodeSrv core.INodeService) core.IRawTransactionService {
	return rawtx.New(nodeSrv)
}
